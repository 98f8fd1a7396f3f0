package commands

import (
	"context"
	"time"

	"roombooking/internal/domain/booking"

	"github.com/google/uuid"
)

// ReservationWriter is the write-side contract onto the reservation ledger.
type ReservationWriter interface {
	// TryReserve atomically checks for an existing confirmed reservation on
	// the (room, date) key and inserts the new one if the slot is free. A
	// taken slot is reported as infra KindConflict; two concurrent calls on
	// the same key must never both succeed.
	TryReserve(ctx context.Context, res *booking.Reservation) error

	// Cancel transitions confirmed → cancelled and frees the key. Cancelling
	// an already-cancelled reservation succeeds without changes; an unknown
	// id is KindNotFound.
	Cancel(ctx context.Context, id uuid.UUID, at time.Time) error

	FindActiveByRoomDate(ctx context.Context, roomID, date string) (*booking.Reservation, error)
}

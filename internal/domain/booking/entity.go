package booking

import (
	"errors"
	"time"

	"roombooking/internal/domain/pricing"

	"github.com/google/uuid"
)

var ErrInvalidPriceSnapshot = errors.New("price snapshot does not reproduce from its inputs")

// Reservation is the authoritative record of one confirmed booking for a
// (room, date) pair. The price snapshot is captured at confirmation time and
// never recomputed afterwards; later price or forecast changes do not touch
// it. Mutation is limited to the one-way confirmed → cancelled transition.
type Reservation struct {
	id          uuid.UUID
	roomID      string
	roomName    string
	location    string
	date        Date
	client      ClientInfo
	price       pricing.Quote
	status      Status
	bookedAt    time.Time
	cancelledAt *time.Time
}

func NewReservation(
	roomID, roomName, location string,
	date Date,
	client ClientInfo,
	price pricing.Quote,
	bookedAt time.Time,
) (*Reservation, error) {
	if roomID == "" {
		return nil, ErrEmptyRoomID
	}
	if !snapshotConsistent(price) {
		return nil, ErrInvalidPriceSnapshot
	}

	return &Reservation{
		id:       uuid.New(),
		roomID:   roomID,
		roomName: roomName,
		location: location,
		date:     date,
		client:   client,
		price:    price,
		status:   StatusConfirmed,
		bookedAt: bookedAt,
	}, nil
}

// ReconstructReservation rebuilds an entity from persisted state without
// re-running creation invariants.
func ReconstructReservation(
	id uuid.UUID,
	roomID, roomName, location string,
	date Date,
	client ClientInfo,
	price pricing.Quote,
	status Status,
	bookedAt time.Time,
	cancelledAt *time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		roomID:      roomID,
		roomName:    roomName,
		location:    location,
		date:        date,
		client:      client,
		price:       price,
		status:      status,
		bookedAt:    bookedAt,
		cancelledAt: cancelledAt,
	}
}

// Cancel transitions confirmed → cancelled. Cancelling an already-cancelled
// reservation is a no-op and leaves cancelledAt untouched.
func (r *Reservation) Cancel(at time.Time) {
	if r.status == StatusCancelled {
		return
	}
	r.status = StatusCancelled
	t := at
	r.cancelledAt = &t
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) RoomID() string         { return r.roomID }
func (r *Reservation) RoomName() string       { return r.roomName }
func (r *Reservation) Location() string       { return r.location }
func (r *Reservation) Date() Date             { return r.date }
func (r *Reservation) Client() ClientInfo     { return r.client }
func (r *Reservation) Price() pricing.Quote   { return r.price }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) BookedAt() time.Time    { return r.bookedAt }
func (r *Reservation) CancelledAt() *time.Time {
	if r.cancelledAt == nil {
		return nil
	}
	t := *r.cancelledAt
	return &t
}

func snapshotConsistent(q pricing.Quote) bool {
	if q.BasePrice < 0 {
		return false
	}
	return equalCents(q.FinalPrice, q.BasePrice+q.SurchargeAmount)
}

func equalCents(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 0.005
}

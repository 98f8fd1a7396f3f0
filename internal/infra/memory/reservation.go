package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"roombooking/internal/domain/booking"
	"roombooking/internal/infra"
	"roombooking/internal/pkg/errs"

	"github.com/google/uuid"
)

// ReservationLedger is the in-process reservation store. It mirrors the
// Postgres ledger's contract: one confirmed reservation per (room, date),
// enforced atomically under a single mutex.
type ReservationLedger struct {
	mu          sync.Mutex
	byID        map[uuid.UUID]*booking.Reservation
	activeByKey map[string]uuid.UUID
}

func NewReservationLedger() *ReservationLedger {
	return &ReservationLedger{
		byID:        make(map[uuid.UUID]*booking.Reservation),
		activeByKey: make(map[string]uuid.UUID),
	}
}

func (l *ReservationLedger) TryReserve(_ context.Context, res *booking.Reservation) error {
	key := slotKey(res.RoomID(), res.Date().String())

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, taken := l.activeByKey[key]; taken {
		return infra.WrapRepoErr("slot already reserved", errs.New("duplicate reservation"), infra.KindConflict)
	}

	l.byID[res.ID()] = copyReservation(res)
	l.activeByKey[key] = res.ID()
	return nil
}

func (l *ReservationLedger) Cancel(_ context.Context, id uuid.UUID, at time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	res, ok := l.byID[id]
	if !ok {
		return infra.WrapRepoErr("reservation not found", errs.New("unknown reservation id"), infra.KindNotFound)
	}
	if res.Status() == booking.StatusCancelled {
		return nil
	}

	res.Cancel(at)
	delete(l.activeByKey, slotKey(res.RoomID(), res.Date().String()))
	return nil
}

func (l *ReservationLedger) FindActiveByRoomDate(_ context.Context, roomID, date string) (*booking.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id, ok := l.activeByKey[slotKey(roomID, date)]
	if !ok {
		return nil, infra.WrapRepoErr("no active reservation", errs.New("slot is free"), infra.KindNotFound)
	}
	return copyReservation(l.byID[id]), nil
}

func (l *ReservationLedger) FindByID(_ context.Context, id uuid.UUID) (*booking.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	res, ok := l.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", errs.New("unknown reservation id"), infra.KindNotFound)
	}
	return copyReservation(res), nil
}

func (l *ReservationLedger) FindByClientEmail(_ context.Context, email string) ([]*booking.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []*booking.Reservation
	for _, res := range l.byID {
		if strings.EqualFold(res.Client().Email(), email) {
			out = append(out, copyReservation(res))
		}
	}
	sortByBookedAt(out)
	return out, nil
}

func (l *ReservationLedger) FindAll(_ context.Context) ([]*booking.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*booking.Reservation, 0, len(l.byID))
	for _, res := range l.byID {
		out = append(out, copyReservation(res))
	}
	sortByBookedAt(out)
	return out, nil
}

func slotKey(roomID, date string) string {
	return roomID + "|" + date
}

// copyReservation isolates callers from the stored entity so reads never
// alias ledger state.
func copyReservation(res *booking.Reservation) *booking.Reservation {
	return booking.ReconstructReservation(
		res.ID(), res.RoomID(), res.RoomName(), res.Location(),
		res.Date(), res.Client(), res.Price(), res.Status(),
		res.BookedAt(), res.CancelledAt(),
	)
}

func sortByBookedAt(items []*booking.Reservation) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].BookedAt().Equal(items[j].BookedAt()) {
			return items[i].ID().String() < items[j].ID().String()
		}
		return items[i].BookedAt().Before(items[j].BookedAt())
	})
}

package queries

import (
	"context"
	"time"

	"roombooking/internal/domain/booking"
	"roombooking/internal/domain/pricing"
	"roombooking/internal/infra"
	"roombooking/internal/observability/metrics"
	"roombooking/internal/pkg/errs"
	"roombooking/internal/usecase/shared"
	"roombooking/internal/usecase/weather"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID          uuid.UUID     `json:"id"`
	RoomID      string        `json:"room_id"`
	RoomName    string        `json:"room_name"`
	Location    string        `json:"location"`
	Date        string        `json:"date"`
	ClientName  string        `json:"client_name"`
	ClientEmail string        `json:"client_email"`
	Pricing     pricing.Quote `json:"pricing"`
	Status      string        `json:"status"`
	BookedAt    time.Time     `json:"booked_at"`
	CancelledAt *time.Time    `json:"cancelled_at,omitempty"`
}

type ExistingBookingView struct {
	BookingID uuid.UUID `json:"booking_id"`
	BookedBy  string    `json:"booked_by"`
	Date      string    `json:"date"`
}

type AvailabilityView struct {
	Available bool                 `json:"available"`
	Room      shared.RoomSnapshot  `json:"-"`
	Date      string               `json:"date"`
	Pricing   *pricing.Quote       `json:"pricing,omitempty"`
	Existing  *ExistingBookingView `json:"existing_booking,omitempty"`
}

// ReservationReader is the read-side contract onto the reservation ledger.
// Implementations return defensive copies only.
type ReservationReader interface {
	FindActiveByRoomDate(ctx context.Context, roomID, date string) (*booking.Reservation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error)
	FindByClientEmail(ctx context.Context, email string) ([]*booking.Reservation, error)
	FindAll(ctx context.Context) ([]*booking.Reservation, error)
}

type BookingQueries interface {
	CheckAvailability(ctx context.Context, roomID, date string) (*AvailabilityView, error)
	Get(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByClient(ctx context.Context, email string) ([]*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	reader  ReservationReader
	catalog shared.RoomCatalog
	store   *weather.Store
	engine  *pricing.Engine
}

func NewBookingQueries(reader ReservationReader, catalog shared.RoomCatalog, store *weather.Store, engine *pricing.Engine) BookingQueries {
	return &bookingQueriesImpl{
		reader:  reader,
		catalog: catalog,
		store:   store,
		engine:  engine,
	}
}

// CheckAvailability resolves the room, then the slot, then the quote.
// A missing room fails fast; an existing confirmed booking short-circuits to
// unavailable with the holder's summary and skips quoting entirely.
func (q *bookingQueriesImpl) CheckAvailability(ctx context.Context, roomID, date string) (*AvailabilityView, error) {
	bookingDate, err := booking.NewDate(date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if roomID == "" {
		return nil, errs.Mark(booking.ErrEmptyRoomID, errs.ErrValidation)
	}

	roomSnap, err := q.lookupRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	existing, err := q.reader.FindActiveByRoomDate(ctx, roomID, bookingDate.String())
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if existing != nil {
		metrics.AvailabilityCheck("unavailable")
		return &AvailabilityView{
			Available: false,
			Room:      *roomSnap,
			Date:      bookingDate.String(),
			Existing: &ExistingBookingView{
				BookingID: existing.ID(),
				BookedBy:  existing.Client().Name(),
				Date:      existing.Date().String(),
			},
		}, nil
	}

	entry, err := q.store.GetOrCompute(ctx, roomSnap.Location, bookingDate.String(), roomSnap.PricePerDay)
	if err != nil {
		return nil, err
	}

	quote, err := q.engine.Quote(roomSnap.PricePerDay, entry.TemperatureC)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	metrics.AvailabilityCheck("available")
	return &AvailabilityView{
		Available: true,
		Room:      *roomSnap,
		Date:      bookingDate.String(),
		Pricing:   &quote,
	}, nil
}

func (q *bookingQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	res, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return ToBookingView(res), nil
}

func (q *bookingQueriesImpl) ListByClient(ctx context.Context, email string) ([]*BookingView, error) {
	if email == "" {
		return nil, errs.Mark(booking.ErrInvalidEmail, errs.ErrValidation)
	}
	rows, err := q.reader.FindByClientEmail(ctx, email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return toBookingViews(rows), nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingView, error) {
	rows, err := q.reader.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return toBookingViews(rows), nil
}

func (q *bookingQueriesImpl) lookupRoom(ctx context.Context, roomID string) (*shared.RoomSnapshot, error) {
	roomSnap, err := q.catalog.Lookup(ctx, roomID)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			metrics.CatalogLookup("not_found")
			return nil, errs.Mark(err, errs.ErrRoomNotFound)
		case infra.IsKind(err, infra.KindUpstream):
			metrics.CatalogLookup("upstream_error")
			return nil, errs.Mark(err, errs.ErrUpstreamUnavailable)
		default:
			metrics.CatalogLookup("error")
			return nil, errs.Mark(err, errs.ErrStorageFailure)
		}
	}
	metrics.CatalogLookup("ok")
	return roomSnap, nil
}

func ToBookingView(res *booking.Reservation) *BookingView {
	return &BookingView{
		ID:          res.ID(),
		RoomID:      res.RoomID(),
		RoomName:    res.RoomName(),
		Location:    res.Location(),
		Date:        res.Date().String(),
		ClientName:  res.Client().Name(),
		ClientEmail: res.Client().Email(),
		Pricing:     res.Price(),
		Status:      res.Status().String(),
		BookedAt:    res.BookedAt(),
		CancelledAt: res.CancelledAt(),
	}
}

func toBookingViews(rows []*booking.Reservation) []*BookingView {
	views := make([]*BookingView, len(rows))
	for i, r := range rows {
		views[i] = ToBookingView(r)
	}
	return views
}

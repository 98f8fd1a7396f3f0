package commands

import (
	"context"

	"roombooking/internal/domain/booking"
	"roombooking/internal/domain/pricing"
	"roombooking/internal/infra"
	"roombooking/internal/observability/metrics"
	"roombooking/internal/pkg/clock"
	"roombooking/internal/pkg/errs"
	"roombooking/internal/usecase/queries"
	"roombooking/internal/usecase/shared"
	"roombooking/internal/usecase/weather"

	"github.com/google/uuid"
)

type ConfirmParams struct {
	RoomID      string
	Date        string
	ClientName  string
	ClientEmail string
}

// ConfirmResult carries exactly one of Booking (success) or Conflict (the
// slot was already taken, with the holder's summary for user feedback).
type ConfirmResult struct {
	Booking  *queries.BookingView
	Conflict *queries.ExistingBookingView
}

type BookingCommands interface {
	Confirm(ctx context.Context, params ConfirmParams) (*ConfirmResult, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	ledger  ReservationWriter
	catalog shared.RoomCatalog
	store   *weather.Store
	engine  *pricing.Engine
	clock   clock.Clock
}

func NewBookingCommands(
	ledger ReservationWriter,
	catalog shared.RoomCatalog,
	store *weather.Store,
	engine *pricing.Engine,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		ledger:  ledger,
		catalog: catalog,
		store:   store,
		engine:  engine,
		clock:   clk,
	}
}

// Confirm resolves the room, derives the quote from the memoized forecast
// immediately before TryReserve, and persists it as the reservation's
// immutable price snapshot; later price or forecast changes never touch a
// confirmed booking. A Conflict is returned to the caller as-is, one
// user-visible attempt per call with no hidden retry.
func (c *bookingCommandsImpl) Confirm(ctx context.Context, params ConfirmParams) (*ConfirmResult, error) {
	date, err := booking.NewDate(params.Date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	client, err := booking.NewClientInfo(params.ClientName, params.ClientEmail)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if params.RoomID == "" {
		return nil, errs.Mark(booking.ErrEmptyRoomID, errs.ErrValidation)
	}

	roomSnap, err := c.lookupRoom(ctx, params.RoomID)
	if err != nil {
		return nil, err
	}

	entry, err := c.store.GetOrCompute(ctx, roomSnap.Location, date.String(), roomSnap.PricePerDay)
	if err != nil {
		return nil, err
	}

	quote, err := c.engine.Quote(roomSnap.PricePerDay, entry.TemperatureC)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	res, err := booking.NewReservation(
		roomSnap.ID, roomSnap.Name, roomSnap.Location,
		date, client, quote, c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if err := c.ledger.TryReserve(ctx, res); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return c.conflictResult(ctx, roomSnap.ID, date.String())
		}
		metrics.BookingFailed()
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	metrics.BookingConfirmed()
	return &ConfirmResult{Booking: queries.ToBookingView(res)}, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	if err := c.ledger.Cancel(ctx, id, c.clock.Now()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	metrics.BookingCancelled()
	return nil
}

func (c *bookingCommandsImpl) conflictResult(ctx context.Context, roomID, date string) (*ConfirmResult, error) {
	metrics.BookingConflict()

	holder, err := c.ledger.FindActiveByRoomDate(ctx, roomID, date)
	if err != nil {
		// The slot is taken either way; report the conflict even when the
		// holder lookup races with a cancellation.
		return &ConfirmResult{Conflict: &queries.ExistingBookingView{Date: date}}, nil
	}

	return &ConfirmResult{
		Conflict: &queries.ExistingBookingView{
			BookingID: holder.ID(),
			BookedBy:  holder.Client().Name(),
			Date:      holder.Date().String(),
		},
	}, nil
}

func (c *bookingCommandsImpl) lookupRoom(ctx context.Context, roomID string) (*shared.RoomSnapshot, error) {
	roomSnap, err := c.catalog.Lookup(ctx, roomID)
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

//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"roombooking/internal/domain/booking"
	"roombooking/internal/domain/pricing"
	"roombooking/internal/infra"
	"roombooking/internal/infra/memory"
	"roombooking/internal/pkg/clock"
	"roombooking/internal/pkg/errs"
	"roombooking/internal/usecase/queries"
	"roombooking/internal/usecase/shared"
	"roombooking/internal/usecase/weather"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	rooms map[string]shared.RoomSnapshot
}

func (c *stubCatalog) Lookup(_ context.Context, roomID string) (*shared.RoomSnapshot, error) {
	snap, ok := c.rooms[roomID]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", errs.New("unknown room"), infra.KindNotFound)
	}
	return &snap, nil
}

type fixedProvider struct {
	tempC float64
	calls int
}

func (p *fixedProvider) Sample(_ context.Context, _, _ string) (float64, error) {
	p.calls++
	return p.tempC, nil
}

type fixture struct {
	queries  queries.BookingQueries
	ledger   *memory.ReservationLedger
	provider *fixedProvider
}

func newFixture(tempC float64) *fixture {
	engine := pricing.NewDefaultEngine()
	clk := clock.NewMockClock(time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC))
	provider := &fixedProvider{tempC: tempC}
	store := weather.NewStore(memory.NewForecastRepository(), provider, engine, clk, time.Minute)
	ledger := memory.NewReservationLedger()
	catalog := &stubCatalog{rooms: map[string]shared.RoomSnapshot{
		"LON001": {
			ID: "LON001", Name: "The Churchill Room", Location: "London, Westminster",
			Capacity: 50, PricePerHour: 150, PricePerDay: 1000,
		},
	}}

	return &fixture{
		queries:  queries.NewBookingQueries(ledger, catalog, store, engine),
		ledger:   ledger,
		provider: provider,
	}
}

func (f *fixture) reserve(t *testing.T, roomID, date string) *booking.Reservation {
	t.Helper()

	d, err := booking.NewDate(date)
	require.NoError(t, err)
	client, err := booking.NewClientInfo("Ada Lovelace", "ada@example.com")
	require.NoError(t, err)
	quote, err := pricing.NewDefaultEngine().Quote(1000, 21)
	require.NoError(t, err)
	res, err := booking.NewReservation(roomID, "The Churchill Room", "London, Westminster",
		d, client, quote, time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, f.ledger.TryReserve(context.Background(), res))
	return res
}

func TestCheckAvailability_AvailableWithQuote(t *testing.T) {
	f := newFixture(26.0) // diff 5 → 20% surcharge

	view, err := f.queries.CheckAvailability(context.Background(), "LON001", "2026-09-01")
	require.NoError(t, err)

	assert.True(t, view.Available)
	assert.Nil(t, view.Existing)
	require.NotNil(t, view.Pricing)
	assert.Equal(t, 1000.0, view.Pricing.BasePrice)
	assert.InDelta(t, 1200.0, view.Pricing.FinalPrice, 0.001)
}

func TestCheckAvailability_TakenSlotSkipsQuoting(t *testing.T) {
	f := newFixture(26.0)
	holder := f.reserve(t, "LON001", "2026-09-01")

	view, err := f.queries.CheckAvailability(context.Background(), "LON001", "2026-09-01")
	require.NoError(t, err)

	assert.False(t, view.Available)
	assert.Nil(t, view.Pricing)
	require.NotNil(t, view.Existing)
	assert.Equal(t, holder.ID(), view.Existing.BookingID)
	assert.Equal(t, "Ada Lovelace", view.Existing.BookedBy)
	assert.Equal(t, 0, f.provider.calls, "unavailable slot must not sample the forecast")
}

func TestCheckAvailability_MatchesLaterConfirmQuote(t *testing.T) {
	f := newFixture(31.0) // diff 10 → 30% surcharge

	first, err := f.queries.CheckAvailability(context.Background(), "LON001", "2026-09-01")
	require.NoError(t, err)
	second, err := f.queries.CheckAvailability(context.Background(), "LON001", "2026-09-01")
	require.NoError(t, err)

	assert.Equal(t, first.Pricing, second.Pricing, "repeat checks must quote from the same forecast")
	assert.Equal(t, 1, f.provider.calls)
}

func TestCheckAvailability_UnknownRoom(t *testing.T) {
	f := newFixture(21.0)

	_, err := f.queries.CheckAvailability(context.Background(), "NOPE99", "2026-09-01")
	assert.True(t, errs.Is(err, errs.ErrRoomNotFound))
	assert.Equal(t, 0, f.provider.calls)
}

func TestCheckAvailability_InvalidInput(t *testing.T) {
	f := newFixture(21.0)

	_, err := f.queries.CheckAvailability(context.Background(), "LON001", "not-a-date")
	assert.True(t, errs.Is(err, errs.ErrValidation))

	_, err = f.queries.CheckAvailability(context.Background(), "", "2026-09-01")
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestListByClient_RequiresEmail(t *testing.T) {
	f := newFixture(21.0)

	_, err := f.queries.ListByClient(context.Background(), "")
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestGet_Unknown(t *testing.T) {
	f := newFixture(21.0)

	_, err := f.queries.Get(context.Background(), uuid.New())
	assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
}

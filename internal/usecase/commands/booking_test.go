//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"roombooking/internal/domain/pricing"
	"roombooking/internal/infra"
	"roombooking/internal/infra/memory"
	"roombooking/internal/pkg/clock"
	"roombooking/internal/pkg/errs"
	"roombooking/internal/usecase/commands"
	"roombooking/internal/usecase/shared"
	"roombooking/internal/usecase/weather"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	rooms map[string]shared.RoomSnapshot
	err   error
}

func (c *stubCatalog) Lookup(_ context.Context, roomID string) (*shared.RoomSnapshot, error) {
	if c.err != nil {
		return nil, c.err
	}
	snap, ok := c.rooms[roomID]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", errs.New("unknown room"), infra.KindNotFound)
	}
	return &snap, nil
}

type fixedProvider struct {
	tempC float64
	calls int
	mu    sync.Mutex
}

func (p *fixedProvider) Sample(_ context.Context, _, _ string) (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return p.tempC, nil
}

type fixture struct {
	cmds     commands.BookingCommands
	ledger   *memory.ReservationLedger
	catalog  *stubCatalog
	provider *fixedProvider
	clk      *clock.MockClock
}

func newFixture(t *testing.T, tempC float64) *fixture {
	t.Helper()

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
		cmds:     commands.NewBookingCommands(ledger, catalog, store, engine, clk),
		ledger:   ledger,
		catalog:  catalog,
		provider: provider,
		clk:      clk,
	}
}

func validParams() commands.ConfirmParams {
	return commands.ConfirmParams{
		RoomID:      "LON001",
		Date:        "2026-09-01",
		ClientName:  "Ada Lovelace",
		ClientEmail: "ada@example.com",
	}
}

func TestConfirm_Success(t *testing.T) {
	f := newFixture(t, 26.0) // diff 5 → 20% surcharge

	result, err := f.cmds.Confirm(context.Background(), validParams())
	require.NoError(t, err)
	require.NotNil(t, result.Booking)
	assert.Nil(t, result.Conflict)

	b := result.Booking
	assert.Equal(t, "LON001", b.RoomID)
	assert.Equal(t, "confirmed", b.Status)
	assert.Equal(t, 1000.0, b.Pricing.BasePrice)
	assert.Equal(t, 26.0, b.Pricing.TemperatureC)
	assert.Equal(t, 20.0, b.Pricing.SurchargePct)
	assert.InDelta(t, 1200.0, b.Pricing.FinalPrice, 0.001)
}

func TestConfirm_SecondAttemptReportsHolder(t *testing.T) {
	f := newFixture(t, 21.0)

	first, err := f.cmds.Confirm(context.Background(), validParams())
	require.NoError(t, err)
	require.NotNil(t, first.Booking)

	params := validParams()
	params.ClientName = "Grace Hopper"
	params.ClientEmail = "grace@example.com"

	second, err := f.cmds.Confirm(context.Background(), params)
	require.NoError(t, err)
	assert.Nil(t, second.Booking)
	require.NotNil(t, second.Conflict)
	assert.Equal(t, first.Booking.ID, second.Conflict.BookingID)
	assert.Equal(t, "Ada Lovelace", second.Conflict.BookedBy)
	assert.Equal(t, "2026-09-01", second.Conflict.Date)
}

func TestConfirm_ConcurrentAttemptsOneWinner(t *testing.T) {
	f := newFixture(t, 21.0)

	const attempts = 16
	results := make([]*commands.ConfirmResult, attempts)
	errsOut := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errsOut[i] = f.cmds.Confirm(context.Background(), validParams())
		}(i)
	}
	wg.Wait()

	var confirmed, conflicted int
	for i := 0; i < attempts; i++ {
		require.NoError(t, errsOut[i])
		switch {
		case results[i].Booking != nil:
			confirmed++
		case results[i].Conflict != nil:
			conflicted++
		}
	}
	assert.Equal(t, 1, confirmed)
	assert.Equal(t, attempts-1, conflicted)
}

func TestConfirm_SameKeyReusesForecast(t *testing.T) {
	f := newFixture(t, 30.0)

	first, err := f.cmds.Confirm(context.Background(), validParams())
	require.NoError(t, err)

	// Second booking for the same room and date only succeeds after the
	// first is cancelled; the temperature must not be resampled.
	require.NoError(t, f.cmds.Cancel(context.Background(), first.Booking.ID))

	second, err := f.cmds.Confirm(context.Background(), validParams())
	require.NoError(t, err)
	require.NotNil(t, second.Booking)
	assert.Equal(t, first.Booking.Pricing.TemperatureC, second.Booking.Pricing.TemperatureC)
	assert.Equal(t, 1, f.provider.calls)
}

func TestConfirm_UnknownRoomFailsFast(t *testing.T) {
	f := newFixture(t, 21.0)

	params := validParams()
	params.RoomID = "NOPE99"

	result, err := f.cmds.Confirm(context.Background(), params)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrRoomNotFound))
	assert.Equal(t, 0, f.provider.calls)
}

func TestConfirm_CatalogUnavailable(t *testing.T) {
	f := newFixture(t, 21.0)
	f.cmds = commands.NewBookingCommands(
		f.ledger,
		&stubCatalog{err: infra.WrapRepoErr("catalog timeout", errs.New("deadline exceeded"), infra.KindUpstream)},
		weather.NewStore(memory.NewForecastRepository(), f.provider, pricing.NewDefaultEngine(), f.clk, time.Minute),
		pricing.NewDefaultEngine(),
		f.clk,
	)

	result, err := f.cmds.Confirm(context.Background(), validParams())
	assert.Nil(t, result)
	assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
}

func TestConfirm_ValidationErrors(t *testing.T) {
	f := newFixture(t, 21.0)

	tests := []struct {
		name   string
		mutate func(p *commands.ConfirmParams)
	}{
		{"empty room id", func(p *commands.ConfirmParams) { p.RoomID = "" }},
		{"bad date", func(p *commands.ConfirmParams) { p.Date = "01-09-2026" }},
		{"empty client name", func(p *commands.ConfirmParams) { p.ClientName = " " }},
		{"bad email", func(p *commands.ConfirmParams) { p.ClientEmail = "not-an-email" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			tt.mutate(&params)
			result, err := f.cmds.Confirm(context.Background(), params)
			assert.Nil(t, result)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestCancel_IdempotentAndFreesSlot(t *testing.T) {
	f := newFixture(t, 21.0)

	first, err := f.cmds.Confirm(context.Background(), validParams())
	require.NoError(t, err)

	require.NoError(t, f.cmds.Cancel(context.Background(), first.Booking.ID))
	require.NoError(t, f.cmds.Cancel(context.Background(), first.Booking.ID))

	second, err := f.cmds.Confirm(context.Background(), validParams())
	require.NoError(t, err)
	assert.NotNil(t, second.Booking)
}

func TestCancel_UnknownID(t *testing.T) {
	f := newFixture(t, 21.0)

	err := f.cmds.Cancel(context.Background(), uuid.New())
	assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
}

func TestConfirm_PriceSnapshotSurvivesForecastRefresh(t *testing.T) {
	f := newFixture(t, 31.0) // diff 10 → 30% surcharge

	first, err := f.cmds.Confirm(context.Background(), validParams())
	require.NoError(t, err)
	snapshot := first.Booking.Pricing

	// A later sample for a different key never disturbs the stored booking.
	f.provider.tempC = -5.0
	params := validParams()
	params.Date = "2026-09-02"
	_, err = f.cmds.Confirm(context.Background(), params)
	require.NoError(t, err)

	got, err := f.ledger.FindByID(context.Background(), first.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, snapshot, got.Price())
}

func TestConfirm_PriceSnapshotSurvivesBasePriceChange(t *testing.T) {
	f := newFixture(t, 26.0) // diff 5 → 20% surcharge

	first, err := f.cmds.Confirm(context.Background(), validParams())
	require.NoError(t, err)
	assert.InDelta(t, 1200.0, first.Booking.Pricing.FinalPrice, 0.001)

	// Repricing the room in the catalog must not touch the stored quote.
	snap := f.catalog.rooms["LON001"]
	snap.PricePerDay = 2000
	f.catalog.rooms["LON001"] = snap

	got, err := f.ledger.FindByID(context.Background(), first.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Booking.Pricing, got.Price())
	assert.InDelta(t, 1200.0, got.Price().FinalPrice, 0.001)

	// A fresh booking against the repriced room quotes from the new base.
	params := validParams()
	params.Date = "2026-09-02"
	second, err := f.cmds.Confirm(context.Background(), params)
	require.NoError(t, err)
	require.NotNil(t, second.Booking)
	assert.Equal(t, 2000.0, second.Booking.Pricing.BasePrice)
	assert.InDelta(t, 2400.0, second.Booking.Pricing.FinalPrice, 0.001)
}

func TestConfirm_ExtremeForecastUsesTopTier(t *testing.T) {
	f := newFixture(t, -5.0) // diff 26 → 50% surcharge

	result, err := f.cmds.Confirm(context.Background(), validParams())
	require.NoError(t, err)
	require.NotNil(t, result.Booking)
	assert.Equal(t, 50.0, result.Booking.Pricing.SurchargePct)
	assert.InDelta(t, 1500.0, result.Booking.Pricing.FinalPrice, 0.001)
}

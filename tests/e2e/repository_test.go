//go:build e2e

package e2e

import (
	"context"
	"sync"
	"testing"
	"time"

	"roombooking/internal/domain/booking"
	"roombooking/internal/domain/pricing"
	"roombooking/internal/infra"
	"roombooking/internal/infra/repository"
	"roombooking/internal/infra/seed"
	"roombooking/internal/usecase/queries"
	"roombooking/internal/usecase/weather"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	pool, _ := prepareDatabase(t, startContainers(t))
	return pool
}

func buildReservation(t *testing.T, roomID, date string) *booking.Reservation {
	t.Helper()

	d, err := booking.NewDate(date)
	require.NoError(t, err)
	client, err := booking.NewClientInfo("Ada Lovelace", "ada@example.com")
	require.NoError(t, err)
	quote, err := pricing.NewDefaultEngine().Quote(1000, 26)
	require.NoError(t, err)
	res, err := booking.NewReservation(roomID, "The Churchill Room", "London, Westminster",
		d, client, quote, time.Now().UTC().Truncate(time.Microsecond))
	require.NoError(t, err)
	return res
}

func TestReservationRepository_TryReserveIsAtomic(t *testing.T) {
	pool := setupPool(t)
	repo := repository.NewReservationRepository(pool)
	ctx := context.Background()

	const attempts = 16
	reservations := make([]*booking.Reservation, attempts)
	for i := range reservations {
		reservations[i] = buildReservation(t, "LON001", "2026-09-01")
	}

	errsOut := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errsOut[i] = repo.TryReserve(ctx, reservations[i])
		}(i)
	}
	wg.Wait()

	var won, conflicted int
	for _, err := range errsOut {
		if err == nil {
			won++
			continue
		}
		require.True(t, infra.IsKind(err, infra.KindConflict), "unexpected error: %v", err)
		conflicted++
	}
	require.Equal(t, 1, won)
	require.Equal(t, attempts-1, conflicted)
}

func TestReservationRepository_CancelFreesSlot(t *testing.T) {
	pool := setupPool(t)
	repo := repository.NewReservationRepository(pool)
	ctx := context.Background()

	res := buildReservation(t, "LON001", "2026-09-01")
	require.NoError(t, repo.TryReserve(ctx, res))

	cancelledAt := time.Now().UTC().Truncate(time.Microsecond)
	require.NoError(t, repo.Cancel(ctx, res.ID(), cancelledAt))
	// Idempotent repeat.
	require.NoError(t, repo.Cancel(ctx, res.ID(), cancelledAt.Add(time.Hour)))

	got, err := repo.FindByID(ctx, res.ID())
	require.NoError(t, err)
	require.Equal(t, booking.StatusCancelled, got.Status())

	// Cancelled reservations stay in history but release the slot.
	require.NoError(t, repo.TryReserve(ctx, buildReservation(t, "LON001", "2026-09-01")))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestForecastRepository_InsertIfAbsentFirstWriterWins(t *testing.T) {
	pool := setupPool(t)
	repo := repository.NewForecastRepository(pool)
	ctx := context.Background()

	engine := pricing.NewDefaultEngine()
	entryFor := func(tempC float64) weather.Entry {
		quote, err := engine.Quote(1000, tempC)
		require.NoError(t, err)
		e := weather.Entry{Pricing: quote}
		e.Location = "London"
		e.Date = "2026-09-01"
		e.TemperatureC = tempC
		e.GeneratedAt = time.Now().UTC().Truncate(time.Microsecond)
		return e
	}

	winner := entryFor(24.5)
	require.NoError(t, repo.InsertIfAbsent(ctx, winner))
	require.NoError(t, repo.InsertIfAbsent(ctx, entryFor(9.0)))

	got, err := repo.Find(ctx, "London", "2026-09-01")
	require.NoError(t, err)
	if diff := cmp.Diff(winner, *got); diff != "" {
		t.Fatalf("stored entry mismatch (-want +got):\n%s", diff)
	}
}

func TestRoomRepository_SeedAndFilter(t *testing.T) {
	pool := setupPool(t)
	repo := repository.NewRoomRepository(pool)
	ctx := context.Background()

	rooms := seed.Rooms()
	count, err := repo.Seed(ctx, rooms)
	require.NoError(t, err)
	require.Equal(t, len(rooms), count)

	// Reseeding replaces rather than duplicates.
	count, err = repo.Seed(ctx, rooms)
	require.NoError(t, err)
	require.Equal(t, len(rooms), count)

	all, err := repo.FindAll(ctx, queries.RoomFilter{})
	require.NoError(t, err)
	require.Len(t, all, len(rooms))

	london, err := repo.FindAll(ctx, queries.RoomFilter{Location: "london"})
	require.NoError(t, err)
	require.NotEmpty(t, london)
	for _, rm := range london {
		require.Contains(t, rm.Location(), "London")
	}

	large, err := repo.FindAll(ctx, queries.RoomFilter{MinCapacity: 100, MaxPrice: 150})
	require.NoError(t, err)
	for _, rm := range large {
		require.GreaterOrEqual(t, rm.Capacity(), 100)
		require.LessOrEqual(t, rm.PricePerHour(), 150.0)
	}

	got, err := repo.FindByID(ctx, "LON001")
	require.NoError(t, err)
	require.Equal(t, "The Churchill Room", got.Name())

	_, err = repo.FindByID(ctx, "NOPE")
	require.True(t, infra.IsKind(err, infra.KindNotFound))
}

package weather

import (
	"context"
	"time"

	"roombooking/internal/domain/forecast"
	"roombooking/internal/domain/pricing"
	"roombooking/internal/infra"
	"roombooking/internal/observability/metrics"
	"roombooking/internal/pkg/clock"
	"roombooking/internal/pkg/errs"

	gocache "github.com/patrickmn/go-cache"
)

// Entry is one memoized forecast together with the pricing derived at the
// time it was first computed. The pricing fields are informational and may be
// refreshed via RecomputePricing after a base-price change; the temperature
// is never resampled for an existing key.
type Entry struct {
	forecast.Forecast
	Pricing pricing.Quote
}

// Repository is the durable keyed store behind the memoizing layer.
// InsertIfAbsent must be atomic: when two writers race on the same key the
// first insert wins and the other is silently dropped.
type Repository interface {
	Find(ctx context.Context, location, date string) (*Entry, error)
	InsertIfAbsent(ctx context.Context, e Entry) error
	UpdatePricing(ctx context.Context, location, date string, q pricing.Quote) error
	ListByLocation(ctx context.Context, location string) ([]Entry, error)
	ListAll(ctx context.Context) ([]Entry, error)
}

// Store memoizes forecasts per (location, date): the provider is sampled at
// most once per key, and repeated lookups return the stored value unchanged
// so an in-flight booking never sees its price basis move under it.
type Store struct {
	repo     Repository
	provider forecast.Provider
	engine   *pricing.Engine
	clock    clock.Clock
	cache    *gocache.Cache
}

func NewStore(repo Repository, provider forecast.Provider, engine *pricing.Engine, clk clock.Clock, cacheTTL time.Duration) *Store {
	return &Store{
		repo:     repo,
		provider: provider,
		engine:   engine,
		clock:    clk,
		cache:    gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// GetOrCompute returns the memoized entry for (location, date), sampling the
// provider and persisting the result on first use. Concurrent misses resolve
// through the repository's atomic insert-if-absent: one sample wins and the
// losers adopt the stored value, so every caller sees the same temperature.
func (s *Store) GetOrCompute(ctx context.Context, location, date string, basePrice float64) (Entry, error) {
	if err := forecast.ValidateKey(location, date); err != nil {
		return Entry{}, errs.Mark(err, errs.ErrValidation)
	}

	key := cacheKey(location, date)
	if cached, found := s.cache.Get(key); found {
		metrics.ForecastCacheHit()
		return cached.(Entry), nil
	}
	metrics.ForecastCacheMiss()

	entry, err := s.repo.Find(ctx, location, date)
	if err == nil {
		s.cache.SetDefault(key, *entry)
		return *entry, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return Entry{}, errs.Mark(err, errs.ErrStorageFailure)
	}

	tempC, err := s.provider.Sample(ctx, location, date)
	if err != nil {
		return Entry{}, errs.Mark(err, errs.ErrUpstreamUnavailable)
	}

	quote, err := s.engine.Quote(basePrice, tempC)
	if err != nil {
		return Entry{}, errs.Mark(err, errs.ErrValidation)
	}

	candidate := Entry{
		Forecast: forecast.Forecast{
			Location:     location,
			Date:         date,
			TemperatureC: tempC,
			GeneratedAt:  s.clock.Now(),
		},
		Pricing: quote,
	}
	if err := s.repo.InsertIfAbsent(ctx, candidate); err != nil {
		return Entry{}, errs.Mark(err, errs.ErrStorageFailure)
	}

	// Read back whatever actually won the insert race.
	stored, err := s.repo.Find(ctx, location, date)
	if err != nil {
		return Entry{}, errs.Mark(err, errs.ErrStorageFailure)
	}

	s.cache.SetDefault(key, *stored)
	return *stored, nil
}

// RecomputePricing refreshes the stored pricing fields of an existing entry
// against a new base price. The memoized temperature is left untouched.
func (s *Store) RecomputePricing(ctx context.Context, location, date string, basePrice float64) (Entry, error) {
	if err := forecast.ValidateKey(location, date); err != nil {
		return Entry{}, errs.Mark(err, errs.ErrValidation)
	}

	entry, err := s.repo.Find(ctx, location, date)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return Entry{}, errs.Mark(err, errs.ErrForecastNotFound)
		}
		return Entry{}, errs.Mark(err, errs.ErrStorageFailure)
	}

	quote, err := s.engine.Quote(basePrice, entry.TemperatureC)
	if err != nil {
		return Entry{}, errs.Mark(err, errs.ErrValidation)
	}

	if err := s.repo.UpdatePricing(ctx, location, date, quote); err != nil {
		return Entry{}, errs.Mark(err, errs.ErrStorageFailure)
	}

	updated := *entry
	updated.Pricing = quote
	s.cache.SetDefault(cacheKey(location, date), updated)
	return updated, nil
}

func (s *Store) ListByLocation(ctx context.Context, location string) ([]Entry, error) {
	if location == "" {
		return nil, errs.Mark(forecast.ErrEmptyLocation, errs.ErrValidation)
	}
	entries, err := s.repo.ListByLocation(ctx, location)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return entries, nil
}

func (s *Store) ListAll(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return entries, nil
}

func cacheKey(location, date string) string {
	return location + "|" + date
}

package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"roombooking/internal/domain/pricing"
	"roombooking/internal/infra"
	"roombooking/internal/pkg/errs"
	"roombooking/internal/usecase/weather"
)

// ForecastRepository is the in-process forecast store. InsertIfAbsent is
// atomic under the mutex, so concurrent first-use samples on the same
// (location, date) key collapse to a single stored value.
type ForecastRepository struct {
	mu      sync.Mutex
	entries map[string]weather.Entry
}

func NewForecastRepository() *ForecastRepository {
	return &ForecastRepository{entries: make(map[string]weather.Entry)}
}

func (r *ForecastRepository) Find(_ context.Context, location, date string) (*weather.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[slotKey(location, date)]
	if !ok {
		return nil, infra.WrapRepoErr("forecast not found", errs.New("no entry for key"), infra.KindNotFound)
	}
	return &e, nil
}

func (r *ForecastRepository) InsertIfAbsent(_ context.Context, e weather.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey(e.Location, e.Date)
	if _, exists := r.entries[key]; exists {
		return nil
	}
	r.entries[key] = e
	return nil
}

func (r *ForecastRepository) UpdatePricing(_ context.Context, location, date string, q pricing.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey(location, date)
	e, ok := r.entries[key]
	if !ok {
		return infra.WrapRepoErr("forecast not found", errs.New("no entry for key"), infra.KindNotFound)
	}
	e.Pricing = q
	r.entries[key] = e
	return nil
}

func (r *ForecastRepository) ListByLocation(_ context.Context, location string) ([]weather.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []weather.Entry
	for _, e := range r.entries {
		if strings.EqualFold(e.Location, location) {
			out = append(out, e)
		}
	}
	sortEntries(out)
	return out, nil
}

func (r *ForecastRepository) ListAll(_ context.Context) ([]weather.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]weather.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sortEntries(out)
	return out, nil
}

func sortEntries(items []weather.Entry) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Location == items[j].Location {
			return items[i].Date < items[j].Date
		}
		return items[i].Location < items[j].Location
	})
}

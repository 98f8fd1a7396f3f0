package weatherprov

import (
	"context"
	"math"
	"math/rand"
	"sync"

	"roombooking/internal/domain/forecast"
	"roombooking/internal/pkg/config"
	"roombooking/internal/pkg/errs"
)

// SimulatedProvider draws a pseudo-random temperature from a configured range,
// standing in for a real forecast source behind the same contract. One decimal
// place, matching what a typical forecast API reports.
type SimulatedProvider struct {
	minC float64
	maxC float64

	mu  sync.Mutex
	rng *rand.Rand
}

var _ forecast.Provider = (*SimulatedProvider)(nil)

func NewSimulatedProvider(cfg config.ForecastConfig, seed int64) (*SimulatedProvider, error) {
	if cfg.MaxTempC <= cfg.MinTempC {
		return nil, errs.New("forecast temperature range is empty")
	}
	return &SimulatedProvider{
		minC: cfg.MinTempC,
		maxC: cfg.MaxTempC,
		rng:  rand.New(rand.NewSource(seed)),
	}, nil
}

func (p *SimulatedProvider) Sample(ctx context.Context, location, date string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := forecast.ValidateKey(location, date); err != nil {
		return 0, err
	}

	p.mu.Lock()
	v := p.minC + p.rng.Float64()*(p.maxC-p.minC)
	p.mu.Unlock()

	return math.Round(v*10) / 10, nil
}

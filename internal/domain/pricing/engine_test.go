//go:build unit

package pricing_test

import (
	"testing"

	"roombooking/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteTiers(t *testing.T) {
	engine := pricing.NewDefaultEngine()

	cases := []struct {
		name            string
		basePrice       float64
		temperatureC    float64
		wantPct         float64
		wantSurcharge   float64
		wantFinal       float64
		wantTempDiff    float64
	}{
		{name: "ideal temperature no surcharge", basePrice: 100, temperatureC: 21, wantPct: 0, wantSurcharge: 0, wantFinal: 100.00, wantTempDiff: 0},
		{name: "just under first threshold", basePrice: 100, temperatureC: 22.9, wantPct: 0, wantSurcharge: 0, wantFinal: 100.00, wantTempDiff: 1.9},
		{name: "diff 2 boundary enters 10 percent", basePrice: 100, temperatureC: 23, wantPct: 10, wantSurcharge: 10.00, wantFinal: 110.00, wantTempDiff: 2},
		{name: "diff 5 below ideal", basePrice: 100, temperatureC: 16, wantPct: 20, wantSurcharge: 20.00, wantFinal: 120.00, wantTempDiff: 5},
		{name: "diff 5 boundary enters 20 percent", basePrice: 100, temperatureC: 26, wantPct: 20, wantSurcharge: 20.00, wantFinal: 120.00, wantTempDiff: 5},
		{name: "diff 10 boundary enters 30 percent", basePrice: 100, temperatureC: 31, wantPct: 30, wantSurcharge: 30.00, wantFinal: 130.00, wantTempDiff: 10},
		{name: "diff 20 boundary enters 50 percent", basePrice: 100, temperatureC: 41, wantPct: 50, wantSurcharge: 50.00, wantFinal: 150.00, wantTempDiff: 20},
		{name: "extreme heat", basePrice: 100, temperatureC: 50, wantPct: 50, wantSurcharge: 50.00, wantFinal: 150.00, wantTempDiff: 29},
		{name: "extreme cold", basePrice: 100, temperatureC: -5, wantPct: 50, wantSurcharge: 50.00, wantFinal: 150.00, wantTempDiff: 26},
		{name: "zero base price", basePrice: 0, temperatureC: 35, wantPct: 30, wantSurcharge: 0, wantFinal: 0, wantTempDiff: 14},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := engine.Quote(tc.basePrice, tc.temperatureC)
			require.NoError(t, err)

			assert.Equal(t, tc.basePrice, quote.BasePrice)
			assert.Equal(t, tc.temperatureC, quote.TemperatureC)
			assert.InDelta(t, tc.wantTempDiff, quote.TemperatureDiff, 1e-9)
			assert.Equal(t, tc.wantPct, quote.SurchargePct)
			assert.InDelta(t, tc.wantSurcharge, quote.SurchargeAmount, 1e-9)
			assert.InDelta(t, tc.wantFinal, quote.FinalPrice, 1e-9)
		})
	}
}

func TestQuoteDeterminism(t *testing.T) {
	engine := pricing.NewDefaultEngine()

	first, err := engine.Quote(850, 13.7)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := engine.Quote(850, 13.7)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestQuoteRounding(t *testing.T) {
	engine := pricing.NewDefaultEngine()

	// 33.33 * 10% = 3.333, truncated by the once-only rounding to 3.33
	quote, err := engine.Quote(33.33, 24)
	require.NoError(t, err)
	assert.InDelta(t, 3.33, quote.SurchargeAmount, 1e-9)
	assert.InDelta(t, 36.66, quote.FinalPrice, 1e-9)

	// 66.67 * 20% = 13.334 → 13.33
	quote, err = engine.Quote(66.67, 27)
	require.NoError(t, err)
	assert.InDelta(t, 13.33, quote.SurchargeAmount, 1e-9)
	assert.InDelta(t, 80.00, quote.FinalPrice, 1e-9)

	// invariant final == base + surcharge after rounding
	assert.InDelta(t, quote.BasePrice+quote.SurchargeAmount, quote.FinalPrice, 1e-9)
}

func TestQuoteNegativeBasePrice(t *testing.T) {
	engine := pricing.NewDefaultEngine()

	_, err := engine.Quote(-1, 21)
	assert.ErrorIs(t, err, pricing.ErrNegativeBasePrice)
}

func TestNewEngineValidation(t *testing.T) {
	cases := []struct {
		name     string
		maxDiffs []float64
		pcts     []float64
		wantErr  error
	}{
		{name: "valid table", maxDiffs: []float64{2, 5}, pcts: []float64{0, 10, 20}},
		{name: "pct count mismatch", maxDiffs: []float64{2, 5}, pcts: []float64{0, 10}, wantErr: pricing.ErrInvalidTierTable},
		{name: "empty thresholds", maxDiffs: nil, pcts: []float64{0}, wantErr: pricing.ErrInvalidTierTable},
		{name: "non-increasing thresholds", maxDiffs: []float64{5, 2}, pcts: []float64{0, 10, 20}, wantErr: pricing.ErrInvalidTierTable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pricing.NewEngine(21, tc.maxDiffs, tc.pcts)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

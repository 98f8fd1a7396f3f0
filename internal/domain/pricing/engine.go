package pricing

import (
	"errors"
	"math"
)

var (
	ErrNegativeBasePrice = errors.New("base price cannot be negative")
	ErrInvalidTierTable  = errors.New("invalid surcharge tier table")
)

// DefaultIdealTempC is the reference temperature the surcharge is measured
// against when no override is configured.
const DefaultIdealTempC = 21.0

// Quote is a fully computed, immutable pricing result for one
// (base price, temperature) pair. FinalPrice == BasePrice + SurchargeAmount
// holds by construction.
type Quote struct {
	BasePrice       float64 `json:"base_price"`
	TemperatureC    float64 `json:"forecasted_temperature"`
	TemperatureDiff float64 `json:"temperature_difference"`
	SurchargePct    float64 `json:"additional_charge_percentage"`
	SurchargeAmount float64 `json:"additional_charge_amount"`
	FinalPrice      float64 `json:"final_price"`
}

// Tier marks one surcharge band: differences strictly below MaxDiff take Pct.
type Tier struct {
	MaxDiff float64
	Pct     float64
}

// Engine maps (base price, forecast temperature) to a Quote. It is a pure
// function of its inputs plus the fixed configuration it was built with.
type Engine struct {
	idealTempC  float64
	tiers       []Tier
	fallbackPct float64
}

// NewEngine builds an engine from parallel threshold/percentage slices as they
// appear in configuration. pcts must have exactly one more entry than
// maxDiffs; the extra entry applies to differences beyond the last threshold.
func NewEngine(idealTempC float64, maxDiffs, pcts []float64) (*Engine, error) {
	if len(pcts) != len(maxDiffs)+1 || len(maxDiffs) == 0 {
		return nil, ErrInvalidTierTable
	}
	prev := math.Inf(-1)
	for _, d := range maxDiffs {
		if d <= prev {
			return nil, ErrInvalidTierTable
		}
		prev = d
	}

	tiers := make([]Tier, len(maxDiffs))
	for i, d := range maxDiffs {
		tiers[i] = Tier{MaxDiff: d, Pct: pcts[i]}
	}
	return &Engine{
		idealTempC:  idealTempC,
		tiers:       tiers,
		fallbackPct: pcts[len(pcts)-1],
	}, nil
}

// NewDefaultEngine returns an engine with the standard tier table:
// diff <2 → 0%, <5 → 10%, <10 → 20%, <20 → 30%, otherwise 50%.
func NewDefaultEngine() *Engine {
	e, err := NewEngine(
		DefaultIdealTempC,
		[]float64{2, 5, 10, 20},
		[]float64{0, 10, 20, 30, 50},
	)
	if err != nil {
		panic(err) // static table, cannot fail
	}
	return e
}

func (e *Engine) IdealTempC() float64 {
	return e.idealTempC
}

// SurchargePct returns the percentage for a temperature, first matching tier
// wins.
func (e *Engine) SurchargePct(temperatureC float64) float64 {
	diff := math.Abs(temperatureC - e.idealTempC)
	for _, t := range e.tiers {
		if diff < t.MaxDiff {
			return t.Pct
		}
	}
	return e.fallbackPct
}

// Quote computes the price adjustment for a base price under a forecast
// temperature. Monetary outputs are rounded half-up to two decimals exactly
// once, here; callers must not re-round.
func (e *Engine) Quote(basePrice, temperatureC float64) (Quote, error) {
	if basePrice < 0 {
		return Quote{}, ErrNegativeBasePrice
	}

	diff := math.Abs(temperatureC - e.idealTempC)
	pct := e.SurchargePct(temperatureC)
	surcharge := round2(basePrice * pct / 100)

	return Quote{
		BasePrice:       basePrice,
		TemperatureC:    temperatureC,
		TemperatureDiff: round2(diff),
		SurchargePct:    pct,
		SurchargeAmount: surcharge,
		FinalPrice:      round2(basePrice + surcharge),
	}, nil
}

// round2 rounds half-up to two decimal places. Inputs are non-negative.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

package forecast

import (
	"context"
	"errors"
	"time"
)

var (
	ErrEmptyLocation = errors.New("location cannot be empty")
	ErrEmptyDate     = errors.New("date cannot be empty")
)

// Forecast is one memoized temperature reading for a (location, date) key.
// Once stored, the temperature is stable for the lifetime of the entry; it is
// never resampled on read.
type Forecast struct {
	Location     string    `json:"location"`
	Date         string    `json:"date"`
	TemperatureC float64   `json:"temperature_c"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// Provider produces a temperature for a (location, date). Calls may be slow
// and two calls for the same key may return different values, so callers must
// go through the memoizing store rather than sampling directly.
type Provider interface {
	Sample(ctx context.Context, location, date string) (float64, error)
}

func ValidateKey(location, date string) error {
	if location == "" {
		return ErrEmptyLocation
	}
	if date == "" {
		return ErrEmptyDate
	}
	return nil
}

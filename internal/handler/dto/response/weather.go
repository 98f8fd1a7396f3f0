package response

import (
	"time"

	"roombooking/internal/domain/pricing"
	"roombooking/internal/usecase/weather"
)

type ForecastResponse struct {
	Location     string        `json:"location"`
	Date         string        `json:"date"`
	TemperatureC float64       `json:"temperature_c"`
	GeneratedAt  time.Time     `json:"generated_at"`
	Pricing      pricing.Quote `json:"pricing"`
}

func FromForecastEntry(e weather.Entry) *ForecastResponse {
	return &ForecastResponse{
		Location:     e.Location,
		Date:         e.Date,
		TemperatureC: e.TemperatureC,
		GeneratedAt:  e.GeneratedAt,
		Pricing:      e.Pricing,
	}
}

func FromForecastEntries(entries []weather.Entry) []*ForecastResponse {
	out := make([]*ForecastResponse, len(entries))
	for i, e := range entries {
		out[i] = FromForecastEntry(e)
	}
	return out
}

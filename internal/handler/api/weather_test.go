//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"roombooking/internal/domain/pricing"
	"roombooking/internal/handler/api"
	resdto "roombooking/internal/handler/dto/response"
	"roombooking/internal/infra/memory"
	"roombooking/internal/pkg/clock"
	"roombooking/internal/usecase/weather"
	"roombooking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type steadyProvider struct {
	tempC float64
}

func (p steadyProvider) Sample(_ context.Context, _, _ string) (float64, error) {
	return p.tempC, nil
}

type WeatherHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	handler *api.WeatherHandler
}

func (s *WeatherHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	store := weather.NewStore(
		memory.NewForecastRepository(),
		steadyProvider{tempC: 26.0}, // diff 5 → 20% surcharge
		pricing.NewDefaultEngine(),
		clock.NewMockClock(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)),
		time.Minute,
	)
	s.handler = api.NewWeatherHandler(store)

	s.router.POST("/weather/forecast", s.handler.Forecast)
}

func TestWeatherHandlerSuite(t *testing.T) {
	suite.Run(t, new(WeatherHandlerTestSuite))
}

func forecastRequestBody(basePrice float64) map[string]any {
	return map[string]any{
		"location":   "Leeds, City Centre",
		"date":       "2026-10-01",
		"base_price": basePrice,
	}
}

func (s *WeatherHandlerTestSuite) TestForecast_OK() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/weather/forecast", forecastRequestBody(640.0))

	var resp resdto.ForecastResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal(26.0, resp.TemperatureC)
	s.Equal(640.0, resp.Pricing.BasePrice)
	s.InDelta(768.0, resp.Pricing.FinalPrice, 0.001)
}

func (s *WeatherHandlerTestSuite) TestForecast_ZeroBasePriceAccepted() {
	// A free slot still has a forecast; zero is a legitimate base price.
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/weather/forecast", forecastRequestBody(0))

	var resp resdto.ForecastResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal(26.0, resp.TemperatureC)
	s.Equal(0.0, resp.Pricing.BasePrice)
	s.Equal(0.0, resp.Pricing.FinalPrice)
}

func (s *WeatherHandlerTestSuite) TestForecast_BadRequest() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"negative base price", forecastRequestBody(-1.0)},
		{"missing base price", map[string]any{"location": "Leeds, City Centre", "date": "2026-10-01"}},
		{"missing location", map[string]any{"date": "2026-10-01", "base_price": 640.0}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/weather/forecast", tt.body)
			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
		})
	}
}

func (s *WeatherHandlerTestSuite) TestForecast_RepriceKeepsTemperature() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/weather/forecast", forecastRequestBody(640.0))
	var first resdto.ForecastResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &first)

	w = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/weather/forecast", forecastRequestBody(1280.0))
	var second resdto.ForecastResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)

	s.Equal(first.TemperatureC, second.TemperatureC)
	s.Equal(1280.0, second.Pricing.BasePrice)
	s.Equal(first.Pricing.SurchargePct, second.Pricing.SurchargePct)
}

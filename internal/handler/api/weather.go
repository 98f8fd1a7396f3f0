package api

import (
	"net/http"

	reqdto "roombooking/internal/handler/dto/request"
	resdto "roombooking/internal/handler/dto/response"
	"roombooking/internal/handler/httperr"
	"roombooking/internal/usecase/weather"

	"github.com/gin-gonic/gin"
)

type WeatherHandler struct {
	store *weather.Store
}

func NewWeatherHandler(store *weather.Store) *WeatherHandler {
	return &WeatherHandler{store: store}
}

// Forecast returns the memoized forecast for (location, date), sampling it
// on first use. Repeat calls for the same key always return the same
// temperature.
func (h *WeatherHandler) Forecast(c *gin.Context) {
	var req reqdto.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	basePrice := *req.BasePrice
	entry, err := h.store.GetOrCompute(c.Request.Context(), req.Location, req.Date, basePrice)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	// A repeat request with a different base price refreshes the derived
	// pricing in place; the memoized temperature stays.
	if entry.Pricing.BasePrice != basePrice {
		entry, err = h.store.RecomputePricing(c.Request.Context(), req.Location, req.Date, basePrice)
		if err != nil {
			abortWithDomainError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, resdto.FromForecastEntry(entry))
}

func (h *WeatherHandler) ListByLocation(c *gin.Context) {
	entries, err := h.store.ListByLocation(c.Request.Context(), c.Param("location"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"location":  c.Param("location"),
		"count":     len(entries),
		"forecasts": resdto.FromForecastEntries(entries),
	})
}

func (h *WeatherHandler) ListAll(c *gin.Context) {
	entries, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     len(entries),
		"forecasts": resdto.FromForecastEntries(entries),
	})
}

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"roombooking/internal/infra"
	"roombooking/internal/pkg/config"
	"roombooking/internal/pkg/errs"
	"roombooking/internal/usecase/shared"

	"github.com/sony/gobreaker"
)

// HTTPCatalog looks rooms up in a remote room service. Failures trip the
// circuit breaker so a dead upstream fails bookings fast instead of holding
// every request until the timeout.
type HTTPCatalog struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewHTTPCatalog(cfg config.CatalogConfig) *HTTPCatalog {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "room-catalog",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     30 * time.Second,
		// An unknown room is an answer, not an upstream failure.
		IsSuccessful: func(err error) bool {
			return err == nil || infra.IsKind(err, infra.KindNotFound)
		},
	})

	return &HTTPCatalog{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		circuit: cb,
	}
}

type roomPayload struct {
	RoomID       string   `json:"room_id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Capacity     int      `json:"capacity"`
	PricePerHour float64  `json:"price_per_hour"`
	PricePerDay  float64  `json:"price_per_day"`
	Amenities    []string `json:"amenities"`
	Description  string   `json:"description"`
}

func (c *HTTPCatalog) Lookup(ctx context.Context, roomID string) (*shared.RoomSnapshot, error) {
	result, err := c.circuit.Execute(func() (any, error) {
		return c.fetch(ctx, roomID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("room catalog unavailable", err, infra.KindUpstream)
	}
	return result.(*shared.RoomSnapshot), nil
}

func (c *HTTPCatalog) fetch(ctx context.Context, roomID string) (*shared.RoomSnapshot, error) {
	u := fmt.Sprintf("%s/api/rooms/%s", c.baseURL, url.PathEscape(roomID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build catalog request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "catalog request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, infra.WrapRepoErr("room not found", errs.New("unknown room id"), infra.KindNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, errs.New(fmt.Sprintf("catalog returned status %d", resp.StatusCode))
	}

	var payload roomPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errs.Wrap(err, "failed to decode catalog response")
	}

	return &shared.RoomSnapshot{
		ID:           payload.RoomID,
		Name:         payload.Name,
		Location:     payload.Location,
		Capacity:     payload.Capacity,
		PricePerHour: payload.PricePerHour,
		PricePerDay:  payload.PricePerDay,
		Amenities:    payload.Amenities,
		Description:  payload.Description,
	}, nil
}

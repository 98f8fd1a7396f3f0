package shared

import "context"

// RoomSnapshot is the slice of catalog metadata the booking workflow needs.
// Snapshots keep the workflow independent from where the catalog lives
// (local table or remote room service).
type RoomSnapshot struct {
	ID           string
	Name         string
	Location     string
	Capacity     int
	PricePerHour float64
	PricePerDay  float64
	Amenities    []string
	Description  string
}

// RoomCatalog is the narrow read-only contract onto the room catalog. Lookup
// failures are reported as infra.RepositoryError kinds: NOT_FOUND for an
// unknown room, UPSTREAM_UNAVAILABLE for timeouts and transport errors.
type RoomCatalog interface {
	Lookup(ctx context.Context, roomID string) (*RoomSnapshot, error)
}

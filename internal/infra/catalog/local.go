package catalog

import (
	"context"

	"roombooking/internal/usecase/queries"
	"roombooking/internal/usecase/shared"
)

// LocalCatalog serves room lookups from our own rooms store.
type LocalCatalog struct {
	reader queries.RoomReader
}

func NewLocalCatalog(reader queries.RoomReader) *LocalCatalog {
	return &LocalCatalog{reader: reader}
}

func (c *LocalCatalog) Lookup(ctx context.Context, roomID string) (*shared.RoomSnapshot, error) {
	rm, err := c.reader.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return &shared.RoomSnapshot{
		ID:           rm.ID(),
		Name:         rm.Name(),
		Location:     rm.Location(),
		Capacity:     rm.Capacity(),
		PricePerHour: rm.PricePerHour(),
		PricePerDay:  rm.PricePerDay(),
		Amenities:    rm.Amenities(),
		Description:  rm.Description(),
	}, nil
}

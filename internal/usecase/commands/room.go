package commands

import (
	"context"

	"roombooking/internal/domain/room"
	"roombooking/internal/pkg/errs"
)

// RoomWriter is the write-side contract onto the room catalog.
type RoomWriter interface {
	// Seed replaces the catalog with the given rooms and reports how many
	// were stored.
	Seed(ctx context.Context, rooms []*room.Room) (int, error)
}

type RoomCommands interface {
	Seed(ctx context.Context, rooms []*room.Room) (int, error)
}

type roomCommandsImpl struct {
	writer RoomWriter
}

func NewRoomCommands(writer RoomWriter) RoomCommands {
	return &roomCommandsImpl{writer: writer}
}

func (c *roomCommandsImpl) Seed(ctx context.Context, rooms []*room.Room) (int, error) {
	n, err := c.writer.Seed(ctx, rooms)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrStorageFailure)
	}
	return n, nil
}

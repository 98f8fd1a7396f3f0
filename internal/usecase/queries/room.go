package queries

import (
	"context"

	"roombooking/internal/domain/room"
	"roombooking/internal/infra"
	"roombooking/internal/pkg/errs"
)

type RoomView struct {
	ID           string   `json:"room_id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Capacity     int      `json:"capacity"`
	PricePerHour float64  `json:"price_per_hour"`
	PricePerDay  float64  `json:"price_per_day"`
	Amenities    []string `json:"amenities"`
	Description  string   `json:"description"`
}

// RoomFilter narrows a catalog listing; zero values mean "no bound".
type RoomFilter struct {
	MinCapacity int
	MaxCapacity int
	Location    string
	MinPrice    float64
	MaxPrice    float64
}

type RoomReader interface {
	FindByID(ctx context.Context, id string) (*room.Room, error)
	FindAll(ctx context.Context, filter RoomFilter) ([]*room.Room, error)
}

type RoomQueries interface {
	Get(ctx context.Context, id string) (*RoomView, error)
	List(ctx context.Context, filter RoomFilter) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	reader RoomReader
}

func NewRoomQueries(reader RoomReader) RoomQueries {
	return &roomQueriesImpl{reader: reader}
}

func (q *roomQueriesImpl) Get(ctx context.Context, id string) (*RoomView, error) {
	r, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return ToRoomView(r), nil
}

func (q *roomQueriesImpl) List(ctx context.Context, filter RoomFilter) ([]*RoomView, error) {
	rooms, err := q.reader.FindAll(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	views := make([]*RoomView, len(rooms))
	for i, r := range rooms {
		views[i] = ToRoomView(r)
	}
	return views, nil
}

func ToRoomView(r *room.Room) *RoomView {
	return &RoomView{
		ID:           r.ID(),
		Name:         r.Name(),
		Location:     r.Location(),
		Capacity:     r.Capacity(),
		PricePerHour: r.PricePerHour(),
		PricePerDay:  r.PricePerDay(),
		Amenities:    r.Amenities(),
		Description:  r.Description(),
	}
}

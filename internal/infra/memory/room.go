package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"roombooking/internal/domain/room"
	"roombooking/internal/infra"
	"roombooking/internal/pkg/errs"
	"roombooking/internal/usecase/queries"
)

// RoomRepository is the in-process room catalog.
type RoomRepository struct {
	mu    sync.RWMutex
	rooms map[string]*room.Room
}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{rooms: make(map[string]*room.Room)}
}

func (r *RoomRepository) FindByID(_ context.Context, id string) (*room.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rm, ok := r.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", errs.New("unknown room id"), infra.KindNotFound)
	}
	return rm, nil
}

func (r *RoomRepository) FindAll(_ context.Context, filter queries.RoomFilter) ([]*room.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*room.Room
	for _, rm := range r.rooms {
		if matchesFilter(rm, filter) {
			out = append(out, rm)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

// Seed replaces the catalog contents. Returns the number of rooms stored.
func (r *RoomRepository) Seed(_ context.Context, rooms []*room.Room) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rooms = make(map[string]*room.Room, len(rooms))
	for _, rm := range rooms {
		r.rooms[rm.ID()] = rm
	}
	return len(r.rooms), nil
}

func matchesFilter(rm *room.Room, f queries.RoomFilter) bool {
	if f.MinCapacity > 0 && rm.Capacity() < f.MinCapacity {
		return false
	}
	if f.MaxCapacity > 0 && rm.Capacity() > f.MaxCapacity {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(rm.Location()), strings.ToLower(f.Location)) {
		return false
	}
	if f.MinPrice > 0 && rm.PricePerHour() < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && rm.PricePerHour() > f.MaxPrice {
		return false
	}
	return true
}

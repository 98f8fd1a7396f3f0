package room

import (
	"errors"
	"strings"
)

var (
	ErrEmptyRoomID     = errors.New("room id cannot be empty")
	ErrEmptyLocation   = errors.New("room location cannot be empty")
	ErrNegativePrice   = errors.New("room price cannot be negative")
	ErrInvalidCapacity = errors.New("room capacity must be positive")
)

// Room is catalog metadata for a bookable conference room. The booking core
// only ever reads it; ownership stays with the catalog.
type Room struct {
	id           string
	name         string
	location     string
	capacity     int
	pricePerHour float64
	pricePerDay  float64
	amenities    []string
	description  string
}

func NewRoom(id, name, location string, capacity int, pricePerHour, pricePerDay float64, amenities []string, description string) (*Room, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyRoomID
	}
	if strings.TrimSpace(location) == "" {
		return nil, ErrEmptyLocation
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if pricePerHour < 0 || pricePerDay < 0 {
		return nil, ErrNegativePrice
	}

	return &Room{
		id:           id,
		name:         strings.TrimSpace(name),
		location:     strings.TrimSpace(location),
		capacity:     capacity,
		pricePerHour: pricePerHour,
		pricePerDay:  pricePerDay,
		amenities:    amenities,
		description:  description,
	}, nil
}

func (r *Room) ID() string            { return r.id }
func (r *Room) Name() string          { return r.name }
func (r *Room) Location() string      { return r.location }
func (r *Room) Capacity() int         { return r.capacity }
func (r *Room) PricePerHour() float64 { return r.pricePerHour }
func (r *Room) PricePerDay() float64  { return r.pricePerDay }
func (r *Room) Amenities() []string   { return r.amenities }
func (r *Room) Description() string   { return r.description }

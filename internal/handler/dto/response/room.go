package response

import (
	"roombooking/internal/usecase/queries"
)

type RoomResponse struct {
	RoomID       string   `json:"room_id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Capacity     int      `json:"capacity"`
	PricePerHour float64  `json:"price_per_hour"`
	PricePerDay  float64  `json:"price_per_day"`
	Amenities    []string `json:"amenities"`
	Description  string   `json:"description"`
}

type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		RoomID:       v.ID,
		Name:         v.Name,
		Location:     v.Location,
		Capacity:     v.Capacity,
		PricePerHour: v.PricePerHour,
		PricePerDay:  v.PricePerDay,
		Amenities:    v.Amenities,
		Description:  v.Description,
	}
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	out := make([]*RoomResponse, len(views))
	for i, v := range views {
		out[i] = FromRoomView(v)
	}
	return out
}

package response

import (
	"time"

	"roombooking/internal/domain/pricing"
	"roombooking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID          uuid.UUID     `json:"booking_id"`
	RoomID      string        `json:"room_id"`
	RoomName    string        `json:"room_name"`
	Location    string        `json:"location"`
	Date        string        `json:"date"`
	ClientName  string        `json:"client_name"`
	ClientEmail string        `json:"client_email"`
	Pricing     pricing.Quote `json:"pricing"`
	Status      string        `json:"status"`
	BookedAt    time.Time     `json:"booked_at"`
	CancelledAt *time.Time    `json:"cancelled_at,omitempty"`
}

type ExistingBookingResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	BookedBy  string    `json:"booked_by"`
	Date      string    `json:"date"`
}

type AvailabilityResponse struct {
	Available bool                     `json:"available"`
	RoomID    string                   `json:"room_id"`
	RoomName  string                   `json:"room_name"`
	Location  string                   `json:"location"`
	Date      string                   `json:"date"`
	Pricing   *pricing.Quote           `json:"pricing,omitempty"`
	Existing  *ExistingBookingResponse `json:"existing_booking,omitempty"`
}

type ConflictResponse struct {
	Message  string                  `json:"message"`
	Existing ExistingBookingResponse `json:"existing_booking"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:          v.ID,
		RoomID:      v.RoomID,
		RoomName:    v.RoomName,
		Location:    v.Location,
		Date:        v.Date,
		ClientName:  v.ClientName,
		ClientEmail: v.ClientEmail,
		Pricing:     v.Pricing,
		Status:      v.Status,
		BookedAt:    v.BookedAt,
		CancelledAt: v.CancelledAt,
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i, v := range views {
		out[i] = FromBookingView(v)
	}
	return out
}

func FromExistingBookingView(v *queries.ExistingBookingView) *ExistingBookingResponse {
	return &ExistingBookingResponse{
		BookingID: v.BookingID,
		BookedBy:  v.BookedBy,
		Date:      v.Date,
	}
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		Available: v.Available,
		RoomID:    v.Room.ID,
		RoomName:  v.Room.Name,
		Location:  v.Room.Location,
		Date:      v.Date,
		Pricing:   v.Pricing,
	}
	if v.Existing != nil {
		resp.Existing = FromExistingBookingView(v.Existing)
	}
	return resp
}

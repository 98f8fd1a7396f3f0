package request

import (
	"roombooking/internal/usecase/commands"
)

type CheckAvailabilityRequest struct {
	RoomID string `json:"room_id" binding:"required"`
	Date   string `json:"date" binding:"required"`
}

type ConfirmBookingRequest struct {
	RoomID      string `json:"room_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required"`
}

func (r ConfirmBookingRequest) ToParams() commands.ConfirmParams {
	return commands.ConfirmParams{
		RoomID:      r.RoomID,
		Date:        r.Date,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
	}
}

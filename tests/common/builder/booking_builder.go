//go:build unit || e2e

package builder

import (
	"time"

	"roombooking/internal/domain/pricing"
	reqdto "roombooking/internal/handler/dto/request"
	"roombooking/internal/usecase/commands"
	"roombooking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	RoomID      string
	RoomName    string
	Location    string
	Date        string
	ClientName  string
	ClientEmail string
	Pricing     pricing.Quote
	Status      string
	BookedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          uuid.New(),
		RoomID:      "LON001",
		RoomName:    "The Churchill Room",
		Location:    "London, Westminster",
		Date:        "2026-09-01",
		ClientName:  "Ada Lovelace",
		ClientEmail: "ada@example.com",
		Pricing: pricing.Quote{
			BasePrice:       1000,
			TemperatureC:    26,
			TemperatureDiff: 5,
			SurchargePct:    20,
			SurchargeAmount: 200,
			FinalPrice:      1200,
		},
		Status:   "confirmed",
		BookedAt: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID,
		RoomID:      b.RoomID,
		RoomName:    b.RoomName,
		Location:    b.Location,
		Date:        b.Date,
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		Pricing:     b.Pricing,
		Status:      b.Status,
		BookedAt:    b.BookedAt,
	}
}

func (b *BookingBuilder) BuildConfirmRequestDTO() reqdto.ConfirmBookingRequest {
	return reqdto.ConfirmBookingRequest{
		RoomID:      b.RoomID,
		Date:        b.Date,
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
	}
}

func (b *BookingBuilder) BuildConfirmParams() commands.ConfirmParams {
	return commands.ConfirmParams{
		RoomID:      b.RoomID,
		Date:        b.Date,
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
	}
}

func (b *BookingBuilder) BuildExistingView() *queries.ExistingBookingView {
	return &queries.ExistingBookingView{
		BookingID: b.ID,
		BookedBy:  b.ClientName,
		Date:      b.Date,
	}
}

//go:build unit

package booking_test

import (
	"testing"
	"time"

	"roombooking/internal/domain/booking"
	"roombooking/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuote() pricing.Quote {
	return pricing.Quote{
		BasePrice:       100,
		TemperatureC:    26,
		TemperatureDiff: 5,
		SurchargePct:    20,
		SurchargeAmount: 20,
		FinalPrice:      120,
	}
}

func newTestReservation(t *testing.T) *booking.Reservation {
	t.Helper()

	date, err := booking.NewDate("2026-12-25")
	require.NoError(t, err)
	client, err := booking.NewClientInfo("John Doe", "john@example.com")
	require.NoError(t, err)

	res, err := booking.NewReservation(
		"LON001", "The Churchill Room", "London, Westminster",
		date, client, validQuote(), time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return res
}

func TestNewReservation(t *testing.T) {
	res := newTestReservation(t)

	assert.NotEqual(t, uuid.Nil, res.ID())
	assert.Equal(t, booking.StatusConfirmed, res.Status())
	assert.True(t, res.IsActive())
	assert.Nil(t, res.CancelledAt())
	assert.Equal(t, "LON001", res.RoomID())
	assert.Equal(t, "2026-12-25", res.Date().String())
	assert.Equal(t, "john@example.com", res.Client().Email())
	assert.Equal(t, 120.0, res.Price().FinalPrice)
}

func TestNewReservationRejectsEmptyRoom(t *testing.T) {
	date, _ := booking.NewDate("2026-12-25")
	client, _ := booking.NewClientInfo("John Doe", "john@example.com")

	_, err := booking.NewReservation("", "", "", date, client, validQuote(), time.Now())
	assert.ErrorIs(t, err, booking.ErrEmptyRoomID)
}

func TestNewReservationRejectsInconsistentSnapshot(t *testing.T) {
	date, _ := booking.NewDate("2026-12-25")
	client, _ := booking.NewClientInfo("John Doe", "john@example.com")

	q := validQuote()
	q.FinalPrice = 999 // final != base + surcharge

	_, err := booking.NewReservation("LON001", "", "", date, client, q, time.Now())
	assert.ErrorIs(t, err, booking.ErrInvalidPriceSnapshot)
}

func TestCancelIsOneWayAndIdempotent(t *testing.T) {
	res := newTestReservation(t)

	first := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)
	res.Cancel(first)
	require.Equal(t, booking.StatusCancelled, res.Status())
	require.NotNil(t, res.CancelledAt())
	assert.Equal(t, first, *res.CancelledAt())

	// second cancel keeps the original cancellation timestamp
	res.Cancel(first.Add(time.Hour))
	assert.Equal(t, first, *res.CancelledAt())
	assert.False(t, res.IsActive())
}

func TestDateValidation(t *testing.T) {
	cases := []struct {
		name  string
		value string
		ok    bool
	}{
		{name: "valid date", value: "2026-12-25", ok: true},
		{name: "valid date with padding", value: " 2026-01-02 ", ok: true},
		{name: "empty", value: "", ok: false},
		{name: "wrong format", value: "25/12/2026", ok: false},
		{name: "not a date", value: "someday", ok: false},
		{name: "month out of range", value: "2026-13-01", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewDate(tc.value)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, booking.ErrInvalidDate)
			}
		})
	}
}

func TestClientInfoValidation(t *testing.T) {
	cases := []struct {
		name    string
		cname   string
		email   string
		wantErr error
	}{
		{name: "valid", cname: "Jane", email: "jane@example.com"},
		{name: "empty name", cname: "  ", email: "jane@example.com", wantErr: booking.ErrEmptyClientName},
		{name: "missing at", cname: "Jane", email: "janeexample.com", wantErr: booking.ErrInvalidEmail},
		{name: "missing domain dot", cname: "Jane", email: "jane@example", wantErr: booking.ErrInvalidEmail},
		{name: "empty email", cname: "Jane", email: "", wantErr: booking.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewClientInfo(tc.cname, tc.email)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

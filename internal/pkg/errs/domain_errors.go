package errs

import "errors"

// Domain-specific sentinel errors for the booking workflow layers
var (
	// Room catalog errors
	ErrRoomNotFound = errors.New("room not found")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")

	// Forecast errors
	ErrForecastNotFound = errors.New("forecast not found")

	// Validation errors
	ErrValidation = errors.New("validation error")

	// Dependency errors
	ErrUpstreamUnavailable = errors.New("upstream dependency unavailable")

	// Operation errors
	ErrStorageFailure = errors.New("storage operation failed")
)

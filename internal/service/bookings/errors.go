package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when no booking has the requested ID
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when the booking is outside the caller's accommodations
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned for malformed filters
	ErrInvalidInput = errors.New("invalid input data")

	ErrInternal = errors.New("service: internal error")
)

package create_booking

import "errors"

var (
	// ErrInvalidInput is returned for missing or malformed fields
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrDateConflict is returned when the stay overlaps a confirmed booking or a blocked range
	ErrDateConflict = errors.New("create_booking: dates are not available")

	// ErrAccommodationNotFound is returned when the accommodation does not exist
	ErrAccommodationNotFound = errors.New("create_booking: accommodation not found")

	// ErrAccessDenied is returned when the caller may not book this accommodation or status
	ErrAccessDenied = errors.New("create_booking: access denied")

	// ErrInternal is returned for storage failures
	ErrInternal = errors.New("create_booking: internal error")
)

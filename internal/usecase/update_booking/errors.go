package update_booking

import "errors"

var (
	ErrInvalidInput          = errors.New("update_booking: invalid input data")
	ErrBookingNotFound       = errors.New("update_booking: booking not found")
	ErrAccommodationNotFound = errors.New("update_booking: accommodation not found")
	ErrAccessDenied          = errors.New("update_booking: access denied")

	// ErrDateConflict is raised by the storage constraint when a confirmed stay would overlap another
	ErrDateConflict = errors.New("update_booking: dates conflict with a confirmed booking")

	ErrInternal = errors.New("update_booking: internal error")
)

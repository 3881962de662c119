package check_availability

import "errors"

var (
	ErrInvalidInput          = errors.New("check_availability: invalid input data")
	ErrAccommodationNotFound = errors.New("check_availability: accommodation not found")
	ErrInternal              = errors.New("check_availability: internal error")
)

package accommodations

import "errors"

var (
	ErrAccommodationNotFound = errors.New("accommodation not found")
	ErrInvalidInput          = errors.New("invalid input data")
	ErrInternal              = errors.New("service: internal error")
)

package images

import "errors"

var (
	ErrImageNotFound         = errors.New("image not found")
	ErrAccommodationNotFound = errors.New("accommodation not found")
	ErrInvalidInput          = errors.New("invalid input data")
	ErrUnsupportedType       = errors.New("only image uploads are accepted")
	ErrFileTooLarge          = errors.New("file too large")
	ErrInternal              = errors.New("service: internal error")
)

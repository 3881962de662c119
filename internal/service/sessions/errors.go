package sessions

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input data")
	ErrInternal           = errors.New("service: internal error")
)

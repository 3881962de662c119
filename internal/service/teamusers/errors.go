package teamusers

import "errors"

var (
	ErrTeamUserNotFound = errors.New("team user not found")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrInvalidInput     = errors.New("invalid input data")
	ErrInternal         = errors.New("service: internal error")
)

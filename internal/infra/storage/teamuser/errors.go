package teamuser

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrTeamUserNotFound = errors.New("teamuser.repository: team user not found")
	ErrUsernameTaken    = errors.New("teamuser.repository: username already exists")

	ErrBuildQuery = errors.New("teamuser.repository: failed to build query")
	ErrExecQuery  = errors.New("teamuser.repository: failed to execute query")
	ErrScanRow    = errors.New("teamuser.repository: failed to scan row")
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}

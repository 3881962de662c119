package auth

import (
	"context"
	"time"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

// Resolver turns a raw credential into the caller identity.
// Any failure yields the guest identity, never an error.
type Resolver interface {
	Resolve(ctx context.Context, credential string) domain.Identity
}

// SessionStore reads opaque session rows
type SessionStore interface {
	GetActive(ctx context.Context, token string, now time.Time) (*domain.Session, error)
}

// TeamUserStore loads the team user behind a session
type TeamUserStore interface {
	GetByID(ctx context.Context, id int64) (*domain.TeamUser, error)
}

// TimeProvider returns the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

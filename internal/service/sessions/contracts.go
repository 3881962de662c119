package sessions

import (
	"context"
	"time"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type TeamUserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.TeamUser, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

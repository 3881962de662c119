package teamusers

import (
	"context"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

type TeamUserRepository interface {
	List(ctx context.Context) ([]*domain.TeamUser, error)
	GetByID(ctx context.Context, id int64) (*domain.TeamUser, error)
	Create(ctx context.Context, user *domain.TeamUser) (*domain.TeamUser, error)
	Update(ctx context.Context, id int64, patch domain.TeamUserPatch) error
	Delete(ctx context.Context, id int64) error
}

type SessionRepository interface {
	DeleteByTeamUser(ctx context.Context, teamUserID int64) (int64, error)
}

type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_team_users

import (
	"context"

	"github.com/Liandro13/method-passion-site/internal/service/teamusers/models"
)

type TeamUserService interface {
	List(ctx context.Context) (*models.TeamUserListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

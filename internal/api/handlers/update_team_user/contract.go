package update_team_user

import (
	"context"

	"github.com/Liandro13/method-passion-site/internal/service/teamusers/models"
)

type TeamUserService interface {
	Update(ctx context.Context, req *models.UpdateTeamUserRequest) (*models.TeamUserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

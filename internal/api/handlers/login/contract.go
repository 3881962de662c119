package login

import (
	"context"

	"github.com/Liandro13/method-passion-site/internal/service/sessions/models"
)

// LoginFunc is either the admin or the team login of the session service
type LoginFunc func(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

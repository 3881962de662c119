package login

import (
	"time"

	"github.com/Liandro13/method-passion-site/internal/service/sessions/models"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

type LoginResponse struct {
	Success   bool                 `json:"success"`
	Role      string               `json:"role"`
	ExpiresAt time.Time            `json:"expires_at"`
	User      *models.TeamUserInfo `json:"user,omitempty"`
}

func (r *LoginRequest) ToServiceRequest() *models.LoginRequest {
	return &models.LoginRequest{
		Username: r.Username,
		Password: r.Password,
	}
}

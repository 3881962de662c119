package create_team_user

import (
	"github.com/Liandro13/method-passion-site/internal/service/teamusers/models"
)

// CreateTeamUserRequest HTTP request model
type CreateTeamUserRequest struct {
	Username              string  `json:"username" validate:"required,max=100"`
	Password              string  `json:"password" validate:"required,max=72"`
	Name                  string  `json:"name" validate:"required,max=200"`
	AllowedAccommodations []int64 `json:"allowed_accommodations" validate:"omitempty,dive,gt=0"`
}

type CreateTeamUserResponse struct {
	Success bool                     `json:"success"`
	ID      int64                    `json:"id"`
	User    *models.TeamUserResponse `json:"user"`
}

func (r *CreateTeamUserRequest) ToServiceRequest() *models.CreateTeamUserRequest {
	allowed := r.AllowedAccommodations
	if allowed == nil {
		allowed = []int64{}
	}
	return &models.CreateTeamUserRequest{
		Username:                r.Username,
		Password:                r.Password,
		Name:                    r.Name,
		AllowedAccommodationIDs: allowed,
	}
}

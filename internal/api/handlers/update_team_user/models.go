package update_team_user

import (
	"github.com/Liandro13/method-passion-site/internal/service/teamusers/models"
)

// UpdateTeamUserRequest HTTP request model. Absent fields are left untouched.
type UpdateTeamUserRequest struct {
	Name                  *string  `json:"name" validate:"omitempty,max=200"`
	Password              *string  `json:"password" validate:"omitempty,max=72"`
	AllowedAccommodations *[]int64 `json:"allowed_accommodations" validate:"omitempty,dive,gt=0"`
}

type UpdateTeamUserResponse struct {
	Success bool                     `json:"success"`
	User    *models.TeamUserResponse `json:"user"`
}

func (r *UpdateTeamUserRequest) ToServiceRequest(id int64) *models.UpdateTeamUserRequest {
	return &models.UpdateTeamUserRequest{
		ID:                      id,
		Name:                    r.Name,
		Password:                r.Password,
		AllowedAccommodationIDs: r.AllowedAccommodations,
	}
}

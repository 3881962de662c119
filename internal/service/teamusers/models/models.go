package models

import (
	"time"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

type CreateTeamUserRequest struct {
	Username                string
	Password                string
	Name                    string
	AllowedAccommodationIDs []int64
}

type UpdateTeamUserRequest struct {
	ID                      int64
	Name                    *string
	Password                *string
	AllowedAccommodationIDs *[]int64
}

// TeamUserResponse never carries the password hash
type TeamUserResponse struct {
	ID                    int64     `json:"id"`
	Username              string    `json:"username"`
	Name                  string    `json:"name"`
	AllowedAccommodations []int64   `json:"allowed_accommodations"`
	CreatedAt             time.Time `json:"created_at"`
}

type TeamUserListResponse struct {
	Users []TeamUserResponse `json:"users"`
}

func FromDomainTeamUser(u *domain.TeamUser) *TeamUserResponse {
	allowed := u.AllowedAccommodationIDs
	if allowed == nil {
		allowed = []int64{}
	}
	return &TeamUserResponse{
		ID:                    u.ID,
		Username:              u.Username,
		Name:                  u.Name,
		AllowedAccommodations: allowed,
		CreatedAt:             u.CreatedAt,
	}
}

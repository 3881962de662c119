package models

import "time"

type LoginRequest struct {
	Username string
	Password string
}

// LoginResult carries the new token; the handler turns it into a cookie
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	TTL       time.Duration
	User      *TeamUserInfo
}

type TeamUserInfo struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"`
	AllowedAccommodations []int64 `json:"allowed_accommodations"`
}

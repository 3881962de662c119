package domain

import "time"

// TeamUser is a staff account limited to a set of accommodations
type TeamUser struct {
	ID                      int64
	Username                string
	PasswordHash            string
	Name                    string
	AllowedAccommodationIDs []int64
	CreatedAt               time.Time
}

// TeamUserPatch is a partial update; the password is already hashed
type TeamUserPatch struct {
	Name                    *string
	PasswordHash            *string
	AllowedAccommodationIDs *[]int64
}

func (p TeamUserPatch) IsEmpty() bool {
	return p.Name == nil && p.PasswordHash == nil && p.AllowedAccommodationIDs == nil
}

// Session is an opaque login token. A nil TeamUserID marks an admin session.
type Session struct {
	Token      string
	TeamUserID *int64
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

func (s *Session) IsAdmin() bool {
	return s.TeamUserID == nil
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

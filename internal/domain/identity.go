package domain

import (
	"slices"
	"strings"
)

// Role is the privilege level of a caller
type Role string

const (
	RoleAdmin Role = "admin"
	RoleTeam  Role = "team"
	RoleGuest Role = "guest"
)

// ParseRole maps a claim value to a Role; anything unknown is a guest
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleTeam:
		return RoleTeam
	default:
		return RoleGuest
	}
}

// Identity is the resolved caller of a request
type Identity struct {
	Subject                 string // empty for anonymous callers
	Name                    string
	Role                    Role
	TeamUserID              *int64
	AllowedAccommodationIDs []int64
}

// GuestIdentity is the identity of an unauthenticated caller
func GuestIdentity() Identity {
	return Identity{Role: RoleGuest}
}

func (i Identity) IsAuthenticated() bool {
	return i.Subject != ""
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// HasRole reports whether the caller holds any of roles
func (i Identity) HasRole(roles ...Role) bool {
	return slices.Contains(roles, i.Role)
}

// CanAccess reports whether the caller may act on the accommodation.
// Admins reach every accommodation regardless of the list.
func (i Identity) CanAccess(accommodationID int64) bool {
	switch i.Role {
	case RoleAdmin:
		return true
	case RoleTeam:
		return slices.Contains(i.AllowedAccommodationIDs, accommodationID)
	default:
		return false
	}
}

// AccommodationScope returns the IDs the caller is limited to.
// restricted is false for admins, whose scope is everything.
func (i Identity) AccommodationScope() (ids []int64, restricted bool) {
	if i.Role == RoleAdmin {
		return nil, false
	}
	if i.Role == RoleTeam {
		return slices.Clone(i.AllowedAccommodationIDs), true
	}
	return []int64{}, true
}

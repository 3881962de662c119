package auth

import (
	"slices"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

// RolePolicy is the single place a role and scope are derived from credentials
type RolePolicy struct {
	adminSubjects []string
}

func NewRolePolicy(adminSubjects []string) *RolePolicy {
	return &RolePolicy{adminSubjects: slices.Clone(adminSubjects)}
}

// Resolve maps a subject and its claimed role onto a role and accommodation scope.
// Configured admin subjects win over the claim. Admins get a nil scope (everything).
func (p *RolePolicy) Resolve(subject, claimedRole string, accommodations []int64) (domain.Role, []int64) {
	if subject != "" && slices.Contains(p.adminSubjects, subject) {
		return domain.RoleAdmin, nil
	}

	switch domain.ParseRole(claimedRole) {
	case domain.RoleAdmin:
		return domain.RoleAdmin, nil
	case domain.RoleTeam:
		scope := make([]int64, 0, len(accommodations))
		return domain.RoleTeam, append(scope, accommodations...)
	default:
		return domain.RoleGuest, []int64{}
	}
}

// Identity builds a full identity through Resolve
func (p *RolePolicy) Identity(subject, name, claimedRole string, teamUserID *int64, accommodations []int64) domain.Identity {
	if subject == "" {
		return domain.GuestIdentity()
	}

	role, scope := p.Resolve(subject, claimedRole, accommodations)
	identity := domain.Identity{
		Subject:                 subject,
		Name:                    name,
		Role:                    role,
		AllowedAccommodationIDs: scope,
	}
	if role == domain.RoleTeam {
		identity.TeamUserID = teamUserID
	}
	return identity
}

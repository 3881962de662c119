package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleTeam, ParseRole(" Team "))
	assert.Equal(t, RoleGuest, ParseRole(""))
	assert.Equal(t, RoleGuest, ParseRole("superuser"))
}

func TestIdentity_CanAccess(t *testing.T) {
	admin := Identity{Subject: "admin", Role: RoleAdmin}
	team := Identity{Subject: "team:3", Role: RoleTeam, AllowedAccommodationIDs: []int64{1, 3}}
	guest := GuestIdentity()

	assert.True(t, admin.CanAccess(2), "admin reaches every accommodation")
	assert.True(t, team.CanAccess(3))
	assert.False(t, team.CanAccess(2))
	assert.False(t, guest.CanAccess(1))
	assert.False(t, guest.IsAuthenticated())
}

func TestIdentity_AccommodationScope(t *testing.T) {
	ids, restricted := Identity{Role: RoleAdmin}.AccommodationScope()
	assert.False(t, restricted)
	assert.Nil(t, ids)

	allowed := []int64{2}
	ids, restricted = Identity{Role: RoleTeam, AllowedAccommodationIDs: allowed}.AccommodationScope()
	assert.True(t, restricted)
	assert.Equal(t, []int64{2}, ids)

	ids[0] = 99
	assert.Equal(t, int64(2), allowed[0], "scope must be a copy")

	ids, restricted = GuestIdentity().AccommodationScope()
	assert.True(t, restricted)
	assert.Empty(t, ids)
}

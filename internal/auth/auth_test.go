package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liandro13/method-passion-site/internal/domain"
	sessionRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/session"
	"github.com/Liandro13/method-passion-site/pkg/logger"
	"github.com/Liandro13/method-passion-site/pkg/ptr"
)

type fakeSessions struct {
	sessions map[string]*domain.Session
	err      error
}

func (f *fakeSessions) GetActive(_ context.Context, token string, now time.Time) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.sessions[token]
	if !ok || s.IsExpired(now) {
		return nil, sessionRepo.ErrSessionNotFound
	}
	return s, nil
}

type fakeTeamUsers map[int64]*domain.TeamUser

func (f fakeTeamUsers) GetByID(_ context.Context, id int64) (*domain.TeamUser, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, errors.New("not found")
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newResolver(now time.Time) *SessionResolver {
	sessions := &fakeSessions{sessions: map[string]*domain.Session{
		"admin-token":   {Token: "admin-token", ExpiresAt: now.Add(time.Hour)},
		"team-token":    {Token: "team-token", TeamUserID: ptr.Ptr(int64(7)), ExpiresAt: now.Add(time.Hour)},
		"expired-token": {Token: "expired-token", ExpiresAt: now.Add(-time.Minute)},
		"orphan-token":  {Token: "orphan-token", TeamUserID: ptr.Ptr(int64(99)), ExpiresAt: now.Add(time.Hour)},
	}}
	users := fakeTeamUsers{7: {ID: 7, Username: "maria", Name: "Maria", AllowedAccommodationIDs: []int64{1, 3}}}

	r := NewSessionResolver(sessions, users, NewRolePolicy(nil), "admin", logger.NewNop())
	r.timeProvider = fixedTime{now: now}
	return r
}

func TestSessionResolver(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := newResolver(now)
	ctx := context.Background()

	admin := r.Resolve(ctx, "admin-token")
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.True(t, admin.CanAccess(42))

	team := r.Resolve(ctx, "team-token")
	assert.Equal(t, domain.RoleTeam, team.Role)
	assert.Equal(t, "Maria", team.Name)
	assert.Equal(t, []int64{1, 3}, team.AllowedAccommodationIDs)
	assert.Equal(t, ptr.Ptr(int64(7)), team.TeamUserID)
	assert.False(t, team.CanAccess(2))

	for _, token := range []string{"", "unknown", "expired-token", "orphan-token"} {
		id := r.Resolve(ctx, token)
		assert.Equal(t, domain.RoleGuest, id.Role, token)
		assert.False(t, id.IsAuthenticated(), token)
	}
}

func TestSessionResolver_StoreFailureIsGuest(t *testing.T) {
	r := NewSessionResolver(&fakeSessions{err: errors.New("db down")}, fakeTeamUsers{}, NewRolePolicy(nil), "admin", logger.NewNop())

	assert.Equal(t, domain.GuestIdentity(), r.Resolve(context.Background(), "admin-token"))
}

func TestRolePolicy_Resolve(t *testing.T) {
	policy := NewRolePolicy([]string{"user_owner"})

	tests := []struct {
		name      string
		subject   string
		claimed   string
		accs      []int64
		wantRole  domain.Role
		wantScope []int64
	}{
		{"configured admin subject", "user_owner", "", nil, domain.RoleAdmin, nil},
		{"admin claim", "user_x", "admin", []int64{1}, domain.RoleAdmin, nil},
		{"team claim", "user_y", "team", []int64{2, 3}, domain.RoleTeam, []int64{2, 3}},
		{"team claim without accommodations", "user_y", "team", nil, domain.RoleTeam, []int64{}},
		{"missing role", "user_z", "", []int64{1}, domain.RoleGuest, []int64{}},
		{"unknown role", "user_z", "owner", nil, domain.RoleGuest, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, scope := policy.Resolve(tt.subject, tt.claimed, tt.accs)
			assert.Equal(t, tt.wantRole, role)
			assert.Equal(t, tt.wantScope, scope)
		})
	}
}

func TestCredentialFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "cookie-token"})
	assert.Equal(t, "cookie-token", CredentialFromRequest(req, "session"))

	req.Header.Set("Authorization", "Bearer header-token")
	assert.Equal(t, "header-token", CredentialFromRequest(req, "session"))

	empty := httptest.NewRequest(http.MethodGet, "/", nil)
	empty.Header.Set("Authorization", "Basic abc")
	assert.Equal(t, "", CredentialFromRequest(empty, "session"))
}

func TestPasswords(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NoError(t, CheckPassword(hash, "secret1"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, CheckPassword("", "secret1"), ErrInvalidCredentials)

	_, err = HashPassword("123")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestNewSessionToken(t *testing.T) {
	a, err := NewSessionToken()
	require.NoError(t, err)
	b, err := NewSessionToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

package auth

import (
	"context"
	"errors"
	"strconv"

	"github.com/Liandro13/method-passion-site/internal/domain"
	sessionRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/session"
)

// SessionResolver resolves opaque tokens stored in the sessions table
type SessionResolver struct {
	sessions      SessionStore
	teamUsers     TeamUserStore
	policy        *RolePolicy
	adminUsername string
	timeProvider  TimeProvider
	logger        Logger
}

func NewSessionResolver(
	sessions SessionStore,
	teamUsers TeamUserStore,
	policy *RolePolicy,
	adminUsername string,
	logger Logger,
) *SessionResolver {
	return &SessionResolver{
		sessions:      sessions,
		teamUsers:     teamUsers,
		policy:        policy,
		adminUsername: adminUsername,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Resolve maps a live session to admin or to its team user
func (r *SessionResolver) Resolve(ctx context.Context, credential string) domain.Identity {
	if credential == "" {
		return domain.GuestIdentity()
	}

	session, err := r.sessions.GetActive(ctx, credential, r.timeProvider.Now())
	if err != nil {
		if !errors.Is(err, sessionRepo.ErrSessionNotFound) {
			r.logger.Error("SessionResolver: failed to load session: %v", err)
		}
		return domain.GuestIdentity()
	}

	if session.IsAdmin() {
		return r.policy.Identity(r.adminUsername, r.adminUsername, string(domain.RoleAdmin), nil, nil)
	}

	user, err := r.teamUsers.GetByID(ctx, *session.TeamUserID)
	if err != nil {
		r.logger.Warn("SessionResolver: team user id=%d behind session not loadable: %v", *session.TeamUserID, err)
		return domain.GuestIdentity()
	}

	return r.policy.Identity(
		"team:"+strconv.FormatInt(user.ID, 10),
		user.Name,
		string(domain.RoleTeam),
		&user.ID,
		user.AllowedAccommodationIDs,
	)
}

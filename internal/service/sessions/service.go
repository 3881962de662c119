package sessions

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/Liandro13/method-passion-site/internal/auth"
	"github.com/Liandro13/method-passion-site/internal/domain"
	teamUserRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/teamuser"
	"github.com/Liandro13/method-passion-site/internal/service/sessions/models"
)

// AdminCredentials are the configured admin login
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

// Service issues and revokes opaque session tokens
type Service struct {
	sessionRepo  SessionRepository
	teamUserRepo TeamUserRepository
	admin        AdminCredentials
	adminTTL     time.Duration
	teamTTL      time.Duration
	timeProvider TimeProvider
	logger       Logger
}

func NewService(
	sessionRepo SessionRepository,
	teamUserRepo TeamUserRepository,
	admin AdminCredentials,
	adminTTL time.Duration,
	teamTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		teamUserRepo: teamUserRepo,
		admin:        admin,
		adminTTL:     adminTTL,
		teamTTL:      teamTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider replaces the clock
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// AdminLogin checks the configured admin credentials and opens an admin session
func (s *Service) AdminLogin(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: missing credentials", ErrInvalidInput)
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.admin.Username)) == 1
	passwordErr := auth.CheckPassword(s.admin.PasswordHash, req.Password)
	if !usernameOK || passwordErr != nil {
		s.logger.Warn("AdminLogin: rejected login for %q", req.Username)
		return nil, ErrInvalidCredentials
	}

	result, err := s.open(ctx, nil, s.adminTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("AdminLogin: admin session opened, expires %s", result.ExpiresAt.Format(time.RFC3339))
	return result, nil
}

// TeamLogin checks a team user's password and opens a scoped session
func (s *Service) TeamLogin(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: missing credentials", ErrInvalidInput)
	}

	user, err := s.teamUserRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, teamUserRepo.ErrTeamUserNotFound) {
			s.logger.Warn("TeamLogin: unknown username %q", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("TeamLogin: repository error: %v", err)
		return nil, fmt.Errorf("%w: TeamLogin - repository error: %v", ErrInternal, err)
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		s.logger.Warn("TeamLogin: wrong password for %q", req.Username)
		return nil, ErrInvalidCredentials
	}

	result, err := s.open(ctx, &user.ID, s.teamTTL)
	if err != nil {
		return nil, err
	}

	allowed := user.AllowedAccommodationIDs
	if allowed == nil {
		allowed = []int64{}
	}
	result.User = &models.TeamUserInfo{
		ID:                    user.ID,
		Name:                  user.Name,
		AllowedAccommodations: allowed,
	}

	s.logger.Info("TeamLogin: session opened for team user id=%d", user.ID)
	return result, nil
}

// Logout deletes the token. Unknown or empty tokens are accepted.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessionRepo.Delete(ctx, token); err != nil {
		s.logger.Error("Logout: repository error: %v", err)
		return fmt.Errorf("%w: Logout - repository error: %v", ErrInternal, err)
	}
	return nil
}

// CleanupExpired purges sessions that expired before now
func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	removed, err := s.sessionRepo.DeleteExpired(ctx, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("CleanupExpired: repository error: %v", err)
		return 0, fmt.Errorf("%w: CleanupExpired - repository error: %v", ErrInternal, err)
	}
	return removed, nil
}

func (s *Service) open(ctx context.Context, teamUserID *int64, ttl time.Duration) (*models.LoginResult, error) {
	token, err := auth.NewSessionToken()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	session := &domain.Session{
		Token:      token,
		TeamUserID: teamUserID,
		ExpiresAt:  s.timeProvider.Now().Add(ttl),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.logger.Error("open: repository error: %v", err)
		return nil, fmt.Errorf("%w: open session - repository error: %v", ErrInternal, err)
	}

	return &models.LoginResult{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		TTL:       ttl,
	}, nil
}

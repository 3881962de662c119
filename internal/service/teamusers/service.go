package teamusers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Liandro13/method-passion-site/internal/auth"
	"github.com/Liandro13/method-passion-site/internal/domain"
	teamUserRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/teamuser"
	"github.com/Liandro13/method-passion-site/internal/service/teamusers/models"
)

// Service administers team accounts
type Service struct {
	repo        TeamUserRepository
	sessionRepo SessionRepository
	txManager   TransactionManager
	logger      Logger
}

func NewService(repo TeamUserRepository, sessionRepo SessionRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:        repo,
		sessionRepo: sessionRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (s *Service) List(ctx context.Context) (*models.TeamUserListResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.TeamUserListResponse{Users: make([]models.TeamUserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, *models.FromDomainTeamUser(u))
	}
	return resp, nil
}

func (s *Service) Create(ctx context.Context, req *models.CreateTeamUserRequest) (*models.TeamUserResponse, error) {
	username := strings.TrimSpace(req.Username)
	name := strings.TrimSpace(req.Name)
	if username == "" || name == "" {
		return nil, fmt.Errorf("%w: username and name are required", ErrInvalidInput)
	}
	if err := validateAccommodations(req.AllowedAccommodationIDs); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: Create - %v", ErrInternal, err)
	}

	created, err := s.repo.Create(ctx, &domain.TeamUser{
		Username:                username,
		PasswordHash:            hash,
		Name:                    name,
		AllowedAccommodationIDs: req.AllowedAccommodationIDs,
	})
	if err != nil {
		if errors.Is(err, teamUserRepo.ErrUsernameTaken) {
			s.logger.Warn("Create: username %q already exists", username)
			return nil, ErrUsernameTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: team user id=%d (%s) created", created.ID, created.Username)
	return models.FromDomainTeamUser(created), nil
}

// Update writes the supplied fields. A password change also ends the user's sessions.
func (s *Service) Update(ctx context.Context, req *models.UpdateTeamUserRequest) (*models.TeamUserResponse, error) {
	patch := domain.TeamUserPatch{AllowedAccommodationIDs: req.AllowedAccommodationIDs}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		patch.Name = &name
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrPasswordTooShort) {
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			return nil, fmt.Errorf("%w: Update - %v", ErrInternal, err)
		}
		patch.PasswordHash = &hash
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if patch.AllowedAccommodationIDs != nil {
		if err := validateAccommodations(*patch.AllowedAccommodationIDs); err != nil {
			return nil, err
		}
	}

	var updated *domain.TeamUser
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.repo.Update(txCtx, req.ID, patch); err != nil {
			return err
		}
		if patch.PasswordHash != nil {
			if _, err := s.sessionRepo.DeleteByTeamUser(txCtx, req.ID); err != nil {
				return err
			}
		}
		var err error
		updated, err = s.repo.GetByID(txCtx, req.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, teamUserRepo.ErrTeamUserNotFound) {
			return nil, ErrTeamUserNotFound
		}
		s.logger.Error("Update: team user id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: team user id=%d updated", req.ID)
	return models.FromDomainTeamUser(updated), nil
}

// Delete removes the user's sessions and the user in one transaction
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.sessionRepo.DeleteByTeamUser(txCtx, id); err != nil {
			return err
		}
		return s.repo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, teamUserRepo.ErrTeamUserNotFound) {
			s.logger.Warn("Delete: team user id=%d not found", id)
			return ErrTeamUserNotFound
		}
		s.logger.Error("Delete: team user id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: team user id=%d deleted", id)
	return nil
}

func validateAccommodations(ids []int64) error {
	for _, id := range ids {
		if id <= 0 {
			return fmt.Errorf("%w: accommodation id %d is invalid", ErrInvalidInput, id)
		}
	}
	return nil
}

package blockeddates

import (
	"context"
	"errors"
	"fmt"

	"github.com/Liandro13/method-passion-site/internal/domain"
	blockedDateRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/blockeddate"
	"github.com/Liandro13/method-passion-site/internal/service/blockeddates/models"
)

// Service manages admin-imposed unavailability windows
type Service struct {
	repo   BlockedDateRepository
	logger Logger
}

func NewService(repo BlockedDateRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns blocked ranges, limited to the caller's accommodations
func (s *Service) List(ctx context.Context, identity domain.Identity, req *models.ListBlockedDatesRequest) (*models.BlockedDateListResponse, error) {
	scope, restricted := identity.AccommodationScope()

	list, err := s.repo.List(ctx, domain.BlockedDateFilter{
		AccommodationID: req.AccommodationID,
		Scope:           scope,
		Restricted:      restricted,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.BlockedDateListResponse{BlockedDates: make([]models.BlockedDateResponse, 0, len(list))}
	for _, d := range list {
		resp.BlockedDates = append(resp.BlockedDates, *models.FromDomainBlockedDate(d))
	}
	return resp, nil
}

// Create stores a blocked range. Existing bookings are not checked.
func (s *Service) Create(ctx context.Context, identity domain.Identity, req *models.CreateBlockedDateRequest) (*models.BlockedDateResponse, error) {
	if req.AccommodationID <= 0 {
		return nil, fmt.Errorf("%w: accommodation_id is required", ErrInvalidInput)
	}

	stay, err := domain.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("Create: invalid range %s..%s: %v", req.StartDate, req.EndDate, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	reason := ""
	if req.Reason != nil {
		reason = *req.Reason
	}
	if len(reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is longer than %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	if !identity.CanAccess(req.AccommodationID) {
		s.logger.Warn("Create: access denied for %s to accommodation id=%d", identity.Subject, req.AccommodationID)
		return nil, ErrAccessDenied
	}

	created, err := s.repo.Create(ctx, &domain.BlockedDate{
		AccommodationID: req.AccommodationID,
		StartDate:       stay.Start,
		EndDate:         stay.End,
		Reason:          reason,
	})
	if err != nil {
		if errors.Is(err, blockedDateRepo.ErrAccommodationNotFound) {
			return nil, ErrAccommodationNotFound
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: blocked %s on accommodation id=%d (id=%d)", stay, created.AccommodationID, created.ID)
	return models.FromDomainBlockedDate(created), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedDateRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("Delete: blocked date id=%d not found", id)
			return ErrBlockedDateNotFound
		}
		s.logger.Error("Delete: repository error for blocked date id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: blocked date id=%d deleted", id)
	return nil
}

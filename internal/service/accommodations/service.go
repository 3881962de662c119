package accommodations

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Liandro13/method-passion-site/internal/domain"
	accommodationRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/accommodation"
	"github.com/Liandro13/method-passion-site/internal/service/accommodations/models"
)

// Service serves accommodation content together with the galleries
type Service struct {
	accommodationRepo AccommodationRepository
	imageRepo         ImageRepository
	timeProvider      TimeProvider
	logger            Logger
}

func NewService(accommodationRepo AccommodationRepository, imageRepo ImageRepository, logger Logger) *Service {
	return &Service{
		accommodationRepo: accommodationRepo,
		imageRepo:         imageRepo,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
	}
}

// List returns every accommodation with its images in display order
func (s *Service) List(ctx context.Context) (*models.AccommodationListResponse, error) {
	list, err := s.accommodationRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: accommodation repository error: %v", err)
		return nil, fmt.Errorf("%w: List - accommodation repository error: %v", ErrInternal, err)
	}

	images, err := s.imageRepo.List(ctx, nil)
	if err != nil {
		s.logger.Error("List: image repository error: %v", err)
		return nil, fmt.Errorf("%w: List - image repository error: %v", ErrInternal, err)
	}

	byAccommodation := make(map[int64][]domain.AccommodationImage, len(list))
	for _, img := range images {
		byAccommodation[img.AccommodationID] = append(byAccommodation[img.AccommodationID], *img)
	}

	resp := &models.AccommodationListResponse{Accommodations: make([]models.AccommodationResponse, 0, len(list))}
	for _, acc := range list {
		acc.Images = byAccommodation[acc.ID]
		resp.Accommodations = append(resp.Accommodations, *models.FromDomainAccommodation(acc))
	}

	return resp, nil
}

// Update applies a partial content update and returns the fresh record
func (s *Service) Update(ctx context.Context, req *models.UpdateAccommodationRequest) (*models.AccommodationResponse, error) {
	patch, err := validateUpdate(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for accommodation id=%d: %v", req.ID, err)
		return nil, err
	}

	if err := s.accommodationRepo.Update(ctx, req.ID, patch, s.timeProvider.Now()); err != nil {
		switch {
		case errors.Is(err, accommodationRepo.ErrAccommodationNotFound):
			return nil, ErrAccommodationNotFound
		case errors.Is(err, accommodationRepo.ErrUnknownLanguage):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("Update: repository error for accommodation id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	acc, err := s.accommodationRepo.GetByID(ctx, req.ID)
	if err != nil {
		s.logger.Error("Update: failed to reload accommodation id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - reload: %v", ErrInternal, err)
	}

	images, err := s.imageRepo.List(ctx, &req.ID)
	if err != nil {
		s.logger.Error("Update: failed to load images of accommodation id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - images: %v", ErrInternal, err)
	}
	for _, img := range images {
		acc.Images = append(acc.Images, *img)
	}

	s.logger.Info("Update: accommodation id=%d updated", req.ID)
	return models.FromDomainAccommodation(acc), nil
}

func validateUpdate(req *models.UpdateAccommodationRequest) (domain.AccommodationPatch, error) {
	patch := domain.AccommodationPatch{
		Name:         req.Name,
		Descriptions: req.Descriptions,
		MaxGuests:    req.MaxGuests,
		Amenities:    req.Amenities,
	}

	if req.ID <= 0 {
		return patch, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if patch.IsEmpty() {
		return patch, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return patch, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if patch.MaxGuests != nil && (*patch.MaxGuests <= 0 || *patch.MaxGuests > domain.MaxGuests) {
		return patch, fmt.Errorf("%w: max_guests must be between 1 and %d", ErrInvalidInput, domain.MaxGuests)
	}
	for lang := range patch.Descriptions {
		if !slices.Contains(domain.DescriptionLanguages, lang) {
			return patch, fmt.Errorf("%w: unsupported description language %q", ErrInvalidInput, lang)
		}
	}
	if patch.Amenities != nil && *patch.Amenities == nil {
		empty := []string{}
		patch.Amenities = &empty
	}

	return patch, nil
}

package check_availability

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Liandro13/method-passion-site/internal/domain"
	accommodationRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/accommodation"
)

// UseCase answers the public availability form
type UseCase struct {
	accommodationRepo AccommodationRepository
	availability      AvailabilityService
	logger            Logger
}

func NewUseCase(accommodationRepo AccommodationRepository, availability AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		accommodationRepo: accommodationRepo,
		availability:      availability,
		logger:            logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	candidate, err := parseCandidate(req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Warn("CheckAvailability: %v", err)
		return nil, err
	}

	acc, err := uc.resolveAccommodation(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := uc.availability.Check(ctx, acc.ID, candidate)
	if err != nil {
		uc.logger.Error("CheckAvailability: accommodation id=%d: %v", acc.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Response{
		AccommodationID: acc.ID,
		Accommodation:   acc.Name,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Available:       result.Available,
		BookedDates:     result.Occupied,
		Conflicts:       result.Conflicts,
	}, nil
}

func (uc *UseCase) resolveAccommodation(ctx context.Context, req *Request) (*domain.Accommodation, error) {
	var (
		acc *domain.Accommodation
		err error
	)

	name := strings.TrimSpace(req.AccommodationName)
	switch {
	case req.AccommodationID > 0:
		acc, err = uc.accommodationRepo.GetByID(ctx, req.AccommodationID)
	case name != "":
		acc, err = uc.accommodationRepo.GetByName(ctx, name)
	default:
		return nil, fmt.Errorf("%w: accommodationName or accommodationId is required", ErrInvalidInput)
	}

	if err != nil {
		if errors.Is(err, accommodationRepo.ErrAccommodationNotFound) {
			uc.logger.Warn("CheckAvailability: accommodation (id=%d, name=%q) not found", req.AccommodationID, name)
			return nil, ErrAccommodationNotFound
		}
		uc.logger.Error("CheckAvailability: failed to load accommodation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return acc, nil
}

// parseCandidate returns nil when either date is missing
func parseCandidate(checkIn, checkOut string) (*domain.DateRange, error) {
	checkIn = strings.TrimSpace(checkIn)
	checkOut = strings.TrimSpace(checkOut)
	if checkIn == "" || checkOut == "" {
		return nil, nil
	}

	stay, err := domain.ParseDateRange(checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return &stay, nil
}

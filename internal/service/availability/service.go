package availability

import (
	"context"
	"fmt"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

// Result is a full availability answer for one accommodation
type Result struct {
	Available bool
	Conflicts []domain.OccupiedRange
	Occupied  []domain.OccupiedRange // confirmed bookings then blocked ranges
}

// Service answers availability questions from confirmed bookings and blocked dates.
// Pending and cancelled bookings never occupy dates.
type Service struct {
	bookingRepo     BookingRepository
	blockedDateRepo BlockedDateRepository
	logger          Logger
}

func NewService(bookingRepo BookingRepository, blockedDateRepo BlockedDateRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:     bookingRepo,
		blockedDateRepo: blockedDateRepo,
		logger:          logger,
	}
}

// FirstConflict stops at the first occupied range overlapping candidate.
// Blocked dates are not read when a booking already conflicts.
// Inside a transaction the reads lock the rows they return.
func (s *Service) FirstConflict(ctx context.Context, accommodationID int64, candidate domain.DateRange) (*domain.OccupiedRange, error) {
	bookings, err := s.bookingRepo.ListConfirmedRanges(ctx, accommodationID)
	if err != nil {
		s.logger.Error("FirstConflict: failed to list bookings for accommodation id=%d: %v", accommodationID, err)
		return nil, fmt.Errorf("%w: FirstConflict - list bookings: %w", ErrInternal, err)
	}
	if conflict, found := domain.FirstConflict(bookings, candidate); found {
		return &conflict, nil
	}

	blocked, err := s.blockedDateRepo.ListRanges(ctx, accommodationID)
	if err != nil {
		s.logger.Error("FirstConflict: failed to list blocked dates for accommodation id=%d: %v", accommodationID, err)
		return nil, fmt.Errorf("%w: FirstConflict - list blocked dates: %w", ErrInternal, err)
	}
	if conflict, found := domain.FirstConflict(blocked, candidate); found {
		return &conflict, nil
	}

	return nil, nil
}

// Check returns every occupied range, and the conflicting ones when a candidate is given.
// A nil candidate skips the check and reports the accommodation as available.
func (s *Service) Check(ctx context.Context, accommodationID int64, candidate *domain.DateRange) (*Result, error) {
	bookings, err := s.bookingRepo.ListConfirmedRanges(ctx, accommodationID)
	if err != nil {
		s.logger.Error("Check: failed to list bookings for accommodation id=%d: %v", accommodationID, err)
		return nil, fmt.Errorf("%w: Check - list bookings: %v", ErrInternal, err)
	}

	blocked, err := s.blockedDateRepo.ListRanges(ctx, accommodationID)
	if err != nil {
		s.logger.Error("Check: failed to list blocked dates for accommodation id=%d: %v", accommodationID, err)
		return nil, fmt.Errorf("%w: Check - list blocked dates: %v", ErrInternal, err)
	}

	occupied := make([]domain.OccupiedRange, 0, len(bookings)+len(blocked))
	occupied = append(occupied, bookings...)
	occupied = append(occupied, blocked...)

	result := &Result{
		Available: true,
		Conflicts: []domain.OccupiedRange{},
		Occupied:  occupied,
	}

	if candidate != nil {
		result.Conflicts = domain.Conflicts(occupied, *candidate)
		result.Available = len(result.Conflicts) == 0
	}

	return result, nil
}

package bookings

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Liandro13/method-passion-site/internal/domain"
	bookingRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/booking"
	"github.com/Liandro13/method-passion-site/internal/service/bookings/models"
	"github.com/Liandro13/method-passion-site/pkg/ptr"
)

// Service reads and deletes bookings on behalf of an identity
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List returns bookings ordered by check-in DESC.
// Team callers only ever see their accommodations, whatever filter they pass.
func (s *Service) List(ctx context.Context, identity domain.Identity, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	scope, restricted := identity.AccommodationScope()

	filter := domain.BookingFilter{
		AccommodationID: req.AccommodationID,
		Status:          req.Status,
		Scope:           scope,
		Restricted:      restricted,
	}

	if restricted && req.AccommodationID != nil && !slices.Contains(scope, *req.AccommodationID) {
		s.logger.Warn("List: %s asked for accommodation id=%d outside its scope", identity.Subject, *req.AccommodationID)
	}

	list, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookings(list), nil
}

// GetByID returns one booking the caller is allowed to see
func (s *Service) GetByID(ctx context.Context, identity domain.Identity, id int64) (*models.BookingResponse, error) {
	booking, err := s.get(ctx, "GetByID", identity, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// Delete hard-deletes a booking
func (s *Service) Delete(ctx context.Context, identity domain.Identity, id int64) error {
	if _, err := s.get(ctx, "Delete", identity, id); err != nil {
		return err
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d deleted by %s", id, identity.Subject)
	return nil
}

// ListUpcoming returns confirmed bookings that have not checked out before today,
// ordered by check-in ASC, within the caller's scope
func (s *Service) ListUpcoming(ctx context.Context, identity domain.Identity, today time.Time) (*models.BookingListResponse, error) {
	scope, restricted := identity.AccommodationScope()

	list, err := s.bookingRepo.List(ctx, domain.BookingFilter{
		Status:         ptr.Ptr(domain.StatusConfirmed),
		CheckOutFrom:   &today,
		Scope:          scope,
		Restricted:     restricted,
		OrderAscending: true,
	})
	if err != nil {
		s.logger.Error("ListUpcoming: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookings(list), nil
}

func (s *Service) get(ctx context.Context, op string, identity domain.Identity, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if !identity.CanAccess(booking.AccommodationID) {
		s.logger.Warn("%s: access denied for %s to booking id=%d", op, identity.Subject, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}

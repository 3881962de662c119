package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Liandro13/method-passion-site/internal/domain"
	accommodationRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/accommodation"
	bookingRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/booking"
)

// UseCase creates bookings without double-booking confirmed stays
type UseCase struct {
	bookingRepo       BookingRepository
	accommodationRepo AccommodationRepository
	availability      AvailabilityChecker
	txManager         TransactionManager
	logger            Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	accommodationRepo AccommodationRepository,
	availability AvailabilityChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:       bookingRepo,
		accommodationRepo: accommodationRepo,
		availability:      availability,
		txManager:         txManager,
		logger:            logger,
	}
}

// Execute validates the request, then checks for conflicts and inserts inside one
// serializable transaction. Concurrent creates for overlapping dates cannot both succeed.
func (uc *UseCase) Execute(ctx context.Context, identity domain.Identity, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: accommodation=%d, check_in=%s, check_out=%s, status=%q",
		req.AccommodationID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Status)

	// 1. Resolve a named accommodation
	accommodationID, err := uc.resolveAccommodation(ctx, req)
	if err != nil {
		return nil, err
	}

	// 2. Validate and derive
	booking, err := buildBooking(req, accommodationID)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Authorize
	if err := checkAccess(identity, booking); err != nil {
		uc.logger.Warn("CreateBooking: caller %q denied: %v", identity.Subject, err)
		return nil, fmt.Errorf("%w: %v", ErrAccessDenied, err)
	}

	// 4. Conflict check and insert in one transaction
	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		conflict, err := uc.availability.FirstConflict(txCtx, booking.AccommodationID, booking.Stay())
		if err != nil {
			return err
		}
		if conflict != nil {
			return fmt.Errorf("%w: overlaps %s id=%d (%s to %s)", ErrDateConflict,
				conflict.Source, conflict.SourceID,
				conflict.Start.Format(domain.DateFormat), conflict.End.Format(domain.DateFormat))
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDateConflict):
			uc.logger.Warn("CreateBooking: %v", err)
			return nil, err
		case bookingRepo.IsConflict(err):
			uc.logger.Warn("CreateBooking: concurrent writer took the dates: %v", err)
			return nil, fmt.Errorf("%w: dates were booked concurrently", ErrDateConflict)
		case errors.Is(err, bookingRepo.ErrAccommodationNotFound):
			uc.logger.Warn("CreateBooking: accommodation id=%d not found", booking.AccommodationID)
			return nil, ErrAccommodationNotFound
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: booking id=%d created with status %s", created.ID, created.Status)
	return &Response{Booking: created}, nil
}

func (uc *UseCase) resolveAccommodation(ctx context.Context, req *Request) (int64, error) {
	name := strings.TrimSpace(req.AccommodationName)
	if req.AccommodationID > 0 || name == "" {
		return req.AccommodationID, nil
	}

	acc, err := uc.accommodationRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, accommodationRepo.ErrAccommodationNotFound) {
			uc.logger.Warn("CreateBooking: accommodation %q not found", name)
			return 0, ErrAccommodationNotFound
		}
		uc.logger.Error("CreateBooking: failed to resolve accommodation %q: %v", name, err)
		return 0, fmt.Errorf("%w: resolve accommodation: %v", ErrInternal, err)
	}
	return acc.ID, nil
}

package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Liandro13/method-passion-site/internal/domain"
	bookingRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/booking"
)

// UseCase applies partial updates, including approve and reject
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider replaces the clock
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute locks the booking, merges the patch, checks the merged record and writes
// only the supplied fields plus recomputed net values when their inputs changed.
func (uc *UseCase) Execute(ctx context.Context, identity domain.Identity, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d by %q", req.ID, identity.Subject)

	if err := validatePatch(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.Booking
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := uc.bookingRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		if err := checkAccess(identity, current, req.Patch); err != nil {
			return err
		}

		merged := *current
		req.Patch.ApplyTo(&merged)
		if err := validateMerged(&merged, req.Patch); err != nil {
			return err
		}

		var derived *domain.DerivedValues
		if req.Patch.ChangesDerivationInputs() {
			merged.Financials.Derive()
			derived = &domain.DerivedValues{
				ValueNetOfCommissions: merged.Financials.ValueNetOfCommissions,
				ValueNetOfVAT:         merged.Financials.ValueNetOfVAT,
			}
		}

		if err := uc.bookingRepo.Update(txCtx, req.ID, req.Patch, derived, uc.timeProvider.Now()); err != nil {
			return err
		}

		updated, err = uc.bookingRepo.GetByID(txCtx, req.ID)
		return err
	})
	if err != nil {
		return nil, uc.mapError(req.ID, err)
	}

	uc.logger.Info("UpdateBooking: booking id=%d updated, status %s", updated.ID, updated.Status)
	return &Response{Booking: updated}, nil
}

func (uc *UseCase) mapError(id int64, err error) error {
	switch {
	case errors.Is(err, ErrInvalidInput):
		uc.logger.Warn("UpdateBooking: id=%d: %v", id, err)
		return err
	case errors.Is(err, ErrAccessDenied):
		uc.logger.Warn("UpdateBooking: %v", err)
		return err
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		uc.logger.Warn("UpdateBooking: booking id=%d not found", id)
		return ErrBookingNotFound
	case errors.Is(err, bookingRepo.ErrAccommodationNotFound):
		return ErrAccommodationNotFound
	case bookingRepo.IsConflict(err):
		uc.logger.Warn("UpdateBooking: booking id=%d overlaps a confirmed stay: %v", id, err)
		return ErrDateConflict
	}
	uc.logger.Error("UpdateBooking: booking id=%d: %v", id, err)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

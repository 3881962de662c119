package importer

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Liandro13/method-passion-site/internal/domain"
	bookingRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/booking"
)

var (
	ErrInvalidAccommodation = errors.New("importer: accommodation id must be positive")
	ErrImport               = errors.New("importer: import failed")

	errOverlap = errors.New("overlaps a confirmed booking")
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListConfirmedRanges(ctx context.Context, accommodationID int64) ([]domain.OccupiedRange, error)
}

type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Report sums up one import run
type Report struct {
	AccommodationID int64
	DryRun          bool
	Imported        int
	Skipped         []Skip
}

type Importer struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

func New(bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *Importer {
	return &Importer{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Import writes rows as confirmed bookings in check-in order. Rows overlapping an earlier
// row of the same run or an existing confirmed booking are skipped and reported.
// With dryRun nothing is written.
func (im *Importer) Import(ctx context.Context, accommodationID int64, rows []Row, dryRun bool) (*Report, error) {
	if accommodationID <= 0 {
		return nil, ErrInvalidAccommodation
	}

	report := &Report{AccommodationID: accommodationID, DryRun: dryRun}

	existing, err := im.bookingRepo.ListConfirmedRanges(ctx, accommodationID)
	if err != nil {
		return nil, fmt.Errorf("%w: load confirmed bookings: %v", ErrImport, err)
	}

	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CheckIn.Before(sorted[j].CheckIn)
	})

	accepted := make([]domain.OccupiedRange, 0, len(sorted))
	for _, row := range sorted {
		stay := domain.DateRange{Start: row.CheckIn, End: row.CheckOut}

		if o, found := domain.FirstConflict(accepted, stay); found {
			report.Skipped = append(report.Skipped, Skip{
				Line:   row.Line,
				Reason: fmt.Sprintf("overlaps line %d (%s)", o.SourceID, o.DateRange),
			})
			continue
		}
		if o, found := domain.FirstConflict(existing, stay); found {
			report.Skipped = append(report.Skipped, Skip{
				Line:   row.Line,
				Reason: fmt.Sprintf("overlaps booking id=%d (%s)", o.SourceID, o.DateRange),
			})
			continue
		}

		if !dryRun {
			err := im.create(ctx, row.Booking(accommodationID))
			if errors.Is(err, errOverlap) {
				report.Skipped = append(report.Skipped, Skip{Line: row.Line, Reason: err.Error()})
				continue
			}
			if err != nil {
				return report, fmt.Errorf("%w: line %d: %v", ErrImport, row.Line, err)
			}
		}

		accepted = append(accepted, domain.OccupiedRange{
			DateRange: stay,
			Source:    domain.OccupancyBooking,
			SourceID:  int64(row.Line),
		})
		report.Imported++
	}

	im.logger.Info("Import: accommodation id=%d, imported=%d, skipped=%d, dry_run=%t",
		accommodationID, report.Imported, len(report.Skipped), dryRun)
	return report, nil
}

// create re-checks inside the transaction; bookings confirmed meanwhile win
func (im *Importer) create(ctx context.Context, booking *domain.Booking) error {
	err := im.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		ranges, err := im.bookingRepo.ListConfirmedRanges(txCtx, booking.AccommodationID)
		if err != nil {
			return err
		}
		if _, found := domain.FirstConflict(ranges, booking.Stay()); found {
			return errOverlap
		}
		_, err = im.bookingRepo.Create(txCtx, booking)
		return err
	})
	if err != nil && bookingRepo.IsConflict(err) {
		return errOverlap
	}
	return err
}

package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Liandro13/method-passion-site/internal/domain"
	"github.com/Liandro13/method-passion-site/pkg/dbmetrics"
	"github.com/Liandro13/method-passion-site/pkg/psqlbuilder"
)

// bookingColumns is the select list shared by every read, in scan order
var bookingColumns = []string{
	"b.id",
	"b.accommodation_id",
	"COALESCE(a.name, '')",
	"b.check_in",
	"b.check_out",
	"b.guests",
	"b.nationality",
	"b.primary_name",
	"b.additional_names",
	"b.notes",
	"b.status",
	"b.gross_value",
	"b.municipal_tax",
	"b.commission",
	"b.bank_fee",
	"b.vat",
	"b.platform",
	"b.value_net_of_commissions",
	"b.value_net_of_vat",
	"b.created_at",
	"b.updated_at",
}

// Repository is the bookings table gateway
type Repository struct {
	db DBExecutor
}

// NewRepository creates a bookings repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a booking and fills ID and timestamps.
// Inside a transaction it joins it; the exclusion constraint on confirmed stays
// surfaces as ErrDateConflict.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"accommodation_id",
			"check_in",
			"check_out",
			"guests",
			"nationality",
			"primary_name",
			"additional_names",
			"notes",
			"status",
			"gross_value",
			"municipal_tax",
			"commission",
			"bank_fee",
			"vat",
			"platform",
			"value_net_of_commissions",
			"value_net_of_vat",
		).
		Values(
			booking.AccommodationID,
			booking.CheckIn,
			booking.CheckOut,
			booking.Guests,
			booking.Nationality,
			booking.PrimaryName,
			booking.AdditionalNames,
			booking.Notes,
			booking.Status,
			booking.Financials.GrossValue,
			booking.Financials.MunicipalTax,
			booking.Financials.Commission,
			booking.Financials.BankFee,
			booking.Financials.VAT,
			booking.Financials.Platform,
			booking.Financials.ValueNetOfCommissions,
			booking.Financials.ValueNetOfVAT,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, mapWriteError("Create", err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID returns one booking. Inside a transaction the row is locked.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		LeftJoin("accommodations a ON a.id = b.accommodation_id").
		Where(squirrel.Eq{"b.id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List returns bookings matching the filter.
// A restricted scope limits rows to the listed accommodations; an empty restricted scope returns nothing.
func (r *Repository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	if filter.Restricted && len(filter.Scope) == 0 {
		return []*domain.Booking{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		LeftJoin("accommodations a ON a.id = b.accommodation_id")

	if filter.AccommodationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.accommodation_id": *filter.AccommodationID})
	}
	if filter.Restricted {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.accommodation_id": filter.Scope})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	}
	if filter.CheckOutFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"b.check_out": *filter.CheckOutFrom})
	}

	if filter.OrderAscending {
		selectBuilder = selectBuilder.OrderBy("b.check_in ASC", "b.id ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("b.check_in DESC", "b.id DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListConfirmedRanges returns the stays that occupy the accommodation.
// Inside a transaction the rows are locked so a concurrent create has to wait.
func (r *Repository) ListConfirmedRanges(ctx context.Context, accommodationID int64) ([]domain.OccupiedRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "check_in", "check_out").
		From("bookings").
		Where(squirrel.Eq{"accommodation_id": accommodationID}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		OrderBy("check_in ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedRanges - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedRanges - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ranges := make([]domain.OccupiedRange, 0)
	for rows.Next() {
		o := domain.OccupiedRange{Source: domain.OccupancyBooking}
		if err := rows.Scan(&o.SourceID, &o.Start, &o.End); err != nil {
			return nil, fmt.Errorf("%w: ListConfirmedRanges - scan range: %v", ErrScanRow, err)
		}
		ranges = append(ranges, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedRanges - rows iteration: %v", ErrScanRow, err)
	}

	return ranges, nil
}

// Update writes only the supplied patch fields, the derived values when given, and updated_at
func (r *Repository) Update(ctx context.Context, id int64, patch domain.BookingPatch, derived *domain.DerivedValues, now time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id})

	if patch.AccommodationID != nil {
		updateBuilder = updateBuilder.Set("accommodation_id", *patch.AccommodationID)
	}
	if patch.CheckIn != nil {
		updateBuilder = updateBuilder.Set("check_in", *patch.CheckIn)
	}
	if patch.CheckOut != nil {
		updateBuilder = updateBuilder.Set("check_out", *patch.CheckOut)
	}
	if patch.Guests != nil {
		updateBuilder = updateBuilder.Set("guests", *patch.Guests)
	}
	if patch.Nationality != nil {
		updateBuilder = updateBuilder.Set("nationality", *patch.Nationality)
	}
	if patch.PrimaryName != nil {
		updateBuilder = updateBuilder.Set("primary_name", *patch.PrimaryName)
	}
	if patch.AdditionalNames != nil {
		updateBuilder = updateBuilder.Set("additional_names", *patch.AdditionalNames)
	}
	if patch.Notes != nil {
		updateBuilder = updateBuilder.Set("notes", *patch.Notes)
	}
	if patch.Status != nil {
		updateBuilder = updateBuilder.Set("status", *patch.Status)
	}
	if patch.GrossValue != nil {
		updateBuilder = updateBuilder.Set("gross_value", *patch.GrossValue)
	}
	if patch.MunicipalTax != nil {
		updateBuilder = updateBuilder.Set("municipal_tax", *patch.MunicipalTax)
	}
	if patch.Commission != nil {
		updateBuilder = updateBuilder.Set("commission", *patch.Commission)
	}
	if patch.BankFee != nil {
		updateBuilder = updateBuilder.Set("bank_fee", *patch.BankFee)
	}
	if patch.VAT != nil {
		updateBuilder = updateBuilder.Set("vat", *patch.VAT)
	}
	if patch.Platform != nil {
		updateBuilder = updateBuilder.Set("platform", *patch.Platform)
	}
	if derived != nil {
		updateBuilder = updateBuilder.
			Set("value_net_of_commissions", derived.ValueNetOfCommissions).
			Set("value_net_of_vat", derived.ValueNetOfVAT)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError("Update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete hard-deletes a booking
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// mapWriteError turns constraint violations into repository sentinels
func mapWriteError(op string, err error) error {
	switch pqCode(err) {
	case pgExclusionViolation, pgSerializationFailure:
		return fmt.Errorf("%w: %s: %v", ErrDateConflict, op, err)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s: %v", ErrAccommodationNotFound, op, err)
	}
	return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b                    domain.Booking
		gross, tax, comm     sql.NullFloat64
		fee, vat             sql.NullFloat64
		netComm, netVAT      sql.NullFloat64
		platform             sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.AccommodationID,
		&b.AccommodationName,
		&b.CheckIn,
		&b.CheckOut,
		&b.Guests,
		&b.Nationality,
		&b.PrimaryName,
		&b.AdditionalNames,
		&b.Notes,
		&b.Status,
		&gross,
		&tax,
		&comm,
		&fee,
		&vat,
		&platform,
		&netComm,
		&netVAT,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Financials = domain.Financials{
		GrossValue:            floatPtr(gross),
		MunicipalTax:          floatPtr(tax),
		Commission:            floatPtr(comm),
		BankFee:               floatPtr(fee),
		VAT:                   floatPtr(vat),
		Platform:              stringPtr(platform),
		ValueNetOfCommissions: floatPtr(netComm),
		ValueNetOfVAT:         floatPtr(netVAT),
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows iteration: %v", ErrScanRow, err)
	}
	return bookings, nil
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

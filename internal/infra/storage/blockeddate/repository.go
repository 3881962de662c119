package blockeddate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Liandro13/method-passion-site/internal/domain"
	"github.com/Liandro13/method-passion-site/pkg/dbmetrics"
	"github.com/Liandro13/method-passion-site/pkg/psqlbuilder"
)

// Repository is the blocked_dates table gateway
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a blocked range. Overlap with bookings is not checked here.
func (r *Repository) Create(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("accommodation_id", "start_date", "end_date", "reason").
		Values(blocked.AccommodationID, blocked.StartDate, blocked.EndDate, blocked.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&blocked.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return nil, ErrAccommodationNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	blocked.CreatedAt = createdAt.Time

	return blocked, nil
}

// List returns blocked ranges ordered by start date
func (r *Repository) List(ctx context.Context, filter domain.BlockedDateFilter) ([]*domain.BlockedDate, error) {
	if filter.Restricted && len(filter.Scope) == 0 {
		return []*domain.BlockedDate{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"d.id",
		"d.accommodation_id",
		"COALESCE(a.name, '')",
		"d.start_date",
		"d.end_date",
		"d.reason",
		"d.created_at",
	).
		From("blocked_dates d").
		LeftJoin("accommodations a ON a.id = d.accommodation_id").
		OrderBy("d.start_date ASC", "d.id ASC")

	if filter.AccommodationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"d.accommodation_id": *filter.AccommodationID})
	}
	if filter.Restricted {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"d.accommodation_id": filter.Scope})
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

	result := make([]*domain.BlockedDate, 0)
	for rows.Next() {
		var d domain.BlockedDate
		var createdAt sql.NullTime
		if err := rows.Scan(&d.ID, &d.AccommodationID, &d.AccommodationName, &d.StartDate, &d.EndDate, &d.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan blocked date: %v", ErrScanRow, err)
		}
		d.CreatedAt = createdAt.Time
		result = append(result, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}

// ListRanges returns the blocked ranges of one accommodation as occupied ranges.
// Inside a transaction the rows are locked.
func (r *Repository) ListRanges(ctx context.Context, accommodationID int64) ([]domain.OccupiedRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "start_date", "end_date").
		From("blocked_dates").
		Where(squirrel.Eq{"accommodation_id": accommodationID}).
		OrderBy("start_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRanges - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRanges - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ranges := make([]domain.OccupiedRange, 0)
	for rows.Next() {
		o := domain.OccupiedRange{Source: domain.OccupancyBlocked}
		if err := rows.Scan(&o.SourceID, &o.Start, &o.End); err != nil {
			return nil, fmt.Errorf("%w: ListRanges - scan range: %v", ErrScanRow, err)
		}
		ranges = append(ranges, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRanges - rows iteration: %v", ErrScanRow, err)
	}

	return ranges, nil
}

// Delete removes a blocked range
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
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
		return ErrBlockedDateNotFound
	}

	return nil
}

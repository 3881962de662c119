package image

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Liandro13/method-passion-site/internal/domain"
	"github.com/Liandro13/method-passion-site/pkg/dbmetrics"
	"github.com/Liandro13/method-passion-site/pkg/psqlbuilder"
)

var imageColumns = []string{
	"id",
	"accommodation_id",
	"blob_key",
	"url",
	"display_order",
	"caption",
	"is_primary",
	"created_at",
}

// Repository is the accommodation_images table gateway
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List returns gallery images in display order, optionally for one accommodation
func (r *Repository) List(ctx context.Context, accommodationID *int64) ([]*domain.AccommodationImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(imageColumns...).
		From("accommodation_images").
		OrderBy("accommodation_id ASC", "display_order ASC", "id ASC")

	if accommodationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"accommodation_id": *accommodationID})
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

	images := make([]*domain.AccommodationImage, 0)
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan image: %v", ErrScanRow, err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return images, nil
}

// GetByID returns one image, locked when called inside a transaction
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AccommodationImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(imageColumns...).
		From("accommodation_images").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	img, err := scanImage(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan image: %v", ErrScanRow, err)
	}

	return img, nil
}

// First returns the image with the lowest display order of an accommodation
func (r *Repository) First(ctx context.Context, accommodationID int64) (*domain.AccommodationImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(imageColumns...).
		From("accommodation_images").
		Where(squirrel.Eq{"accommodation_id": accommodationID}).
		OrderBy("display_order ASC", "id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: First - build select query: %v", ErrBuildQuery, err)
	}

	img, err := scanImage(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: First - scan image: %v", ErrScanRow, err)
	}

	return img, nil
}

// NextDisplayOrder returns max(display_order)+1 and how many images the accommodation has
func (r *Repository) NextDisplayOrder(ctx context.Context, accommodationID int64) (next int, count int, err error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(MAX(display_order), -1) + 1", "COUNT(*)").
		From("accommodation_images").
		Where(squirrel.Eq{"accommodation_id": accommodationID}).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: NextDisplayOrder - build select query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&next, &count); err != nil {
		return 0, 0, fmt.Errorf("%w: NextDisplayOrder - scan: %v", ErrScanRow, err)
	}

	return next, count, nil
}

// Create inserts an image row
func (r *Repository) Create(ctx context.Context, img *domain.AccommodationImage) (*domain.AccommodationImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("accommodation_images").
		Columns("accommodation_id", "blob_key", "url", "display_order", "caption", "is_primary").
		Values(img.AccommodationID, img.BlobKey, img.URL, img.DisplayOrder, img.Caption, img.IsPrimary).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&img.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	img.CreatedAt = createdAt.Time

	return img, nil
}

// UpdateMetadata writes display order and caption when supplied. Primary flags go through SetPrimary.
func (r *Repository) UpdateMetadata(ctx context.Context, id int64, displayOrder *int, caption *string) error {
	if displayOrder == nil && caption == nil {
		return nil
	}

	updateBuilder := psqlbuilder.Update("accommodation_images").Where(squirrel.Eq{"id": id})
	if displayOrder != nil {
		updateBuilder = updateBuilder.Set("display_order", *displayOrder)
	}
	if caption != nil {
		updateBuilder = updateBuilder.Set("caption", *caption)
	}

	return r.execOne(ctx, "UpdateMetadata", updateBuilder)
}

// SetDisplayOrder moves one image; used by the batch reorder
func (r *Repository) SetDisplayOrder(ctx context.Context, id int64, displayOrder int) error {
	return r.execOne(ctx, "SetDisplayOrder", psqlbuilder.Update("accommodation_images").
		Set("display_order", displayOrder).
		Where(squirrel.Eq{"id": id}))
}

// ClearPrimary unsets the primary flag of every image of an accommodation
func (r *Repository) ClearPrimary(ctx context.Context, accommodationID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("accommodation_images").
		Set("is_primary", false).
		Where(squirrel.Eq{"accommodation_id": accommodationID, "is_primary": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ClearPrimary - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ClearPrimary - execute update: %v", ErrExecQuery, err)
	}
	return nil
}

// MarkPrimary sets the primary flag on one image. Call ClearPrimary first in the same transaction.
func (r *Repository) MarkPrimary(ctx context.Context, id int64) error {
	return r.execOne(ctx, "MarkPrimary", psqlbuilder.Update("accommodation_images").
		Set("is_primary", true).
		Where(squirrel.Eq{"id": id}))
}

// Delete removes an image row
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("accommodation_images").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	return checkAffected("Delete", result)
}

func (r *Repository) execOne(ctx context.Context, op string, updateBuilder squirrel.UpdateBuilder) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}
	return checkAffected(op, result)
}

func checkAffected(op string, result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrImageNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanImage(row rowScanner) (*domain.AccommodationImage, error) {
	var img domain.AccommodationImage
	var createdAt sql.NullTime

	err := row.Scan(
		&img.ID,
		&img.AccommodationID,
		&img.BlobKey,
		&img.URL,
		&img.DisplayOrder,
		&img.Caption,
		&img.IsPrimary,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	img.CreatedAt = createdAt.Time

	return &img, nil
}

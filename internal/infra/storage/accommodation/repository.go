package accommodation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Liandro13/method-passion-site/internal/domain"
	"github.com/Liandro13/method-passion-site/pkg/dbmetrics"
	"github.com/Liandro13/method-passion-site/pkg/psqlbuilder"
)

var accommodationColumns = []string{
	"id",
	"name",
	"description_pt",
	"description_en",
	"description_fr",
	"description_de",
	"description_es",
	"max_guests",
	"amenities",
	"image_url",
	"updated_at",
}

// Repository is the accommodations table gateway. Rows are seeded by migrations and never deleted.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List returns every accommodation ordered by ID, without images
func (r *Repository) List(ctx context.Context) ([]*domain.Accommodation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(accommodationColumns...).
		From("accommodations").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Accommodation, 0)
	for rows.Next() {
		acc, err := scanAccommodation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan accommodation: %v", ErrScanRow, err)
		}
		result = append(result, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetByID returns one accommodation
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Accommodation, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByName looks an accommodation up by its display name, ignoring case
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Accommodation, error) {
	return r.getOne(ctx, "GetByName", squirrel.Expr("LOWER(name) = LOWER(?)", name))
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Accommodation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(accommodationColumns...).
		From("accommodations").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	acc, err := scanAccommodation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccommodationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan accommodation: %v", ErrScanRow, op, err)
	}

	return acc, nil
}

// Update writes the supplied content fields
func (r *Repository) Update(ctx context.Context, id int64, patch domain.AccommodationPatch, now time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("accommodations").
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id})

	if patch.Name != nil {
		updateBuilder = updateBuilder.Set("name", *patch.Name)
	}

	for lang := range patch.Descriptions {
		if !slices.Contains(domain.DescriptionLanguages, lang) {
			return fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
		}
	}
	// iterate the language list, not the map, so the column order is stable
	for _, lang := range domain.DescriptionLanguages {
		if text, ok := patch.Descriptions[lang]; ok {
			updateBuilder = updateBuilder.Set("description_"+lang, text)
		}
	}

	if patch.MaxGuests != nil {
		updateBuilder = updateBuilder.Set("max_guests", *patch.MaxGuests)
	}
	if patch.Amenities != nil {
		encoded, err := json.Marshal(*patch.Amenities)
		if err != nil {
			return fmt.Errorf("%w: Update - encode amenities: %v", ErrBuildQuery, err)
		}
		updateBuilder = updateBuilder.Set("amenities", string(encoded))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAccommodationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAccommodation(row rowScanner) (*domain.Accommodation, error) {
	var (
		acc                domain.Accommodation
		pt, en, fr, de, es string
		amenities          []byte
		updatedAt          sql.NullTime
	)

	if err := row.Scan(&acc.ID, &acc.Name, &pt, &en, &fr, &de, &es, &acc.MaxGuests, &amenities, &acc.ImageURL, &updatedAt); err != nil {
		return nil, err
	}

	acc.Descriptions = map[string]string{"pt": pt, "en": en, "fr": fr, "de": de, "es": es}
	acc.Amenities = []string{}
	if len(amenities) > 0 {
		if err := json.Unmarshal(amenities, &acc.Amenities); err != nil {
			return nil, fmt.Errorf("decode amenities: %w", err)
		}
	}
	acc.UpdatedAt = updatedAt.Time

	return &acc, nil
}

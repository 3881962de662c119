package teamuser

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Liandro13/method-passion-site/internal/domain"
	"github.com/Liandro13/method-passion-site/pkg/dbmetrics"
	"github.com/Liandro13/method-passion-site/pkg/psqlbuilder"
)

var teamUserColumns = []string{
	"id",
	"username",
	"password_hash",
	"name",
	"allowed_accommodations",
	"created_at",
}

// Repository is the team_users table gateway
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List returns every team user ordered by username
func (r *Repository) List(ctx context.Context) ([]*domain.TeamUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(teamUserColumns...).
		From("team_users").
		OrderBy("username ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.TeamUser, 0)
	for rows.Next() {
		user, err := scanTeamUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan team user: %v", ErrScanRow, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return users, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TeamUser, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByUsername is used by the team login
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.TeamUser, error) {
	return r.getOne(ctx, "GetByUsername", squirrel.Eq{"username": username})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.TeamUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(teamUserColumns...).
		From("team_users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	user, err := scanTeamUser(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTeamUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan team user: %v", ErrScanRow, op, err)
	}

	return user, nil
}

// Create inserts a team user; a duplicate username yields ErrUsernameTaken
func (r *Repository) Create(ctx context.Context, user *domain.TeamUser) (*domain.TeamUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	allowed, err := encodeIDs(user.AllowedAccommodationIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - encode accommodations: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("team_users").
		Columns("username", "password_hash", "name", "allowed_accommodations").
		Values(user.Username, user.PasswordHash, user.Name, allowed).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&user.ID, &createdAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	user.CreatedAt = createdAt.Time

	return user, nil
}

// Update writes the supplied fields
func (r *Repository) Update(ctx context.Context, id int64, patch domain.TeamUserPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("team_users").Where(squirrel.Eq{"id": id})
	if patch.Name != nil {
		updateBuilder = updateBuilder.Set("name", *patch.Name)
	}
	if patch.PasswordHash != nil {
		updateBuilder = updateBuilder.Set("password_hash", *patch.PasswordHash)
	}
	if patch.AllowedAccommodationIDs != nil {
		allowed, err := encodeIDs(*patch.AllowedAccommodationIDs)
		if err != nil {
			return fmt.Errorf("%w: Update - encode accommodations: %v", ErrBuildQuery, err)
		}
		updateBuilder = updateBuilder.Set("allowed_accommodations", allowed)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	return checkAffected("Update", result)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("team_users").
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

func checkAffected(op string, result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrTeamUserNotFound
	}
	return nil
}

func encodeIDs(ids []int64) (string, error) {
	if ids == nil {
		ids = []int64{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTeamUser(row rowScanner) (*domain.TeamUser, error) {
	var user domain.TeamUser
	var allowed []byte
	var createdAt sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Name,
		&allowed,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	user.CreatedAt = createdAt.Time

	user.AllowedAccommodationIDs = []int64{}
	if len(allowed) > 0 {
		if err := json.Unmarshal(allowed, &user.AllowedAccommodationIDs); err != nil {
			return nil, fmt.Errorf("decode allowed_accommodations: %w", err)
		}
	}

	return &user, nil
}

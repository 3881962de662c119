package session

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

// Repository is the sessions table gateway
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create stores a new session token
func (r *Repository) Create(ctx context.Context, s *domain.Session) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sessions").
		Columns("token", "team_user_id", "expires_at").
		Values(s.Token, s.TeamUserID, s.ExpiresAt).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	s.CreatedAt = createdAt.Time

	return nil
}

// GetActive returns the session for token if it has not expired at now
func (r *Repository) GetActive(ctx context.Context, token string, now time.Time) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("token", "team_user_id", "expires_at", "created_at").
		From("sessions").
		Where(squirrel.Eq{"token": token}).
		Where(squirrel.Gt{"expires_at": now}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Session
	var teamUserID sql.NullInt64
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.Token, &teamUserID, &s.ExpiresAt, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - scan session: %v", ErrScanRow, err)
	}

	if teamUserID.Valid {
		id := teamUserID.Int64
		s.TeamUserID = &id
	}
	s.CreatedAt = createdAt.Time

	return &s, nil
}

// Delete removes one token. Deleting an unknown token is not an error.
func (r *Repository) Delete(ctx context.Context, token string) error {
	_, err := r.deleteWhere(ctx, "Delete", squirrel.Eq{"token": token})
	return err
}

// DeleteByTeamUser drops every session of a team user
func (r *Repository) DeleteByTeamUser(ctx context.Context, teamUserID int64) (int64, error) {
	return r.deleteWhere(ctx, "DeleteByTeamUser", squirrel.Eq{"team_user_id": teamUserID})
}

// DeleteExpired purges sessions whose expiry is not after now
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return r.deleteWhere(ctx, "DeleteExpired", squirrel.LtOrEq{"expires_at": now})
}

func (r *Repository) deleteWhere(ctx context.Context, op string, where squirrel.Sqlizer) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("sessions").
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build delete query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute delete: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	return rowsAffected, nil
}

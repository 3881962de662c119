package session

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liandro13/method-passion-site/internal/domain"
	"github.com/Liandro13/method-passion-site/pkg/ptr"
)

func TestCreate_AdminSessionHasNullUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expires := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sessions")).
		WithArgs("tok", nil, expires).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	err = NewRepository(db).Create(context.Background(), &domain.Session{Token: "tok", ExpiresAt: expires})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActive_TeamSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM sessions WHERE token = $1 AND expires_at > $2")).
		WithArgs("tok", now).
		WillReturnRows(sqlmock.NewRows([]string{"token", "team_user_id", "expires_at", "created_at"}).
			AddRow("tok", int64(4), now.Add(time.Hour), now))

	s, err := NewRepository(db).GetActive(context.Background(), "tok", now)

	require.NoError(t, err)
	assert.Equal(t, ptr.Ptr(int64(4)), s.TeamUserID)
	assert.False(t, s.IsAdmin())
}

func TestGetActive_Expired(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM sessions").
		WillReturnRows(sqlmock.NewRows([]string{"token", "team_user_id", "expires_at", "created_at"}))

	_, err = NewRepository(db).GetActive(context.Background(), "old", time.Now())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteExpired_ReturnsCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE expires_at <= $1")).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := NewRepository(db).DeleteExpired(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

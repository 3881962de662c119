package image

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

var columns = []string{"id", "accommodation_id", "blob_key", "url", "display_order", "caption", "is_primary", "created_at"}

func TestList_FiltersByAccommodation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM accommodation_images WHERE accommodation_id = $1 ORDER BY accommodation_id ASC, display_order ASC, id ASC")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(5), int64(2), "accommodations/2/a.jpg", "/api/v1/images/file/accommodations/2/a.jpg", 0, "", true, time.Now()).
			AddRow(int64(6), int64(2), "accommodations/2/b.jpg", "/api/v1/images/file/accommodations/2/b.jpg", 1, "pool", false, time.Now()))

	images, err := NewRepository(db).List(context.Background(), ptr.Ptr(int64(2)))

	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.True(t, images[0].IsPrimary)
	assert.Equal(t, "pool", images[1].Caption)
}

func TestNextDisplayOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(MAX(display_order), -1) + 1, COUNT(*) FROM accommodation_images WHERE accommodation_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"next", "count"}).AddRow(3, 3))

	next, count, err := NewRepository(db).NextDisplayOrder(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 3, next)
	assert.Equal(t, 3, count)
}

func TestCreate_ReturnsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accommodation_images")).
		WithArgs(int64(1), "k", "/u", 0, "", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(9), time.Now()))

	img, err := NewRepository(db).Create(context.Background(), &domain.AccommodationImage{
		AccommodationID: 1,
		BlobKey:         "k",
		URL:             "/u",
		IsPrimary:       true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), img.ID)
}

func TestPrimarySwap(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE accommodation_images SET is_primary = $1 WHERE accommodation_id = $2 AND is_primary = $3")).
		WithArgs(false, int64(1), true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accommodation_images SET is_primary = $1 WHERE id = $2")).
		WithArgs(true, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewRepository(db)
	require.NoError(t, repo.ClearPrimary(context.Background(), 1))
	require.NoError(t, repo.MarkPrimary(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMetadata_NothingToWrite(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, NewRepository(db).UpdateMetadata(context.Background(), 1, nil, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetDisplayOrder_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE accommodation_images").WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewRepository(db).SetDisplayOrder(context.Background(), 99, 0)
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestFirst_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY display_order ASC, id ASC LIMIT 1")).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err = NewRepository(db).First(context.Background(), 1)
	assert.ErrorIs(t, err, ErrImageNotFound)
}

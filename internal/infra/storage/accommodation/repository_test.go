package accommodation

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

var columns = []string{"id", "name", "description_pt", "description_en", "description_fr", "description_de", "description_es", "max_guests", "amenities", "image_url", "updated_at"}

func TestList_DecodesAmenities(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM accommodations ORDER BY id ASC")).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "Esperança Terrace", "Terraço", "Terrace", "", "", "", 8, []byte(`["wifi","pool"]`), "", time.Now()).
			AddRow(int64(2), "Nattura Gerês Village", "", "", "", "", "", 10, []byte(`[]`), "/legacy.jpg", time.Now()))

	list, err := NewRepository(db).List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []string{"wifi", "pool"}, list[0].Amenities)
	assert.Equal(t, "Terrace", list[0].Descriptions["en"])
	assert.Empty(t, list[1].Amenities)
	assert.Equal(t, "/legacy.jpg", list[1].PrimaryImageURL())
}

func TestGetByName_CaseInsensitive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(name) = LOWER($1) LIMIT 1")).
		WithArgs("esperança terrace").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "Esperança Terrace", "", "", "", "", "", 8, []byte(`[]`), "", time.Now()))

	acc, err := NewRepository(db).GetByName(context.Background(), "esperança terrace")

	require.NoError(t, err)
	assert.Equal(t, int64(1), acc.ID)
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM accommodations").WillReturnRows(sqlmock.NewRows(columns))

	_, err = NewRepository(db).GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrAccommodationNotFound)
}

func TestUpdate_WritesOnlySuppliedFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accommodations SET updated_at = $1, description_pt = $2, description_de = $3, amenities = $4 WHERE id = $5")).
		WithArgs(now, "Casa", "Haus", `["wifi"]`, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewRepository(db).Update(context.Background(), 1, domain.AccommodationPatch{
		Descriptions: map[string]string{"de": "Haus", "pt": "Casa"},
		Amenities:    ptr.Ptr([]string{"wifi"}),
	}, now)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_RejectsUnknownLanguage(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = NewRepository(db).Update(context.Background(), 1, domain.AccommodationPatch{
		Descriptions: map[string]string{"it": "Casa"},
	}, time.Now())
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

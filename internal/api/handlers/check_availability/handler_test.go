package check_availability

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liandro13/method-passion-site/internal/domain"
	checkAvailability "github.com/Liandro13/method-passion-site/internal/usecase/check_availability"
	"github.com/Liandro13/method-passion-site/pkg/logger"
)

type fakeUseCase struct {
	resp *checkAvailability.Response
	err  error
	req  *checkAvailability.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	f.req = req
	return f.resp, f.err
}

func day(s string) time.Time {
	t, _ := domain.ParseDate(s)
	return t
}

func serve(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/check-availability", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_ReportsConflicts(t *testing.T) {
	booked := domain.OccupiedRange{
		DateRange: domain.DateRange{Start: day("2026-03-12"), End: day("2026-03-14")},
		Source:    domain.OccupancyBooking,
		SourceID:  4,
	}
	uc := &fakeUseCase{resp: &checkAvailability.Response{
		AccommodationID: 1,
		Accommodation:   "Esperança Terrace",
		CheckIn:         "2026-03-10",
		CheckOut:        "2026-03-15",
		Available:       false,
		BookedDates:     []domain.OccupiedRange{booked},
		Conflicts:       []domain.OccupiedRange{booked},
	}}

	rec := serve(uc, `{"accommodationName":"Esperança Terrace","checkIn":"2026-03-10","checkOut":"2026-03-15"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Esperança Terrace", uc.req.AccommodationName)
	assert.Zero(t, uc.req.AccommodationID)
	assert.JSONEq(t, `{
		"accommodationId": 1,
		"accommodation": "Esperança Terrace",
		"checkIn": "2026-03-10",
		"checkOut": "2026-03-15",
		"available": false,
		"bookedDates": [{"checkIn": "2026-03-12", "checkOut": "2026-03-14", "source": "booking"}],
		"conflicts": [{"checkIn": "2026-03-12", "checkOut": "2026-03-14", "source": "booking"}]
	}`, rec.Body.String())
}

func TestHandle_AccommodationName(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"name key", `{"accommodationName":"Esperança Terrace","checkIn":"2026-03-15","checkOut":"2026-03-20"}`, "Esperança Terrace"},
		{"alias key", `{"accommodation":"Esperança Terrace","checkIn":"2026-03-15","checkOut":"2026-03-20"}`, "Esperança Terrace"},
		{"name wins over alias", `{"accommodationName":"Nattura Gerês Village","accommodation":"Esperança Terrace"}`, "Nattura Gerês Village"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{resp: &checkAvailability.Response{AccommodationID: 1, Accommodation: tt.want, Available: true}}

			rec := serve(uc, tt.body)

			require.Equal(t, http.StatusOK, rec.Code)
			require.NotNil(t, uc.req)
			assert.Equal(t, tt.want, uc.req.AccommodationName)
		})
	}
}

func TestHandle_MissingAccommodationMessage(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(uc, `{"checkIn":"2026-03-15","checkOut":"2026-03-20"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"accommodationId or accommodationName is required"}`, rec.Body.String())
	assert.Nil(t, uc.req)
}

func TestHandle_WithoutDatesListsOccupiedOnly(t *testing.T) {
	uc := &fakeUseCase{resp: &checkAvailability.Response{
		AccommodationID: 2,
		Accommodation:   "Nattura Gerês Village",
		Available:       true,
	}}

	rec := serve(uc, `{"accommodationId":2}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"accommodationId": 2,
		"accommodation": "Nattura Gerês Village",
		"available": true,
		"bookedDates": [],
		"conflicts": []
	}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"no accommodation", `{"checkIn":"2026-03-10","checkOut":"2026-03-15"}`, nil, http.StatusBadRequest},
		{"malformed date", `{"accommodationId":1,"checkIn":"10/03/2026"}`, nil, http.StatusBadRequest},
		{"inverted range", `{"accommodationId":1,"checkIn":"2026-03-15","checkOut":"2026-03-10"}`,
			fmt.Errorf("%w: checkOut must be after checkIn", checkAvailability.ErrInvalidInput), http.StatusBadRequest},
		{"unknown accommodation", `{"accommodation":"Nowhere"}`, checkAvailability.ErrAccommodationNotFound, http.StatusNotFound},
		{"storage", `{"accommodationId":1}`, checkAvailability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

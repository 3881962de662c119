package check_availability

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liandro13/method-passion-site/internal/domain"
	accommodationRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/accommodation"
	"github.com/Liandro13/method-passion-site/internal/service/availability"
	"github.com/Liandro13/method-passion-site/pkg/logger"
)

type fakeAccommodations struct{}

func (fakeAccommodations) GetByID(_ context.Context, id int64) (*domain.Accommodation, error) {
	if id == 1 {
		return &domain.Accommodation{ID: 1, Name: "Esperança Terrace"}, nil
	}
	return nil, accommodationRepo.ErrAccommodationNotFound
}

func (fakeAccommodations) GetByName(_ context.Context, name string) (*domain.Accommodation, error) {
	if strings.EqualFold(name, "Esperança Terrace") {
		return &domain.Accommodation{ID: 1, Name: "Esperança Terrace"}, nil
	}
	return nil, accommodationRepo.ErrAccommodationNotFound
}

type fixedRanges struct {
	bookings []domain.OccupiedRange
}

func (f fixedRanges) ListConfirmedRanges(_ context.Context, _ int64) ([]domain.OccupiedRange, error) {
	return f.bookings, nil
}

func (f fixedRanges) ListRanges(_ context.Context, _ int64) ([]domain.OccupiedRange, error) {
	return []domain.OccupiedRange{}, nil
}

func newUseCase(t *testing.T) *UseCase {
	t.Helper()
	stay, err := domain.ParseDateRange("2026-03-10", "2026-03-15")
	require.NoError(t, err)

	ranges := fixedRanges{bookings: []domain.OccupiedRange{
		{DateRange: stay, Source: domain.OccupancyBooking, SourceID: 11},
	}}
	log := logger.NewNop()
	return NewUseCase(fakeAccommodations{}, availability.NewService(ranges, ranges, log), log)
}

func TestExecute_MarchScenario(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	resp, err := uc.Execute(ctx, &Request{AccommodationID: 1, CheckIn: "2026-03-14", CheckOut: "2026-03-20"})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, int64(11), resp.Conflicts[0].SourceID)
	assert.Equal(t, "Esperança Terrace", resp.Accommodation)

	resp, err = uc.Execute(ctx, &Request{AccommodationName: "esperança terrace", CheckIn: "2026-03-15", CheckOut: "2026-03-20"})
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Empty(t, resp.Conflicts)
	assert.Len(t, resp.BookedDates, 1)
}

func TestExecute_MissingDatesSkipsCheck(t *testing.T) {
	resp, err := newUseCase(t).Execute(context.Background(), &Request{AccommodationID: 1, CheckIn: "2026-03-11"})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Len(t, resp.BookedDates, 1)
}

func TestExecute_Errors(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{AccommodationID: 1, CheckIn: "2026-03-20", CheckOut: "2026-03-20"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{AccommodationID: 1, CheckIn: "20/03/2026", CheckOut: "2026-03-22"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{CheckIn: "2026-03-20", CheckOut: "2026-03-22"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{AccommodationName: "Unknown Villa"})
	assert.ErrorIs(t, err, ErrAccommodationNotFound)
}

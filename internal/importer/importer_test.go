package importer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liandro13/method-passion-site/internal/domain"
	"github.com/Liandro13/method-passion-site/pkg/logger"
)

type memoryBookings struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	nextID   int64
	failOn   string
}

func (m *memoryBookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn != "" && b.PrimaryName == m.failOn {
		return nil, errors.New("insert failed")
	}
	m.nextID++
	b.ID = m.nextID
	m.bookings = append(m.bookings, b)
	return b, nil
}

func (m *memoryBookings) ListConfirmedRanges(_ context.Context, accommodationID int64) ([]domain.OccupiedRange, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ranges []domain.OccupiedRange
	for _, b := range m.bookings {
		if b.AccommodationID == accommodationID && b.IsConfirmed() {
			ranges = append(ranges, domain.OccupiedRange{DateRange: b.Stay(), Source: domain.OccupancyBooking, SourceID: b.ID})
		}
	}
	return ranges, nil
}

type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func row(line int, name, checkIn, checkOut string) Row {
	in, err := domain.ParseDate(checkIn)
	if err != nil {
		panic(err)
	}
	out, err := domain.ParseDate(checkOut)
	if err != nil {
		panic(err)
	}
	gross := 100.0
	return Row{Line: line, PrimaryName: name, CheckIn: in, CheckOut: out, Guests: 2,
		Financials: domain.Financials{GrossValue: &gross}}
}

func TestImport_SkipsOverlapsWithinTheFile(t *testing.T) {
	store := &memoryBookings{}
	im := New(store, inlineTx{}, logger.NewNop())

	report, err := im.Import(context.Background(), 1, []Row{
		row(4, "C", "2025-03-14", "2025-03-16"),
		row(2, "A", "2025-03-10", "2025-03-15"),
		row(3, "B", "2025-03-15", "2025-03-18"),
	}, false)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, 4, report.Skipped[0].Line)
	assert.Contains(t, report.Skipped[0].Reason, "overlaps line 2")

	require.Len(t, store.bookings, 2)
	assert.Equal(t, "A", store.bookings[0].PrimaryName)
	assert.Equal(t, domain.StatusConfirmed, store.bookings[0].Status)
	assert.Equal(t, 100.0, *store.bookings[0].Financials.ValueNetOfVAT)
}

func TestImport_SkipsOverlapsWithExistingConfirmed(t *testing.T) {
	store := &memoryBookings{}
	confirmed := row(0, "Existing", "2025-03-12", "2025-03-13")
	_, err := store.Create(context.Background(), &domain.Booking{
		AccommodationID: 1, PrimaryName: "Existing", Status: domain.StatusConfirmed,
		CheckIn: confirmed.CheckIn, CheckOut: confirmed.CheckOut,
	})
	require.NoError(t, err)
	pending := row(0, "Pending", "2025-04-01", "2025-04-05")
	_, err = store.Create(context.Background(), &domain.Booking{
		AccommodationID: 1, PrimaryName: "Pending", Status: domain.StatusPending,
		CheckIn: pending.CheckIn, CheckOut: pending.CheckOut,
	})
	require.NoError(t, err)

	im := New(store, inlineTx{}, logger.NewNop())
	report, err := im.Import(context.Background(), 1, []Row{
		row(2, "A", "2025-03-10", "2025-03-15"),
		row(3, "B", "2025-04-02", "2025-04-04"),
	}, false)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, 2, report.Skipped[0].Line)
	assert.Contains(t, report.Skipped[0].Reason, "booking id=1")
	require.Len(t, store.bookings, 3)
	assert.Equal(t, "B", store.bookings[2].PrimaryName)
}

func TestImport_DryRunWritesNothing(t *testing.T) {
	store := &memoryBookings{}
	im := New(store, inlineTx{}, logger.NewNop())

	report, err := im.Import(context.Background(), 1, []Row{
		row(2, "A", "2025-03-10", "2025-03-15"),
		row(3, "B", "2025-03-12", "2025-03-14"),
	}, true)

	require.NoError(t, err)
	assert.True(t, report.DryRun)
	assert.Equal(t, 1, report.Imported)
	assert.Len(t, report.Skipped, 1)
	assert.Empty(t, store.bookings)
}

func TestImport_StopsOnStorageError(t *testing.T) {
	store := &memoryBookings{failOn: "B"}
	im := New(store, inlineTx{}, logger.NewNop())

	report, err := im.Import(context.Background(), 1, []Row{
		row(2, "A", "2025-03-10", "2025-03-15"),
		row(3, "B", "2025-03-20", "2025-03-22"),
	}, false)

	assert.ErrorIs(t, err, ErrImport)
	assert.Equal(t, 1, report.Imported)
}

func TestImport_RejectsBadAccommodation(t *testing.T) {
	im := New(&memoryBookings{}, inlineTx{}, logger.NewNop())

	_, err := im.Import(context.Background(), 0, nil, false)
	assert.ErrorIs(t, err, ErrInvalidAccommodation)
}

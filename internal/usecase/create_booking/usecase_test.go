package create_booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liandro13/method-passion-site/internal/domain"
	accommodationRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/accommodation"
	"github.com/Liandro13/method-passion-site/internal/service/availability"
	"github.com/Liandro13/method-passion-site/pkg/logger"
	"github.com/Liandro13/method-passion-site/pkg/ptr"
)

type memoryStore struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	blocked  []domain.OccupiedRange
	createFn func(b *domain.Booking) error
}

func (m *memoryStore) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createFn != nil {
		if err := m.createFn(b); err != nil {
			return nil, err
		}
	}
	b.ID = int64(len(m.bookings) + 1)
	m.bookings = append(m.bookings, b)
	return b, nil
}

func (m *memoryStore) ListConfirmedRanges(_ context.Context, accommodationID int64) ([]domain.OccupiedRange, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := make([]domain.OccupiedRange, 0)
	for _, b := range m.bookings {
		if b.AccommodationID == accommodationID && b.IsConfirmed() {
			res = append(res, domain.OccupiedRange{DateRange: b.Stay(), Source: domain.OccupancyBooking, SourceID: b.ID})
		}
	}
	return res, nil
}

func (m *memoryStore) ListRanges(_ context.Context, _ int64) ([]domain.OccupiedRange, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.blocked, nil
}

// serialTx runs one transaction at a time, the way SERIALIZABLE isolation
// behaves for two writers touching the same rows
type serialTx struct {
	mu        sync.Mutex
	commitErr error
}

func (tx *serialTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if err := fn(ctx); err != nil {
		return err
	}
	return tx.commitErr
}

type fakeAccommodations struct{}

func (fakeAccommodations) GetByName(_ context.Context, name string) (*domain.Accommodation, error) {
	if name == "Nattura Gerês Village" {
		return &domain.Accommodation{ID: 2, Name: name}, nil
	}
	return nil, accommodationRepo.ErrAccommodationNotFound
}

func date(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newUseCase(store *memoryStore, tx *serialTx) *UseCase {
	log := logger.NewNop()
	return NewUseCase(store, fakeAccommodations{}, availability.NewService(store, store, log), tx, log)
}

func adminIdentity() domain.Identity {
	return domain.Identity{Subject: "admin", Role: domain.RoleAdmin}
}

func confirmedRequest(accommodationID int64, checkIn, checkOut string) *Request {
	return &Request{
		AccommodationID: accommodationID,
		CheckIn:         date(checkIn),
		CheckOut:        date(checkOut),
		Guests:          2,
		PrimaryName:     "Ana Silva",
		Status:          domain.StatusConfirmed,
		GrossValue:      ptr.Ptr(130.0),
		Commission:      ptr.Ptr(20.0),
		BankFee:         ptr.Ptr(2.5),
		VAT:             ptr.Ptr(6.0),
		Platform:        ptr.Ptr("Airbnb"),
	}
}

func TestExecute_DefaultsAndDerivation(t *testing.T) {
	store := &memoryStore{}
	uc := newUseCase(store, &serialTx{})

	resp, err := uc.Execute(context.Background(), adminIdentity(), &Request{
		AccommodationID: 1,
		CheckIn:         date("2026-03-10"),
		CheckOut:        date("2026-03-15"),
		Guests:          2,
		PrimaryName:     "  Ana Silva ",
		GrossValue:      ptr.Ptr(130.0),
		Commission:      ptr.Ptr(20.0),
		BankFee:         ptr.Ptr(2.5),
		VAT:             ptr.Ptr(6.0),
	})

	require.NoError(t, err)
	b := resp.Booking
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, "Ana Silva", b.PrimaryName)
	assert.Equal(t, "", b.Nationality)
	assert.Equal(t, "", b.AdditionalNames)
	assert.Equal(t, "", b.Notes)
	require.NotNil(t, b.Financials.ValueNetOfCommissions)
	assert.InDelta(t, 107.50, *b.Financials.ValueNetOfCommissions, 1e-9)
	assert.InDelta(t, 101.50, *b.Financials.ValueNetOfVAT, 1e-9)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(&memoryStore{}, &serialTx{})

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing accommodation", func(r *Request) { r.AccommodationID = 0 }},
		{"missing check-in", func(r *Request) { r.CheckIn = time.Time{} }},
		{"check-out equals check-in", func(r *Request) { r.CheckOut = r.CheckIn }},
		{"no guests", func(r *Request) { r.Guests = 0 }},
		{"too many guests", func(r *Request) { r.Guests = domain.MaxGuests + 1 }},
		{"blank name", func(r *Request) { r.PrimaryName = "   " }},
		{"unknown status", func(r *Request) { r.Status = "archived" }},
		{"negative fee", func(r *Request) { r.BankFee = ptr.Ptr(-1.0) }},
		{"confirmed without platform", func(r *Request) { r.Platform = nil }},
		{"confirmed with zero gross", func(r *Request) { r.GrossValue = ptr.Ptr(0.0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := confirmedRequest(1, "2026-03-10", "2026-03-15")
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), adminIdentity(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ConflictsOnlyWithConfirmedAndBlocked(t *testing.T) {
	store := &memoryStore{
		bookings: []*domain.Booking{
			{ID: 1, AccommodationID: 1, CheckIn: date("2026-03-10"), CheckOut: date("2026-03-15"), Status: domain.StatusConfirmed},
			{ID: 2, AccommodationID: 1, CheckIn: date("2026-03-20"), CheckOut: date("2026-03-25"), Status: domain.StatusPending},
			{ID: 3, AccommodationID: 1, CheckIn: date("2026-03-25"), CheckOut: date("2026-03-28"), Status: domain.StatusCancelled},
		},
		blocked: []domain.OccupiedRange{
			{DateRange: domain.DateRange{Start: date("2026-04-01"), End: date("2026-04-03")}, Source: domain.OccupancyBlocked, SourceID: 9},
		},
	}
	uc := newUseCase(store, &serialTx{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, adminIdentity(), confirmedRequest(1, "2026-03-14", "2026-03-16"))
	assert.ErrorIs(t, err, ErrDateConflict)

	_, err = uc.Execute(ctx, adminIdentity(), confirmedRequest(1, "2026-04-02", "2026-04-05"))
	assert.ErrorIs(t, err, ErrDateConflict)

	// back-to-back with the confirmed stay, over pending and cancelled ones
	_, err = uc.Execute(ctx, adminIdentity(), confirmedRequest(1, "2026-03-15", "2026-03-28"))
	assert.NoError(t, err)

	// other accommodation is unaffected
	_, err = uc.Execute(ctx, adminIdentity(), confirmedRequest(2, "2026-03-10", "2026-03-15"))
	assert.NoError(t, err)
}

func TestExecute_ConcurrentOverlappingCreates(t *testing.T) {
	store := &memoryStore{}
	uc := newUseCase(store, &serialTx{})

	const writers = 2
	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		results = make([]error, writers)
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, results[i] = uc.Execute(context.Background(), adminIdentity(), confirmedRequest(1, "2026-04-01", "2026-04-05"))
		}(i)
	}
	close(start)
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrDateConflict)
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, store.bookings, 1)
}

func TestExecute_DatabaseConflictsMapToDateConflict(t *testing.T) {
	t.Run("exclusion violation on insert", func(t *testing.T) {
		store := &memoryStore{createFn: func(*domain.Booking) error {
			return fmt.Errorf("insert: %w", &pq.Error{Code: "23P01"})
		}}
		_, err := newUseCase(store, &serialTx{}).Execute(context.Background(), adminIdentity(), confirmedRequest(1, "2026-04-01", "2026-04-05"))
		assert.ErrorIs(t, err, ErrDateConflict)
	})

	t.Run("serialization failure on commit", func(t *testing.T) {
		tx := &serialTx{commitErr: fmt.Errorf("commit: %w", &pq.Error{Code: "40001"})}
		_, err := newUseCase(&memoryStore{}, tx).Execute(context.Background(), adminIdentity(), confirmedRequest(1, "2026-04-01", "2026-04-05"))
		assert.ErrorIs(t, err, ErrDateConflict)
	})

	t.Run("other failures are internal", func(t *testing.T) {
		store := &memoryStore{createFn: func(*domain.Booking) error {
			return fmt.Errorf("connection reset")
		}}
		_, err := newUseCase(store, &serialTx{}).Execute(context.Background(), adminIdentity(), confirmedRequest(1, "2026-04-01", "2026-04-05"))
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestExecute_Access(t *testing.T) {
	uc := newUseCase(&memoryStore{}, &serialTx{})
	ctx := context.Background()
	team := domain.Identity{Subject: "team:4", Role: domain.RoleTeam, AllowedAccommodationIDs: []int64{2}}

	pending := confirmedRequest(1, "2026-05-01", "2026-05-03")
	pending.Status = ""

	_, err := uc.Execute(ctx, team, pending)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = uc.Execute(ctx, domain.GuestIdentity(), confirmedRequest(1, "2026-05-01", "2026-05-03"))
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := uc.Execute(ctx, domain.GuestIdentity(), pending)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
}

func TestExecute_ResolvesAccommodationByName(t *testing.T) {
	uc := newUseCase(&memoryStore{}, &serialTx{})
	req := &Request{
		AccommodationName: "Nattura Gerês Village",
		CheckIn:           date("2026-06-01"),
		CheckOut:          date("2026-06-04"),
		Guests:            4,
		PrimaryName:       "John Smith",
	}

	resp, err := uc.Execute(context.Background(), domain.GuestIdentity(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Booking.AccommodationID)

	req.AccommodationName = "Unknown"
	_, err = uc.Execute(context.Background(), domain.GuestIdentity(), req)
	assert.ErrorIs(t, err, ErrAccommodationNotFound)
}

package cancel_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
	"github.com/k1rasov/GMP-BookingService/internal/events"
	bookingRepo "github.com/k1rasov/GMP-BookingService/internal/infra/storage/booking"
)

// --- Фейки ---

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[int64]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id int64, reason *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if !b.CanBeCancelled() {
		return bookingRepo.ErrNotCancellable
	}
	b.Status = domain.StatusCancelled
	b.CancellationReason = reason
	return nil
}

type fakeSlotRepo struct {
	mu   sync.Mutex
	slot *domain.Slot

	releases int
}

func (r *fakeSlotRepo) Release(_ context.Context, _ int64) (*domain.Slot, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.slot.CurrentBookings == 0 {
		copied := *r.slot
		return &copied, true, nil
	}
	r.slot.CurrentBookings--
	r.releases++
	copied := *r.slot
	return &copied, false, nil
}

type fakeTxManager struct{}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type collectEmitter struct {
	mu     sync.Mutex
	events []events.Event
}

func (e *collectEmitter) Emit(_ context.Context, ev events.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, ev)
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- Хелперы ---

type testEnv struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	slots    *fakeSlotRepo
	emitter  *collectEmitter
}

func newTestEnv(b *domain.Booking, slotOccupancy int) *testEnv {
	env := &testEnv{
		bookings: &fakeBookingRepo{bookings: map[int64]*domain.Booking{b.ID: b}},
		slots: &fakeSlotRepo{slot: &domain.Slot{
			ID:              b.SlotID,
			MaxBookings:     3,
			CurrentBookings: slotOccupancy,
		}},
		emitter: &collectEmitter{},
	}
	env.uc = NewUseCase(
		env.bookings,
		env.slots,
		&fakeTxManager{},
		env.emitter,
		&fixedTime{now: time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
	return env
}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:         1,
		CustomerID: 100,
		WorkshopID: 1,
		SlotID:     10,
		Date:       time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		Status:     domain.StatusConfirmed,
	}
}

// --- Тесты ---

func TestExecute_Success(t *testing.T) {
	env := newTestEnv(confirmedBooking(), 1)
	reason := "plans changed"

	resp, err := env.uc.Execute(context.Background(), Request{
		BookingID:  1,
		CustomerID: 100,
		Reason:     &reason,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, resp.Status)
	assert.False(t, resp.AlreadyCancelled)

	// Место освобождено ровно один раз
	assert.Equal(t, 0, env.slots.slot.CurrentBookings)
	assert.Equal(t, 1, env.slots.releases)

	require.Len(t, env.emitter.events, 1)
	assert.Equal(t, events.OutcomeCancelled, env.emitter.events[0].Outcome)
}

func TestExecute_DoubleCancel_Idempotent(t *testing.T) {
	env := newTestEnv(confirmedBooking(), 1)

	req := Request{BookingID: 1, CustomerID: 100}

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.AlreadyCancelled)

	// Повторная отмена - успех без побочных эффектов
	resp, err = env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.AlreadyCancelled)
	assert.Equal(t, domain.StatusCancelled, resp.Status)

	// Счетчик уменьшен только один раз, событие одно
	assert.Equal(t, 1, env.slots.releases)
	assert.Len(t, env.emitter.events, 1)
}

func TestExecute_BookingNotFound(t *testing.T) {
	env := newTestEnv(confirmedBooking(), 1)

	_, err := env.uc.Execute(context.Background(), Request{BookingID: 99, CustomerID: 100})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_AccessDenied(t *testing.T) {
	env := newTestEnv(confirmedBooking(), 1)

	_, err := env.uc.Execute(context.Background(), Request{BookingID: 1, CustomerID: 200})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Статус и счетчик не тронуты
	assert.Equal(t, 1, env.slots.slot.CurrentBookings)
}

func TestExecute_CompletedBooking_NotCancellable(t *testing.T) {
	b := confirmedBooking()
	b.Date = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC) // раньше fixedTime
	env := newTestEnv(b, 1)

	_, err := env.uc.Execute(context.Background(), Request{BookingID: 1, CustomerID: 100})
	assert.ErrorIs(t, err, ErrNotCancellable)
	assert.Equal(t, 1, env.slots.slot.CurrentBookings)
}

func TestExecute_CancelRestoresCapacity(t *testing.T) {
	env := newTestEnv(confirmedBooking(), 3)

	_, err := env.uc.Execute(context.Background(), Request{BookingID: 1, CustomerID: 100})
	require.NoError(t, err)

	// Слот снова принимает бронирования
	assert.Equal(t, 2, env.slots.slot.CurrentBookings)
	assert.True(t, env.slots.slot.IsAvailable())
}

func TestExecute_ReasonTooLong(t *testing.T) {
	env := newTestEnv(confirmedBooking(), 1)
	long := make([]byte, domain.MaxCancellationReasonLength+1)
	for i := range long {
		long[i] = 'a'
	}
	reason := string(long)

	_, err := env.uc.Execute(context.Background(), Request{
		BookingID:  1,
		CustomerID: 100,
		Reason:     &reason,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

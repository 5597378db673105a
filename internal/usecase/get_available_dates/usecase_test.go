package get_available_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
)

type fakeSlotRepo struct {
	slots []*domain.Slot
}

func (r *fakeSlotRepo) ListByMonth(_ context.Context, _ int64, _ int, _ time.Month, _ domain.ServiceType) ([]*domain.Slot, error) {
	return r.slots, nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Error(string, ...interface{}) {}

func slotOn(day int, current, max int) *domain.Slot {
	return &domain.Slot{
		ID:              int64(day*100 + current),
		WorkshopID:      1,
		Date:            time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC),
		ServiceType:     domain.ServiceBasic,
		MaxBookings:     max,
		CurrentBookings: current,
	}
}

func newUC(slots ...*domain.Slot) *UseCase {
	return NewUseCase(
		&fakeSlotRepo{slots: slots},
		&fixedTime{now: time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
}

func validRequest() Request {
	return Request{
		WorkshopID:  1,
		Year:        2026,
		Month:       time.September,
		ServiceType: domain.ServiceBasic,
	}
}

func TestExecute_ReturnsDatesWithFreeSlots(t *testing.T) {
	uc := newUC(
		slotOn(16, 0, 2),
		slotOn(16, 1, 2), // вторая запись той же даты
		slotOn(20, 0, 1),
		slotOn(25, 0, 3),
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-16", "2026-09-20", "2026-09-25"}, resp.Dates)
}

func TestExecute_FullyBookedDateExcluded(t *testing.T) {
	uc := newUC(
		slotOn(16, 2, 2), // все места заняты
		slotOn(20, 0, 1),
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-20"}, resp.Dates)
}

func TestExecute_DateWithOneFreeSlotIncluded(t *testing.T) {
	// Дата с одним полным и одним свободным слотом остается доступной
	uc := newUC(
		slotOn(16, 2, 2),
		slotOn(16, 1, 2),
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-16"}, resp.Dates)
}

func TestExecute_PastDatesExcluded(t *testing.T) {
	uc := newUC(
		slotOn(10, 0, 2), // раньше fixedTime (15 сентября)
		slotOn(15, 0, 2), // сегодня
		slotOn(20, 0, 2),
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-15", "2026-09-20"}, resp.Dates)
}

func TestExecute_EmptyMonth(t *testing.T) {
	uc := newUC()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Dates)
	assert.NotNil(t, resp.Dates)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUC()

	tests := []struct {
		name string
		req  Request
	}{
		{name: "zero workshop", req: Request{WorkshopID: 0, Year: 2026, Month: 9, ServiceType: domain.ServiceBasic}},
		{name: "bad month", req: Request{WorkshopID: 1, Year: 2026, Month: 13, ServiceType: domain.ServiceBasic}},
		{name: "bad service type", req: Request{WorkshopID: 1, Year: 2026, Month: 9, ServiceType: "deluxe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
	"github.com/k1rasov/GMP-BookingService/pkg/types"
)

type fakeSlotRepo struct {
	slots []*domain.Slot
}

func (r *fakeSlotRepo) ListByDate(_ context.Context, _ int64, _ time.Time, _ domain.ServiceType) ([]*domain.Slot, error) {
	return r.slots, nil
}

type nopLogger struct{}

func (nopLogger) Error(string, ...interface{}) {}

func slotAt(id int64, start, end types.TimeString, current, max int) *domain.Slot {
	return &domain.Slot{
		ID:              id,
		WorkshopID:      1,
		Date:            time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		StartTime:       start,
		EndTime:         end,
		ServiceType:     domain.ServiceBasic,
		Price:           1500,
		MaxBookings:     max,
		CurrentBookings: current,
	}
}

func validRequest() Request {
	return Request{
		WorkshopID:  1,
		Date:        time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		ServiceType: domain.ServiceBasic,
	}
}

func TestExecute_ReturnsAllSlotsWithAvailability(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{slots: []*domain.Slot{
		slotAt(1, "09:00", "10:00", 0, 2),
		slotAt(2, "10:00", "11:00", 1, 2),
	}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)

	first := resp.Slots[0]
	assert.Equal(t, int64(1), first.SlotID)
	assert.Equal(t, types.TimeString("09:00"), first.StartTime)
	assert.Equal(t, 60, first.Duration)
	assert.True(t, first.Available)
	assert.Equal(t, 2, first.AvailableSpots)
	assert.Equal(t, 2, first.TotalSpots)
	assert.Equal(t, 1500.0, first.Price)

	assert.Equal(t, 1, resp.Slots[1].AvailableSpots)
}

func TestExecute_FullSlotListedAsUnavailable(t *testing.T) {
	// Заполненный слот остается в выдаче с Available=false
	uc := NewUseCase(&fakeSlotRepo{slots: []*domain.Slot{
		slotAt(1, "09:00", "10:00", 2, 2),
		slotAt(2, "10:00", "11:00", 0, 2),
	}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)

	full := resp.Slots[0]
	assert.Equal(t, int64(1), full.SlotID)
	assert.False(t, full.Available)
	assert.Equal(t, 0, full.AvailableSpots)
	assert.Equal(t, 2, full.TotalSpots)

	assert.True(t, resp.Slots[1].Available)
}

func TestExecute_JustFilledSlotTurnsUnavailable(t *testing.T) {
	// Слот на одно место: после единственного бронирования он виден
	// в списке как занятый, а не исчезает
	repo := &fakeSlotRepo{slots: []*domain.Slot{slotAt(1, "10:00", "11:00", 0, 1)}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.True(t, resp.Slots[0].Available)

	repo.slots[0].CurrentBookings = 1

	resp, err = uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.False(t, resp.Slots[0].Available)
	assert.Equal(t, 0, resp.Slots[0].AvailableSpots)
}

func TestExecute_Banding(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{slots: []*domain.Slot{
		slotAt(1, "08:00", "09:00", 0, 1),
		slotAt(2, "11:30", "12:30", 0, 1),
		slotAt(3, "12:00", "13:00", 0, 1),
		slotAt(4, "18:30", "19:30", 0, 1),
		slotAt(5, "19:00", "20:00", 0, 1),
		slotAt(6, "07:00", "08:00", 0, 1),
	}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Slots, 6)

	// Граница [8, 12) - morning, [12, 19) - afternoon
	assert.Equal(t, BandMorning, resp.Slots[0].Band)
	assert.Equal(t, BandMorning, resp.Slots[1].Band)
	assert.Equal(t, BandAfternoon, resp.Slots[2].Band)
	assert.Equal(t, BandAfternoon, resp.Slots[3].Band)
	assert.Equal(t, "", resp.Slots[4].Band)
	assert.Equal(t, "", resp.Slots[5].Band)
}

func TestExecute_EmptyDay_IsNotAnError(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), Request{WorkshopID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), Request{
		WorkshopID:  1,
		Date:        time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		ServiceType: "deluxe",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_InvalidDateRejected(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), Request{
		WorkshopID:  1,
		ServiceType: domain.ServiceBasic,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

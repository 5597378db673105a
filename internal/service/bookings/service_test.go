package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
	bookingRepo "github.com/k1rasov/GMP-BookingService/internal/infra/storage/booking"
	"github.com/k1rasov/GMP-BookingService/internal/service/bookings/models"
	"github.com/k1rasov/GMP-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeBookingRepo) GetByCustomerID(_ context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.CustomerID != customerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(bookings ...*domain.Booking) *Service {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return NewService(repo, &fixedTime{now: time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)}, nopLogger{})
}

func booking(id, customerID int64, status domain.BookingStatus, date time.Time) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		CustomerID:  customerID,
		WorkshopID:  1,
		SlotID:      10,
		Date:        date,
		StartTime:   "10:00",
		EndTime:     "11:00",
		ServiceType: domain.ServiceBasic,
		Duration:    60,
		Price:       1500,
		GST:         270,
		Amount:      1770,
		Status:      status,
	}
}

func TestGetByID_Success(t *testing.T) {
	svc := newService(booking(1, 100, domain.StatusConfirmed, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)))

	resp, err := svc.GetByID(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "2026-09-20", resp.Date)
	assert.Equal(t, 1770.0, resp.Amount)
}

func TestGetByID_PastBooking_ShownAsCompleted(t *testing.T) {
	svc := newService(booking(1, 100, domain.StatusConfirmed, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)))

	resp, err := svc.GetByID(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService()

	_, err := svc.GetByID(context.Background(), 1, 100)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_AccessDenied(t *testing.T) {
	svc := newService(booking(1, 100, domain.StatusConfirmed, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)))

	_, err := svc.GetByID(context.Background(), 1, 200)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings_FiltersByStatus(t *testing.T) {
	svc := newService(
		booking(1, 100, domain.StatusConfirmed, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)),
		booking(2, 100, domain.StatusCancelled, time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC)),
		booking(3, 200, domain.StatusConfirmed, time.Date(2026, 9, 22, 0, 0, 0, 0, time.UTC)),
	)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		CustomerID: 100,
		Status:     ptr.Ptr("cancelled"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := newService()

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		CustomerID: 100,
		Status:     ptr.Ptr("unknown"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_Empty(t *testing.T) {
	svc := newService()

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{CustomerID: 100})
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
	assert.NotNil(t, resp.Bookings)
}

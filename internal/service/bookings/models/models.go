package models

import (
	"errors"
	"time"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований клиента
type GetUserBookingsRequest struct {
	CustomerID int64   `json:"customerId"`
	Status     *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	CustomerID  int64  `json:"customerId"`
	WorkshopID  int64  `json:"workshopId"`
	SlotID      int64  `json:"slotId"`
	Date        string `json:"date"`      // "2026-09-15"
	StartTime   string `json:"startTime"` // "10:00"
	EndTime     string `json:"endTime"`   // "11:00"
	ServiceType string `json:"serviceType"`
	Duration    int    `json:"durationMinutes"`

	Price  float64 `json:"price"`
	GST    float64 `json:"gst"`
	Amount float64 `json:"amount"`

	// Status отображаемый статус: прошедшие активные бронирования
	// показываются как completed
	Status string `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain.Booking в response модель
func FromDomainBooking(b *domain.Booking, now time.Time) *BookingResponse {
	resp := &BookingResponse{
		ID:                 b.ID,
		CustomerID:         b.CustomerID,
		WorkshopID:         b.WorkshopID,
		SlotID:             b.SlotID,
		Date:               b.Date.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		ServiceType:        string(b.ServiceType),
		Duration:           b.Duration,
		Price:              b.Price,
		GST:                b.GST,
		Amount:             b.Amount,
		Status:             string(b.DisplayStatus(now)),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

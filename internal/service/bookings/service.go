package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
	bookingRepo "github.com/k1rasov/GMP-BookingService/internal/infra/storage/booking"
	"github.com/k1rasov/GMP-BookingService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	timeProv    TimeProvider
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, timeProv TimeProvider, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		timeProv:    timeProv,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Клиент может видеть только собственное бронирование
func (s *Service) GetByID(ctx context.Context, id int64, customerID int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerID != customerID {
		s.logger.Warn("GetByID: access denied for customer=%d to booking id=%d", customerID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking, s.timeProv.Now()), nil
}

// GetUserBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	now := s.timeProv.Now()
	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *models.FromDomainBooking(b, now))
	}

	return resp, nil
}

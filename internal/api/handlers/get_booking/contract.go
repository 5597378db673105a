package get_booking

import (
	"context"

	"github.com/k1rasov/GMP-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id int64, customerID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_slot_availability

import (
	"context"

	"github.com/k1rasov/GMP-BookingService/internal/service/slots/models"
)

type SlotService interface {
	GetAvailability(ctx context.Context, slotID int64) (*models.SlotAvailabilityResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_available_slots

import (
	"context"
	"time"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListByDate(ctx context.Context, workshopID int64, date time.Time, serviceType domain.ServiceType) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

package cancel_booking

import (
	"context"
	"time"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
	"github.com/k1rasov/GMP-BookingService/internal/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason *string) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Release(ctx context.Context, id int64) (*domain.Slot, bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Emitter интерфейс публикации событий исходов
type Emitter interface {
	Emit(ctx context.Context, e events.Event)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package create_booking

import (
	"context"
	"time"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
	"github.com/k1rasov/GMP-BookingService/internal/events"
	"github.com/k1rasov/GMP-BookingService/internal/integrations/paymentgate"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	TryReserve(ctx context.Context, id int64) (*domain.Slot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// ReconciliationRepository интерфейс репозитория тикетов расхождений
type ReconciliationRepository interface {
	Create(ctx context.Context, t *domain.ReservationLossTicket) (*domain.ReservationLossTicket, error)
	UpdateRefundStatus(ctx context.Context, id string, status domain.RefundStatus) error
}

// PaymentGate интерфейс клиента платежного шлюза
type PaymentGate interface {
	CreateOrder(ctx context.Context, amount float64, currency string) (*paymentgate.Order, error)
	VerifyPayment(ctx context.Context, orderID string) (*paymentgate.Payment, error)
	Refund(ctx context.Context, paymentID string, amount float64) error
	DebitWallet(ctx context.Context, customerID int64, amount float64) (*paymentgate.Payment, error)
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

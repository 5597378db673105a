package resolve_refunds

import (
	"context"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
)

// ReconciliationRepository интерфейс репозитория тикетов расхождений
type ReconciliationRepository interface {
	ListUnresolved(ctx context.Context) ([]*domain.ReservationLossTicket, error)
	UpdateRefundStatus(ctx context.Context, id string, status domain.RefundStatus) error
}

// PaymentGate интерфейс клиента платежного шлюза
type PaymentGate interface {
	Refund(ctx context.Context, paymentID string, amount float64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

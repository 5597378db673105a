package events

import (
	"context"
	"time"
)

// Outcome именованный исход операции бронирования
// Сервис только называет исход - отображение и локализация сообщений
// остаются за потребителями событий
type Outcome string

const (
	OutcomeConfirmed       Outcome = "booking.confirmed"
	OutcomeCancelled       Outcome = "booking.cancelled"
	OutcomeSlotUnavailable Outcome = "booking.slot_unavailable"
	OutcomePaymentDeclined Outcome = "booking.payment_declined"
	OutcomeReservationLost Outcome = "booking.reservation_lost"
)

// Event событие исхода бронирования
type Event struct {
	Outcome    Outcome
	BookingID  int64 // 0, если бронирование не было создано
	CustomerID int64
	SlotID     int64
	WorkshopID int64
	At         time.Time
}

// Emitter интерфейс публикации событий
type Emitter interface {
	Emit(ctx context.Context, e Event)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// LogEmitter публикует события в лог
// Стоит на месте брокера уведомлений: внешний notification-сервис
// подключается заменой этой реализации
type LogEmitter struct {
	log Logger
}

// NewLogEmitter создает эмиттер событий, пишущий в лог
func NewLogEmitter(log Logger) *LogEmitter {
	return &LogEmitter{log: log}
}

// Emit публикует событие
func (e *LogEmitter) Emit(_ context.Context, ev Event) {
	e.log.Info("event: outcome=%s, booking_id=%d, customer_id=%d, slot_id=%d, workshop_id=%d",
		ev.Outcome, ev.BookingID, ev.CustomerID, ev.SlotID, ev.WorkshopID)
}

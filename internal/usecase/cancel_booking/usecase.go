package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
	"github.com/k1rasov/GMP-BookingService/internal/events"
	"github.com/k1rasov/GMP-BookingService/internal/infra/storage/booking"
)

// UseCase отмена бронирования: идемпотентная смена статуса и освобождение
// места в слоте в одной транзакции
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	emitter     Emitter
	timeProv    TimeProvider
	logger      Logger
}

// NewUseCase создает новый экземпляр UseCase для отмены бронирования
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	emitter Emitter,
	timeProv TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		emitter:     emitter,
		timeProv:    timeProv,
		logger:      logger,
	}
}

// Execute выполняет отмену бронирования
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var resp *Response

	// 2. Отмена и освобождение места в одной транзакции: статус и счетчик
	// слота меняются вместе или не меняются вовсе
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Чтение бронирования с блокировкой строки
		b, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, booking.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: get booking: %v", ErrInternal, err)
		}

		// 2.2. Проверка владельца
		if b.CustomerID != req.CustomerID {
			return ErrAccessDenied
		}

		// 2.3. Повторная отмена - no-op: место уже освобождено
		if b.IsCancelled() {
			resp = &Response{
				BookingID:        b.ID,
				SlotID:           b.SlotID,
				Status:           b.Status,
				AlreadyCancelled: true,
			}
			return nil
		}

		// 2.4. Завершенные бронирования не отменяются
		if b.DisplayStatus(uc.timeProv.Now()) == domain.StatusCompleted {
			return ErrNotCancellable
		}

		// 2.5. Смена статуса
		if err := uc.bookingRepo.Cancel(txCtx, req.BookingID, req.Reason); err != nil {
			if errors.Is(err, booking.ErrNotCancellable) {
				return ErrNotCancellable
			}
			return fmt.Errorf("%w: cancel booking: %v", ErrInternal, err)
		}
		b.Status = domain.StatusCancelled

		// 2.6. Освобождение места в слоте
		_, alreadyReleased, err := uc.slotRepo.Release(txCtx, b.SlotID)
		if err != nil {
			return fmt.Errorf("%w: release slot: %v", ErrInternal, err)
		}
		if alreadyReleased {
			// Счетчик уже на нуле: расхождение данных, отмена при этом валидна
			uc.logger.Warn("CancelBooking: slot %d counter already at zero, booking_id=%d",
				b.SlotID, b.ID)
		}

		resp = &Response{
			BookingID: b.ID,
			SlotID:    b.SlotID,
			Status:    b.Status,
		}

		uc.emit(txCtx, b)
		return nil
	})

	if err != nil {
		return nil, err
	}

	if !resp.AlreadyCancelled {
		uc.logger.Info("CancelBooking: booking %d cancelled, customer_id=%d, slot_id=%d",
			resp.BookingID, req.CustomerID, resp.SlotID)
	}

	return resp, nil
}

func (uc *UseCase) emit(ctx context.Context, b *domain.Booking) {
	uc.emitter.Emit(ctx, events.Event{
		Outcome:    events.OutcomeCancelled,
		BookingID:  b.ID,
		CustomerID: b.CustomerID,
		SlotID:     b.SlotID,
		WorkshopID: b.WorkshopID,
		At:         uc.timeProv.Now(),
	})
}

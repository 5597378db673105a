package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
	"github.com/k1rasov/GMP-BookingService/internal/events"
	"github.com/k1rasov/GMP-BookingService/internal/infra/storage/slot"
	"github.com/k1rasov/GMP-BookingService/internal/integrations/paymentgate"
)

// UseCase создание бронирования: проверка слота, оплата, атомарное
// закрепление места и запись бронирования
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	reconRepo   ReconciliationRepository
	paymentGate PaymentGate
	txManager   TransactionManager
	emitter     Emitter
	timeProv    TimeProvider
	logger      Logger

	currency string
	// initialStatus статус нового бронирования: confirmed по умолчанию,
	// pending при включенном ручном подтверждении мастерской
	initialStatus domain.BookingStatus
}

// NewUseCase создает новый экземпляр UseCase для создания бронирования
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	reconRepo ReconciliationRepository,
	paymentGate PaymentGate,
	txManager TransactionManager,
	emitter Emitter,
	timeProv TimeProvider,
	currency string,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:      slotRepo,
		bookingRepo:   bookingRepo,
		reconRepo:     reconRepo,
		paymentGate:   paymentGate,
		txManager:     txManager,
		emitter:       emitter,
		timeProv:      timeProv,
		logger:        logger,
		currency:      currency,
		initialStatus: domain.StatusConfirmed,
	}
}

// RequireManualConfirmation переключает новые бронирования в статус pending
// до подтверждения мастерской
func (uc *UseCase) RequireManualConfirmation() {
	uc.initialStatus = domain.StatusPending
}

// Execute выполняет создание бронирования
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Перепроверка слота непосредственно перед оплатой: календарь у
	// клиента мог устареть
	sl, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slot.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CreateBooking: failed to get slot %d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: get slot: %v", ErrInternal, err)
	}

	if !sl.IsAvailable() || uc.isPastDate(sl.Date) {
		uc.emit(ctx, events.OutcomeSlotUnavailable, 0, req.CustomerID, sl)
		return nil, ErrSlotUnavailable
	}

	// 3. Расчет стоимости: цена слота + налог
	charge := domain.ComputeCharge(sl.Price)

	// 4. Оплата до резервирования места. Бесплатные слоты пропускают шлюз
	var payment *paymentgate.Payment
	if charge.Amount > 0 {
		payment, err = uc.pay(ctx, req, charge.Amount)
		if err != nil {
			if errors.Is(err, ErrPaymentDeclined) {
				uc.emit(ctx, events.OutcomePaymentDeclined, 0, req.CustomerID, sl)
			}
			return nil, err
		}
	}

	// 5. Атомарное закрепление места и создание бронирования в одной транзакции
	var booking *domain.Booking
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reserved, err := uc.slotRepo.TryReserve(txCtx, req.SlotID)
		if err != nil {
			return err
		}

		booking, err = uc.bookingRepo.Create(txCtx, uc.buildBooking(req, reserved, charge, payment))
		return err
	})

	if err != nil {
		// 6. Компенсация: оплата прошла, но место не закреплено. Тикет
		// расхождения и возврат обязаны состояться до ответа клиенту
		if payment != nil {
			uc.compensate(ctx, req, sl, payment, charge.Amount, err)
		}

		if errors.Is(err, slot.ErrSlotFull) {
			uc.emit(ctx, events.OutcomeReservationLost, 0, req.CustomerID, sl)
			return nil, ErrReservationLost
		}

		uc.logger.Error("CreateBooking: reservation transaction failed for slot %d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: reserve slot: %v", ErrInternal, err)
	}

	uc.emit(ctx, events.OutcomeConfirmed, booking.ID, req.CustomerID, sl)
	uc.logger.Info("CreateBooking: booking %d created, customer_id=%d, slot_id=%d, amount=%.2f",
		booking.ID, req.CustomerID, req.SlotID, charge.Amount)

	return &Response{
		BookingID:   booking.ID,
		WorkshopID:  booking.WorkshopID,
		SlotID:      booking.SlotID,
		Date:        booking.Date.Format(domain.DateFormat),
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
		ServiceType: booking.ServiceType,
		Duration:    booking.Duration,
		Price:       booking.Price,
		GST:         booking.GST,
		Amount:      booking.Amount,
		Status:      booking.Status,
	}, nil
}

// pay проводит оплату выбранным способом. Отказ шлюза возвращается как
// ErrPaymentDeclined с причиной провайдера
func (uc *UseCase) pay(ctx context.Context, req Request, amount float64) (*paymentgate.Payment, error) {
	switch req.PaymentMethod {
	case PaymentMethodWallet:
		payment, err := uc.paymentGate.DebitWallet(ctx, req.CustomerID, amount)
		if err != nil {
			uc.logger.Error("CreateBooking: wallet debit failed, customer_id=%d: %v", req.CustomerID, err)
			return nil, fmt.Errorf("%w: debit wallet: %v", ErrInternal, err)
		}
		if !payment.Success {
			return nil, fmt.Errorf("%w: %s", ErrPaymentDeclined, payment.Reason)
		}
		return payment, nil

	case PaymentMethodOnline:
		order, err := uc.paymentGate.CreateOrder(ctx, amount, uc.currency)
		if err != nil {
			uc.logger.Error("CreateBooking: create order failed, customer_id=%d: %v", req.CustomerID, err)
			return nil, fmt.Errorf("%w: create order: %v", ErrInternal, err)
		}

		payment, err := uc.paymentGate.VerifyPayment(ctx, order.ID)
		if err != nil {
			uc.logger.Error("CreateBooking: verify payment failed, order_id=%s: %v", order.ID, err)
			return nil, fmt.Errorf("%w: verify payment: %v", ErrInternal, err)
		}
		if !payment.Success {
			return nil, fmt.Errorf("%w: %s", ErrPaymentDeclined, payment.Reason)
		}
		return payment, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, req.PaymentMethod)
}

// compensate фиксирует тикет расхождения и возвращает платеж.
// Тикет пишется до возврата: даже при отказе возврата списание не пропадает
// из виду, тикет останется в очереди ручного разбора
func (uc *UseCase) compensate(ctx context.Context, req Request, sl *domain.Slot, payment *paymentgate.Payment, amount float64, cause error) {
	ticket := &domain.ReservationLossTicket{
		ID:           uuid.NewString(),
		CustomerID:   req.CustomerID,
		SlotID:       req.SlotID,
		WorkshopID:   sl.WorkshopID,
		OrderID:      payment.OrderID,
		PaymentID:    payment.PaymentID,
		Amount:       amount,
		Reason:       cause.Error(),
		RefundStatus: domain.RefundPending,
	}

	if _, err := uc.reconRepo.Create(ctx, ticket); err != nil {
		uc.logger.Error("CreateBooking: failed to create reconciliation ticket, payment_id=%s: %v",
			payment.PaymentID, err)
	}

	if err := uc.paymentGate.Refund(ctx, payment.PaymentID, amount); err != nil {
		uc.logger.Error("CreateBooking: refund failed, ticket_id=%s, payment_id=%s: %v",
			ticket.ID, payment.PaymentID, err)

		if err := uc.reconRepo.UpdateRefundStatus(ctx, ticket.ID, domain.RefundFailed); err != nil {
			uc.logger.Error("CreateBooking: failed to mark refund failed, ticket_id=%s: %v", ticket.ID, err)
		}
		return
	}

	if err := uc.reconRepo.UpdateRefundStatus(ctx, ticket.ID, domain.RefundDone); err != nil {
		uc.logger.Error("CreateBooking: failed to mark refund done, ticket_id=%s: %v", ticket.ID, err)
	}

	uc.logger.Warn("CreateBooking: reservation lost after payment, customer_id=%d, slot_id=%d, refunded %.2f",
		req.CustomerID, req.SlotID, amount)
}

// buildBooking собирает бронирование из зарезервированного слота
func (uc *UseCase) buildBooking(req Request, sl *domain.Slot, charge domain.Charge, payment *paymentgate.Payment) *domain.Booking {
	var paymentID *string
	if payment != nil {
		id := payment.PaymentID
		paymentID = &id
	}

	return &domain.Booking{
		CustomerID:  req.CustomerID,
		WorkshopID:  sl.WorkshopID,
		SlotID:      sl.ID,
		Date:        sl.Date,
		StartTime:   sl.StartTime,
		EndTime:     sl.EndTime,
		ServiceType: sl.ServiceType,
		Duration:    sl.ServiceType.DurationMinutes(),
		Price:       charge.Price,
		GST:         charge.GST,
		Amount:      charge.Amount,
		Status:      uc.initialStatus,
		PaymentID:   paymentID,
	}
}

func (uc *UseCase) emit(ctx context.Context, outcome events.Outcome, bookingID, customerID int64, sl *domain.Slot) {
	uc.emitter.Emit(ctx, events.Event{
		Outcome:    outcome,
		BookingID:  bookingID,
		CustomerID: customerID,
		SlotID:     sl.ID,
		WorkshopID: sl.WorkshopID,
		At:         uc.timeProv.Now(),
	})
}

// isPastDate проверяет, что дата слота уже прошла (по календарным суткам)
func (uc *UseCase) isPastDate(date time.Time) bool {
	now := uc.timeProv.Now()
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

package resolve_refunds

import (
	"context"
	"fmt"
	"time"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
)

// Response итог прохода по неразрешенным тикетам
type Response struct {
	Resolved int
	Failed   int
}

// UseCase дожимает возвраты по тикетам расхождений: тикеты, возврат по
// которым не прошел в момент компенсации (pending или refund_failed),
// периодически пробуются снова, пока провайдер не примет возврат
type UseCase struct {
	reconRepo   ReconciliationRepository
	paymentGate PaymentGate
	logger      Logger
}

// NewUseCase создает новый экземпляр UseCase дожима возвратов
func NewUseCase(reconRepo ReconciliationRepository, paymentGate PaymentGate, logger Logger) *UseCase {
	return &UseCase{
		reconRepo:   reconRepo,
		paymentGate: paymentGate,
		logger:      logger,
	}
}

// Execute выполняет один проход по неразрешенным тикетам
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Все тикеты, по которым возврат еще не подтвержден
	tickets, err := uc.reconRepo.ListUnresolved(ctx)
	if err != nil {
		uc.logger.Error("ResolveRefunds: failed to list unresolved tickets: %v", err)
		return nil, fmt.Errorf("%w: list unresolved: %v", ErrInternal, err)
	}

	if len(tickets) == 0 {
		return &Response{}, nil
	}

	// 2. Повторный возврат по каждому. Отказ одного тикета не
	// останавливает проход по остальным
	resp := &Response{}
	for _, t := range tickets {
		if err := uc.resolve(ctx, t.ID, t.PaymentID, t.Amount); err != nil {
			resp.Failed++
			continue
		}
		resp.Resolved++
	}

	uc.logger.Info("ResolveRefunds: pass finished, resolved=%d, failed=%d", resp.Resolved, resp.Failed)
	return resp, nil
}

// Run запускает периодические проходы до отмены контекста
func (uc *UseCase) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := uc.Execute(ctx); err != nil {
				uc.logger.Error("ResolveRefunds: pass failed: %v", err)
			}
		}
	}
}

func (uc *UseCase) resolve(ctx context.Context, ticketID, paymentID string, amount float64) error {
	if err := uc.paymentGate.Refund(ctx, paymentID, amount); err != nil {
		uc.logger.Warn("ResolveRefunds: refund retry failed, ticket_id=%s, payment_id=%s: %v",
			ticketID, paymentID, err)

		if err := uc.reconRepo.UpdateRefundStatus(ctx, ticketID, domain.RefundFailed); err != nil {
			uc.logger.Error("ResolveRefunds: failed to mark refund failed, ticket_id=%s: %v", ticketID, err)
		}
		return err
	}

	if err := uc.reconRepo.UpdateRefundStatus(ctx, ticketID, domain.RefundDone); err != nil {
		uc.logger.Error("ResolveRefunds: failed to mark refund done, ticket_id=%s: %v", ticketID, err)
		return err
	}

	return nil
}

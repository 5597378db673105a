package get_available_slots

import (
	"context"
	"fmt"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
)

// UseCase получение свободных слотов мастерской на дату
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр UseCase для получения свободных слотов
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute выполняет получение свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Слоты на дату, упорядочены по времени начала
	slots, err := uc.slotRepo.ListByDate(ctx, req.WorkshopID, req.Date, req.ServiceType)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots, workshop_id=%d, date=%s: %v",
			req.WorkshopID, req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: list slots: %v", ErrInternal, err)
	}

	// 3. Отдаются все слоты даты: заполненный слот остается в списке с
	// Available=false, иначе клиент не отличит "занято" от "не существует".
	// Пустой результат - валидный ответ, а не ошибка
	result := make([]SlotInfo, 0, len(slots))
	for _, s := range slots {
		result = append(result, SlotInfo{
			SlotID:         s.ID,
			StartTime:      s.StartTime,
			EndTime:        s.EndTime,
			Duration:       s.ServiceType.DurationMinutes(),
			Band:           timeBand(s.StartTime),
			Available:      s.IsAvailable(),
			AvailableSpots: s.SpotsLeft(),
			TotalSpots:     s.MaxBookings,
			Price:          s.Price,
		})
	}

	return &Response{Slots: result}, nil
}

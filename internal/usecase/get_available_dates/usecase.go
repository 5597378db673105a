package get_available_dates

import (
	"context"
	"fmt"
	"time"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
)

// UseCase получение дат месяца, в которых остались свободные слоты
type UseCase struct {
	slotRepo SlotRepository
	timeProv TimeProvider
	logger   Logger
}

// NewUseCase создает новый экземпляр UseCase для получения доступных дат
func NewUseCase(slotRepo SlotRepository, timeProv TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		timeProv: timeProv,
		logger:   logger,
	}
}

// Execute выполняет получение доступных дат
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Все слоты месяца по мастерской и типу услуги,
	// упорядочены по дате и времени начала
	slots, err := uc.slotRepo.ListByMonth(ctx, req.WorkshopID, req.Year, req.Month, req.ServiceType)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to list slots, workshop_id=%d, %d-%02d: %v",
			req.WorkshopID, req.Year, req.Month, err)
		return nil, fmt.Errorf("%w: list slots: %v", ErrInternal, err)
	}

	// 3. Дата попадает в ответ, если в ней есть хотя бы один свободный слот.
	// Прошедшие даты отбрасываются
	now := uc.timeProv.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	dates := make([]string, 0)
	var last string

	for _, s := range slots {
		if !s.IsAvailable() {
			continue
		}

		day := time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), 0, 0, 0, 0, time.UTC)
		if day.Before(today) {
			continue
		}

		// Слоты приходят отсортированными, дубликаты дат идут подряд
		d := s.Date.Format(domain.DateFormat)
		if d != last {
			dates = append(dates, d)
			last = d
		}
	}

	return &Response{Dates: dates}, nil
}

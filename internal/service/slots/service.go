package slots

import (
	"context"
	"errors"
	"fmt"

	slotRepo "github.com/k1rasov/GMP-BookingService/internal/infra/storage/slot"
	"github.com/k1rasov/GMP-BookingService/internal/service/slots/models"
)

// Service сервис для чтения слотов
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// GetAvailability получает текущую доступность слота.
// Снимок без блокировок: данные могут устареть в момент ответа,
// окончательная проверка происходит при бронировании
func (s *Service) GetAvailability(ctx context.Context, slotID int64) (*models.SlotAvailabilityResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetAvailability: slot id=%d not found", slotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetAvailability: repository error for slot id=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: GetAvailability - repository error: %v", ErrInternal, err)
	}

	return &models.SlotAvailabilityResponse{
		SlotID:         slot.ID,
		Available:      slot.IsAvailable(),
		AvailableSpots: slot.SpotsLeft(),
		TotalSpots:     slot.MaxBookings,
	}, nil
}

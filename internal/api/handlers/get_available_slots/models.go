package get_available_slots

import (
	usecase "github.com/k1rasov/GMP-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота с текущей доступностью
type SlotResponse struct {
	SlotID         int64   `json:"slotId"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Duration       int     `json:"durationMinutes"`
	Band           string  `json:"band,omitempty"`
	Available      bool    `json:"isAvailable"`
	AvailableSpots int     `json:"availableSpots"`
	TotalSpots     int     `json:"totalSpots"`
	Price          float64 `json:"price"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *usecase.Response) *SlotsResponse {
	out := &SlotsResponse{Slots: make([]SlotResponse, 0, len(resp.Slots))}

	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			SlotID:         s.SlotID,
			StartTime:      s.StartTime.String(),
			EndTime:        s.EndTime.String(),
			Duration:       s.Duration,
			Band:           s.Band,
			Available:      s.Available,
			AvailableSpots: s.AvailableSpots,
			TotalSpots:     s.TotalSpots,
			Price:          s.Price,
		})
	}

	return out
}

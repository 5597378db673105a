package get_available_slots

import (
	"time"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
	"github.com/k1rasov/GMP-BookingService/pkg/types"
)

// Request запрос свободных слотов на дату
type Request struct {
	WorkshopID  int64
	Date        time.Time
	ServiceType domain.ServiceType
}

// SlotInfo слот с текущей доступностью
type SlotInfo struct {
	SlotID         int64
	StartTime      types.TimeString
	EndTime        types.TimeString
	Duration       int // minutes
	Band           string
	Available      bool
	AvailableSpots int
	TotalSpots     int
	Price          float64
}

// Response все слоты даты, упорядоченные по времени начала
type Response struct {
	Slots []SlotInfo
}

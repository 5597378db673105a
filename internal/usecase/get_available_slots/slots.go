package get_available_slots

import "github.com/k1rasov/GMP-BookingService/pkg/types"

// Интервалы суток для группировки слотов на витрине
const (
	BandMorning   = "morning"
	BandAfternoon = "afternoon"
)

// timeBand возвращает интервал суток для времени начала слота:
// [8, 12) - morning, [12, 19) - afternoon, остальное без группы
func timeBand(start types.TimeString) string {
	h, err := start.Hour()
	if err != nil {
		return ""
	}
	switch {
	case h >= 8 && h < 12:
		return BandMorning
	case h >= 12 && h < 19:
		return BandAfternoon
	default:
		return ""
	}
}

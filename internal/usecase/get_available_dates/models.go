package get_available_dates

import (
	"time"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
)

// Request запрос доступных дат месяца
type Request struct {
	WorkshopID  int64
	Year        int
	Month       time.Month
	ServiceType domain.ServiceType
}

// Response список дат месяца, в которых есть хотя бы один свободный слот.
// Даты отсортированы по возрастанию, формат YYYY-MM-DD
type Response struct {
	Dates []string
}

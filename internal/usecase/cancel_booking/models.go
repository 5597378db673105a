package cancel_booking

import "github.com/k1rasov/GMP-BookingService/internal/domain"

// Request запрос на отмену бронирования
type Request struct {
	BookingID  int64
	CustomerID int64
	Reason     *string
}

// Response результат отмены бронирования
type Response struct {
	BookingID        int64
	SlotID           int64
	Status           domain.BookingStatus
	AlreadyCancelled bool
}

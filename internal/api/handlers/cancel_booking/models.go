package cancel_booking

import (
	usecase "github.com/k1rasov/GMP-BookingService/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model. Тело запроса опционально
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *CancelBookingRequest) ToUseCaseRequest(bookingID, customerID int64) usecase.Request {
	return usecase.Request{
		BookingID:  bookingID,
		CustomerID: customerID,
		Reason:     r.Reason,
	}
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	BookingID        int64  `json:"bookingId"`
	Status           string `json:"status"`
	AlreadyCancelled bool   `json:"alreadyCancelled"`
}

package create_booking

import (
	usecase "github.com/k1rasov/GMP-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotID        int64  `json:"slotId"`
	PaymentMethod string `json:"paymentMethod"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) usecase.Request {
	return usecase.Request{
		CustomerID:    customerID,
		SlotID:        r.SlotID,
		PaymentMethod: usecase.PaymentMethod(r.PaymentMethod),
	}
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	BookingID   int64   `json:"bookingId"`
	WorkshopID  int64   `json:"workshopId"`
	SlotID      int64   `json:"slotId"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	ServiceType string  `json:"serviceType"`
	Duration    int     `json:"durationMinutes"`
	Price       float64 `json:"price"`
	GST         float64 `json:"gst"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *usecase.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID:   resp.BookingID,
		WorkshopID:  resp.WorkshopID,
		SlotID:      resp.SlotID,
		Date:        resp.Date,
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		ServiceType: string(resp.ServiceType),
		Duration:    resp.Duration,
		Price:       resp.Price,
		GST:         resp.GST,
		Amount:      resp.Amount,
		Status:      string(resp.Status),
	}
}

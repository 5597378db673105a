package create_booking

import (
	"github.com/k1rasov/GMP-BookingService/internal/domain"
	"github.com/k1rasov/GMP-BookingService/pkg/types"
)

// PaymentMethod способ оплаты бронирования
type PaymentMethod string

const (
	PaymentMethodOnline PaymentMethod = "online"
	PaymentMethodWallet PaymentMethod = "wallet"
)

// IsValid проверяет корректность способа оплаты
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodOnline || m == PaymentMethodWallet
}

// Request запрос на создание бронирования
type Request struct {
	CustomerID    int64
	SlotID        int64
	PaymentMethod PaymentMethod
}

// Response результат создания бронирования
type Response struct {
	BookingID   int64
	WorkshopID  int64
	SlotID      int64
	Date        string
	StartTime   types.TimeString
	EndTime     types.TimeString
	ServiceType domain.ServiceType
	Duration    int
	Price       float64
	GST         float64
	Amount      float64
	Status      domain.BookingStatus
}

package create_booking

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("usecase.create_booking: invalid input")
	// ErrSlotNotFound слот не найден
	ErrSlotNotFound = errors.New("usecase.create_booking: slot not found")
	// ErrSlotUnavailable слот полностью занят или в прошлом
	ErrSlotUnavailable = errors.New("usecase.create_booking: slot unavailable")
	// ErrInvalidPaymentMethod неподдерживаемый способ оплаты
	ErrInvalidPaymentMethod = errors.New("usecase.create_booking: invalid payment method")
	// ErrPaymentDeclined платеж отклонен платежным шлюзом
	ErrPaymentDeclined = errors.New("usecase.create_booking: payment declined")
	// ErrReservationLost слот заняли после успешной оплаты, средства возвращаются
	ErrReservationLost = errors.New("usecase.create_booking: reservation lost after payment")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("usecase.create_booking: internal error")
)

package cancel_booking

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("usecase.cancel_booking: invalid input")
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("usecase.cancel_booking: booking not found")
	// ErrAccessDenied бронирование принадлежит другому клиенту
	ErrAccessDenied = errors.New("usecase.cancel_booking: access denied")
	// ErrNotCancellable бронирование уже завершено и не может быть отменено
	ErrNotCancellable = errors.New("usecase.cancel_booking: booking is not cancellable")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("usecase.cancel_booking: internal error")
)

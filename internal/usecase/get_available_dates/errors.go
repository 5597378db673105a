package get_available_dates

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("usecase.get_available_dates: invalid input")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("usecase.get_available_dates: internal error")
)

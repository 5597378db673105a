package get_available_slots

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("usecase.get_available_slots: invalid input")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("usecase.get_available_slots: internal error")
)

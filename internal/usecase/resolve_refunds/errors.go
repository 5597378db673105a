package resolve_refunds

import "errors"

var (
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("usecase.resolve_refunds: internal error")
)

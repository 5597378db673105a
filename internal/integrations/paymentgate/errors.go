package paymentgate

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заказ не найден у провайдера
	ErrOrderNotFound = errors.New("paymentgate client: order not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentgate client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("paymentgate client: invalid response")
)

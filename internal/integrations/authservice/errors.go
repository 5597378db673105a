package authservice

import "errors"

var (
	// ErrSessionInvalid возвращается при истекшей или недействительной сессии
	// Вызывающая сторона превращает её в 401 - повторный логин решается снаружи
	ErrSessionInvalid = errors.New("authservice client: session is invalid or expired")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("authservice client: invalid response")
)

package reconciliation

import "errors"

var (
	// ErrTicketNotFound возвращается, когда тикет не найден
	ErrTicketNotFound = errors.New("reconciliation.repository: ticket not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reconciliation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reconciliation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reconciliation.repository: failed to scan row")
)

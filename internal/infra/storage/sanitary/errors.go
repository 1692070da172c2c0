package sanitary

import "errors"

var (
	// ErrDayNotFound возвращается при удалении несуществующего санитарного дня
	ErrDayNotFound = errors.New("sanitary.repository: sanitary day not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("sanitary.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("sanitary.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("sanitary.repository: failed to scan row")
)

package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявка не найдена
	// (или уже переведена в другой статус)
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrEncodeRelatives возвращается при ошибке сериализации списка посетителей
	ErrEncodeRelatives = errors.New("booking.repository: failed to encode relatives")
)

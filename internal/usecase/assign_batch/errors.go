package assign_batch

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assign_batch: invalid input data")

	// ErrColonyConfigMissing возвращается, когда у колонии нет записи
	// настроек: количество комнат неизвестно, пакет не запускается
	ErrColonyConfigMissing = errors.New("assign_batch: colony settings not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_batch: internal error")
)

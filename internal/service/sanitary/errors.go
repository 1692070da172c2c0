package sanitary

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("sanitary: invalid input data")

	// ErrDateInPast возвращается при попытке назначить санитарный день задним числом
	ErrDateInPast = errors.New("sanitary: date is in the past")

	// ErrDayNotFound возвращается при удалении дня, которого нет в календаре
	ErrDayNotFound = errors.New("sanitary: sanitary day not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sanitary: internal error")
)

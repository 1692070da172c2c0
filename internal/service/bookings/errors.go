package bookings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrBookingNotFound возвращается, если заявка не найдена
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAlreadyProcessed возвращается при попытке отклонить не-pending заявку
	ErrAlreadyProcessed = errors.New("bookings: booking already processed")

	// ErrCannotCancel возвращается, если заявка уже в терминальном статусе
	ErrCannotCancel = errors.New("bookings: booking cannot be cancelled")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)

package settings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("settings: invalid input data")

	// ErrSettingsNotFound возвращается, когда для колонии нет записи настроек
	ErrSettingsNotFound = errors.New("settings: colony settings not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("settings: internal error")
)

package assign_single

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assign_single: invalid input data")

	// ErrBookingNotFound возвращается, если заявка не найдена в колонии
	ErrBookingNotFound = errors.New("assign_single: booking not found")

	// ErrAlreadyProcessed возвращается, если заявка уже не в статусе pending
	ErrAlreadyProcessed = errors.New("assign_single: booking already processed")

	// ErrColonyConfigMissing возвращается, когда у колонии нет записи настроек
	ErrColonyConfigMissing = errors.New("assign_single: colony settings not found")

	// ErrLeadTimeViolation возвращается, если выбранная дата нарушает
	// минимальный срок от подачи заявки до начала свидания
	ErrLeadTimeViolation = errors.New("assign_single: assigned date violates lead time")

	// ErrSanitaryConflict возвращается, если выбранная дата задевает санитарный день
	ErrSanitaryConflict = errors.New("assign_single: assigned date conflicts with sanitary day")

	// ErrNoRoomAvailable возвращается, если на выбранную дату нет свободной комнаты
	ErrNoRoomAvailable = errors.New("assign_single: no room available on assigned date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_single: internal error")
)

package telegram

import "errors"

var (
	// ErrSendMessage возвращается, когда Bot API отклонил отправку сообщения
	ErrSendMessage = errors.New("telegram client: failed to send message")

	// ErrInvalidResponse возвращается при некорректном ответе Bot API
	ErrInvalidResponse = errors.New("telegram client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("telegram client: internal error")
)

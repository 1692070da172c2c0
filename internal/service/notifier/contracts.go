package notifier

import "context"

// TelegramClient интерфейс клиента доставки сообщений
type TelegramClient interface {
	SendMessage(ctx context.Context, chatID, text string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package sanitary

import (
	"context"
	"time"
)

// SanitaryRepository интерфейс репозитория санитарных дней
type SanitaryRepository interface {
	ListByColony(ctx context.Context, colonyID int64) ([]time.Time, error)
	Add(ctx context.Context, colonyID int64, day time.Time) error
	Remove(ctx context.Context, colonyID int64, day time.Time) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package assign_batch

import (
	"context"
	"time"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	GetOldestPending(ctx context.Context, colonyID int64, limit int) ([]*domain.Booking, error)
	GetApprovedStays(ctx context.Context, colonyID int64, from, to time.Time) ([]domain.RoomStay, error)
	Assign(ctx context.Context, colonyID, id int64, a *domain.Assignment) error
}

// SettingsRepository интерфейс репозитория настроек колоний
type SettingsRepository interface {
	GetByColony(ctx context.Context, colonyID int64) (*domain.ColonySettings, error)
}

// SanitaryRepository интерфейс репозитория санитарных дней
type SanitaryRepository interface {
	ListRange(ctx context.Context, colonyID int64, from, to time.Time) ([]time.Time, error)
}

// Notifier интерфейс сервиса уведомлений (fire-and-forget)
type Notifier interface {
	BookingApproved(b *domain.Booking, a *domain.Assignment, adminChatID string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

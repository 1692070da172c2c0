package bookings

import (
	"context"
	"time"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	GetByID(ctx context.Context, colonyID, id int64) (*domain.Booking, error)
	ListActive(ctx context.Context, colonyID int64) ([]*domain.Booking, error)
	UpdateVisitType(ctx context.Context, colonyID, id int64, visitType domain.VisitType) error
	Reject(ctx context.Context, colonyID, id int64, reason string) error
	Cancel(ctx context.Context, colonyID, id int64) error
	GetApprovedExpired(ctx context.Context, colonyID int64, before time.Time) ([]*domain.Booking, error)
	Close(ctx context.Context, colonyID, id int64) error
	DeleteClosedBefore(ctx context.Context, colonyID int64, cutoff time.Time) (int64, error)
}

// SettingsRepository интерфейс репозитория настроек колоний
type SettingsRepository interface {
	GetByColony(ctx context.Context, colonyID int64) (*domain.ColonySettings, error)
}

// Notifier интерфейс сервиса уведомлений (fire-and-forget)
type Notifier interface {
	BookingRejected(b *domain.Booking, reason, adminChatID string)
	BookingCanceled(b *domain.Booking, adminChatID string)
	VisitDaysChanged(b *domain.Booking, days int, adminChatID string)
	BookingClosed(b *domain.Booking, adminChatID string)
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

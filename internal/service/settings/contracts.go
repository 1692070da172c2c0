package settings

import (
	"context"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек колоний
type SettingsRepository interface {
	GetByColony(ctx context.Context, colonyID int64) (*domain.ColonySettings, error)
	UpdateRoomsCount(ctx context.Context, colonyID int64, roomsCount int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

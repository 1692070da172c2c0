package change_rooms

import (
	"context"

	"github.com/test-dunyo/meet-booking-service/internal/service/settings/models"
)

type SettingsService interface {
	UpdateRooms(ctx context.Context, colonyID int64, req *models.UpdateRoomsRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

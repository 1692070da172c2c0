package change_sanitary

import (
	"context"

	"github.com/test-dunyo/meet-booking-service/internal/service/sanitary/models"
)

type SanitaryService interface {
	Toggle(ctx context.Context, colonyID int64, req *models.ToggleDayRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

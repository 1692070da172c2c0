package get_sanitary

import (
	"context"

	"github.com/test-dunyo/meet-booking-service/internal/service/sanitary/models"
)

type SanitaryService interface {
	List(ctx context.Context, colonyID int64) (*models.DayListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

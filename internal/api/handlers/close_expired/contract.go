package close_expired

import (
	"context"

	"github.com/test-dunyo/meet-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	CloseExpired(ctx context.Context, colonyID int64) (*models.CloseExpiredResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_bookings

import (
	"context"

	"github.com/test-dunyo/meet-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, colonyID int64) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

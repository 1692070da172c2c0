package change_visit_days

import (
	"context"

	"github.com/test-dunyo/meet-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	ChangeVisitDays(ctx context.Context, colonyID, id int64, req *models.ChangeVisitDaysRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

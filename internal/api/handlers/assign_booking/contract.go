package assign_booking

import (
	"context"

	assignSingle "github.com/test-dunyo/meet-booking-service/internal/usecase/assign_single"
)

type AssignSingleUseCase interface {
	Execute(ctx context.Context, req *assignSingle.Request) (*assignSingle.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

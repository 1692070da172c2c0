package assign_batch

import (
	"context"

	assignBatch "github.com/test-dunyo/meet-booking-service/internal/usecase/assign_batch"
)

type AssignBatchUseCase interface {
	Execute(ctx context.Context, req *assignBatch.Request) (*assignBatch.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

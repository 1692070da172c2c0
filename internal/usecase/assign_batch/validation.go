package assign_batch

import (
	"fmt"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ColonyID <= 0 {
		return fmt.Errorf("%w: colonyID must be positive", ErrInvalidInput)
	}

	if req.Count < domain.MinBatchCount || req.Count > domain.MaxBatchCount {
		return fmt.Errorf("%w: count must be between %d and %d",
			ErrInvalidInput, domain.MinBatchCount, domain.MaxBatchCount)
	}

	return nil
}

package assign_single

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ColonyID <= 0 {
		return fmt.Errorf("%w: colonyID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.AssignedDate.IsZero() {
		return fmt.Errorf("%w: assignedDate is required", ErrInvalidInput)
	}

	return nil
}

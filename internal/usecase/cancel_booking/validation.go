package cancel_booking

import (
	"fmt"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customer id must be positive", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	return nil
}

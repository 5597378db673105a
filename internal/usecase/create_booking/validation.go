package create_booking

import "fmt"

// validateRequest проверяет корректность входных данных
func validateRequest(req Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customer id must be positive", ErrInvalidInput)
	}

	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slot id must be positive", ErrInvalidInput)
	}

	if !req.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidPaymentMethod, req.PaymentMethod)
	}

	return nil
}

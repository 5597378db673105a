package get_available_slots

import "fmt"

// validateRequest проверяет корректность входных данных
func validateRequest(req Request) error {
	if req.WorkshopID <= 0 {
		return fmt.Errorf("%w: workshop id must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.ServiceType)
	}

	return nil
}

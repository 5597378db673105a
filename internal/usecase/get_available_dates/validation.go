package get_available_dates

import (
	"fmt"
	"time"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req Request) error {
	if req.WorkshopID <= 0 {
		return fmt.Errorf("%w: workshop id must be positive", ErrInvalidInput)
	}

	if req.Year < 2000 || req.Year > 2100 {
		return fmt.Errorf("%w: year %d is out of range", ErrInvalidInput, req.Year)
	}

	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month %d is out of range", ErrInvalidInput, req.Month)
	}

	if !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.ServiceType)
	}

	return nil
}

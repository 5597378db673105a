package domain

import "errors"

var (
	// ErrInvalidServiceType возвращается при неизвестном типе услуги
	ErrInvalidServiceType = errors.New("invalid service type")
)

// ServiceType represents the kind of workshop service a slot is defined for.
// Each type has a fixed duration that determines the slot's end time.
type ServiceType string

const (
	ServiceBasic   ServiceType = "basic"   // 1 hour
	ServiceInterim ServiceType = "interim" // 2 hours
	ServiceFull    ServiceType = "full"    // 3 hours
)

// DurationMinutes returns the fixed duration for the service type
func (s ServiceType) DurationMinutes() int {
	switch s {
	case ServiceBasic:
		return 60
	case ServiceInterim:
		return 120
	case ServiceFull:
		return 180
	default:
		return 0
	}
}

// IsValid returns true if the service type is one of the known values
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceBasic, ServiceInterim, ServiceFull:
		return true
	default:
		return false
	}
}

// ParseServiceType converts a string into a ServiceType with validation
func ParseServiceType(s string) (ServiceType, error) {
	st := ServiceType(s)
	if !st.IsValid() {
		return "", ErrInvalidServiceType
	}
	return st, nil
}

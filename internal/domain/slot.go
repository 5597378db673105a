package domain

import (
	"time"

	"github.com/k1rasov/GMP-BookingService/pkg/types"
)

// Slot represents one bookable time window for one workshop on one date
// for one service type. Slots are defined by the workshop side; this service
// only reads them and moves the occupancy counter.
//
// Invariant: 0 <= CurrentBookings <= MaxBookings, enforced by the storage
// layer (conditional updates + check constraints), never by client-side
// read-then-write.
type Slot struct {
	ID              int64
	WorkshopID      int64
	Date            time.Time // calendar date, no time component
	StartTime       types.TimeString
	EndTime         types.TimeString
	ServiceType     ServiceType
	Price           float64 // pre-tax price set by the workshop
	MaxBookings     int
	CurrentBookings int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable returns true if the slot still has free capacity
func (s *Slot) IsAvailable() bool {
	return s.CurrentBookings < s.MaxBookings
}

// SpotsLeft returns the number of free capacity units
func (s *Slot) SpotsLeft() int {
	left := s.MaxBookings - s.CurrentBookings
	if left < 0 {
		return 0
	}
	return left
}

// IsFull returns true if the slot has no free capacity
func (s *Slot) IsFull() bool {
	return !s.IsAvailable()
}

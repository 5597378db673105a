package domain

import (
	"time"

	"github.com/k1rasov/GMP-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"

	// StatusCompleted is a derived display status: a confirmed or pending
	// booking whose date has passed. It is never persisted.
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a customer's commitment to a Slot.
// A booking in status pending or confirmed holds exactly one unit of
// occupancy on its slot; a cancelled booking holds none.
type Booking struct {
	ID          int64
	CustomerID  int64
	WorkshopID  int64
	SlotID      int64
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	ServiceType ServiceType
	Duration    int // minutes

	// Charge breakdown, denormalized at booking time
	Price  float64 // pre-tax
	GST    float64 // Price * GSTRate
	Amount float64 // Price + GST, what was actually charged

	Status    BookingStatus
	PaymentID *string // provider payment reference, nil for zero-amount bookings

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HoldsSlot returns true if the booking currently holds a unit of slot occupancy
func (b *Booking) HoldsSlot() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsPast returns true if the booking's date is before today
func (b *Booking) IsPast(now time.Time) bool {
	dateOnly := time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(), 0, 0, 0, 0, b.Date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// DisplayStatus returns the status to show to the user: a pending or
// confirmed booking whose date has passed is shown as completed.
// The stored status is left untouched.
func (b *Booking) DisplayStatus(now time.Time) BookingStatus {
	if b.HoldsSlot() && b.IsPast(now) {
		return StatusCompleted
	}
	return b.Status
}

package domain

// GSTRate фиксированная ставка налога, применяется ко всем бронированиям
const GSTRate = 0.18

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinMaxBookings              = 1
	MaxMaxBookings              = 100
	MaxCancellationReasonLength = 500
)

// ActiveStatuses статусы бронирований, удерживающих место в слоте
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

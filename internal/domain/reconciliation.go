package domain

import "time"

// RefundStatus состояние возврата по тикету расхождения
type RefundStatus string

const (
	RefundPending RefundStatus = "pending"
	RefundDone    RefundStatus = "refunded"
	RefundFailed  RefundStatus = "refund_failed"
)

// ReservationLossTicket is a durable record of a paid-but-unbooked attempt:
// the customer's payment succeeded but the slot was taken by a competing
// booking before the reserve step. The ticket must exist before the attempt
// returns to the caller, so the charge is never silently dropped even if the
// refund call itself fails.
type ReservationLossTicket struct {
	ID           string // uuid
	CustomerID   int64
	SlotID       int64
	WorkshopID   int64
	OrderID      string // provider order reference, empty for wallet payments
	PaymentID    string
	Amount       float64
	Reason       string
	RefundStatus RefundStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

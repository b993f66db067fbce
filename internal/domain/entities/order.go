package entities

import "time"

// Order is a billing charge against a client for a service window.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// Invariants:
//   - StartDate < EndDate.
//   - PaidAt is set iff IsPaid.
//   - ClientID is immutable after creation.
//   - Validity (FUTURA/VIGENTE/VENCIDA) is never stored; it is derived from
//     the wall clock on every read (see OrderValidity).

type Order struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Value       float64    `json:"value"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	IsPaid      bool       `json:"is_paid"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	IsActive    bool       `json:"is_active"`
	ClientID    string     `json:"client_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// OverdueUnpaid reports whether the order window has ended without payment.
// Strict comparison: an order is not overdue at the exact EndDate instant.
// This is the delinquency rule, stricter than VENCIDA which ignores payment.
func (o Order) OverdueUnpaid(now time.Time) bool {
	return now.After(o.EndDate) && !o.IsPaid
}

package entities

import "time"

// FinancialStatus is the aggregate payment situation of a client.
//
// Domain notes:
//   - The value is denormalized onto the client record and must be
//     re-derived from the client's orders after every order mutation
//     (see usecase.FinancialReconciler).
//   - ADIMPLENTE = no overdue unpaid order; INADIMPLENTE = at least one.

type FinancialStatus string

const (
	FinancialStatusAdimplente   FinancialStatus = "ADIMPLENTE"
	FinancialStatusInadimplente FinancialStatus = "INADIMPLENTE"
)

// Client is the billing client persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email (only items with a non-empty email)
//
// Lifecycle:
//   - Clients are never hard-deleted; deactivation flips IsActive and stamps
//     CanceledAt, reactivation clears it.

type Client struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	IsActive        bool            `json:"is_active"`
	FinancialStatus FinancialStatus `json:"financial_status"`
	CanceledAt      *time.Time      `json:"canceled_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

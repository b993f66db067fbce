package interfaces

import (
	"context"
	"time"

	"gestao_cobranca/internal/domain/entities"
)

// OrderPatch is a partial field update for an order. Payment and activity
// changes go through the dedicated methods so PaidAt stays consistent with
// IsPaid. ClientID is immutable and therefore absent.
type OrderPatch struct {
	Description *string
	Value       *float64
	StartDate   *time.Time
	EndDate     *time.Time
}

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// ListByClientID feeds the financial reconciliation and must return the full
// order set of the client; ordering is irrelevant to the aggregation.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Order, error)
	Update(ctx context.Context, id string, patch OrderPatch) (entities.Order, error)
	UpdatePayment(ctx context.Context, id string, isPaid bool, paidAt *time.Time) (entities.Order, error)
	UpdateActive(ctx context.Context, id string, isActive bool) (entities.Order, error)
}

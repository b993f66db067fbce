package request

import (
	"strings"
	"time"

	"gestao_cobranca/internal/usecase"
	"gestao_cobranca/internal/usecase/interfaces"
)

type OrderRequest struct {
	Description string    `json:"description" binding:"required"`
	Value       float64   `json:"value" binding:"required,gt=0"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	IsPaid      bool      `json:"isPaid"`
	ClientID    string    `json:"clientId" binding:"required"`
}

func (r OrderRequest) ToCommand() usecase.CreateOrderCommand {
	return usecase.CreateOrderCommand{
		Description: strings.TrimSpace(r.Description),
		Value:       r.Value,
		StartDate:   r.StartDate.UTC(),
		EndDate:     r.EndDate.UTC(),
		IsPaid:      r.IsPaid,
		ClientID:    strings.TrimSpace(r.ClientID),
	}
}

// UpdateOrderRequest carries a partial update. The client an order belongs to
// is immutable, so clientId is not accepted here.
type UpdateOrderRequest struct {
	Description *string    `json:"description"`
	Value       *float64   `json:"value"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

func (r UpdateOrderRequest) ToPatch() interfaces.OrderPatch {
	patch := interfaces.OrderPatch{
		Description: trimmed(r.Description),
		Value:       r.Value,
	}
	if r.StartDate != nil {
		utc := r.StartDate.UTC()
		patch.StartDate = &utc
	}
	if r.EndDate != nil {
		utc := r.EndDate.UTC()
		patch.EndDate = &utc
	}
	return patch
}

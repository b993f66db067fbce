package response

import (
	"time"

	"gestao_cobranca/internal/domain/entities"
)

// brDateLayout matches the formatted dates the per-client listing exposes.
const brDateLayout = "02/01/2006"

type OrderResponse struct {
	ID             string     `json:"id"`
	Description    string     `json:"description"`
	Value          float64    `json:"value"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        time.Time  `json:"endDate"`
	IsPaid         bool       `json:"isPaid"`
	PaidAt         *time.Time `json:"paidAt,omitempty"`
	IsActive       bool       `json:"isActive"`
	ClientID       string     `json:"clientId"`
	ValidityStatus string     `json:"validityStatus"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// FromOrder computes the validity status against now. Validity is never
// stored, so every response derives it fresh.
func FromOrder(o entities.Order, now time.Time) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		Description:    o.Description,
		Value:          o.Value,
		StartDate:      o.StartDate,
		EndDate:        o.EndDate,
		IsPaid:         o.IsPaid,
		PaidAt:         o.PaidAt,
		IsActive:       o.IsActive,
		ClientID:       o.ClientID,
		ValidityStatus: string(entities.OrderValidity(o, now)),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order, now time.Time) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o, now))
	}
	return out
}

// ClientOrderResponse is the per-client listing shape. It adds dd/MM/yyyy
// renderings of the order window alongside the raw timestamps.
type ClientOrderResponse struct {
	OrderResponse
	StartDateFormatted string `json:"startDateFormatted"`
	EndDateFormatted   string `json:"endDateFormatted"`
}

func FromClientOrder(o entities.Order, now time.Time) ClientOrderResponse {
	return ClientOrderResponse{
		OrderResponse:      FromOrder(o, now),
		StartDateFormatted: o.StartDate.Format(brDateLayout),
		EndDateFormatted:   o.EndDate.Format(brDateLayout),
	}
}

func FromClientOrders(orders []entities.Order, now time.Time) []ClientOrderResponse {
	out := make([]ClientOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromClientOrder(o, now))
	}
	return out
}

// TogglePaymentResponse pairs the mutated order with its owning client so the
// caller sees the reconciled financial status without a second request.
type TogglePaymentResponse struct {
	Order  OrderResponse  `json:"order"`
	Client ClientResponse `json:"client"`
}

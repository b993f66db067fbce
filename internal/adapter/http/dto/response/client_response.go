package response

import (
	"time"

	"gestao_cobranca/internal/domain/entities"
)

type ClientResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	IsActive        bool       `json:"isActive"`
	FinancialStatus string     `json:"financialStatus"`
	CanceledAt      *time.Time `json:"canceledAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		IsActive:        c.IsActive,
		FinancialStatus: string(c.FinancialStatus),
		CanceledAt:      c.CanceledAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}

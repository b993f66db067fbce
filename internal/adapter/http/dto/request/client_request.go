package request

import (
	"strings"

	"gestao_cobranca/internal/usecase"
	"gestao_cobranca/internal/usecase/interfaces"
)

type ClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

func (r ClientRequest) ToCommand() usecase.CreateClientCommand {
	return usecase.CreateClientCommand{
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
		Phone: strings.TrimSpace(r.Phone),
	}
}

// UpdateClientRequest carries a partial update. Absent fields keep the stored
// value.
type UpdateClientRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone"`
}

func (r UpdateClientRequest) ToPatch() interfaces.ClientPatch {
	return interfaces.ClientPatch{
		Name:  trimmed(r.Name),
		Email: trimmed(r.Email),
		Phone: trimmed(r.Phone),
	}
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

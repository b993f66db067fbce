package request

import (
	"strings"

	"gestao_cobranca/internal/domain/entities"
	"gestao_cobranca/internal/usecase"
)

type UserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

func (r UserRequest) ToCommand() usecase.CreateUserCommand {
	return usecase.CreateUserCommand{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
		Role:     entities.Role(strings.TrimSpace(r.Role)),
	}
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Role     *string `json:"role"`
}

func (r UpdateUserRequest) ToCommand() usecase.UpdateUserCommand {
	cmd := usecase.UpdateUserCommand{
		Name:     trimmed(r.Name),
		Email:    trimmed(r.Email),
		Password: r.Password,
	}
	if r.Role != nil {
		role := entities.Role(strings.TrimSpace(*r.Role))
		cmd.Role = &role
	}
	return cmd
}

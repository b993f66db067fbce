package interfaces

import (
	"context"

	"gestao_cobranca/internal/domain/entities"
)

// UserPatch is a partial field update for a backoffice user. PasswordHash is
// already hashed by the use case when present.
type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *entities.Role
}

// IUserRepository abstracts DynamoDB persistence for User.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (entities.User, error)
	UpdateActive(ctx context.Context, id string, isActive bool) (entities.User, error)
}

package interfaces

import (
	"context"
	"time"

	"gestao_cobranca/internal/domain/entities"
)

// ClientPatch is a partial field update. Nil pointers leave the stored value
// untouched; ClientID-equivalent identity fields are not patchable.
type ClientPatch struct {
	Name  *string
	Email *string
	Phone *string
}

// IClientRepository abstracts DynamoDB persistence for Client.
//
// Lookup methods return the zero value (empty ID) when nothing matches; the
// use cases translate that into their not-found errors.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetByEmail(ctx context.Context, email string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, id string, patch ClientPatch) (entities.Client, error)
	UpdateActive(ctx context.Context, id string, isActive bool, canceledAt *time.Time) (entities.Client, error)
	UpdateFinancialStatus(ctx context.Context, id string, status entities.FinancialStatus) (entities.Client, error)
}

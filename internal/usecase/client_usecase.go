package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestao_cobranca/internal/domain/entities"
	"gestao_cobranca/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrClientEmailInUse  = errors.New("client email already in use")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidClientName = errors.New("invalid client name")
)

// CreateClientCommand carries the fields accepted on client creation.
// Email and Phone are optional; a non-empty email must be globally unique.
type CreateClientCommand struct {
	Name  string
	Email string
	Phone string
}

// IClientUseCase exposes client operations.
//
// ToggleFinancialStatus is a deliberate manual override: it flips the stored
// status without consulting the client's orders, so the derived-only property
// of FinancialStatus is suspended until the next order mutation re-derives it.

type IClientUseCase interface {
	Create(ctx context.Context, cmd CreateClientCommand) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetByEmail(ctx context.Context, email string) (entities.Client, error)
	Update(ctx context.Context, id string, patch interfaces.ClientPatch) (entities.Client, error)
	ToggleActive(ctx context.Context, id string) (entities.Client, error)
	ToggleFinancialStatus(ctx context.Context, id string) (entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, cmd CreateClientCommand) (entities.Client, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Email = strings.TrimSpace(cmd.Email)
	cmd.Phone = strings.TrimSpace(cmd.Phone)
	if cmd.Name == "" {
		return entities.Client{}, ErrInvalidClientName
	}

	// Email uniqueness is a precondition: a conflict aborts before any write.
	if cmd.Email != "" {
		existing, err := u.repo.GetByEmail(ctx, cmd.Email)
		if err != nil {
			return entities.Client{}, err
		}
		if existing.ID != "" {
			return entities.Client{}, ErrClientEmailInUse
		}
	}

	now := time.Now().UTC()
	c := entities.Client{
		ID:              uuid.NewString(),
		Name:            cmd.Name,
		Email:           cmd.Email,
		Phone:           cmd.Phone,
		IsActive:        true,
		FinancialStatus: entities.FinancialStatusAdimplente,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) GetByEmail(ctx context.Context, email string) (entities.Client, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return entities.Client{}, ErrClientNotFound
	}

	c, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) Update(ctx context.Context, id string, patch interfaces.ClientPatch) (entities.Client, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}

	if patch.Email != nil && strings.TrimSpace(*patch.Email) != "" {
		email := strings.TrimSpace(*patch.Email)
		owner, err := u.repo.GetByEmail(ctx, email)
		if err != nil {
			return entities.Client{}, err
		}
		if owner.ID != "" && owner.ID != current.ID {
			return entities.Client{}, ErrClientEmailInUse
		}
		patch.Email = &email
	}

	updated, err := u.repo.Update(ctx, current.ID, patch)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

func (u *ClientUseCase) ToggleActive(ctx context.Context, id string) (entities.Client, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}

	var canceledAt *time.Time
	if current.IsActive {
		now := time.Now().UTC()
		canceledAt = &now
	}

	updated, err := u.repo.UpdateActive(ctx, current.ID, !current.IsActive, canceledAt)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

func (u *ClientUseCase) ToggleFinancialStatus(ctx context.Context, id string) (entities.Client, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}

	status := entities.FinancialStatusInadimplente
	if current.FinancialStatus == entities.FinancialStatusInadimplente {
		status = entities.FinancialStatusAdimplente
	}

	updated, err := u.repo.UpdateFinancialStatus(ctx, current.ID, status)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"gestao_cobranca/internal/domain/entities"
	"gestao_cobranca/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidOrderID          = errors.New("invalid order id")
	ErrInvalidOrderDescription = errors.New("invalid order description")
	ErrInvalidOrderValue       = errors.New("invalid order value")
	ErrInvalidOrderPeriod      = errors.New("order start date must be before end date")
)

// CreateOrderCommand carries the fields accepted on order creation.
type CreateOrderCommand struct {
	Description string
	Value       float64
	StartDate   time.Time
	EndDate     time.Time
	IsPaid      bool
	ClientID    string
}

// IOrderUseCase exposes order operations.
//
// Every mutation re-derives the owning client's financial status after its
// own write commits. Reconciliation failures do not fail the mutation.

type IOrderUseCase interface {
	Create(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Order, error)
	Update(ctx context.Context, id string, patch interfaces.OrderPatch) (entities.Order, error)
	TogglePayment(ctx context.Context, id string) (entities.Order, error)
	ToggleActivity(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	repo       interfaces.IOrderRepository
	clients    interfaces.IClientRepository
	reconciler IFinancialReconciler
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, clients interfaces.IClientRepository, reconciler IFinancialReconciler) *OrderUseCase {
	return &OrderUseCase{repo: repo, clients: clients, reconciler: reconciler}
}

func (u *OrderUseCase) Create(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error) {
	cmd.Description = strings.TrimSpace(cmd.Description)
	cmd.ClientID = strings.TrimSpace(cmd.ClientID)
	if cmd.Description == "" {
		return entities.Order{}, ErrInvalidOrderDescription
	}
	if cmd.Value <= 0 {
		return entities.Order{}, ErrInvalidOrderValue
	}
	if !cmd.StartDate.Before(cmd.EndDate) {
		return entities.Order{}, ErrInvalidOrderPeriod
	}
	if cmd.ClientID == "" {
		return entities.Order{}, ErrInvalidClientID
	}

	// Orders only exist under a resolvable client.
	client, err := u.clients.GetByID(ctx, cmd.ClientID)
	if err != nil {
		return entities.Order{}, err
	}
	if client.ID == "" {
		return entities.Order{}, ErrClientNotFound
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:          uuid.NewString(),
		Description: cmd.Description,
		Value:       cmd.Value,
		StartDate:   cmd.StartDate.UTC(),
		EndDate:     cmd.EndDate.UTC(),
		IsPaid:      cmd.IsPaid,
		IsActive:    true,
		ClientID:    cmd.ClientID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if cmd.IsPaid {
		o.PaidAt = &now
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}

	u.reconcile(ctx, created.ClientID)
	return created, nil
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	return u.repo.List(ctx)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.Order, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}

	orders, err := u.repo.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].StartDate.Before(orders[j].StartDate)
	})
	return orders, nil
}

func (u *OrderUseCase) Update(ctx context.Context, id string, patch interfaces.OrderPatch) (entities.Order, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	if patch.Value != nil && *patch.Value <= 0 {
		return entities.Order{}, ErrInvalidOrderValue
	}

	// The patched window must still satisfy StartDate < EndDate.
	start := current.StartDate
	end := current.EndDate
	if patch.StartDate != nil {
		start = patch.StartDate.UTC()
		patch.StartDate = &start
	}
	if patch.EndDate != nil {
		end = patch.EndDate.UTC()
		patch.EndDate = &end
	}
	if !start.Before(end) {
		return entities.Order{}, ErrInvalidOrderPeriod
	}

	updated, err := u.repo.Update(ctx, current.ID, patch)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	// ClientID is immutable, so this is always the original owner.
	u.reconcile(ctx, updated.ClientID)
	return updated, nil
}

func (u *OrderUseCase) TogglePayment(ctx context.Context, id string) (entities.Order, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	isPaid := !current.IsPaid
	var paidAt *time.Time
	if isPaid {
		now := time.Now().UTC()
		paidAt = &now
	}

	updated, err := u.repo.UpdatePayment(ctx, current.ID, isPaid, paidAt)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	u.reconcile(ctx, updated.ClientID)
	return updated, nil
}

func (u *OrderUseCase) ToggleActivity(ctx context.Context, id string) (entities.Order, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	updated, err := u.repo.UpdateActive(ctx, current.ID, !current.IsActive)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	u.reconcile(ctx, updated.ClientID)
	return updated, nil
}

// reconcile refreshes the owning client's financial status. The order write
// already committed, so a failure here is surfaced in the logs only; the next
// successful mutation for the same client repairs the stored status.
func (u *OrderUseCase) reconcile(ctx context.Context, clientID string) {
	if _, err := u.reconciler.Reconcile(ctx, clientID); err != nil {
		log.Printf("[order][usecase] financial reconcile failed client_id=%s err=%v", clientID, err)
	}
}

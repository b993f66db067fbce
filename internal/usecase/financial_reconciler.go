package usecase

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"gestao_cobranca/internal/domain/entities"
	"gestao_cobranca/internal/usecase/interfaces"
)

// IFinancialReconciler recomputes a client's financial status from its
// current order set and persists it when it changed.
//
// Every order mutation (create, field update, payment toggle, activity
// toggle) must call Reconcile after its own write commits. The order write is
// not rolled back when reconciliation fails; callers log the failure and
// return their primary result, and the next successful order mutation for the
// same client repairs the stored status.

type IFinancialReconciler interface {
	Reconcile(ctx context.Context, clientID string) (entities.FinancialStatus, error)
}

type FinancialReconciler struct {
	clients interfaces.IClientRepository
	orders  interfaces.IOrderRepository

	// locks holds one *sync.Mutex per client id. The read-aggregate-write
	// sequence below is a read-modify-write on the client row; interleaved
	// reconciliations for the same client could otherwise overwrite a fresher
	// status with a staler one.
	locks sync.Map
}

var _ IFinancialReconciler = (*FinancialReconciler)(nil)

func NewFinancialReconciler(clients interfaces.IClientRepository, orders interfaces.IOrderRepository) *FinancialReconciler {
	return &FinancialReconciler{clients: clients, orders: orders}
}

func (r *FinancialReconciler) Reconcile(ctx context.Context, clientID string) (entities.FinancialStatus, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return "", ErrInvalidClientID
	}

	mu := r.clientLock(clientID)
	mu.Lock()
	defer mu.Unlock()

	client, err := r.clients.GetByID(ctx, clientID)
	if err != nil {
		return "", err
	}
	if client.ID == "" {
		return "", ErrClientNotFound
	}

	orders, err := r.orders.ListByClientID(ctx, clientID)
	if err != nil {
		return "", err
	}

	status := entities.FinancialStatusOf(orders, time.Now().UTC())
	if status == client.FinancialStatus {
		// Skip-if-unchanged keeps repeated mutations from turning into
		// update storms on the client row.
		return status, nil
	}

	updated, err := r.clients.UpdateFinancialStatus(ctx, clientID, status)
	if err != nil {
		return "", err
	}
	if updated.ID == "" {
		return "", ErrClientNotFound
	}

	log.Printf("[finance][reconciler] client status updated client_id=%s status=%s orders=%d", clientID, status, len(orders))
	return status, nil
}

func (r *FinancialReconciler) clientLock(clientID string) *sync.Mutex {
	mu, _ := r.locks.LoadOrStore(clientID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

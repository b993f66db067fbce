package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gestao_cobranca/internal/domain/entities"
	"gestao_cobranca/internal/usecase/interfaces"
	mock_interfaces "gestao_cobranca/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func overdueUnpaidOrder(clientID string) entities.Order {
	end := time.Now().UTC().Add(-24 * time.Hour)
	return entities.Order{
		ID:        "ord-1",
		StartDate: end.Add(-72 * time.Hour),
		EndDate:   end,
		IsPaid:    false,
		IsActive:  true,
		ClientID:  clientID,
	}
}

func TestFinancialReconciler_Reconcile(t *testing.T) {
	t.Run("invalid client id", func(t *testing.T) {
		r := NewFinancialReconciler(nil, nil)
		_, err := r.Reconcile(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		r := NewFinancialReconciler(clients, orders)

		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{}, nil)

		_, err := r.Reconcile(context.Background(), "cli-1")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("writes new status when delinquency appears", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		r := NewFinancialReconciler(clients, orders)

		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", FinancialStatus: entities.FinancialStatusAdimplente}, nil)
		orders.EXPECT().ListByClientID(gomock.Any(), "cli-1").Return([]entities.Order{overdueUnpaidOrder("cli-1")}, nil)
		clients.EXPECT().UpdateFinancialStatus(gomock.Any(), "cli-1", entities.FinancialStatusInadimplente).Return(entities.Client{ID: "cli-1", FinancialStatus: entities.FinancialStatusInadimplente}, nil)

		status, err := r.Reconcile(context.Background(), "cli-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != entities.FinancialStatusInadimplente {
			t.Fatalf("expected INADIMPLENTE, got %s", status)
		}
	})

	t.Run("skips the write when the status is unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		r := NewFinancialReconciler(clients, orders)

		// No UpdateFinancialStatus expectation: a write here fails the test.
		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", FinancialStatus: entities.FinancialStatusInadimplente}, nil).Times(2)
		orders.EXPECT().ListByClientID(gomock.Any(), "cli-1").Return([]entities.Order{overdueUnpaidOrder("cli-1")}, nil).Times(2)

		for i := 0; i < 2; i++ {
			status, err := r.Reconcile(context.Background(), "cli-1")
			if err != nil {
				t.Fatalf("unexpected error on call %d: %v", i, err)
			}
			if status != entities.FinancialStatusInadimplente {
				t.Fatalf("expected INADIMPLENTE on call %d, got %s", i, status)
			}
		}
	})

	t.Run("zero orders is adimplente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		r := NewFinancialReconciler(clients, orders)

		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", FinancialStatus: entities.FinancialStatusInadimplente}, nil)
		orders.EXPECT().ListByClientID(gomock.Any(), "cli-1").Return(nil, nil)
		clients.EXPECT().UpdateFinancialStatus(gomock.Any(), "cli-1", entities.FinancialStatusAdimplente).Return(entities.Client{ID: "cli-1", FinancialStatus: entities.FinancialStatusAdimplente}, nil)

		status, err := r.Reconcile(context.Background(), "cli-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != entities.FinancialStatusAdimplente {
			t.Fatalf("expected ADIMPLENTE, got %s", status)
		}
	})

	t.Run("surfaces store failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		r := NewFinancialReconciler(clients, orders)

		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		orders.EXPECT().ListByClientID(gomock.Any(), "cli-1").Return(nil, errors.New("db"))

		_, err := r.Reconcile(context.Background(), "cli-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

// serializingStubs asserts that Reconcile never runs concurrently for the
// same client by counting in-flight read-aggregate-write sequences.
type serializingClientStub struct {
	interfaces.IClientRepository
	inFlight *atomic.Int32
	maxSeen  *atomic.Int32
}

func (s serializingClientStub) GetByID(_ context.Context, id string) (entities.Client, error) {
	cur := s.inFlight.Add(1)
	for {
		max := s.maxSeen.Load()
		if cur <= max || s.maxSeen.CompareAndSwap(max, cur) {
			break
		}
	}
	time.Sleep(time.Millisecond)
	return entities.Client{ID: id, FinancialStatus: entities.FinancialStatusAdimplente}, nil
}

func (s serializingClientStub) UpdateFinancialStatus(_ context.Context, id string, status entities.FinancialStatus) (entities.Client, error) {
	defer s.inFlight.Add(-1)
	return entities.Client{ID: id, FinancialStatus: status}, nil
}

type serializingOrderStub struct {
	interfaces.IOrderRepository
	clientID string
}

func (s serializingOrderStub) ListByClientID(_ context.Context, clientID string) ([]entities.Order, error) {
	return []entities.Order{overdueUnpaidOrder(s.clientID)}, nil
}

func TestFinancialReconciler_SerializesPerClient(t *testing.T) {
	var inFlight, maxSeen atomic.Int32
	clients := serializingClientStub{inFlight: &inFlight, maxSeen: &maxSeen}
	orders := serializingOrderStub{clientID: "cli-1"}
	r := NewFinancialReconciler(clients, orders)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Reconcile(context.Background(), "cli-1"); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if maxSeen.Load() != 1 {
		t.Fatalf("expected serialized reconciliations, saw %d in flight", maxSeen.Load())
	}
}

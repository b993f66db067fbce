package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestao_cobranca/internal/domain/entities"
	"gestao_cobranca/internal/usecase/interfaces"
	mock_interfaces "gestao_cobranca/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newClientUseCaseWithMock(t *testing.T) (*ClientUseCase, *mock_interfaces.MockIClientRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_interfaces.NewMockIClientRepository(ctrl)
	return NewClientUseCase(repo), repo
}

func TestClientUseCase_Create(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.Create(context.Background(), CreateClientCommand{Name: "  "})
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("email conflict aborts before any write", func(t *testing.T) {
		uc, repo := newClientUseCaseWithMock(t)
		// No Create expectation: a write here fails the test.
		repo.EXPECT().GetByEmail(gomock.Any(), "taken@acme.com").Return(entities.Client{ID: "other"}, nil)

		_, err := uc.Create(context.Background(), CreateClientCommand{Name: "Acme", Email: "taken@acme.com"})
		if !errors.Is(err, ErrClientEmailInUse) {
			t.Fatalf("expected ErrClientEmailInUse, got %v", err)
		}
	})

	t.Run("creates active adimplente client", func(t *testing.T) {
		uc, repo := newClientUseCaseWithMock(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "new@acme.com").Return(entities.Client{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" || !c.IsActive || c.FinancialStatus != entities.FinancialStatusAdimplente {
					t.Fatalf("unexpected client: %+v", c)
				}
				if c.CanceledAt != nil {
					t.Fatalf("canceled_at must be unset on creation")
				}
				return c, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateClientCommand{Name: " Acme ", Email: " new@acme.com ", Phone: "11 99999-0000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Acme" || res.Email != "new@acme.com" {
			t.Fatalf("expected trimmed fields, got %+v", res)
		}
	})

	t.Run("email is optional", func(t *testing.T) {
		uc, repo := newClientUseCaseWithMock(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) { return c, nil },
		)

		if _, err := uc.Create(context.Background(), CreateClientCommand{Name: "No Email"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClientUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, repo := newClientUseCaseWithMock(t)
		repo.EXPECT().GetByID(gomock.Any(), "cli-404").Return(entities.Client{}, nil)

		_, err := uc.Update(context.Background(), "cli-404", interfaces.ClientPatch{})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("email owned by another client conflicts", func(t *testing.T) {
		uc, repo := newClientUseCaseWithMock(t)
		email := "taken@acme.com"

		repo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		repo.EXPECT().GetByEmail(gomock.Any(), email).Return(entities.Client{ID: "cli-2"}, nil)

		_, err := uc.Update(context.Background(), "cli-1", interfaces.ClientPatch{Email: &email})
		if !errors.Is(err, ErrClientEmailInUse) {
			t.Fatalf("expected ErrClientEmailInUse, got %v", err)
		}
	})

	t.Run("keeping own email is not a conflict", func(t *testing.T) {
		uc, repo := newClientUseCaseWithMock(t)
		email := "mine@acme.com"

		repo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Email: email}, nil)
		repo.EXPECT().GetByEmail(gomock.Any(), email).Return(entities.Client{ID: "cli-1", Email: email}, nil)
		repo.EXPECT().Update(gomock.Any(), "cli-1", gomock.Any()).Return(entities.Client{ID: "cli-1", Email: email}, nil)

		if _, err := uc.Update(context.Background(), "cli-1", interfaces.ClientPatch{Email: &email}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClientUseCase_ToggleActive(t *testing.T) {
	t.Run("deactivation stamps canceled_at", func(t *testing.T) {
		uc, repo := newClientUseCaseWithMock(t)

		repo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", IsActive: true}, nil)
		repo.EXPECT().UpdateActive(gomock.Any(), "cli-1", false, gomock.Not(gomock.Nil())).DoAndReturn(
			func(_ context.Context, id string, isActive bool, canceledAt *time.Time) (entities.Client, error) {
				return entities.Client{ID: id, IsActive: isActive, CanceledAt: canceledAt}, nil
			},
		)

		res, err := uc.ToggleActive(context.Background(), "cli-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsActive || res.CanceledAt == nil {
			t.Fatalf("expected inactive client with canceled_at, got %+v", res)
		}
	})

	t.Run("reactivation clears canceled_at", func(t *testing.T) {
		uc, repo := newClientUseCaseWithMock(t)

		repo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", IsActive: false}, nil)
		repo.EXPECT().UpdateActive(gomock.Any(), "cli-1", true, gomock.Nil()).Return(entities.Client{ID: "cli-1", IsActive: true}, nil)

		res, err := uc.ToggleActive(context.Background(), "cli-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsActive || res.CanceledAt != nil {
			t.Fatalf("expected active client without canceled_at, got %+v", res)
		}
	})
}

func TestClientUseCase_ToggleFinancialStatus(t *testing.T) {
	// The manual override flips the stored status without consulting orders;
	// no ListByClientID-style aggregation may happen here.
	t.Run("flips adimplente to inadimplente", func(t *testing.T) {
		uc, repo := newClientUseCaseWithMock(t)

		repo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", FinancialStatus: entities.FinancialStatusAdimplente}, nil)
		repo.EXPECT().UpdateFinancialStatus(gomock.Any(), "cli-1", entities.FinancialStatusInadimplente).Return(entities.Client{ID: "cli-1", FinancialStatus: entities.FinancialStatusInadimplente}, nil)

		res, err := uc.ToggleFinancialStatus(context.Background(), "cli-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.FinancialStatus != entities.FinancialStatusInadimplente {
			t.Fatalf("expected INADIMPLENTE, got %s", res.FinancialStatus)
		}
	})

	t.Run("flips inadimplente back", func(t *testing.T) {
		uc, repo := newClientUseCaseWithMock(t)

		repo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", FinancialStatus: entities.FinancialStatusInadimplente}, nil)
		repo.EXPECT().UpdateFinancialStatus(gomock.Any(), "cli-1", entities.FinancialStatusAdimplente).Return(entities.Client{ID: "cli-1", FinancialStatus: entities.FinancialStatusAdimplente}, nil)

		if _, err := uc.ToggleFinancialStatus(context.Background(), "cli-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

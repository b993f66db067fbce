package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestao_cobranca/internal/adapter/http/handlers/mocks"
	"gestao_cobranca/internal/domain/entities"
	"gestao_cobranca/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClientHandler_CreateClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients/create", h.CreateClient)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients/create", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients/create", h.CreateClient)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients/create", bytes.NewBufferString(`{"email":"a@b.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("email conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients/create", h.CreateClient)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateClientCommand{Name: "Acme", Email: "billing@acme.com"}).Return(entities.Client{}, usecase.ErrClientEmailInUse)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients/create", bytes.NewBufferString(`{"name":"Acme","email":"billing@acme.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients/create", h.CreateClient)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), usecase.CreateClientCommand{Name: "Acme", Email: "billing@acme.com"}).Return(entities.Client{
			ID:              "client-1",
			Name:            "Acme",
			Email:           "billing@acme.com",
			IsActive:        true,
			FinancialStatus: entities.FinancialStatusAdimplente,
			CreatedAt:       now,
			UpdatedAt:       now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients/create", bytes.NewBufferString(`{"name":"Acme","email":"billing@acme.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "client-1" || body["financialStatus"] != "ADIMPLENTE" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestClientHandler_GetClientByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.GET("/v1/clients/list-by-id/:client_id", h.GetClientByID)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Client{}, usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/list-by-id/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.GET("/v1/clients/list-by-id/:client_id", h.GetClientByID)

		uc.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", Name: "Acme", IsActive: true, FinancialStatus: entities.FinancialStatusInadimplente}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/list-by-id/client-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["financialStatus"] != "INADIMPLENTE" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestClientHandler_Toggles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("toggle status stamps canceled_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.PATCH("/v1/clients/update-status/:client_id", h.ToggleClientStatus)

		canceledAt := time.Now().UTC()
		uc.EXPECT().ToggleActive(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", Name: "Acme", IsActive: false, FinancialStatus: entities.FinancialStatusAdimplente, CanceledAt: &canceledAt}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/clients/update-status/client-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["isActive"] != false || body["canceledAt"] == nil {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("toggle financial status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.PATCH("/v1/clients/update-financial-status/:client_id", h.ToggleClientFinancialStatus)

		uc.EXPECT().ToggleFinancialStatus(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", Name: "Acme", IsActive: true, FinancialStatus: entities.FinancialStatusInadimplente}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/clients/update-financial-status/client-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapClientError(t *testing.T) {
	if got := mapClientError(usecase.ErrInvalidClientID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapClientError(usecase.ErrInvalidClientName); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapClientError(usecase.ErrClientEmailInUse); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapClientError(usecase.ErrClientNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapClientError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}

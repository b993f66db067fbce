package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestao_cobranca/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	user := entities.User{ID: "user-1", Email: "ana@example.com", Role: entities.RoleAdmin}
	token, expiresAt, err := tm.Issue(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a signed token")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expected a future expiry, got %v", expiresAt)
	}

	claims, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "user-1" || claims.Email != "ana@example.com" || claims.Role != entities.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenManager_VerifyRejectsForeignToken(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, _, err := issuer.Issue(entities.User{ID: "user-1", Role: entities.RoleUser})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Fatalf("expected verification to fail")
	}
}

func TestTokenManager_RequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tm := NewTokenManager("test-secret", time.Hour)
	r := gin.New()
	r.GET("/guarded", tm.RequireRoles(entities.RoleSuperAdmin, entities.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("insufficient role", func(t *testing.T) {
		token, _, err := tm.Issue(entities.User{ID: "user-1", Role: entities.RoleUser})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("allowed role", func(t *testing.T) {
		token, _, err := tm.Issue(entities.User{ID: "user-1", Role: entities.RoleAdmin})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

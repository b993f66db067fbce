package auth

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"gestao_cobranca/internal/domain/entities"
	"gestao_cobranca/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultTokenTTL = time.Hour
	claimsKey       = "auth_claims"
)

var (
	ErrMissingSecret = errors.New("JWT_SECRET is not set")
	ErrInvalidToken  = errors.New("invalid token")
)

// Claims is the JWT payload issued on login.
type Claims struct {
	Email string        `json:"email"`
	Role  entities.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 access tokens.
//
// Env vars:
//   - JWT_SECRET (required)
//   - JWT_TTL (optional Go duration, default 1h)

type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManagerFromEnv() (*TokenManager, error) {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return nil, ErrMissingSecret
	}

	ttl := defaultTokenTTL
	if raw := strings.TrimSpace(os.Getenv("JWT_TTL")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, err
		}
		ttl = parsed
	}

	return &TokenManager{secret: []byte(secret), ttl: ttl}, nil
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

func (m *TokenManager) Issue(user entities.User) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

func (m *TokenManager) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RequireRoles is a gin middleware enforcing a valid bearer token whose role
// is in the allowed set.
func (m *TokenManager) RequireRoles(roles ...entities.Role) gin.HandlerFunc {
	allowed := make(map[entities.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or malformed Authorization header", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		claims, err := m.Verify(strings.TrimSpace(token))
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		if _, ok := allowed[claims.Role]; !ok {
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the verified claims stored by RequireRoles, if any.
func ClaimsFrom(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

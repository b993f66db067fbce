package response

import (
	"time"

	"gestao_cobranca/internal/usecase"
)

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

func FromSession(s usecase.Session) LoginResponse {
	return LoginResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		User:      FromUser(s.User),
	}
}

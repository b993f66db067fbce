package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestao_cobranca/internal/domain/entities"
	"gestao_cobranca/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("user is disabled")
)

// ITokenIssuer signs an access token for an authenticated user.
type ITokenIssuer interface {
	Issue(user entities.User) (token string, expiresAt time.Time, err error)
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      entities.User
}

// IAuthUseCase authenticates backoffice users.
//
// Unknown emails and wrong passwords both map to ErrInvalidCredentials so the
// login endpoint does not leak which accounts exist.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (Session, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	issuer ITokenIssuer
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, issuer ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{users: users, issuer: issuer}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return Session{}, err
	}
	if user.ID == "" {
		return Session{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return Session{}, ErrUserDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	token, expiresAt, err := u.issuer.Issue(user)
	if err != nil {
		return Session{}, err
	}

	return Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

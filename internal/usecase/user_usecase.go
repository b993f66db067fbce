package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestao_cobranca/internal/domain/entities"
	"gestao_cobranca/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserEmailInUse     = errors.New("user email already in use")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrInvalidUserInput   = errors.New("invalid user input")
	ErrInvalidUserRole    = errors.New("invalid user role")
)

const bcryptCost = 10

// CreateUserCommand carries the fields accepted on user creation. Password
// arrives in plaintext and is hashed before anything is persisted.
type CreateUserCommand struct {
	Name     string
	Email    string
	Password string
	Role     entities.Role
}

// UpdateUserCommand is a partial update; a non-nil Password is re-hashed.
type UpdateUserCommand struct {
	Name     *string
	Email    *string
	Password *string
	Role     *entities.Role
}

// IUserUseCase exposes backoffice user operations.

type IUserUseCase interface {
	Create(ctx context.Context, cmd CreateUserCommand) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	Update(ctx context.Context, id string, cmd UpdateUserCommand) (entities.User, error)
	ToggleActive(ctx context.Context, id string) (entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) Create(ctx context.Context, cmd CreateUserCommand) (entities.User, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Email = strings.TrimSpace(cmd.Email)
	if cmd.Name == "" || cmd.Email == "" || cmd.Password == "" {
		return entities.User{}, ErrInvalidUserInput
	}
	if !entities.ValidRole(cmd.Role) {
		return entities.User{}, ErrInvalidUserRole
	}

	existing, err := u.repo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrUserEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcryptCost)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:           uuid.NewString(),
		Name:         cmd.Name,
		Email:        cmd.Email,
		PasswordHash: string(hash),
		Role:         cmd.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, user)
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	return u.repo.List(ctx)
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return entities.User{}, ErrUserNotFound
	}

	user, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) Update(ctx context.Context, id string, cmd UpdateUserCommand) (entities.User, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}

	patch := interfaces.UserPatch{Name: cmd.Name}

	if cmd.Email != nil && strings.TrimSpace(*cmd.Email) != "" {
		email := strings.TrimSpace(*cmd.Email)
		owner, err := u.repo.GetByEmail(ctx, email)
		if err != nil {
			return entities.User{}, err
		}
		if owner.ID != "" && owner.ID != current.ID {
			return entities.User{}, ErrUserEmailInUse
		}
		patch.Email = &email
	}

	if cmd.Role != nil {
		if !entities.ValidRole(*cmd.Role) {
			return entities.User{}, ErrInvalidUserRole
		}
		patch.Role = cmd.Role
	}

	if cmd.Password != nil && *cmd.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*cmd.Password), bcryptCost)
		if err != nil {
			return entities.User{}, err
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}

	updated, err := u.repo.Update(ctx, current.ID, patch)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *UserUseCase) ToggleActive(ctx context.Context, id string) (entities.User, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}

	updated, err := u.repo.UpdateActive(ctx, current.ID, !current.IsActive)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

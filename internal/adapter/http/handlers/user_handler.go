package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "gestao_cobranca/internal/adapter/http/dto/request"
	response "gestao_cobranca/internal/adapter/http/dto/response"
	"gestao_cobranca/internal/usecase"
	"gestao_cobranca/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidUserPayload = pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Invalid user payload", http.StatusBadRequest)
)

// UserHandler handles HTTP requests for backoffice users.

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var payload request.UserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromUser(user))
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUsers(users))
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, err := h.usecase.GetByID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	email := strings.TrimSpace(c.Param("email"))
	if email == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	user, err := h.usecase.GetByEmail(c.Request.Context(), email)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var payload request.UpdateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.Update(c.Request.Context(), c.Param("user_id"), payload.ToCommand())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) ToggleUserStatus(c *gin.Context) {
	user, err := h.usecase.ToggleActive(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidUserInput),
		errors.Is(err, usecase.ErrInvalidUserRole):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserEmailInUse):
		return pkg.NewDomainErrorSimple("USER_EMAIL_IN_USE", "A user with this email already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

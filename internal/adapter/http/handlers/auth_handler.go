package handlers

import (
	"errors"
	"net/http"

	request "gestao_cobranca/internal/adapter/http/dto/request"
	response "gestao_cobranca/internal/adapter/http/dto/response"
	"gestao_cobranca/internal/usecase"
	"gestao_cobranca/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)
)

// AuthHandler handles login requests.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserDisabled):
		return pkg.NewDomainErrorSimple("USER_DISABLED", "User account is disabled", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

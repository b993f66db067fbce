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
	errInvalidClientPayload = pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Invalid client payload", http.StatusBadRequest)
)

// ClientHandler handles HTTP requests for billing clients.

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClient(client))
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClients(clients))
}

func (h *ClientHandler) GetClientByID(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) GetClientByEmail(c *gin.Context) {
	email := strings.TrimSpace(c.Param("email"))
	if email == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	client, err := h.usecase.GetByEmail(c.Request.Context(), email)
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.UpdateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.Update(c.Request.Context(), c.Param("client_id"), payload.ToPatch())
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

// ToggleClientStatus flips the active flag, stamping or clearing the
// cancellation timestamp accordingly.
func (h *ClientHandler) ToggleClientStatus(c *gin.Context) {
	client, err := h.usecase.ToggleActive(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

// ToggleClientFinancialStatus is a manual override. The stored status holds
// until the next order mutation re-derives it.
func (h *ClientHandler) ToggleClientFinancialStatus(c *gin.Context) {
	client, err := h.usecase.ToggleFinancialStatus(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidClientName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientEmailInUse):
		return pkg.NewDomainErrorSimple("CLIENT_EMAIL_IN_USE", "A client with this email already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

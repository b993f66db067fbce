package handlers

import (
	"errors"
	"net/http"
	"time"

	request "gestao_cobranca/internal/adapter/http/dto/request"
	response "gestao_cobranca/internal/adapter/http/dto/response"
	"gestao_cobranca/internal/usecase"
	"gestao_cobranca/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for billing orders.
//
// TogglePayment responds with both the order and its owning client because
// the payment flip re-derives the client's financial status.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
	clients usecase.IClientUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase, clients usecase.IClientUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc, clients: clients}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order, time.Now().UTC()))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders, time.Now().UTC()))
}

func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order, time.Now().UTC()))
}

func (h *OrderHandler) ListOrdersByClient(c *gin.Context) {
	orders, err := h.usecase.ListByClientID(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClientOrders(orders, time.Now().UTC()))
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Update(c.Request.Context(), c.Param("order_id"), payload.ToPatch())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order, time.Now().UTC()))
}

func (h *OrderHandler) ToggleOrderPayment(c *gin.Context) {
	order, err := h.usecase.TogglePayment(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	client, err := h.clients.GetByID(c.Request.Context(), order.ClientID)
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	now := time.Now().UTC()
	c.JSON(http.StatusOK, response.TogglePaymentResponse{
		Order:  response.FromOrder(order, now),
		Client: response.FromClient(client),
	})
}

func (h *OrderHandler) ToggleOrderStatus(c *gin.Context) {
	order, err := h.usecase.ToggleActivity(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order, time.Now().UTC()))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidOrderDescription),
		errors.Is(err, usecase.ErrInvalidOrderValue),
		errors.Is(err, usecase.ErrInvalidOrderPeriod),
		errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package routes

import (
	"gestao_cobranca/internal/adapter/http/handlers"
	"gestao_cobranca/internal/domain/entities"
	"gestao_cobranca/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler, tm *auth.TokenManager) {
	group := rg.Group("/orders")
	group.Use(tm.RequireRoles(entities.RoleSuperAdmin, entities.RoleAdmin, entities.RoleUser))

	group.POST("/create", h.CreateOrder)
	group.GET("/list-all", h.ListOrders)
	group.GET("/list-by-id/:order_id", h.GetOrderByID)
	group.GET("/client/:client_id", h.ListOrdersByClient)
	group.PATCH("/update/:order_id", h.UpdateOrder)
	group.PATCH("/update-status/:order_id", h.ToggleOrderStatus)
	group.PATCH("/:order_id/toggle-payment", h.ToggleOrderPayment)
}

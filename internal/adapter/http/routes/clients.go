package routes

import (
	"gestao_cobranca/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientHandler) {
	group := rg.Group("/clients")

	group.POST("/create", h.CreateClient)
	group.GET("/list-all", h.ListClients)
	group.GET("/list-by-id/:client_id", h.GetClientByID)
	group.GET("/list-by-email/:email", h.GetClientByEmail)
	group.PATCH("/update/:client_id", h.UpdateClient)
	group.PATCH("/update-status/:client_id", h.ToggleClientStatus)
	group.PATCH("/update-financial-status/:client_id", h.ToggleClientFinancialStatus)
}

package routes

import (
	"gestao_cobranca/internal/adapter/http/handlers"
	"gestao_cobranca/internal/domain/entities"
	"gestao_cobranca/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

// User management is restricted to admin roles.
func addUserRoutes(rg *gin.RouterGroup, h *handlers.UserHandler, tm *auth.TokenManager) {
	group := rg.Group("/users")
	group.Use(tm.RequireRoles(entities.RoleSuperAdmin, entities.RoleAdmin))

	group.POST("/create", h.CreateUser)
	group.GET("/list-all", h.ListUsers)
	group.GET("/list-by-id/:user_id", h.GetUserByID)
	group.GET("/list-by-email/:email", h.GetUserByEmail)
	group.PATCH("/update/:user_id", h.UpdateUser)
	group.PATCH("/update-status/:user_id", h.ToggleUserStatus)
}

package routes

import (
	"gestao_cobranca/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	group := rg.Group("/auth")

	group.POST("/login", h.Login)
}

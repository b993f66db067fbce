package routes

import (
	"log"
	"strconv"

	_ "gestao_cobranca/docs" // This will be auto-generated
	"gestao_cobranca/internal/adapter/http/handlers"
	"gestao_cobranca/internal/adapter/persistence/repository"
	"gestao_cobranca/internal/infrastructure/auth"
	"gestao_cobranca/internal/infrastructure/database"
	"gestao_cobranca/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	clientRepo := repository.NewClientDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)

	reconciler := usecase.NewFinancialReconciler(clientRepo, orderRepo)

	clientUseCase := usecase.NewClientUseCase(clientRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, clientRepo, reconciler)
	userUseCase := usecase.NewUserUseCase(userRepo)

	tokenManager, err := auth.NewTokenManagerFromEnv()
	if err != nil {
		log.Fatalf("Failed to configure token manager: %v", err)
	}
	authUseCase := usecase.NewAuthUseCase(userRepo, tokenManager)

	clientHandler := handlers.NewClientHandler(clientUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase, clientUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)
	addClientRoutes(v1, clientHandler)
	addOrderRoutes(v1, orderHandler, tokenManager)
	addUserRoutes(v1, userHandler, tokenManager)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

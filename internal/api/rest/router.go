package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"finance-dashboard/internal/auth"
	"finance-dashboard/internal/logger"
	"finance-dashboard/internal/storage"
)

// SetupCommonEndpoints adds the shared endpoints (health, events, stats).
func SetupCommonEndpoints(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/api/v1/events", func(c *gin.Context) {
		limit := 100
		if limitStr := c.Query("limit"); limitStr != "" {
			if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
				limit = parsed
			}
		}
		events := logger.GetEvents(limit)
		c.JSON(http.StatusOK, gin.H{"events": events})
	})

	router.GET("/api/v1/stats", func(c *gin.Context) {
		stats := logger.GetStats()
		c.JSON(http.StatusOK, stats)
	})
}

// SetupRouter wires the REST API routes.
func SetupRouter(handlers *Handlers, tokens *auth.TokenService, users storage.UserRepository, corsOrigins []string) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware(corsOrigins))

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	requireAuth := AuthMiddleware(tokens, users)

	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", handlers.Register)
			authGroup.POST("/login", handlers.Login)
			authGroup.GET("/me", requireAuth, handlers.GetMe)
		}

		transactions := api.Group("/transactions")
		{
			transactions.GET("/categories", handlers.GetCategories)
			transactions.GET("/generate", handlers.GenerateSampleTransaction)
			transactions.GET("", requireAuth, handlers.ListTransactions)
			transactions.POST("", requireAuth, handlers.CreateTransaction)
			transactions.GET("/:id", requireAuth, handlers.GetTransaction)
			transactions.PUT("/:id", requireAuth, handlers.UpdateTransaction)
			transactions.DELETE("/:id", requireAuth, handlers.DeleteTransaction)
		}

		dashboard := api.Group("/dashboard", requireAuth)
		{
			dashboard.GET("/summary", handlers.GetDashboardSummary)
			dashboard.GET("/trends", handlers.GetTransactionTrends)
		}

		aiChat := api.Group("/ai-chat")
		{
			aiChat.GET("/quick-questions", handlers.GetQuickQuestions)
			aiChat.GET("/health", handlers.GetAIHealth)
			aiChat.POST("/message", requireAuth, handlers.SendChatMessage)
			aiChat.POST("/analyze-budget", requireAuth, handlers.AnalyzeBudget)
			aiChat.GET("/history", requireAuth, handlers.GetChatHistory)
		}
	}

	// Shared endpoints (health, events, stats)
	SetupCommonEndpoints(router)

	return router
}

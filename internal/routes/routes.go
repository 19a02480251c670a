package routes

import (
	"github.com/JijoBose/web5-wallet/internal/handlers"
	"github.com/JijoBose/web5-wallet/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	// CORS middleware (for wallet frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "web5-wallet resolution service is running",
		})
	})

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		// Login endpoint
		api.POST("/login", handlers.Login)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		// Resolution endpoint
		protectedRoutes.GET("/resolve/:did", handlers.ResolveDID)
		// Cache admin endpoints
		protectedRoutes.GET("/cache/:did", handlers.GetCachedDID)
		protectedRoutes.DELETE("/cache/:did", handlers.InvalidateDID)
		protectedRoutes.DELETE("/cache", handlers.ClearCache)
		// Audit log stats
		protectedRoutes.GET("/stats", handlers.GetStats)
		// Event stream
		protectedRoutes.GET("/ws", handlers.WebSocketHandler)
	}

	return ginRouter
}

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cookshare/backend/internal/api"
	"github.com/cookshare/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	askHandler *api.AskHandler,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	authHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)
	askHandler.RegisterRoutes(v1)

	return router
}

package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cookshare/backend/internal/middleware"
	"github.com/cookshare/backend/internal/service"
	"github.com/cookshare/backend/internal/types"
)

// AskHandler exposes the recipe question endpoint. The service is
// optional; when no completion backend is configured the route answers
// 503 instead of disappearing, so clients get a clear signal.
type AskHandler struct {
	ask         *service.AskService
	authService middleware.TokenValidator
}

func NewAskHandler(ask *service.AskService, authService middleware.TokenValidator) *AskHandler {
	return &AskHandler{ask: ask, authService: authService}
}

// RegisterRoutes registers the ask route on the given router group.
func (h *AskHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes/:id/ask", middleware.AuthMiddleware(h.authService), h.Ask)
}

func (h *AskHandler) Ask(c *gin.Context) {
	if h.ask == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recipe assistant is not configured"})
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe ID"})
		return
	}

	var req types.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	answer, err := h.ask.Ask(c.Request.Context(), recipeID, req.Question)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyQuestion):
			c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		case errors.Is(err, service.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		default:
			log.Printf("ask failed for recipe %s: %v", recipeID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to answer question"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

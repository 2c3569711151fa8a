package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cookshare/backend/internal/middleware"
	"github.com/cookshare/backend/internal/model"
	"github.com/cookshare/backend/internal/service"
	"github.com/cookshare/backend/internal/types"
)

type RecipeHandler struct {
	recipes     *service.RecipeService
	images      *service.ImageService
	authService middleware.TokenValidator
	limiter     *middleware.RateLimiter
}

// NewRecipeHandler creates a new RecipeHandler instance. images may
// be nil when no S3 bucket is configured; limiter may be nil when no
// Redis is configured.
func NewRecipeHandler(recipes *service.RecipeService, images *service.ImageService, authService middleware.TokenValidator, limiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipes:     recipes,
		images:      images,
		authService: authService,
		limiter:     limiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.authService)
	limited := h.limiter.Middleware()

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", auth, h.UploadRecipe)
		recipes.POST("/:id/image", auth, h.UploadRecipeImage)
		recipes.POST("/:id/like", auth, limited, h.ToggleLike)
		recipes.GET("/:id/liked", auth, h.IsLiked)
		recipes.POST("/:id/comments", auth, limited, h.AddComment)
	}
	router.GET("/search", h.SearchRecipes)
	router.GET("/stats", h.Stats)
}

// ListRecipes serves the catalog, falling back to the static set when
// storage is unreachable or the catalog is empty.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filter := service.ListFilter{Category: c.Query("category")}

	views, err := h.recipes.ListRecipeViews(c.Request.Context(), filter)
	if err != nil {
		// Corrupted state is reported, not papered over with the
		// static set. Only connectivity-class failures fall back.
		if errors.Is(err, service.ErrCommentAuthorMissing) {
			log.Printf("Failed to list recipes: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
			return
		}
		log.Printf("Failed to list recipes, serving fallback: %v", err)
		c.JSON(http.StatusOK, FallbackViews())
		return
	}
	if len(views) == 0 && filter.Category == "" {
		c.JSON(http.StatusOK, FallbackViews())
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	view, err := h.recipes.GetRecipeView(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCommentAuthorMissing) {
			log.Printf("Failed to fetch recipe %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
			return
		}
		if fallback := FindFallback(id); fallback != nil {
			c.JSON(http.StatusOK, fallback)
			return
		}
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		log.Printf("Failed to fetch recipe %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	query := c.Query("q")

	views, err := h.recipes.SearchRecipeViews(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, service.ErrCommentAuthorMissing) {
			log.Printf("Search failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search recipes"})
			return
		}
		log.Printf("Search failed, serving fallback: %v", err)
		c.JSON(http.StatusOK, SearchFallback(query))
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *RecipeHandler) Stats(c *gin.Context) {
	stats, err := h.recipes.Stats(c.Request.Context())
	if err != nil {
		log.Printf("Stats query failed, serving fallback: %v", err)
		c.JSON(http.StatusOK, FallbackStats())
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *RecipeHandler) UploadRecipe(c *gin.Context) {
	var req types.UploadRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Difficulty != "" &&
		req.Difficulty != model.DifficultyEasy &&
		req.Difficulty != model.DifficultyMedium &&
		req.Difficulty != model.DifficultyHard {
		c.JSON(http.StatusBadRequest, gin.H{"error": "difficulty must be Easy, Medium or Hard"})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	authorID := userID.(uuid.UUID)

	category := model.CategoryFree
	if req.IsPaid {
		category = model.CategoryPremium
	}

	recipe := model.Recipe{
		Title:          req.Title,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		ReadyInMinutes: req.ReadyInMinutes,
		Servings:       req.Servings,
		Difficulty:     req.Difficulty,
		Ingredients:    req.Ingredients,
		Steps:          req.Steps,
		Category:       category,
		Country:        req.Country,
		Region:         req.Region,
		AuthorID:       &authorID,
	}

	if err := h.recipes.CreateRecipe(c.Request.Context(), &recipe); err != nil {
		log.Printf("Failed to create recipe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"recipe_id": recipe.ID,
		"message":   "Recipe uploaded successfully",
	})
}

func (h *RecipeHandler) UploadRecipeImage(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})
		return
	}
	defer file.Close()

	url, err := h.images.UploadRecipeImage(c.Request.Context(), id, file)
	if err != nil {
		log.Printf("Failed to store image for recipe %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	if err := h.recipes.SetRecipeImage(c.Request.Context(), id, url); err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

func (h *RecipeHandler) ToggleLike(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	result, err := h.recipes.ToggleLike(c.Request.Context(), userID.(uuid.UUID), recipeID)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		log.Printf("Failed to toggle like for recipe %s: %v", recipeID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *RecipeHandler) IsLiked(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	liked, err := h.recipes.IsLiked(c.Request.Context(), userID.(uuid.UUID), recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

func (h *RecipeHandler) AddComment(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	view, err := h.recipes.AddComment(c.Request.Context(), userID.(uuid.UUID), recipeID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyComment):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRecipeNotFound), errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			log.Printf("Failed to add comment to recipe %s: %v", recipeID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

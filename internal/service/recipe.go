package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cookshare/backend/internal/model"
	"github.com/cookshare/backend/internal/types"
)

// Serialization fallbacks for recipes with unset optional fields.
const (
	defaultImagePath  = "/images/f1.jpeg"
	defaultCookTime   = "30 minutes"
	defaultServings   = 4
	defaultDifficulty = model.DifficultyMedium

	searchResultCap = 20
)

// RecipeService owns the recipe catalog: serialization with computed
// aggregates, like toggling, comment appending, search and stats.
// Like counts and comment lists are derived views recomputed on every
// read; no counters are persisted.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListFilter narrows ListRecipeViews. Zero value lists everything.
type ListFilter struct {
	Category string
}

// CreateRecipe persists an uploaded recipe.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) error {
	return s.db.WithContext(ctx).Create(recipe).Error
}

// SetRecipeImage updates the stored image reference for a recipe.
func (s *RecipeService) SetRecipeImage(ctx context.Context, id uuid.UUID, url string) error {
	res := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", id).Update("image_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

// GetRecipeView loads one recipe and serializes it with its current
// aggregates.
func (s *RecipeService) GetRecipeView(ctx context.Context, id uuid.UUID) (*types.RecipeView, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return s.buildView(ctx, &recipe)
}

// ListRecipeViews serializes the catalog in storage order.
func (s *RecipeService) ListRecipeViews(ctx context.Context, filter ListFilter) ([]*types.RecipeView, error) {
	query := s.db.WithContext(ctx)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var recipes []model.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return s.buildViews(ctx, recipes)
}

// SearchRecipeViews returns recipes whose title or description
// contains the query as a case-insensitive substring, capped at 20
// matches in storage order.
func (s *RecipeService) SearchRecipeViews(ctx context.Context, query string) ([]*types.RecipeView, error) {
	like := "%" + strings.ToLower(query) + "%"

	var recipes []model.Recipe
	err := s.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like).
		Limit(searchResultCap).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return s.buildViews(ctx, recipes)
}

// Stats reports the total recipe count. Source is "fallback" when the
// catalog is empty and the static set would be served instead.
func (s *RecipeService) Stats(ctx context.Context) (*types.CatalogStats, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Count(&total).Error; err != nil {
		return nil, err
	}

	source := types.StatsSourceStorage
	if total == 0 {
		source = types.StatsSourceFallback
	}
	return &types.CatalogStats{Total: int(total), Source: source}, nil
}

// ToggleLike inverts like membership for the (user, recipe) pair and
// returns the action taken with the recipe's new like count. The
// check and write run in one transaction; the unique index on the
// pair backstops concurrent toggles.
func (s *RecipeService) ToggleLike(ctx context.Context, userID, recipeID uuid.UUID) (*types.LikeResult, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	var action string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var like model.Like
		err := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&like).Error
		switch {
		case err == nil:
			action = types.ActionUnliked
			return tx.Delete(&like).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			action = types.ActionLiked
			return tx.Create(&model.Like{UserID: userID, RecipeID: recipeID}).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	count, err := s.likeCount(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return &types.LikeResult{Action: action, LikesCount: count}, nil
}

// IsLiked reports whether the user currently likes the recipe.
func (s *RecipeService) IsLiked(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddComment appends one comment and returns its serialized form.
// Whitespace-only text is rejected before anything is persisted.
func (s *RecipeService) AddComment(ctx context.Context, userID, recipeID uuid.UUID, text string) (*types.CommentView, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}

	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	comment := model.Comment{
		Text:     text,
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}

	view := commentView(&comment, &user)
	return &view, nil
}

func (s *RecipeService) buildViews(ctx context.Context, recipes []model.Recipe) ([]*types.RecipeView, error) {
	views := make([]*types.RecipeView, 0, len(recipes))
	for i := range recipes {
		view, err := s.buildView(ctx, &recipes[i])
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// buildView assembles the client-facing representation: stored fields
// with their display fallbacks, normalized ingredients and steps, and
// the aggregates recomputed from the join tables. Read-only.
func (s *RecipeService) buildView(ctx context.Context, recipe *model.Recipe) (*types.RecipeView, error) {
	likes, err := s.likeCount(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}

	var comments []model.Comment
	// IDs are UUIDv7, so the secondary sort keeps creation order when
	// created_at values collide.
	err = s.db.WithContext(ctx).Preload("User").
		Where("recipe_id = ?", recipe.ID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	commentViews := make([]types.CommentView, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		if c.User.ID == uuid.Nil {
			return nil, fmt.Errorf("comment %s: %w", c.ID, ErrCommentAuthorMissing)
		}
		commentViews = append(commentViews, commentView(c, &c.User))
	}

	view := &types.RecipeView{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Description: recipe.Description,
		Image:       recipe.ImageURL,
		CookTime:    defaultCookTime,
		Servings:    defaultServings,
		Difficulty:  recipe.Difficulty,
		Category:    recipe.Category,
		Tag:         recipe.Category,
		Ingredients: recipe.Ingredients.IngredientStrings(),
		Steps:       recipe.Steps.StepStrings(),
		LikesCount:  likes,
		Comments:    commentViews,
		Country:     recipe.Country,
		Region:      recipe.Region,
	}

	if view.Image == "" {
		view.Image = defaultImagePath
	}
	if recipe.ReadyInMinutes != nil {
		view.CookTime = fmt.Sprintf("%d minutes", *recipe.ReadyInMinutes)
	}
	if recipe.Servings != nil {
		view.Servings = *recipe.Servings
	}
	if view.Difficulty == "" {
		view.Difficulty = defaultDifficulty
	}

	return view, nil
}

func (s *RecipeService) likeCount(ctx context.Context, recipeID uuid.UUID) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func commentView(c *model.Comment, u *model.User) types.CommentView {
	return types.CommentView{
		ID:   c.ID,
		Text: c.Text,
		User: u.Name,
		Date: c.CreatedAt.Format("2006-01-02"),
	}
}

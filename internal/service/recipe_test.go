package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookshare/backend/internal/model"
	"github.com/cookshare/backend/internal/types"
)

func TestGetRecipeViewDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	recipe := createTestRecipe(t, db, &model.Recipe{
		Title:       "Plain Dish",
		Ingredients: model.TextEntries("water"),
		Steps:       model.TextEntries("boil"),
	})

	view, err := svc.GetRecipeView(ctx, recipe.ID)
	require.NoError(t, err)

	assert.Equal(t, "/images/f1.jpeg", view.Image)
	assert.Equal(t, "30 minutes", view.CookTime)
	assert.Equal(t, 4, view.Servings)
	assert.Equal(t, model.DifficultyMedium, view.Difficulty)
	assert.Equal(t, model.CategoryFree, view.Category)
	assert.Equal(t, view.Category, view.Tag)
	assert.Equal(t, 0, view.LikesCount)
	assert.NotNil(t, view.Comments)
	assert.Empty(t, view.Comments)
}

func TestGetRecipeViewStoredValuesWin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	var ingredients model.EntryList
	require.NoError(t, json.Unmarshal(
		[]byte(`["rice", {"name": "basmati", "original": "2 cups basmati rice"}]`),
		&ingredients,
	))

	minutes := 45
	servings := 6
	recipe := createTestRecipe(t, db, &model.Recipe{
		Title:          "Biryani",
		ImageURL:       "/images/biryani.jpeg",
		ReadyInMinutes: &minutes,
		Servings:       &servings,
		Difficulty:     model.DifficultyHard,
		Category:       model.CategoryPremium,
		Ingredients:    ingredients,
		Steps:          model.TextEntries("soak", "cook"),
	})

	view, err := svc.GetRecipeView(ctx, recipe.ID)
	require.NoError(t, err)

	assert.Equal(t, "/images/biryani.jpeg", view.Image)
	assert.Equal(t, "45 minutes", view.CookTime)
	assert.Equal(t, 6, view.Servings)
	assert.Equal(t, model.DifficultyHard, view.Difficulty)
	assert.Equal(t, model.CategoryPremium, view.Tag)
	assert.Equal(t, []string{"rice", "2 cups basmati rice"}, view.Ingredients)
	assert.Equal(t, []string{"soak", "cook"}, view.Steps)
}

func TestGetRecipeViewNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)

	_, err := svc.GetRecipeView(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestLikeCountAggregation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	recipe := createTestRecipe(t, db, &model.Recipe{Title: "Popular"})
	for _, name := range []string{"alice", "bob", "carol"} {
		user := createTestUser(t, db, name)
		result, err := svc.ToggleLike(ctx, user.ID, recipe.ID)
		require.NoError(t, err)
		assert.Equal(t, types.ActionLiked, result.Action)
	}

	view, err := svc.GetRecipeView(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, view.LikesCount)
}

func TestToggleLikePairIsIdentity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	recipe := createTestRecipe(t, db, &model.Recipe{Title: "Toggled"})

	liked, err := svc.ToggleLike(ctx, user.ID, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, types.ActionLiked, liked.Action)
	assert.Equal(t, 1, liked.LikesCount)

	isLiked, err := svc.IsLiked(ctx, user.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, isLiked)

	unliked, err := svc.ToggleLike(ctx, user.ID, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, types.ActionUnliked, unliked.Action)
	assert.Equal(t, 0, unliked.LikesCount)

	isLiked, err = svc.IsLiked(ctx, user.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, isLiked)

	var rows int64
	require.NoError(t, db.Model(&model.Like{}).Count(&rows).Error)
	assert.Equal(t, int64(0), rows)
}

func TestToggleLikeRecipeNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)

	user := createTestUser(t, db, "alice")
	_, err := svc.ToggleLike(context.Background(), user.ID, uuid.New())
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestAddComment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	recipe := createTestRecipe(t, db, &model.Recipe{Title: "Commented"})

	view, err := svc.AddComment(ctx, user.ID, recipe.ID, "Delicious!")
	require.NoError(t, err)
	assert.Equal(t, "Delicious!", view.Text)
	assert.Equal(t, "alice", view.User)
	assert.Equal(t, time.Now().Format("2006-01-02"), view.Date)

	recipeView, err := svc.GetRecipeView(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, recipeView.Comments, 1)
	assert.Equal(t, "alice", recipeView.Comments[0].User)
}

func TestAddCommentOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	recipe := createTestRecipe(t, db, &model.Recipe{Title: "Threaded"})

	for _, text := range []string{"first", "second", "third"} {
		_, err := svc.AddComment(ctx, user.ID, recipe.ID, text)
		require.NoError(t, err)
	}

	view, err := svc.GetRecipeView(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, view.Comments, 3)
	assert.Equal(t, "first", view.Comments[0].Text)
	assert.Equal(t, "third", view.Comments[2].Text)
}

func TestCommentOrderStableOnTimestampTies(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	recipe := createTestRecipe(t, db, &model.Recipe{Title: "Tied"})

	// Same created_at on every row leaves only the id to sort on.
	when := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	texts := []string{"first", "second", "third"}
	comments := make([]model.Comment, len(texts))
	for i, text := range texts {
		id, err := uuid.NewV7()
		require.NoError(t, err)
		comments[i] = model.Comment{
			ID:        id,
			CreatedAt: when,
			Text:      text,
			UserID:    user.ID,
			RecipeID:  recipe.ID,
		}
	}

	// Insert out of creation order.
	for _, i := range []int{2, 0, 1} {
		require.NoError(t, db.Create(&comments[i]).Error)
	}

	view, err := svc.GetRecipeView(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, view.Comments, 3)
	assert.Equal(t, "first", view.Comments[0].Text)
	assert.Equal(t, "second", view.Comments[1].Text)
	assert.Equal(t, "third", view.Comments[2].Text)
}

func TestAddCommentEmptyTextRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	recipe := createTestRecipe(t, db, &model.Recipe{Title: "Quiet"})

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.AddComment(ctx, user.ID, recipe.ID, text)
		assert.ErrorIs(t, err, ErrEmptyComment)
	}

	var rows int64
	require.NoError(t, db.Model(&model.Comment{}).Count(&rows).Error)
	assert.Equal(t, int64(0), rows)
}

func TestAddCommentUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)

	recipe := createTestRecipe(t, db, &model.Recipe{Title: "Orphan"})
	_, err := svc.AddComment(context.Background(), uuid.New(), recipe.ID, "hi")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestBuildViewMissingCommentAuthor(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	recipe := createTestRecipe(t, db, &model.Recipe{Title: "Broken"})

	// Insert a comment whose author row does not exist.
	comment := model.Comment{
		Text:     "ghost",
		UserID:   uuid.New(),
		RecipeID: recipe.ID,
	}
	require.NoError(t, db.Create(&comment).Error)

	_, err := svc.GetRecipeView(ctx, recipe.ID)
	assert.ErrorIs(t, err, ErrCommentAuthorMissing)
}

func TestSearchRecipeViews(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	createTestRecipe(t, db, &model.Recipe{Title: "Classic Butter Chicken"})
	createTestRecipe(t, db, &model.Recipe{
		Title:       "Veg Noodles",
		Description: "Better than chicken takeout",
	})
	createTestRecipe(t, db, &model.Recipe{Title: "Paneer Tikka"})

	views, err := svc.SearchRecipeViews(ctx, "CHICKEN")
	require.NoError(t, err)
	require.Len(t, views, 2)

	titles := []string{views[0].Title, views[1].Title}
	assert.Contains(t, titles, "Classic Butter Chicken")
	assert.Contains(t, titles, "Veg Noodles")
}

func TestListRecipeViewsCategoryFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	createTestRecipe(t, db, &model.Recipe{Title: "Free One"})
	createTestRecipe(t, db, &model.Recipe{Title: "Paid One", Category: model.CategoryPremium})

	all, err := svc.ListRecipeViews(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	premium, err := svc.ListRecipeViews(ctx, ListFilter{Category: model.CategoryPremium})
	require.NoError(t, err)
	require.Len(t, premium, 1)
	assert.Equal(t, "Paid One", premium[0].Title)
}

func TestStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, types.StatsSourceFallback, stats.Source)

	createTestRecipe(t, db, &model.Recipe{Title: "One"})
	createTestRecipe(t, db, &model.Recipe{Title: "Two"})

	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, types.StatsSourceStorage, stats.Source)
}

func TestSetRecipeImage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	recipe := createTestRecipe(t, db, &model.Recipe{Title: "Pictured"})

	require.NoError(t, svc.SetRecipeImage(ctx, recipe.ID, "https://cdn.example.com/x.jpg"))

	view, err := svc.GetRecipeView(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/x.jpg", view.Image)

	err = svc.SetRecipeImage(ctx, uuid.New(), "https://cdn.example.com/y.jpg")
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

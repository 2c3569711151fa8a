package api

import (
	"strings"

	"github.com/google/uuid"

	"github.com/cookshare/backend/internal/model"
	"github.com/cookshare/backend/internal/types"
)

// Static recipe set served by the HTTP layer when the persisted
// catalog is empty or unreachable. The service core never substitutes
// these; the swap happens only here, at the routing boundary.
var fallbackRecipes = []types.RecipeView{
	{
		ID:          uuid.MustParse("11111111-0000-0000-0000-000000000001"),
		Title:       "Classic Butter Chicken",
		Description: "Rich and creamy butter chicken with aromatic spices",
		Image:       "/images/f1.jpeg",
		CookTime:    "45 minutes",
		Servings:    4,
		Difficulty:  model.DifficultyMedium,
		Category:    model.CategoryFree,
		Tag:         model.CategoryFree,
		Ingredients: []string{"Chicken", "Butter", "Cream", "Spices", "Onions", "Tomatoes"},
		Steps: []string{
			"Cut chicken into bite-sized pieces and marinate with yogurt and spices for 30 minutes.",
			"Heat oil in a pan and cook marinated chicken until golden brown.",
			"In the same pan, add butter and saute chopped onions until golden.",
			"Add tomato puree, cook for 5-7 minutes until oil separates.",
			"Add cream, garam masala, and cooked chicken pieces.",
			"Simmer for 10 minutes, garnish with cilantro and serve hot.",
		},
		Comments: []types.CommentView{},
	},
	{
		ID:          uuid.MustParse("11111111-0000-0000-0000-000000000002"),
		Title:       "Vegetable Fried Rice",
		Description: "Quick and delicious fried rice with colorful vegetables",
		Image:       "/images/f1.jpeg",
		CookTime:    "20 minutes",
		Servings:    3,
		Difficulty:  model.DifficultyEasy,
		Category:    model.CategoryFree,
		Tag:         model.CategoryFree,
		Ingredients: []string{"Rice", "Mixed vegetables", "Eggs", "Soy sauce", "Garlic", "Ginger"},
		Steps: []string{
			"Cook rice and let it cool completely (day-old rice works best).",
			"Heat oil in a wok over high heat.",
			"Add garlic and ginger, stir-fry for 30 seconds.",
			"Add mixed vegetables and stir-fry for 2-3 minutes.",
			"Push vegetables aside, scramble eggs on the other side.",
			"Add rice and soy sauce, toss everything together for 3-4 minutes.",
		},
		Comments: []types.CommentView{},
	},
	{
		ID:          uuid.MustParse("11111111-0000-0000-0000-000000000003"),
		Title:       "Truffle Pasta",
		Description: "Luxurious pasta with truffle oil and parmesan",
		Image:       "/images/f1.jpeg",
		CookTime:    "25 minutes",
		Servings:    2,
		Difficulty:  model.DifficultyMedium,
		Category:    model.CategoryPremium,
		Tag:         model.CategoryPremium,
		Ingredients: []string{"Pasta", "Truffle oil", "Parmesan cheese", "Garlic"},
		Steps: []string{
			"Cook pasta until al dente in salted water.",
			"Heat truffle oil in pan with garlic.",
			"Toss pasta with truffle oil and parmesan.",
			"Serve with fresh black pepper.",
		},
		Comments: []types.CommentView{},
	},
}

// FallbackViews returns the static catalog.
func FallbackViews() []types.RecipeView {
	return fallbackRecipes
}

// FindFallback looks up one static recipe by id.
func FindFallback(id uuid.UUID) *types.RecipeView {
	for i := range fallbackRecipes {
		if fallbackRecipes[i].ID == id {
			return &fallbackRecipes[i]
		}
	}
	return nil
}

// SearchFallback filters the static catalog by title substring.
func SearchFallback(query string) []types.RecipeView {
	q := strings.ToLower(query)
	matches := make([]types.RecipeView, 0)
	for _, r := range fallbackRecipes {
		if strings.Contains(strings.ToLower(r.Title), q) {
			matches = append(matches, r)
		}
	}
	return matches
}

// FallbackStats reports stats for the static catalog.
func FallbackStats() *types.CatalogStats {
	return &types.CatalogStats{
		Total:  len(fallbackRecipes),
		Source: types.StatsSourceFallback,
	}
}

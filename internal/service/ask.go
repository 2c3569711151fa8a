package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cookshare/backend/internal/model"
)

// TextCompleter is the contract with the generative-text backend: a
// prompt in, a short natural-language answer out. It is injected into
// AskService so handlers and tests never touch a shared client.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// AskService answers free-form questions about a recipe by handing
// the recipe's normalized content plus the question to a text
// completion backend.
type AskService struct {
	db        *gorm.DB
	completer TextCompleter
}

// NewAskService creates a new AskService instance
func NewAskService(db *gorm.DB, completer TextCompleter) *AskService {
	return &AskService{
		db:        db,
		completer: completer,
	}
}

// Ask builds the recipe context and queries the completion backend.
func (s *AskService) Ask(ctx context.Context, recipeID uuid.UUID, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}

	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrRecipeNotFound
		}
		return "", err
	}

	prompt := buildAskPrompt(&recipe, question)
	answer, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

func buildAskPrompt(recipe *model.Recipe, question string) string {
	var b strings.Builder
	b.WriteString("You are a cooking assistant. Answer the question about this recipe in two or three short sentences, suitable for being read aloud.\n\n")
	fmt.Fprintf(&b, "Recipe: %s\n", recipe.Title)
	if recipe.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", recipe.Description)
	}
	b.WriteString("Ingredients:\n")
	for _, ing := range recipe.Ingredients.IngredientStrings() {
		fmt.Fprintf(&b, "- %s\n", ing)
	}
	b.WriteString("Instructions:\n")
	for _, step := range recipe.Steps.NumberedSteps() {
		fmt.Fprintf(&b, "%s\n", step)
	}
	fmt.Fprintf(&b, "\nQuestion: %s\n", question)
	return b.String()
}

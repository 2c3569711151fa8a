// Command seed_recipes populates the catalog with regional recipes
// generated by the Gemini API. Existing titles are skipped, so the
// command is safe to rerun.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/cookshare/backend/config"
	"github.com/cookshare/backend/internal/database"
	"github.com/cookshare/backend/internal/model"
	"github.com/cookshare/backend/internal/service"
)

var regions = []string{
	"Maharashtra", "Punjab", "Uttar Pradesh", "Bihar",
	"Tamil Nadu", "Rajasthan", "Gujarat",
}

// seedRecipe mirrors the JSON shape we ask the model for.
type seedRecipe struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	ImageURL       string          `json:"image_url"`
	ReadyInMinutes int             `json:"ready_in_minutes"`
	Servings       int             `json:"servings"`
	Difficulty     string          `json:"difficulty"`
	Ingredients    model.EntryList `json:"ingredients"`
	Steps          model.EntryList `json:"steps"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY is required for seeding")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	completer, err := service.NewGeminiCompleter(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	total := 0
	for _, region := range regions {
		recipes, err := fetchRegionRecipes(ctx, completer, region)
		if err != nil {
			log.Printf("Skipping %s: %v", region, err)
			continue
		}

		saved := 0
		for _, r := range recipes {
			created, err := saveRecipe(ctx, db, region, r)
			if err != nil {
				log.Printf("Failed to save %q: %v", r.Title, err)
				continue
			}
			if created {
				saved++
			}
		}
		total += saved
		log.Printf("Saved %d recipes for %s", saved, region)
	}
	log.Printf("Seeding complete, %d new recipes added", total)
}

func fetchRegionRecipes(ctx context.Context, completer service.TextCompleter, region string) ([]seedRecipe, error) {
	prompt := fmt.Sprintf(`You are an expert Indian Chef. Provide exactly 5 authentic and popular recipes from the Indian state of %s.
Return ONLY a valid JSON array of objects. Do not include any markdown tags.
Each object must have exactly these keys:
- title (string, name of the dish)
- description (string, 1-2 lines about the dish)
- image_url (string, a placeholder URL)
- ready_in_minutes (integer, cooking time)
- servings (integer)
- difficulty (string, "Easy", "Medium", or "Hard")
- ingredients (array of strings, e.g. ["2 cups flour", "1 tsp salt"])
- steps (array of strings, e.g. ["Mix ingredients.", "Cook for 10 mins."])`, region)

	answer, err := completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var recipes []seedRecipe
	if err := json.Unmarshal([]byte(stripFences(answer)), &recipes); err != nil {
		return nil, fmt.Errorf("parsing model output: %w", err)
	}
	return recipes, nil
}

// stripFences removes markdown code fences the model sometimes wraps
// its output in despite being told not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func saveRecipe(ctx context.Context, db *gorm.DB, region string, r seedRecipe) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Recipe{}).
		Where("title = ?", r.Title).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	minutes := r.ReadyInMinutes
	if minutes == 0 {
		minutes = 30
	}
	servings := r.Servings
	if servings == 0 {
		servings = 2
	}
	difficulty := r.Difficulty
	if difficulty == "" {
		difficulty = model.DifficultyMedium
	}

	recipe := model.Recipe{
		Title:          r.Title,
		Description:    r.Description,
		ImageURL:       strings.ReplaceAll(r.ImageURL, " ", "+"),
		ReadyInMinutes: &minutes,
		Servings:       &servings,
		Difficulty:     difficulty,
		Ingredients:    r.Ingredients,
		Steps:          r.Steps,
		Category:       model.CategoryFree,
		Country:        "India",
		Region:         region,
	}
	if err := db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return false, err
	}
	return true, nil
}

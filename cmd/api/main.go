package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/cookshare/backend/config"
	"github.com/cookshare/backend/internal/api"
	"github.com/cookshare/backend/internal/database"
	"github.com/cookshare/backend/internal/middleware"
	"github.com/cookshare/backend/internal/router"
	"github.com/cookshare/backend/internal/server"
	"github.com/cookshare/backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	// Optional pieces degrade quietly: no Redis means no rate
	// limiting, no bucket means no image uploads, no API key means the
	// ask endpoint reports unavailable.
	var limiter *middleware.RateLimiter
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	} else {
		limiter = middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     30,
			KeyPrefix: "ratelimit",
		})
	}

	var imageService *service.ImageService
	if cfg.S3Bucket != "" {
		s3Config, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			log.Printf("S3 unavailable, image uploads disabled: %v", err)
		} else {
			imageService = service.NewImageService(s3Config)
		}
	} else {
		log.Println("S3_BUCKET_NAME not set, image uploads disabled")
	}

	var askService *service.AskService
	if cfg.GeminiAPIKey != "" {
		completer, err := service.NewGeminiCompleter(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("Gemini unavailable, recipe assistant disabled: %v", err)
		} else {
			askService = service.NewAskService(db, completer)
		}
	} else {
		log.Println("GEMINI_API_KEY not set, recipe assistant disabled")
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db)

	authHandler := api.NewAuthHandler(authService)
	recipeHandler := api.NewRecipeHandler(recipeService, imageService, authService, limiter)
	askHandler := api.NewAskHandler(askService, authService)

	engine := router.SetupRouter(authHandler, recipeHandler, askHandler)

	srv := server.NewServer(engine)
	if err := srv.Start(cfg.ServerPort); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}

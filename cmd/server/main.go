package main

import (
	"context"
	"log"
	"time"

	"bookfinder/backend/internal/catalog"
	"bookfinder/backend/internal/config"
	"bookfinder/backend/internal/cover"
	"bookfinder/backend/internal/credential"
	"bookfinder/backend/internal/handler"
	"bookfinder/backend/internal/middleware"
	"bookfinder/backend/internal/summary"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	cfg := config.Load()
	log.Printf("[INFO] Starting Bookfinder server")

	store := catalog.NewSeededStore()
	resolver := cover.NewResolver(cover.NewClient(cfg.BooksAPIBaseURL, cfg.CoverLookupRPS))
	generator := buildGenerator(cfg)

	r := gin.Default()

	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := handler.NewAPI(store, resolver, generator)
	api.RegisterRoutes(r)

	log.Printf("[INFO] Server ready port=%s allowed_origins=%v", cfg.Port, cfg.AllowedOrigins)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}

// buildGenerator wires the summary generator. A missing or implausible
// credential degrades the service to mock summaries instead of aborting
// startup; so does a client that fails to construct.
func buildGenerator(cfg config.Config) *summary.Generator {
	state := credential.Classify(cfg.GeminiAPIKey)

	var llm summary.LLMClient
	if state == credential.StatePlausible {
		client, err := summary.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("[WARN] Failed to create Gemini client: %v", err)
			log.Println("[WARN] Summaries will use the mock resolver")
		} else {
			llm = client
			log.Printf("[INFO] Gemini client initialized model=%s", cfg.GeminiModel)
		}
	} else {
		log.Printf("[WARN] Gemini API key state is %s; summaries will use the mock resolver", state)
	}

	return summary.NewGenerator(llm, summary.NewMockResolver(), state, cfg.GeminiModel)
}

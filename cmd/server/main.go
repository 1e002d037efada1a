package main

import (
	"context"
	"coordinate-converter-service/internal/adapters/cache"
	"coordinate-converter-service/internal/adapters/extractor"
	"coordinate-converter-service/internal/adapters/repositories"
	"coordinate-converter-service/internal/adapters/transform"
	"coordinate-converter-service/internal/api"
	"coordinate-converter-service/internal/config"
	"coordinate-converter-service/internal/domain"
	"coordinate-converter-service/internal/platform/db"
	"coordinate-converter-service/internal/ports"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, EPSG, Gemini) behind
// ports and starts the HTTP server. Everything except the transform
// backend is optional: without a database there is no history, without
// an API key the chat falls back to the structured grammar.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	ctx := context.Background()

	port := config.Get("PORT", "8080")
	transformBaseURL := config.Get("TRANSFORM_BASE_URL", "")
	geminiModel := config.Get("GEMINI_MODEL", "")
	cacheTTL := config.GetDuration("EXTRACTION_CACHE_TTL", 24*time.Hour)

	var history ports.ConversionHistory
	var extractionCache extractor.ExtractionCache

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL != "" {
		pool, err := db.Open(ctx, databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()

		// Schema setup on startup keeps local runs to a single command.
		if err := repositories.InitSchema(pool); err != nil {
			log.Fatal(err)
		}

		history = repositories.NewSQLHistoryRepository(pool)
		extractionCache = cache.NewSQLExtractionCache(pool)
	} else {
		log.Println("DATABASE_URL not set; history persistence disabled")
	}

	// Redis takes over extraction caching when configured; entries
	// expire instead of piling up in Postgres.
	if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping failed: %v", err)
		}
		extractionCache = cache.NewRedisExtractionCache(client, cacheTTL)
	}

	var requestExtractor ports.RequestExtractor
	if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
		ext, err := extractor.NewGeminiExtractor(ctx, key, geminiModel, extractionCache)
		if err != nil {
			log.Fatal(err)
		}
		requestExtractor = ext
	} else {
		log.Println("GEMINI_API_KEY not set; free-text extraction disabled")
	}

	provider := transform.NewEPSGTransformProvider(transformBaseURL)
	catalogue := domain.NewCatalogue()

	router := api.NewRouter(catalogue, provider, requestExtractor, history)

	// Write timeout covers bulk CSV conversions against the external
	// transform backend.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

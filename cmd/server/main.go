package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"trip-route-service/internal/adapters/airports"
	"trip-route-service/internal/adapters/cache"
	"trip-route-service/internal/adapters/repositories"
	"trip-route-service/internal/api"
	"trip-route-service/internal/platform/db"
	"trip-route-service/internal/ports"
	"trip-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, airport directory) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	airportAPIURL := os.Getenv("AIRPORT_API_URL")
	airportAPIKey := os.Getenv("AIRPORT_API_KEY")

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(context.Background(), databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	repo := repositories.NewPostgresTripRepository(pg)

	// The result cache is a pure speed optimization; Redis being down
	// degrades every request to a recompute, never to a failure.
	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
	resultCache := cache.NewRedisResultCache(redisClient, cache.DefaultResultTTL)

	// Without a configured directory every long-haul lookup uses the
	// built-in static airport table.
	var directory ports.AirportDirectory
	if strings.TrimSpace(airportAPIURL) != "" {
		directory, err = airports.NewHTTPDirectory(airportAPIURL, airportAPIKey)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		log.Println("AIRPORT_API_URL not set; using static airport table only")
	}

	inserter := services.NewAirportInserter(directory, airports.NewStaticTable())
	engine := services.NewEngine(repo, inserter, resultCache)

	router := api.NewRouter(engine, repo)

	// Timeouts are tuned for cold-cache optimization runs (genetic search
	// plus external directory latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

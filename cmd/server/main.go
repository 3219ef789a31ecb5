package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/climateassistant/backend/internal/delivery/http"
	"github.com/climateassistant/backend/internal/repository/memory"
	"github.com/climateassistant/backend/internal/repository/postgres"
	"github.com/climateassistant/backend/internal/repository/sqlite"
	"github.com/climateassistant/backend/internal/service"
	"github.com/climateassistant/backend/internal/web"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg := loadConfig()

	// Storage
	repo := openRepository(cfg)
	defer repo.Close()

	// Dependency Injection: Services
	var provider service.Provider
	if cfg.WeatherMock {
		log.Println("WEATHER_MOCK enabled, serving simulated weather")
		provider = service.NewMockProvider()
	} else {
		provider = service.NewWeatherAPIClient(cfg.WeatherAPIKey, cfg.WeatherAPIBaseURL)
	}
	cache := service.NewCache(cfg.CacheTTL, cfg.CacheMaxEntries)
	weatherSvc := service.NewWeatherService(provider, cache, repo)

	// The page consumes the API over HTTP, like any other client
	apiClient := web.NewAPIClient(cfg.APIBaseURL, cfg.APITimeout)
	sessions := web.NewSessions(apiClient, web.DefaultSessionIdle)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "Climate Assistant v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
		ErrorHandler: http.ErrorHandler,
		Immutable:    true,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency}) ${locals:requestid}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(app, weatherSvc, sessions)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s (%s)", cfg.Port, cfg.Env)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	weatherSvc.WaitBackground()
	log.Println("Server exited gracefully")
}

type Config struct {
	DatabaseURL       string
	SQLitePath        string
	WeatherAPIKey     string
	WeatherAPIBaseURL string
	WeatherMock       bool
	CacheTTL          time.Duration
	CacheMaxEntries   int
	APIBaseURL        string
	APITimeout        time.Duration
	Port              string
	Env               string
}

func loadConfig() *Config {
	port := getEnv("PORT", "8080")
	return &Config{
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		SQLitePath:        getEnv("SQLITE_PATH", ""),
		WeatherAPIKey:     getEnv("WEATHERAPI_KEY", ""),
		WeatherAPIBaseURL: getEnv("WEATHERAPI_BASE_URL", service.DefaultWeatherAPIBaseURL),
		WeatherMock:       getEnvBool("WEATHER_MOCK", false),
		CacheTTL:          getEnvDuration("WEATHER_CACHE_TTL", service.DefaultCacheTTL),
		CacheMaxEntries:   getEnvInt("WEATHER_CACHE_MAX_ENTRIES", service.DefaultCacheMaxEntries),
		APIBaseURL:        getEnv("API_BASE_URL", "http://127.0.0.1:"+port),
		APITimeout:        getEnvDuration("API_TIMEOUT", 10*time.Second),
		Port:              port,
		Env:               getEnv("GO_ENV", "development"),
	}
}

// openRepository picks PostgreSQL, then SQLite, then memory
func openRepository(cfg *Config) service.LookupRepository {
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err == nil {
			err = pool.Ping(ctx)
		}
		if err == nil {
			repo := postgres.NewPostgresRepository(pool)
			if err = repo.Migrate(ctx); err == nil {
				log.Println("Connected to PostgreSQL")
				return repo
			}
		}
		if pool != nil {
			pool.Close()
		}
		log.Printf("Warning: Could not connect to database: %v", err)
	}

	if cfg.SQLitePath != "" {
		repo, err := sqlite.New(cfg.SQLitePath)
		if err == nil {
			log.Printf("Using SQLite at %s", cfg.SQLitePath)
			return repo
		}
		log.Printf("Warning: Could not open SQLite: %v", err)
	}

	log.Println("Keeping lookup history in memory only")
	return memory.NewRepository()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

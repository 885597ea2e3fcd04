package main

import (
	"log"

	"github.com/connectly-app/backend/internal/router"
	"github.com/connectly-app/backend/pkg/cache"
	"github.com/connectly-app/backend/pkg/config"
	"github.com/connectly-app/backend/pkg/metrics"
	"github.com/connectly-app/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Redis is optional; a nil client disables caching
	cacheClient := cache.Connect(cfg.RedisAddr)
	defer cacheClient.Close()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, cacheClient, cfg)

	// Validator
	e.Validator = validators.NewValidator()

	// Prometheus scrape endpoint on its own port
	metrics.Serve(cfg.MetricsPort)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

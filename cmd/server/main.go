package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/web-project/backend/internal/router"
	"github.com/web-project/backend/internal/store"
	"github.com/web-project/backend/pkg/config"
	"github.com/web-project/backend/validators"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}
	cfg := config.Load()

	// Load the dataset. A missing or corrupt file resets to an empty state.
	st := store.New(cfg.DataFile)
	if err := st.Load(); err != nil {
		log.Fatalf("Failed to load data file: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, st)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

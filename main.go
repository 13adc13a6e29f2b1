package main

import (
	"log"

	"app/config"
	"app/database"
	"app/handlers"
	"app/middleware"
	"app/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Connect to storage. A missing configuration or a failed connection
	// leaves the gateway unavailable instead of crashing startup; data
	// endpoints then answer with a configuration error.
	var gateway handlers.Gateway
	if cfg.DatabaseURL == "" || cfg.DatabaseName == "" {
		log.Println("⚠️  DATABASE_URL or DATABASE_NAME is not set, storage unavailable")
	} else {
		store, err := database.Connect(cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			log.Printf("⚠️  Storage unavailable: %v", err)
		} else {
			defer store.Close()
			gateway = store
		}
	}

	app := fiber.New()

	app.Use(middleware.RequestLogger)

	// Fully open CORS, credentials included. Fiber refuses a wildcard
	// origin together with credentials, so echo every origin back instead.
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowCredentials: true,
	}))

	// Setup routes
	routes.SetupRoutes(app, handlers.New(gateway))

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}

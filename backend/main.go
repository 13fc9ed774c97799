package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"learnhub/backend/auth"
	"learnhub/backend/catalog"
	"learnhub/backend/config"
	"learnhub/backend/middleware"
	"learnhub/backend/progress"
	"learnhub/backend/routes"
	"learnhub/backend/storage"
	"learnhub/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Open local storage
	store, err := storage.OpenSQLite(cfg.DataPath)
	if err != nil {
		log.Fatalf("Error opening storage: %v", err)
	}
	defer store.Close()

	// Build stores
	cat := catalog.New()
	authSvc := auth.NewService(store)
	tracker := progress.NewTracker(authSvc, cat, store)

	if cfg.SeedDemo {
		if err := authSvc.SeedDemoUser(); err != nil {
			log.Fatalf("Error seeding demo user: %v", err)
		}
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, authSvc, cat, tracker)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}

package main

import (
	"log"
	"os"

	"github.com/ahmadnzr/fintrack-by-ai/config"
	"github.com/ahmadnzr/fintrack-by-ai/jobs"
	"github.com/ahmadnzr/fintrack-by-ai/routes"
)

// @title FinTrack API
// @version 1.0
// @description Personal finance tracker with meeting room booking.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := config.Migrate(config.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	config.InitWebSocket(router, m)

	bookingService := routes.SetupRoutes(router, config.DB, config.RedisClient, m)

	jobs.SetBookingCompleter(bookingService)
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

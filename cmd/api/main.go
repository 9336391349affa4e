package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g docs.go -o ../../docs --parseDependency

import (
	"context"
	"log"
	"log/slog"

	"weather-cache/internal/config"
	"weather-cache/internal/repository/mongodb"

	"github.com/joho/godotenv"

	_ "weather-cache/docs" // Import generated docs
)

func main() {
	// Load environment variables from .env file, if present
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	// Connect to the forecast store
	ctx := context.Background()
	mongoClient, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to forecast store: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Error("failed to disconnect from forecast store", "error", err)
		}
	}()

	// Create app
	app, err := NewApp(cfg, mongoClient, logger)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr())
	if err := app.Run(cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}

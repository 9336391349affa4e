package main

import (
	"context"
	"log/slog"

	"weather-cache/internal/config"
	"weather-cache/internal/forecast"
	"weather-cache/internal/providers/nominatim"
	"weather-cache/internal/providers/openmeteo"
	"weather-cache/internal/repository/mongodb"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	_ "weather-cache/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	forecastService forecast.Service
	cfg             *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, mongoClient *mongo.Client, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Initialize forecast store
	repo := mongodb.NewForecastRepository(mongoClient, cfg.Mongo, logger)
	if err := repo.EnsureIndexes(context.Background()); err != nil {
		return nil, err
	}

	// Initialize upstream clients and the forecast service
	provider := openmeteo.NewClient(cfg.OpenMeteo, logger)
	geocoder := nominatim.NewClient(cfg.Nominatim, logger)
	forecastSvc := forecast.NewForecastService(repo, provider, geocoder, logger)

	app := &App{
		router:          router,
		logger:          logger,
		forecastService: forecastSvc,
		cfg:             cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

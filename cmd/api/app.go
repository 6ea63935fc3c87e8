package main

import (
	"log/slog"

	"meteo-gateway/internal/config"
	"meteo-gateway/internal/weather"

	"github.com/gin-gonic/gin"

	_ "meteo-gateway/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	weatherService weather.Service
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	return NewAppWithService(cfg, logger, weather.NewWeatherService(cfg, logger))
}

// NewAppWithService creates an application around an existing weather service
func NewAppWithService(cfg *config.Config, logger *slog.Logger, weatherSvc weather.Service) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	app := &App{
		router:         router,
		logger:         logger,
		weatherService: weatherSvc,
		cfg:            cfg,
	}

	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

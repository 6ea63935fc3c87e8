package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g docs.go -o ../../docs --parseDependency

import (
	"context"
	"log"
	"log/slog"
	"time"

	"meteo-gateway/internal/config"
	"meteo-gateway/internal/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	shutdownTracing, err := tracing.Setup(cfg.Tracing, logger)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("failed to shut down tracing", "error", err)
		}
	}()

	app := NewApp(cfg, logger)

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr())
	if err := app.Run(cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}

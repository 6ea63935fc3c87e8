package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
	OpenMeteo OpenMeteoConfig
	Tracing   TracingConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	DefaultSearch string // Place looked up when no location is given
}

// OpenMeteoConfig holds the upstream endpoints and their timeout
type OpenMeteoConfig struct {
	GeocodingURL string
	ForecastURL  string
	Timeout      time.Duration
}

// TracingConfig controls OpenTelemetry export
type TracingConfig struct {
	Enabled        bool
	ZipkinEndpoint string
	ServiceName    string
}

// Load reads configuration from .env, config file and environment variables
func Load() (*Config, error) {
	// A missing .env file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.meteo-gateway")

	setDefaults(v)

	// Read from environment variables, e.g. METEO_GATEWAY_SERVER_PORT
	v.SetEnvPrefix("METEO_GATEWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return unmarshal(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.defaultsearch", "Turin")
	v.SetDefault("openmeteo.geocodingurl", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("openmeteo.forecasturl", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("openmeteo.timeout", 10*time.Second)
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.zipkinendpoint", "http://localhost:9411/api/v2/spans")
	v.SetDefault("tracing.servicename", "meteo-gateway")
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.App.DefaultSearch == "" {
		return nil, errors.New("app.defaultsearch must not be empty")
	}
	if cfg.OpenMeteo.Timeout <= 0 {
		return nil, fmt.Errorf("openmeteo.timeout must be positive, got %s", cfg.OpenMeteo.Timeout)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

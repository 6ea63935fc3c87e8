package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"meteo-gateway/internal/config"
	"meteo-gateway/internal/providers/openmeteo"
	"meteo-gateway/internal/types"
)

var (
	ErrGeocodingFailed    = errors.New("geocoding failed")
	ErrLocationNotFound   = errors.New("location not found")
	ErrMissingCoordinates = errors.New("geocoding match has no coordinates")
)

// Service resolves caller input to a location a forecast can be fetched for
type Service interface {
	// Search geocodes name and returns the best match
	Search(ctx context.Context, name string) (types.ResolvedLocation, error)
	// FromCoordinates builds a location from raw latitude/longitude values
	// without contacting any provider
	FromCoordinates(latitude, longitude string) (types.ResolvedLocation, error)
}

// GeocodingProvider defines the interface for place name lookups
type GeocodingProvider interface {
	Search(ctx context.Context, name string, count int) (*openmeteo.GeocodingAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	geocodingProvider GeocodingProvider
	logger            *slog.Logger
}

// NewLocationService creates a new location service backed by Open-Meteo geocoding
func NewLocationService(cfg *config.Config, logger *slog.Logger) Service {
	return NewLocationServiceWithProvider(
		openmeteo.NewGeocodingClient(cfg.OpenMeteo.GeocodingURL, cfg.OpenMeteo.Timeout, logger),
		logger,
	)
}

// NewLocationServiceWithProvider creates a new location service with a custom provider
// This is useful for testing with mock providers
func NewLocationServiceWithProvider(geocodingProvider GeocodingProvider, logger *slog.Logger) Service {
	return &locationService{
		geocodingProvider: geocodingProvider,
		logger:            logger.With("component", "location-service"),
	}
}

// Search asks the provider for a single candidate and translates it
func (s *locationService) Search(ctx context.Context, name string) (types.ResolvedLocation, error) {
	name = strings.TrimSpace(name)

	resp, err := s.geocodingProvider.Search(ctx, name, 1)
	if err != nil {
		s.logger.Error("failed to geocode location", "search", name, "error", err)
		return types.ResolvedLocation{}, fmt.Errorf("%w: %w", ErrGeocodingFailed, err)
	}

	candidates := resp.Candidates()
	if len(candidates) == 0 {
		s.logger.Info("no geocoding match", "search", name)
		return types.ResolvedLocation{}, fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}

	return s.translateCandidate(name, candidates[0])
}

func (s *locationService) FromCoordinates(latitude, longitude string) (types.ResolvedLocation, error) {
	coords, err := types.ParseCoords(latitude, longitude)
	if err != nil {
		return types.ResolvedLocation{}, err
	}
	return types.NewLocationFromCoords(coords), nil
}

// translateCandidate converts a geocoding match to the domain location type
func (s *locationService) translateCandidate(search string, match openmeteo.GeocodingResult) (types.ResolvedLocation, error) {
	if match.Latitude == nil || match.Longitude == nil {
		s.logger.Error("geocoding match has no coordinates", "search", search)
		return types.ResolvedLocation{}, fmt.Errorf("%w: %q", ErrMissingCoordinates, search)
	}

	elevation := 0.0
	if match.Elevation != nil {
		elevation = *match.Elevation
	}

	// Prefer the provider's name, then its formatted label, then the query
	name := match.Name
	if name == "" {
		name = match.Formatted
	}
	if name == "" {
		name = search
	}

	s.logger.Debug("resolved location",
		"search", search,
		"name", name,
		"latitude", *match.Latitude,
		"longitude", *match.Longitude,
		"elevation", elevation,
	)

	return types.ResolvedLocation{
		Name:        name,
		Coordinates: types.NewCoords(*match.Latitude, *match.Longitude),
		Elevation:   types.NewElevationFromMeters(elevation),
	}, nil
}

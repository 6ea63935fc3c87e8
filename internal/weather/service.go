package weather

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"meteo-gateway/internal/config"
	"meteo-gateway/internal/location"
	"meteo-gateway/internal/providers/openmeteo"
	"meteo-gateway/internal/types"
)

const (
	msgInvalidCoordinates = "Latitude and longitude parameters are invalid or missing"
	msgInvalidQuery       = "Invalid latitude or longitude"
	msgGeocodingFailed    = "Error during geocoding"
	msgLocationNotFound   = "Location not found"
	msgIncompleteLocation = "Incomplete location data"
	msgForecastFailed     = "Error fetching weather data"
	msgIncompleteWeather  = "Incomplete weather data"
)

type ForecastProvider interface {
	// GetCurrent fetches the current conditions at the given coordinates
	GetCurrent(ctx context.Context, latitude, longitude float64) (*openmeteo.ForecastAPIResponse, error)
}

type Service interface {
	// ReportBySearch geocodes search and reports the weather there.
	// An empty search uses the configured default place.
	ReportBySearch(ctx context.Context, search string) (*Report, error)
	// ReportByCoordinates reports the weather at raw latitude/longitude values
	ReportByCoordinates(ctx context.Context, latitude, longitude string) (*Report, error)
	// Report uses the coordinates when both are given and the search otherwise
	Report(ctx context.Context, query LocationQuery) (*Report, error)
}

type weatherService struct {
	locationService  location.Service
	forecastProvider ForecastProvider
	defaultSearch    string
	logger           *slog.Logger
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) Service {
	return NewWeatherServiceWithProviders(
		location.NewLocationService(cfg, logger),
		openmeteo.NewForecastClient(cfg.OpenMeteo.ForecastURL, cfg.OpenMeteo.Timeout, logger),
		cfg.App.DefaultSearch,
		logger,
	)
}

// NewWeatherServiceWithProviders creates a weather service with custom providers
// This is useful for testing with mock providers
func NewWeatherServiceWithProviders(
	locationService location.Service,
	forecastProvider ForecastProvider,
	defaultSearch string,
	logger *slog.Logger,
) Service {
	return &weatherService{
		locationService:  locationService,
		forecastProvider: forecastProvider,
		defaultSearch:    defaultSearch,
		logger:           logger.With("component", "weather-service"),
	}
}

func (s *weatherService) ReportBySearch(ctx context.Context, search string) (*Report, error) {
	ctx, span := otel.Tracer("meteo-gateway/weather").Start(ctx, "weather.report_by_search")
	defer span.End()

	report, err := s.reportBySearch(ctx, search)
	recordOutcome(span, err)
	return report, err
}

func (s *weatherService) ReportByCoordinates(ctx context.Context, latitude, longitude string) (*Report, error) {
	ctx, span := otel.Tracer("meteo-gateway/weather").Start(ctx, "weather.report_by_coordinates")
	defer span.End()

	loc, err := s.locationService.FromCoordinates(latitude, longitude)
	if err != nil {
		err = newError(ErrInvalidInput, msgInvalidCoordinates, err)
		recordOutcome(span, err)
		return nil, err
	}

	report, err := s.reportAt(ctx, loc)
	recordOutcome(span, err)
	return report, err
}

func (s *weatherService) Report(ctx context.Context, query LocationQuery) (*Report, error) {
	ctx, span := otel.Tracer("meteo-gateway/weather").Start(ctx, "weather.report")
	defer span.End()

	if !query.HasCoordinates() {
		report, err := s.reportBySearch(ctx, query.Search)
		recordOutcome(span, err)
		return report, err
	}

	loc, err := s.locationService.FromCoordinates(query.Latitude, query.Longitude)
	if err != nil {
		err = newError(ErrInvalidInput, msgInvalidQuery, err)
		recordOutcome(span, err)
		return nil, err
	}

	report, err := s.reportAt(ctx, loc)
	recordOutcome(span, err)
	return report, err
}

func (s *weatherService) reportBySearch(ctx context.Context, search string) (*Report, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		search = s.defaultSearch
	}

	loc, err := s.resolve(ctx, search)
	if err != nil {
		return nil, err
	}

	return s.reportAt(ctx, loc)
}

// resolve geocodes search and maps location failures to error kinds
func (s *weatherService) resolve(ctx context.Context, search string) (types.ResolvedLocation, error) {
	loc, err := s.locationService.Search(ctx, search)
	switch {
	case err == nil:
		return loc, nil
	case errors.Is(err, location.ErrLocationNotFound):
		return types.ResolvedLocation{}, newError(ErrNotFound, msgLocationNotFound, err)
	case errors.Is(err, location.ErrMissingCoordinates):
		return types.ResolvedLocation{}, newError(ErrIncompleteData, msgIncompleteLocation, err)
	default:
		return types.ResolvedLocation{}, newError(ErrUpstream, msgGeocodingFailed, err)
	}
}

// reportAt fetches and classifies the current conditions at loc
func (s *weatherService) reportAt(ctx context.Context, loc types.ResolvedLocation) (*Report, error) {
	lat, lon := loc.Coordinates.Latitude, loc.Coordinates.Longitude

	resp, err := s.forecastProvider.GetCurrent(ctx, lat, lon)
	if err != nil {
		s.logger.Error("failed to get forecast from provider",
			"latitude", lat,
			"longitude", lon,
			"error", err,
		)
		return nil, newError(ErrUpstream, msgForecastFailed, err)
	}

	conditions, err := mapCurrentConditions(resp.Current)
	if err != nil {
		s.logger.Error("forecast response is incomplete",
			"latitude", lat,
			"longitude", lon,
			"error", err,
		)
		return nil, newError(ErrIncompleteData, msgIncompleteWeather, err)
	}

	s.logger.Debug("fetched current conditions",
		"location", loc.Name,
		"weather", conditions.Weather.Description,
		"temperature", conditions.Temperature,
		"wind_kph", conditions.WindSpeed.Kph,
	)

	return &Report{
		Location:   loc,
		Conditions: conditions,
	}, nil
}

func mapCurrentConditions(current *openmeteo.CurrentAPIResponse) (types.CurrentConditions, error) {
	if current.IsEmpty() {
		return types.CurrentConditions{}, errors.New("response has no current conditions")
	}
	if current.Temperature2M == nil {
		return types.CurrentConditions{}, errors.New("current conditions have no temperature")
	}
	if current.RelativeHumidity2M == nil {
		return types.CurrentConditions{}, errors.New("current conditions have no humidity")
	}

	conditions := types.CurrentConditions{
		Time:        current.Time,
		Temperature: *current.Temperature2M,
		Humidity:    *current.RelativeHumidity2M,
		Weather:     types.Classify(current.WeatherCode),
	}
	if current.Precipitation != nil {
		conditions.Precipitation = *current.Precipitation
	}
	if current.WindSpeed10M != nil {
		conditions.WindSpeed = types.NewWindSpeedFromKph(*current.WindSpeed10M)
	}

	return conditions, nil
}

func recordOutcome(span trace.Span, err error) {
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	var werr *Error
	if errors.As(err, &werr) {
		span.SetAttributes(attribute.String("weather.error_kind", werr.Kind.Error()))
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

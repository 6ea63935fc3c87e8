package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=45.07&longitude=7.68&current=temperature_2m,relative_humidity_2m,weathercode,wind_speed_10m,precipitation
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

var currentVars = []string{
	"temperature_2m",
	"relative_humidity_2m",
	"weathercode",
	"wind_speed_10m",
	"precipitation",
}

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewForecastClient creates a client for baseURL. An empty baseURL selects
// the public Open-Meteo endpoint.
func NewForecastClient(baseURL string, timeout time.Duration, logger *slog.Logger) *ForecastClient {
	if baseURL == "" {
		baseURL = baseForecastURL
	}
	return &ForecastClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger.With("component", "openmeteo-forecast-client"),
	}
}

// GetCurrent fetches the current conditions for the given latitude and longitude
func (c *ForecastClient) GetCurrent(ctx context.Context, latitude, longitude float64) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("current", strings.Join(currentVars, ","))
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching Open-Meteo current conditions",
		"latitude", latitude,
		"longitude", longitude,
		"url", u.String(),
	)

	var apiResp ForecastAPIResponse
	if err := getJSON(ctx, c.httpClient, c.logger, "openmeteo.forecast.current", u, &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=Turin&count=1
const (
	baseGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
)

type GeocodingClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewGeocodingClient creates a client for baseURL. An empty baseURL selects
// the public Open-Meteo endpoint.
func NewGeocodingClient(baseURL string, timeout time.Duration, logger *slog.Logger) *GeocodingClient {
	if baseURL == "" {
		baseURL = baseGeocodingURL
	}
	return &GeocodingClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger.With("component", "openmeteo-geocoding-client"),
	}
}

// Search looks up at most count places matching name
func (c *GeocodingClient) Search(ctx context.Context, name string, count int) (*GeocodingAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("name", name)
	q.Set("count", strconv.Itoa(count))
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	c.logger.Debug("searching Open-Meteo geocoding", "name", name, "url", u.String())

	var apiResp GeocodingAPIResponse
	if err := getJSON(ctx, c.httpClient, c.logger, "openmeteo.geocoding.search", u, &apiResp); err != nil {
		return nil, err
	}

	c.logger.Debug("successfully searched Open-Meteo geocoding",
		"name", name,
		"candidates", len(apiResp.Candidates()),
	)

	return &apiResp, nil
}

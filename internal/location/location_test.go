package location

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"meteo-gateway/internal/providers/openmeteo"
	"meteo-gateway/internal/types"
)

// Mock providers for testing

type mockGeocodingProvider struct {
	response *openmeteo.GeocodingAPIResponse
	err      error
	gotName  string
	gotCount int
}

func (m *mockGeocodingProvider) Search(ctx context.Context, name string, count int) (*openmeteo.GeocodingAPIResponse, error) {
	m.gotName = name
	m.gotCount = count
	return m.response, m.err
}

func ptr(v float64) *float64 {
	return &v
}

func TestLocationService_Search(t *testing.T) {
	tests := []struct {
		name        string
		search      string
		response    *openmeteo.GeocodingAPIResponse
		providerErr error
		wantErr     error
		errContains string
		validate    func(*testing.T, types.ResolvedLocation)
	}{
		{
			name:   "successful search",
			search: "Turin",
			response: &openmeteo.GeocodingAPIResponse{
				Results: []openmeteo.GeocodingResult{
					{Name: "Turin", Latitude: ptr(45.07), Longitude: ptr(7.68), Elevation: ptr(239)},
					{Name: "Turin, Iowa", Latitude: ptr(42.01), Longitude: ptr(-95.96)},
				},
			},
			validate: func(t *testing.T, loc types.ResolvedLocation) {
				if loc.Name != "Turin" {
					t.Errorf("Name = %v, want %v", loc.Name, "Turin")
				}
				if loc.Coordinates.Latitude != 45.07 || loc.Coordinates.Longitude != 7.68 {
					t.Errorf("Coordinates = %+v, want first candidate", loc.Coordinates)
				}
				if loc.Elevation.Meters != 239 {
					t.Errorf("Elevation.Meters = %v, want %v", loc.Elevation.Meters, 239)
				}
			},
		},
		{
			name:   "missing elevation defaults to zero",
			search: "Turin",
			response: &openmeteo.GeocodingAPIResponse{
				Results: []openmeteo.GeocodingResult{{Name: "Turin", Latitude: ptr(45.07), Longitude: ptr(7.68)}},
			},
			validate: func(t *testing.T, loc types.ResolvedLocation) {
				if loc.Elevation.Meters != 0 {
					t.Errorf("Elevation.Meters = %v, want 0", loc.Elevation.Meters)
				}
			},
		},
		{
			name:   "features with formatted name",
			search: "Aspen",
			response: &openmeteo.GeocodingAPIResponse{
				Features: []openmeteo.GeocodingResult{{Formatted: "Aspen, CO, USA", Latitude: ptr(39.19), Longitude: ptr(-106.82)}},
			},
			validate: func(t *testing.T, loc types.ResolvedLocation) {
				if loc.Name != "Aspen, CO, USA" {
					t.Errorf("Name = %v, want %v", loc.Name, "Aspen, CO, USA")
				}
			},
		},
		{
			name:   "name falls back to query",
			search: "  Somewhere ",
			response: &openmeteo.GeocodingAPIResponse{
				Results: []openmeteo.GeocodingResult{{Latitude: ptr(1), Longitude: ptr(2)}},
			},
			validate: func(t *testing.T, loc types.ResolvedLocation) {
				if loc.Name != "Somewhere" {
					t.Errorf("Name = %q, want %q", loc.Name, "Somewhere")
				}
			},
		},
		{
			name:     "no candidates",
			search:   "Nowhere",
			response: &openmeteo.GeocodingAPIResponse{},
			wantErr:  ErrLocationNotFound,
		},
		{
			name:        "provider error",
			search:      "Turin",
			providerErr: &openmeteo.StatusError{StatusCode: 502, Body: "bad gateway"},
			wantErr:     ErrGeocodingFailed,
			errContains: "status 502",
		},
		{
			name:   "candidate without coordinates",
			search: "Turin",
			response: &openmeteo.GeocodingAPIResponse{
				Results: []openmeteo.GeocodingResult{{Name: "Turin", Latitude: ptr(45.07)}},
			},
			wantErr: ErrMissingCoordinates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockGeocodingProvider{response: tt.response, err: tt.providerErr}
			service := NewLocationServiceWithProvider(provider, slog.New(slog.NewTextHandler(io.Discard, nil)))

			got, err := service.Search(context.Background(), tt.search)

			if provider.gotCount != 1 {
				t.Errorf("provider count = %d, want 1", provider.gotCount)
			}
			if provider.gotName != strings.TrimSpace(tt.search) {
				t.Errorf("provider name = %q, want %q", provider.gotName, strings.TrimSpace(tt.search))
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Search() error = %v, want %v", err, tt.wantErr)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Search() error = %v, want error containing %v", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("Search() unexpected error = %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}

func TestLocationService_FromCoordinates(t *testing.T) {
	provider := &mockGeocodingProvider{}
	service := NewLocationServiceWithProvider(provider, slog.New(slog.NewTextHandler(io.Discard, nil)))

	loc, err := service.FromCoordinates("45.07", "7.68")
	if err != nil {
		t.Fatalf("FromCoordinates() unexpected error = %v", err)
	}
	if loc.Name != "45.07,7.68" {
		t.Errorf("Name = %q, want %q", loc.Name, "45.07,7.68")
	}
	if loc.Elevation.Meters != 0 {
		t.Errorf("Elevation.Meters = %v, want 0", loc.Elevation.Meters)
	}
	if provider.gotCount != 0 {
		t.Error("FromCoordinates() contacted the geocoding provider")
	}

	if _, err := service.FromCoordinates("abc", "7.68"); !errors.Is(err, types.ErrInvalidCoordinates) {
		t.Errorf("FromCoordinates(abc) error = %v, want ErrInvalidCoordinates", err)
	}
}

package types

import (
	"errors"
	"testing"
)

func TestParseCoords(t *testing.T) {
	tests := []struct {
		name    string
		lat     string
		lon     string
		want    Coords
		wantErr error
	}{
		{name: "valid", lat: "45.07", lon: "7.68", want: NewCoords(45.07, 7.68)},
		{name: "integers", lat: "40", lon: "-74", want: NewCoords(40, -74)},
		{name: "surrounding spaces", lat: " 10.5 ", lon: "20", want: NewCoords(10.5, 20)},
		{name: "bounds", lat: "-90", lon: "180", want: NewCoords(-90, 180)},
		{name: "not a number", lat: "abc", lon: "7.68", wantErr: ErrInvalidCoordinates},
		{name: "missing latitude", lat: "", lon: "7.68", wantErr: ErrInvalidCoordinates},
		{name: "missing longitude", lat: "45.07", lon: "", wantErr: ErrInvalidCoordinates},
		{name: "nan", lat: "NaN", lon: "7.68", wantErr: ErrInvalidCoordinates},
		{name: "infinite", lat: "45", lon: "+Inf", wantErr: ErrInvalidCoordinates},
		{name: "latitude out of range", lat: "91", lon: "0", wantErr: ErrInvalidLatitude},
		{name: "longitude out of range", lat: "0", lon: "-180.5", wantErr: ErrInvalidLongitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoords(tt.lat, tt.lon)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseCoords() error = %v, want %v", err, tt.wantErr)
				}
				if !errors.Is(err, ErrInvalidCoordinates) {
					t.Errorf("ParseCoords() error = %v, want it to wrap ErrInvalidCoordinates", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCoords() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseCoords() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCoords_String(t *testing.T) {
	tests := []struct {
		coords Coords
		want   string
	}{
		{NewCoords(40, -74), "40.0,-74.0"},
		{NewCoords(45.07, 7.68), "45.07,7.68"},
		{NewCoords(0, 0), "0.0,0.0"},
		{NewCoords(-33.8688, 151.2093), "-33.8688,151.2093"},
	}

	for _, tt := range tests {
		if got := tt.coords.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.coords, got, tt.want)
		}
	}
}

func TestNewLocationFromCoords(t *testing.T) {
	loc := NewLocationFromCoords(NewCoords(40, -74))
	if loc.Name != "40.0,-74.0" {
		t.Errorf("Name = %q, want %q", loc.Name, "40.0,-74.0")
	}
	if loc.Elevation.Meters != 0 {
		t.Errorf("Elevation.Meters = %v, want 0", loc.Elevation.Meters)
	}
}

package types

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidLatitude    = fmt.Errorf("%w: latitude must be between -90 and 90", ErrInvalidCoordinates)
	ErrInvalidLongitude   = fmt.Errorf("%w: longitude must be between -180 and 180", ErrInvalidCoordinates)
)

type Coords struct {
	Latitude  float64
	Longitude float64
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// ParseCoords parses a latitude/longitude pair supplied as text.
// Both values are required and must be finite numbers within range.
func ParseCoords(latitude, longitude string) (Coords, error) {
	lat, err := parseDegrees("latitude", latitude)
	if err != nil {
		return Coords{}, err
	}
	lon, err := parseDegrees("longitude", longitude)
	if err != nil {
		return Coords{}, err
	}

	if lat < -90 || lat > 90 {
		return Coords{}, ErrInvalidLatitude
	}
	if lon < -180 || lon > 180 {
		return Coords{}, ErrInvalidLongitude
	}

	return NewCoords(lat, lon), nil
}

func parseDegrees(name, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is missing", ErrInvalidCoordinates, name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidCoordinates, name, raw)
	}
	return v, nil
}

// String renders the pair as "lat,lon", e.g. "40.0,-74.0"
func (c Coords) String() string {
	return formatDegrees(c.Latitude) + "," + formatDegrees(c.Longitude)
}

// formatDegrees uses the shortest round-trip form and always keeps a
// fractional part so whole numbers read as "40.0".
func formatDegrees(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

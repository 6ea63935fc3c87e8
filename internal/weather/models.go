package weather

import (
	"strings"

	"meteo-gateway/internal/types"
)

// LocationQuery is the location input of the unified lookup. Latitude and
// Longitude are raw query values; they are used only when both are set.
type LocationQuery struct {
	Search    string
	Latitude  string
	Longitude string
}

// HasCoordinates reports whether both coordinate values were supplied
func (q LocationQuery) HasCoordinates() bool {
	return strings.TrimSpace(q.Latitude) != "" && strings.TrimSpace(q.Longitude) != ""
}

// Report is the current weather at a resolved location
type Report struct {
	Location   types.ResolvedLocation
	Conditions types.CurrentConditions
}

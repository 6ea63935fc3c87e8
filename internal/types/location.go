package types

// ResolvedLocation is the place a report is produced for. Elevation is in
// meters and is zero when the location came from raw coordinates.
type ResolvedLocation struct {
	Name        string
	Coordinates Coords
	Elevation   Elevation
}

// NewLocationFromCoords builds a location for coordinates supplied directly
// by the caller. No elevation source is consulted.
func NewLocationFromCoords(coords Coords) ResolvedLocation {
	return ResolvedLocation{
		Name:        coords.String(),
		Coordinates: coords,
		Elevation:   NewElevationFromMeters(0),
	}
}

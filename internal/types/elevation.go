package types

const MetersToFeet = 1 / 0.3048

type Elevation struct {
	Feet   float64
	Meters float64
}

func NewElevationFromMeters(meters float64) Elevation {
	return Elevation{
		Meters: meters,
		Feet:   meters * MetersToFeet,
	}
}

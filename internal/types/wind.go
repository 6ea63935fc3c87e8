package types

const KphToMph = 0.621371

type WindSpeed struct {
	Kph float64
	Mph float64
}

// NewWindSpeedFromKph converts Open-Meteo's default km/h unit
func NewWindSpeedFromKph(speedInKph float64) WindSpeed {
	return WindSpeed{
		Kph: speedInKph,
		Mph: speedInKph * KphToMph,
	}
}

package types

// CurrentConditions holds the present-moment values of a forecast.
// Temperature is in °C, humidity in percent and precipitation in mm.
type CurrentConditions struct {
	Time          string
	Temperature   float64
	Humidity      float64
	Precipitation float64
	WindSpeed     WindSpeed
	Weather       Weather
}

package openmeteo

// GeocodingAPIResponse is the body of the geocoding search endpoint.
// Open-Meteo lists candidates under "results"; GeoJSON-style providers
// use "features".
type GeocodingAPIResponse struct {
	Results          []GeocodingResult `json:"results"`
	Features         []GeocodingResult `json:"features"`
	GenerationtimeMs float64           `json:"generationtime_ms"`
}

// Candidates returns the matches in provider order, preferring "results"
func (r *GeocodingAPIResponse) Candidates() []GeocodingResult {
	if len(r.Results) > 0 {
		return r.Results
	}
	return r.Features
}

type GeocodingResult struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Formatted   string   `json:"formatted"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Elevation   *float64 `json:"elevation"`
	FeatureCode string   `json:"feature_code"`
	CountryCode string   `json:"country_code"`
	Country     string   `json:"country"`
	Admin1      string   `json:"admin1"`
	Timezone    string   `json:"timezone"`
	Population  int      `json:"population"`
}

type ForecastAPIResponse struct {
	Latitude             float64             `json:"latitude"`
	Longitude            float64             `json:"longitude"`
	GenerationtimeMs     float64             `json:"generationtime_ms"`
	UtcOffsetSeconds     int                 `json:"utc_offset_seconds"`
	Timezone             string              `json:"timezone"`
	TimezoneAbbreviation string              `json:"timezone_abbreviation"`
	Elevation            float64             `json:"elevation"`
	CurrentUnits         map[string]string   `json:"current_units"`
	Current              *CurrentAPIResponse `json:"current"`
}

// CurrentAPIResponse is the "current" block. Every field is optional
// upstream, so values absent from the payload stay nil.
type CurrentAPIResponse struct {
	Time               string   `json:"time"`
	Interval           int      `json:"interval"`
	Temperature2M      *float64 `json:"temperature_2m"`
	RelativeHumidity2M *float64 `json:"relative_humidity_2m"`
	WeatherCode        *int     `json:"weathercode"`
	WindSpeed10M       *float64 `json:"wind_speed_10m"`
	Precipitation      *float64 `json:"precipitation"`
}

// IsEmpty reports whether the block carries no values at all
func (c *CurrentAPIResponse) IsEmpty() bool {
	return c == nil || (c.Time == "" &&
		c.Temperature2M == nil &&
		c.RelativeHumidity2M == nil &&
		c.WeatherCode == nil &&
		c.WindSpeed10M == nil &&
		c.Precipitation == nil)
}

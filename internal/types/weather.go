package types

// WeatherCode represents a WMO weather code
type WeatherCode int

// Weather code constants
const (
	ClearSky                       WeatherCode = 0
	MostlyClear                    WeatherCode = 1
	PartlyCloudy                   WeatherCode = 2
	Overcast                       WeatherCode = 3
	Fog                            WeatherCode = 45
	FogVisibilityIncreasing        WeatherCode = 46
	FogVisibilityNotImproving      WeatherCode = 47
	FrostFogVisibilityImproving    WeatherCode = 48
	FrostFogVisibilityNotImproving WeatherCode = 49
	DrizzleLight                   WeatherCode = 51
	DrizzleModerate                WeatherCode = 53
	DrizzleDense                   WeatherCode = 55
	RainSlight                     WeatherCode = 61
	FreezingRainHeavy              WeatherCode = 67
	SnowFallSlight                 WeatherCode = 71
	SnowGrains                     WeatherCode = 77
	RainShowersSlight              WeatherCode = 80
	RainShowersViolent             WeatherCode = 82
	SnowShowersSlight              WeatherCode = 85
	SnowShowersHeavy               WeatherCode = 86
	Thunderstorm                   WeatherCode = 95
	ThunderstormWithSlightHail     WeatherCode = 96
	ThunderstormWithHeavyHail      WeatherCode = 99
)

// UndefinedWeatherDescription is reported for codes outside every known range
const UndefinedWeatherDescription = "Undefined weather condition"

// Weather represents a classified weather code. Code is nil when the
// upstream provider did not report one.
type Weather struct {
	Code        *int   `json:"code"`
	Description string `json:"description"`
	IsRainy     bool   `json:"is_rainy"`
}

type weatherRule struct {
	match       func(WeatherCode) bool
	description string
	rainy       bool
}

func is(codes ...WeatherCode) func(WeatherCode) bool {
	return func(c WeatherCode) bool {
		for _, code := range codes {
			if c == code {
				return true
			}
		}
		return false
	}
}

func between(lo, hi WeatherCode) func(WeatherCode) bool {
	return func(c WeatherCode) bool {
		return c >= lo && c <= hi
	}
}

// weatherRules is evaluated in order, first match wins
var weatherRules = []weatherRule{
	{is(ClearSky), "Clear", false},
	{is(MostlyClear), "Mostly clear", false},
	{is(PartlyCloudy), "Partly cloudy", false},
	{is(Overcast), "Overcast", false},
	{is(Fog), "Fog", false},
	{is(FogVisibilityIncreasing), "Fog, visibility increasing", false},
	{is(FogVisibilityNotImproving), "Fog, visibility not improving", false},
	{is(FrostFogVisibilityImproving), "Fog with frost deposit, visibility improving", false},
	{is(FrostFogVisibilityNotImproving), "Fog with frost deposit, visibility not improving", false},
	{is(DrizzleLight, DrizzleModerate, DrizzleDense), "Drizzle", true},
	{between(RainSlight, FreezingRainHeavy), "Rain", true},
	{between(SnowFallSlight, SnowGrains), "Snowfall", false},
	{between(RainShowersSlight, RainShowersViolent), "Showers", true},
	{between(SnowShowersSlight, SnowShowersHeavy), "Snow showers", false},
	{is(Thunderstorm), "Thunderstorm", true},
	{is(ThunderstormWithSlightHail, ThunderstormWithHeavyHail), "Thunderstorm with hail", true},
}

// ClassifyCode returns the description and rainy flag for a weather code.
// It is defined for every integer.
func ClassifyCode(code int) (string, bool) {
	c := WeatherCode(code)
	for _, rule := range weatherRules {
		if rule.match(c) {
			return rule.description, rule.rainy
		}
	}
	return UndefinedWeatherDescription, false
}

// Classify creates a Weather from a possibly missing weather code.
// A nil code matches no rule.
func Classify(code *int) Weather {
	if code == nil {
		return Weather{Description: UndefinedWeatherDescription}
	}
	c := *code
	desc, rainy := ClassifyCode(c)
	return Weather{
		Code:        &c,
		Description: desc,
		IsRainy:     rainy,
	}
}

package types

import "testing"

func TestClassifyCode(t *testing.T) {
	tests := []struct {
		code      int
		wantDesc  string
		wantRainy bool
	}{
		{0, "Clear", false},
		{1, "Mostly clear", false},
		{2, "Partly cloudy", false},
		{3, "Overcast", false},
		{4, UndefinedWeatherDescription, false},
		{44, UndefinedWeatherDescription, false},
		{45, "Fog", false},
		{46, "Fog, visibility increasing", false},
		{47, "Fog, visibility not improving", false},
		{48, "Fog with frost deposit, visibility improving", false},
		{49, "Fog with frost deposit, visibility not improving", false},
		{50, UndefinedWeatherDescription, false},
		{51, "Drizzle", true},
		{52, UndefinedWeatherDescription, false},
		{53, "Drizzle", true},
		{55, "Drizzle", true},
		{56, UndefinedWeatherDescription, false},
		{60, UndefinedWeatherDescription, false},
		{61, "Rain", true},
		{64, "Rain", true},
		{67, "Rain", true},
		{68, UndefinedWeatherDescription, false},
		{71, "Snowfall", false},
		{77, "Snowfall", false},
		{78, UndefinedWeatherDescription, false},
		{80, "Showers", true},
		{82, "Showers", true},
		{83, UndefinedWeatherDescription, false},
		{85, "Snow showers", false},
		{86, "Snow showers", false},
		{95, "Thunderstorm", true},
		{96, "Thunderstorm with hail", true},
		{97, UndefinedWeatherDescription, false},
		{99, "Thunderstorm with hail", true},
		{100, UndefinedWeatherDescription, false},
		{-5, UndefinedWeatherDescription, false},
	}

	for _, tt := range tests {
		desc, rainy := ClassifyCode(tt.code)
		if desc != tt.wantDesc || rainy != tt.wantRainy {
			t.Errorf("ClassifyCode(%d) = (%q, %v), want (%q, %v)", tt.code, desc, rainy, tt.wantDesc, tt.wantRainy)
		}
	}
}

func TestClassifyCode_Total(t *testing.T) {
	for code := -1000; code <= 1000; code++ {
		desc, rainy := ClassifyCode(code)
		if desc == "" {
			t.Fatalf("ClassifyCode(%d) returned an empty description", code)
		}
		if desc == UndefinedWeatherDescription && rainy {
			t.Fatalf("ClassifyCode(%d) is undefined but rainy", code)
		}
	}
}

func TestClassify(t *testing.T) {
	t.Run("missing code", func(t *testing.T) {
		w := Classify(nil)
		if w.Code != nil {
			t.Errorf("Code = %v, want nil", *w.Code)
		}
		if w.Description != UndefinedWeatherDescription || w.IsRainy {
			t.Errorf("Classify(nil) = %+v, want undefined and not rainy", w)
		}
	})

	t.Run("known code", func(t *testing.T) {
		code := 95
		w := Classify(&code)
		if w.Code == nil || *w.Code != 95 {
			t.Fatalf("Code = %v, want 95", w.Code)
		}
		if w.Description != "Thunderstorm" || !w.IsRainy {
			t.Errorf("Classify(95) = %+v, want Thunderstorm and rainy", w)
		}

		code = 0
		if *w.Code != 95 {
			t.Errorf("Classify kept a reference to the caller's code")
		}
	})
}

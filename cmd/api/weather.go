package main

import (
	"errors"
	"net/http"

	"meteo-gateway/internal/weather"

	"github.com/gin-gonic/gin"
)

// ConditionsResponse is the part of a report shared by every weather endpoint
type ConditionsResponse struct {
	Latitude      float64 `json:"latitude" example:"45.07"`
	Longitude     float64 `json:"longitude" example:"7.68"`
	Temperature   float64 `json:"temperature" example:"18.5"`      // °C
	Humidity      float64 `json:"humidity" example:"60"`           // Relative humidity, %
	WeatherCode   *int    `json:"weather_code" example:"3"`        // WMO code, null when not reported
	WeatherDesc   string  `json:"weather_desc" example:"Overcast"` // Human-readable weather code
	Precipitation float64 `json:"precipitation" example:"0"`       // mm
	IsRainy       bool    `json:"is_rainy" example:"false"`        // Drizzle, rain, showers or thunderstorm
}

// WeatherReportResponse is a report for a named location
type WeatherReportResponse struct {
	Location  string  `json:"location" example:"Turin"`
	Elevation float64 `json:"elevation" example:"239"` // Meters
	ConditionsResponse
}

// ErrorResponse carries a short description of a failed request
type ErrorResponse struct {
	Error string `json:"error" example:"Location not found"`
}

func newConditionsResponse(report *weather.Report) ConditionsResponse {
	cond := report.Conditions
	return ConditionsResponse{
		Latitude:      report.Location.Coordinates.Latitude,
		Longitude:     report.Location.Coordinates.Longitude,
		Temperature:   cond.Temperature,
		Humidity:      cond.Humidity,
		WeatherCode:   cond.Weather.Code,
		WeatherDesc:   cond.Weather.Description,
		Precipitation: cond.Precipitation,
		IsRainy:       cond.Weather.IsRainy,
	}
}

func newWeatherReportResponse(report *weather.Report) WeatherReportResponse {
	return WeatherReportResponse{
		Location:           report.Location.Name,
		Elevation:          report.Location.Elevation.Meters,
		ConditionsResponse: newConditionsResponse(report),
	}
}

// handleWeatherBySearch godoc
// @Summary Get weather by place name
// @Description Geocode a place name and report its current weather. Defaults to Turin.
// @Tags weather
// @Produce json
// @Param search query string false "Place name" example(Turin)
// @Success 200 {object} WeatherReportResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /weatherbysearch [get]
func (app *App) handleWeatherBySearch(c *gin.Context) {
	report, err := app.weatherService.ReportBySearch(c.Request.Context(), c.Query("search"))
	if err != nil {
		app.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWeatherReportResponse(report))
}

// handleWeatherByCoordinates godoc
// @Summary Get weather by coordinates
// @Description Report the current weather at a latitude and longitude
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(45.07)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(7.68)
// @Success 200 {object} ConditionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /weatherbycoordinates [get]
func (app *App) handleWeatherByCoordinates(c *gin.Context) {
	report, err := app.weatherService.ReportByCoordinates(c.Request.Context(), c.Query("latitude"), c.Query("longitude"))
	if err != nil {
		app.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newConditionsResponse(report))
}

// handleWeather godoc
// @Summary Get weather by place name or coordinates
// @Description Report the current weather at the given coordinates when both are present, otherwise geocode the search text (default Turin)
// @Tags weather
// @Produce json
// @Param search query string false "Place name" example(Turin)
// @Param latitude query number false "Latitude in decimal degrees (alias: lat)"
// @Param longitude query number false "Longitude in decimal degrees (alias: long)"
// @Success 200 {object} WeatherReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /weather [get]
func (app *App) handleWeather(c *gin.Context) {
	query := weather.LocationQuery{
		Search:    c.Query("search"),
		Latitude:  firstQuery(c, "latitude", "lat"),
		Longitude: firstQuery(c, "longitude", "long"),
	}

	report, err := app.weatherService.Report(c.Request.Context(), query)
	if err != nil {
		app.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWeatherReportResponse(report))
}

// firstQuery returns the first non-empty query value among keys
func firstQuery(c *gin.Context, keys ...string) string {
	for _, key := range keys {
		if v := c.Query(key); v != "" {
			return v
		}
	}
	return ""
}

// writeError maps a service error to its HTTP status
func (app *App) writeError(c *gin.Context, err error) {
	var werr *weather.Error
	if !errors.As(err, &werr) {
		app.logger.Error("unexpected weather service error", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, weather.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, weather.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, weather.ErrUpstream):
		status = http.StatusBadGateway
	case errors.Is(err, weather.ErrIncompleteData):
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		app.logger.Error("weather request failed", "path", c.Request.URL.Path, "status", status, "error", err)
	} else {
		app.logger.Info("weather request rejected", "path", c.Request.URL.Path, "status", status, "error", err)
	}

	c.JSON(status, ErrorResponse{Error: werr.Message})
}

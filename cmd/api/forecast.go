package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse carries the failure messages of an unsuccessful request
type ErrorResponse struct {
	Errors []string `json:"errors"` // Human-readable failure messages
}

// GetForecastInput defines the query parameters for the forecast endpoint
type GetForecastInput struct {
	Latitude  float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// GetForecastByLocationInput defines the query parameters for the
// name-based forecast endpoint
type GetForecastByLocationInput struct {
	Name string `form:"name" binding:"required"` // Free-form place name
}

// handleGetForecast godoc
// @Summary Get the current-hour forecast for coordinates
// @Description Retrieve the forecast for the current hour at the given latitude and longitude, served from the cache when a record for this hour already exists
// @Tags forecast
// @Accept json
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(35.689487)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(139.691711)
// @Success 200 {object} types.ForecastRecord
// @Failure 400 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /forecast [get]
func (app *App) handleGetForecast(c *gin.Context) {
	var input GetForecastInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := app.forecastService.GetForecast(c.Request.Context(), input.Latitude, input.Longitude)
	if !result.OK() {
		app.respondFailure(c, result.Errors())
		return
	}

	c.JSON(http.StatusOK, result.Value())
}

// handleGetForecastByLocation godoc
// @Summary Get the current-hour forecast for a place name
// @Description Resolve a free-form place name to coordinates, then retrieve the forecast for the current hour at that location
// @Tags forecast
// @Accept json
// @Produce json
// @Param name query string true "Free-form place name" example(Tokyo)
// @Success 200 {object} types.ForecastRecord
// @Failure 400 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /forecast/location [get]
func (app *App) handleGetForecastByLocation(c *gin.Context) {
	var input GetForecastByLocationInput

	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := app.forecastService.GetForecastByLocation(c.Request.Context(), input.Name)
	if !result.OK() {
		app.respondFailure(c, result.Errors())
		return
	}

	c.JSON(http.StatusOK, result.Value())
}

// respondFailure maps a failure outcome to an HTTP error response. A
// not-found resolution is a 404, anything else is an upstream failure.
func (app *App) respondFailure(c *gin.Context, errs []string) {
	status := http.StatusBadGateway
	for _, msg := range errs {
		if msg == "No results found for the specified location." ||
			msg == "No display name found for the specified coordinates." ||
			msg == "no hourly forecast entry matches the current local time" {
			status = http.StatusNotFound
			break
		}
	}

	app.logger.Warn("request failed", "status", status, "errors", errs)
	c.JSON(status, ErrorResponse{Errors: errs})
}

package main

import (
	"net/http"

	_ "weather-cache/internal/types" // imported for swagger type definitions

	"github.com/gin-gonic/gin"
)

// GetLocationNameInput defines the query parameters for the reverse
// geocoding endpoint
type GetLocationNameInput struct {
	Latitude  float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// LocationNameResponse represents a resolved display name
type LocationNameResponse struct {
	DisplayName string `json:"displayName" example:"Shinjuku, Tokyo, Japan"` // Human-readable location name
}

// handleGetLocationName godoc
// @Summary Get the display name for coordinates
// @Description Reverse-geocode a latitude and longitude to a human-readable location name
// @Tags location
// @Accept json
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(35.689487)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(139.691711)
// @Success 200 {object} LocationNameResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /location/name [get]
func (app *App) handleGetLocationName(c *gin.Context) {
	var input GetLocationNameInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := app.forecastService.GetLocationName(c.Request.Context(), input.Latitude, input.Longitude)
	if !result.OK() {
		app.respondFailure(c, result.Errors())
		return
	}

	c.JSON(http.StatusOK, LocationNameResponse{DisplayName: result.Value()})
}

package types

import "time"

// ForecastRecord is the canonical cached forecast for one hour at one
// location. Timestamp is the UTC cache key, truncated to the top of the
// hour; together with Latitude and Longitude it is unique in the store.
// BSON field names match the Forecasts collection schema.
type ForecastRecord struct {
	Timestamp         time.Time `bson:"timestamp" json:"timestamp"`
	Latitude          float64   `bson:"latitude" json:"latitude"`
	Longitude         float64   `bson:"longitude" json:"longitude"`
	Temperature       float64   `bson:"temperature" json:"temperature"`
	TemperatureUnit   string    `bson:"temperatureUnit" json:"temperatureUnit"`
	WindSpeed         float64   `bson:"windSpeed" json:"windSpeed"`
	WindSpeedUnit     string    `bson:"windSpeedUnit" json:"windSpeedUnit"`
	WindDirection     int       `bson:"windDirection" json:"windDirection"`
	WindDirectionUnit string    `bson:"windDirectionUnit" json:"windDirectionUnit"`
	// Sunrise is a local-time instant for the record's calendar day.
	Sunrise time.Time `bson:"sunrise" json:"sunrise"`
}

package types

// Geolocation is a resolved place produced by the geocoding gateway.
type Geolocation struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

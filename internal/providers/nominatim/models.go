package nominatim

// SearchAPIResponse is one forward-geocoding candidate. Nominatim
// returns coordinates as strings.
type SearchAPIResponse struct {
	PlaceId     int    `json:"place_id"`
	Licence     string `json:"licence"`
	OsmType     string `json:"osm_type"`
	OsmId       int    `json:"osm_id"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Class       string `json:"class"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// ReverseAPIResponse is the reverse-geocoding response.
type ReverseAPIResponse struct {
	PlaceId     int    `json:"place_id"`
	Licence     string `json:"licence"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

package openmeteo

// ForecastAPIResponse is the raw upstream forecast series. Hourly and
// daily arrays are parallel and index-aligned; timestamps are local
// ISO8601 without a timezone suffix, offset by UtcOffsetSeconds.
type ForecastAPIResponse struct {
	Latitude         float64      `json:"latitude"`
	Longitude        float64      `json:"longitude"`
	UtcOffsetSeconds int          `json:"utc_offset_seconds"`
	Hourly           HourlySeries `json:"hourly"`
	HourlyUnits      HourlyUnits  `json:"hourly_units"`
	Daily            DailySeries  `json:"daily"`
}

type HourlySeries struct {
	Time             []string  `json:"time"`
	Temperature2M    []float64 `json:"temperature_2m"`
	WindSpeed10M     []float64 `json:"wind_speed_10m"`
	WindDirection10M []int     `json:"wind_direction_10m"`
}

type HourlyUnits struct {
	Temperature2M    string `json:"temperature_2m"`
	WindSpeed10M     string `json:"wind_speed_10m"`
	WindDirection10M string `json:"wind_direction_10m"`
}

type DailySeries struct {
	Time    []string `json:"time"`
	Sunrise []string `json:"sunrise"`
}

// ErrorAPIResponse is the structured error payload returned by the
// forecast API on non-success statuses.
type ErrorAPIResponse struct {
	Error bool   `json:"error"`
	Code  string `json:"code"`
}

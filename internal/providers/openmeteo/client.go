package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"weather-cache/internal/config"
	"weather-cache/internal/outcome"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=35.69&longitude=139.69&hourly=temperature_2m,wind_speed_10m,wind_direction_10m&daily=sunrise&timezone=auto
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(cfg config.ProviderConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		baseURL:    cfg.BaseURL,
		logger:     logger.With("component", "openmeteo-client"),
	}
}

// FetchForecast fetches the raw hourly forecast series and daily sunrise
// series for the given coordinates. The request asks for automatic
// timezone resolution so timestamps come back in the location's local
// time together with utc_offset_seconds. No retries are attempted.
func (c *Client) FetchForecast(ctx context.Context, latitude, longitude float64) outcome.Outcome[*ForecastAPIResponse] {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return outcome.Failf[*ForecastAPIResponse]("failed to parse forecast base URL: %v", err)
	}

	hourlyVars := []string{
		"temperature_2m",
		"wind_speed_10m",
		"wind_direction_10m",
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("daily", "sunrise")
	q.Set("timezone", "auto")
	q.Set("timeformat", "iso8601")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return outcome.Failf[*ForecastAPIResponse]("failed to build forecast request: %v", err)
	}

	c.logger.Debug("fetching forecast", "latitude", latitude, "longitude", longitude)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("failed to fetch forecast", "error", err)
		return outcome.Failf[*ForecastAPIResponse]("failed to fetch forecast data: %v", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("forecast API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)

		var apiErr ErrorAPIResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error && apiErr.Code != "" {
			return outcome.Failf[*ForecastAPIResponse]("forecast provider error: %s", apiErr.Code)
		}
		return outcome.Failf[*ForecastAPIResponse]("forecast provider returned status %d", resp.StatusCode)
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Warn("failed to decode forecast response", "error", err)
		return outcome.Failf[*ForecastAPIResponse]("failed to decode forecast response: %v", err)
	}

	return outcome.Ok(&apiResp)
}

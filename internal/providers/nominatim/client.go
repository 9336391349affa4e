package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"weather-cache/internal/config"
	"weather-cache/internal/outcome"
	"weather-cache/internal/types"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=Tokyo&format=json
//
// The Nominatim usage policy caps clients at one request per second, so
// every call goes through a shared rate limiter first.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func NewClient(cfg config.GeocodingConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		baseURL:    cfg.BaseURL,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		logger:     logger.With("component", "nominatim-client"),
	}
}

// Resolve forward-geocodes a place name. The upstream returns an ordered
// candidate list; the first element is the canonical match. An empty
// list is a failure, not an empty success.
func (c *Client) Resolve(ctx context.Context, locationName string) outcome.Outcome[types.Geolocation] {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return outcome.Failf[types.Geolocation]("failed to parse geocoding base URL: %v", err)
	}
	u.Path = "/search"

	q := u.Query()
	q.Set("q", locationName)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	body, failure := c.get(ctx, u.String())
	if failure != nil {
		return outcome.Propagate[types.Geolocation](*failure)
	}

	var candidates []SearchAPIResponse
	if err := json.Unmarshal(body, &candidates); err != nil {
		c.logger.Warn("failed to decode geocoding response", "error", err)
		return outcome.Failf[types.Geolocation]("failed to decode geocoding response: %v", err)
	}

	if len(candidates) == 0 {
		return outcome.Fail[types.Geolocation]("No results found for the specified location.")
	}

	first := candidates[0]
	latitude, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return outcome.Failf[types.Geolocation]("failed to parse latitude %q: %v", first.Lat, err)
	}
	longitude, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return outcome.Failf[types.Geolocation]("failed to parse longitude %q: %v", first.Lon, err)
	}

	return outcome.Ok(types.Geolocation{
		Latitude:    latitude,
		Longitude:   longitude,
		DisplayName: first.DisplayName,
	})
}

// ReverseResolve reverse-geocodes coordinates to a display name. A
// missing or empty display name is a failure.
func (c *Client) ReverseResolve(ctx context.Context, latitude, longitude float64) outcome.Outcome[string] {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return outcome.Failf[string]("failed to parse geocoding base URL: %v", err)
	}
	u.Path = "/reverse"

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	body, failure := c.get(ctx, u.String())
	if failure != nil {
		return outcome.Propagate[string](*failure)
	}

	var apiResp ReverseAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		c.logger.Warn("failed to decode reverse geocoding response", "error", err)
		return outcome.Failf[string]("failed to decode reverse geocoding response: %v", err)
	}

	if apiResp.DisplayName == "" {
		return outcome.Fail[string]("No display name found for the specified coordinates.")
	}

	return outcome.Ok(apiResp.DisplayName)
}

// get performs a rate-limited GET and returns the response body, or a
// failure outcome to propagate.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, *outcome.Outcome[outcome.Void]) {
	if err := c.limiter.Wait(ctx); err != nil {
		failure := outcome.Failf[outcome.Void]("rate limit wait canceled: %v", err)
		return nil, &failure
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		failure := outcome.Failf[outcome.Void]("failed to build geocoding request: %v", err)
		return nil, &failure
	}

	c.logger.Debug("fetching geocoding data", "url", rawURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("failed to fetch geocoding data", "error", err)
		failure := outcome.Failf[outcome.Void]("failed to fetch geocoding data: %v", err)
		return nil, &failure
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		failure := outcome.Failf[outcome.Void]("failed to read geocoding response: %v", err)
		return nil, &failure
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("geocoding API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		failure := outcome.Failf[outcome.Void]("geocoding provider returned status %d", resp.StatusCode)
		return nil, &failure
	}

	return body, nil
}

//go:build integration

package openmeteo

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"weather-cache/internal/config"
)

func TestClient_FetchForecast_Integration(t *testing.T) {
	// Test coordinates: Tokyo
	lat := 35.689487
	lon := 139.691711

	cfg := config.ProviderConfig{
		BaseURL:        "https://api.open-meteo.com/v1/forecast",
		TimeoutSeconds: 15,
	}
	client := NewClient(cfg, slog.Default())

	t.Logf("Making API call to Open-Meteo forecast API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	result := client.FetchForecast(context.Background(), lat, lon)
	if !result.OK() {
		t.Fatalf("Failed to fetch forecast: %s", result.ErrorString())
	}

	resp := result.Value()

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if len(resp.Hourly.Time) == 0 {
		t.Fatal("Hourly series is empty")
	}
	if len(resp.Hourly.Time) != len(resp.Hourly.Temperature2M) {
		t.Errorf("Hourly time and temperature arrays differ in length: %d vs %d",
			len(resp.Hourly.Time), len(resp.Hourly.Temperature2M))
	}
	if len(resp.Daily.Time) != len(resp.Daily.Sunrise) {
		t.Errorf("Daily time and sunrise arrays differ in length: %d vs %d",
			len(resp.Daily.Time), len(resp.Daily.Sunrise))
	}

	t.Logf("Forecast Details:")
	t.Logf("  UTC offset seconds: %d", resp.UtcOffsetSeconds)
	t.Logf("  Hourly entries: %d", len(resp.Hourly.Time))
	t.Logf("  Daily entries: %d", len(resp.Daily.Time))
}

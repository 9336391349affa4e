package seriestime

import (
	"fmt"
	"time"

	"weather-cache/internal/providers/openmeteo"
)

const (
	// Hourly timestamps and sunrise values are local ISO8601 without a
	// timezone suffix
	hourlyLayout = "2006-01-02T15:04"
	dailyLayout  = "2006-01-02"
)

// Service reconciles a provider's local-time series against wall-clock
// now and produces the stable UTC cache key plus the matching sunrise.
type Service interface {
	// CurrentLocalTime returns UTC now shifted by the series' UTC offset
	CurrentLocalTime(series *openmeteo.ForecastAPIResponse) time.Time

	// FindHourlyIndex returns the index of the hourly entry whose
	// calendar date and hour-of-day match localTime, or -1 if none does.
	// A -1 with a nil error is an expected outcome the caller must check.
	FindHourlyIndex(series *openmeteo.ForecastAPIResponse, localTime time.Time) (int, error)

	// NormalizeToUTC converts the hourly entry at index to the UTC cache
	// key: local timestamp minus the offset, truncated to the hour
	NormalizeToUTC(series *openmeteo.ForecastAPIResponse, index int) (time.Time, error)

	// SunriseForDate returns the sunrise for the local calendar day of
	// utcInstant. Falls back to that day's midnight when the daily
	// series has no matching entry.
	SunriseForDate(series *openmeteo.ForecastAPIResponse, utcInstant time.Time) (time.Time, error)
}

type service struct {
	now func() time.Time
}

// NewService creates a normalizer backed by the system clock
func NewService() Service {
	return NewServiceWithClock(time.Now)
}

// NewServiceWithClock creates a normalizer with a custom clock.
// This is useful for testing with a frozen clock.
func NewServiceWithClock(now func() time.Time) Service {
	return &service{now: now}
}

func offsetDuration(series *openmeteo.ForecastAPIResponse) time.Duration {
	return time.Duration(series.UtcOffsetSeconds) * time.Second
}

func (s *service) CurrentLocalTime(series *openmeteo.ForecastAPIResponse) time.Time {
	return s.now().UTC().Add(offsetDuration(series))
}

func (s *service) FindHourlyIndex(series *openmeteo.ForecastAPIResponse, localTime time.Time) (int, error) {
	for i, raw := range series.Hourly.Time {
		entry, err := time.Parse(hourlyLayout, raw)
		if err != nil {
			return -1, fmt.Errorf("failed to parse hourly timestamp %q: %w", raw, err)
		}

		if sameDate(entry, localTime) && entry.Hour() == localTime.Hour() {
			return i, nil
		}
	}

	return -1, nil
}

func (s *service) NormalizeToUTC(series *openmeteo.ForecastAPIResponse, index int) (time.Time, error) {
	if index < 0 || index >= len(series.Hourly.Time) {
		return time.Time{}, fmt.Errorf("hourly index %d out of range [0, %d)", index, len(series.Hourly.Time))
	}

	raw := series.Hourly.Time[index]
	local, err := time.Parse(hourlyLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse hourly timestamp %q: %w", raw, err)
	}

	utc := local.Add(-offsetDuration(series))
	return time.Date(utc.Year(), utc.Month(), utc.Day(), utc.Hour(), 0, 0, 0, time.UTC), nil
}

func (s *service) SunriseForDate(series *openmeteo.ForecastAPIResponse, utcInstant time.Time) (time.Time, error) {
	local := utcInstant.Add(offsetDuration(series))

	for i, raw := range series.Daily.Time {
		day, err := time.Parse(dailyLayout, raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse daily date %q: %w", raw, err)
		}

		if !sameDate(day, local) {
			continue
		}

		if i >= len(series.Daily.Sunrise) {
			return time.Time{}, fmt.Errorf("daily series has no sunrise entry for %q", raw)
		}

		sunriseRaw := series.Daily.Sunrise[i]
		sunrise, err := time.Parse(hourlyLayout, sunriseRaw)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse sunrise timestamp %q: %w", sunriseRaw, err)
		}
		return sunrise, nil
	}

	// No matching day in the series: fall back to midnight of the local
	// calendar date
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC), nil
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

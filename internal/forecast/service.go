package forecast

import (
	"context"
	"log/slog"
	"time"

	"weather-cache/internal/outcome"
	"weather-cache/internal/providers/openmeteo"
	"weather-cache/internal/seriestime"
	"weather-cache/internal/types"
)

// ForecastProvider fetches a raw forecast series for the given coordinates
type ForecastProvider interface {
	FetchForecast(ctx context.Context, latitude, longitude float64) outcome.Outcome[*openmeteo.ForecastAPIResponse]
}

// Geocoder resolves place names to coordinates and coordinates to a
// display name
type Geocoder interface {
	Resolve(ctx context.Context, locationName string) outcome.Outcome[types.Geolocation]
	ReverseResolve(ctx context.Context, latitude, longitude float64) outcome.Outcome[string]
}

// Store is the durable forecast cache keyed by (timestamp, latitude,
// longitude)
type Store interface {
	Insert(ctx context.Context, record types.ForecastRecord) outcome.Outcome[outcome.Void]
	FindByTimeAndLocation(ctx context.Context, timestamp time.Time, latitude, longitude float64) outcome.Outcome[types.ForecastRecord]
	Update(ctx context.Context, record types.ForecastRecord) outcome.Outcome[outcome.Void]
}

type Service interface {
	// GetForecast returns the forecast for the current hour at the given
	// coordinates, from the cache when possible
	GetForecast(ctx context.Context, latitude, longitude float64) outcome.Outcome[types.ForecastRecord]

	// GetForecastByLocation resolves a place name first, then delegates
	// to the coordinate-based flow
	GetForecastByLocation(ctx context.Context, locationName string) outcome.Outcome[types.ForecastRecord]

	// GetLocationName reverse-geocodes coordinates to a display name
	GetLocationName(ctx context.Context, latitude, longitude float64) outcome.Outcome[string]
}

type forecastService struct {
	store      Store
	provider   ForecastProvider
	geocoder   Geocoder
	seriesTime seriestime.Service
	logger     *slog.Logger
	now        func() time.Time
}

func NewForecastService(store Store, provider ForecastProvider, geocoder Geocoder, logger *slog.Logger) Service {
	return NewForecastServiceWithClock(store, provider, geocoder, seriestime.NewService(), time.Now, logger)
}

// NewForecastServiceWithClock creates a forecast service with a custom
// time normalizer and clock. This is useful for testing with a frozen
// clock.
func NewForecastServiceWithClock(
	store Store,
	provider ForecastProvider,
	geocoder Geocoder,
	seriesTime seriestime.Service,
	now func() time.Time,
	logger *slog.Logger,
) Service {
	return &forecastService{
		store:      store,
		provider:   provider,
		geocoder:   geocoder,
		seriesTime: seriesTime,
		now:        now,
		logger:     logger.With("component", "forecast-service"),
	}
}

// GetForecast is the cache-aside flow: compute the current UTC-hour key,
// try the store, and only on a miss fetch from the provider, normalize,
// persist, and return. Repeated requests within the same hour for the
// same coordinates never re-hit the upstream API.
func (s *forecastService) GetForecast(ctx context.Context, latitude, longitude float64) outcome.Outcome[types.ForecastRecord] {
	// Wall-clock now truncated to the hour, independent of any provider
	// offset
	utcHour := s.now().UTC().Truncate(time.Hour)

	cached := s.store.FindByTimeAndLocation(ctx, utcHour, latitude, longitude)
	if cached.OK() {
		s.logger.Debug("cache hit",
			"timestamp", utcHour,
			"latitude", latitude,
			"longitude", longitude,
		)
		return cached
	}

	// Any lookup failure, not-found or storage error, falls through to
	// the upstream fetch
	s.logger.Debug("cache miss",
		"timestamp", utcHour,
		"latitude", latitude,
		"longitude", longitude,
		"reason", cached.ErrorString(),
	)

	fetched := s.provider.FetchForecast(ctx, latitude, longitude)
	if !fetched.OK() {
		s.logger.Warn("upstream forecast fetch failed", "errors", fetched.ErrorString())
		return outcome.Propagate[types.ForecastRecord](fetched)
	}

	record, result := s.normalize(fetched.Value(), latitude, longitude)
	if result != nil {
		return *result
	}

	// A persist failure degrades future cache hits, not this response
	if inserted := s.store.Insert(ctx, record); !inserted.OK() {
		s.logger.Warn("failed to persist forecast", "errors", inserted.ErrorString())
	}

	return outcome.Ok(record)
}

func (s *forecastService) GetForecastByLocation(ctx context.Context, locationName string) outcome.Outcome[types.ForecastRecord] {
	resolved := s.geocoder.Resolve(ctx, locationName)
	if !resolved.OK() {
		s.logger.Warn("failed to resolve location", "name", locationName, "errors", resolved.ErrorString())
		return outcome.Propagate[types.ForecastRecord](resolved)
	}

	geo := resolved.Value()
	s.logger.Debug("resolved location",
		"name", locationName,
		"display_name", geo.DisplayName,
		"latitude", geo.Latitude,
		"longitude", geo.Longitude,
	)

	return s.GetForecast(ctx, geo.Latitude, geo.Longitude)
}

func (s *forecastService) GetLocationName(ctx context.Context, latitude, longitude float64) outcome.Outcome[string] {
	return s.geocoder.ReverseResolve(ctx, latitude, longitude)
}

// normalize runs the time normalizer over the raw series and builds the
// canonical record. Returns a non-nil failure outcome when the series
// cannot be normalized.
func (s *forecastService) normalize(series *openmeteo.ForecastAPIResponse, latitude, longitude float64) (types.ForecastRecord, *outcome.Outcome[types.ForecastRecord]) {
	fail := func(o outcome.Outcome[types.ForecastRecord]) (types.ForecastRecord, *outcome.Outcome[types.ForecastRecord]) {
		return types.ForecastRecord{}, &o
	}

	localNow := s.seriesTime.CurrentLocalTime(series)

	index, err := s.seriesTime.FindHourlyIndex(series, localNow)
	if err != nil {
		return fail(outcome.Failf[types.ForecastRecord]("failed to normalize forecast series: %v", err))
	}
	if index < 0 {
		return fail(outcome.Fail[types.ForecastRecord]("no hourly forecast entry matches the current local time"))
	}
	if index >= len(series.Hourly.Temperature2M) ||
		index >= len(series.Hourly.WindSpeed10M) ||
		index >= len(series.Hourly.WindDirection10M) {
		return fail(outcome.Fail[types.ForecastRecord]("hourly series arrays are not index-aligned"))
	}

	// The series-derived key may differ from the wall-clock key used for
	// the lookup when the provider's hourly grid rounds differently
	timestamp, err := s.seriesTime.NormalizeToUTC(series, index)
	if err != nil {
		return fail(outcome.Failf[types.ForecastRecord]("failed to normalize forecast series: %v", err))
	}

	sunrise, err := s.seriesTime.SunriseForDate(series, timestamp)
	if err != nil {
		return fail(outcome.Failf[types.ForecastRecord]("failed to normalize forecast series: %v", err))
	}

	// Keep the requested coordinates, not the provider's grid-snapped
	// echo, so the next lookup with the same request key matches exactly
	return types.ForecastRecord{
		Timestamp:         timestamp,
		Latitude:          latitude,
		Longitude:         longitude,
		Temperature:       series.Hourly.Temperature2M[index],
		TemperatureUnit:   series.HourlyUnits.Temperature2M,
		WindSpeed:         series.Hourly.WindSpeed10M[index],
		WindSpeedUnit:     series.HourlyUnits.WindSpeed10M,
		WindDirection:     series.Hourly.WindDirection10M[index],
		WindDirectionUnit: series.HourlyUnits.WindDirection10M,
		Sunrise:           sunrise,
	}, nil
}

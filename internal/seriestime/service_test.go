package seriestime

import (
	"testing"
	"time"

	"weather-cache/internal/providers/openmeteo"
)

// sampleSeries is an evening slice of a Berlin series with a +1h
// offset, matching the shapes the provider returns.
func sampleSeries() *openmeteo.ForecastAPIResponse {
	return &openmeteo.ForecastAPIResponse{
		Latitude:         52.52,
		Longitude:        13.41,
		UtcOffsetSeconds: 3600,
		Hourly: openmeteo.HourlySeries{
			Time: []string{
				"2025-06-04T18:00",
				"2025-06-04T19:00",
				"2025-06-04T20:00",
				"2025-06-04T21:00",
				"2025-06-04T22:00",
			},
			Temperature2M:    []float64{21.4, 20.9, 19.8, 18.5, 17.2},
			WindSpeed10M:     []float64{8.6, 7.2, 6.8, 6.1, 5.4},
			WindDirection10M: []int{214, 201, 198, 190, 185},
		},
		Daily: openmeteo.DailySeries{
			Time:    []string{"2025-06-04", "2025-06-05"},
			Sunrise: []string{"2025-06-04T04:12", "2025-06-05T04:11"},
		},
	}
}

func frozenClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCurrentLocalTime(t *testing.T) {
	// 18:30:45 UTC with a +1h offset is 19:30:45 local
	now := time.Date(2025, 6, 4, 18, 30, 45, 0, time.UTC)
	svc := NewServiceWithClock(frozenClock(now))

	local := svc.CurrentLocalTime(sampleSeries())

	want := time.Date(2025, 6, 4, 19, 30, 45, 0, time.UTC)
	if !local.Equal(want) {
		t.Errorf("CurrentLocalTime = %v, want %v", local, want)
	}
}

func TestFindHourlyIndex(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name      string
		localTime time.Time
		want      int
	}{
		{
			name:      "mid-hour local time matches its hour entry",
			localTime: time.Date(2025, 6, 4, 19, 30, 45, 0, time.UTC),
			want:      1,
		},
		{
			name:      "exact top of hour",
			localTime: time.Date(2025, 6, 4, 18, 0, 0, 0, time.UTC),
			want:      0,
		},
		{
			name:      "last entry",
			localTime: time.Date(2025, 6, 4, 22, 59, 59, 0, time.UTC),
			want:      4,
		},
		{
			name:      "hour not in series",
			localTime: time.Date(2025, 6, 4, 23, 0, 0, 0, time.UTC),
			want:      -1,
		},
		{
			name:      "same hour on a different date",
			localTime: time.Date(2025, 6, 5, 19, 0, 0, 0, time.UTC),
			want:      -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.FindHourlyIndex(sampleSeries(), tt.localTime)
			if err != nil {
				t.Fatalf("FindHourlyIndex returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FindHourlyIndex = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFindHourlyIndex_MalformedTimestamp(t *testing.T) {
	series := sampleSeries()
	series.Hourly.Time[0] = "garbage"

	svc := NewService()

	if _, err := svc.FindHourlyIndex(series, time.Date(2025, 6, 4, 19, 0, 0, 0, time.UTC)); err == nil {
		t.Error("expected error for malformed hourly timestamp")
	}
}

func TestNormalizeToUTC(t *testing.T) {
	svc := NewService()

	// 19:00 local minus +1h offset is 18:00 UTC
	got, err := svc.NormalizeToUTC(sampleSeries(), 1)
	if err != nil {
		t.Fatalf("NormalizeToUTC returned error: %v", err)
	}

	want := time.Date(2025, 6, 4, 18, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NormalizeToUTC = %v, want %v", got, want)
	}
	if got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("cache key has minute=%d second=%d, want both zero", got.Minute(), got.Second())
	}
	if got.Location() != time.UTC {
		t.Errorf("cache key location = %v, want UTC", got.Location())
	}
}

func TestNormalizeToUTC_NegativeOffset(t *testing.T) {
	series := sampleSeries()
	series.UtcOffsetSeconds = -6 * 3600

	svc := NewService()

	// 18:00 local minus -6h offset is 00:00 UTC the next day
	got, err := svc.NormalizeToUTC(series, 0)
	if err != nil {
		t.Fatalf("NormalizeToUTC returned error: %v", err)
	}
	want := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NormalizeToUTC = %v, want %v", got, want)
	}
}

func TestNormalizeToUTC_IndexOutOfRange(t *testing.T) {
	svc := NewService()

	for _, index := range []int{-1, 5} {
		if _, err := svc.NormalizeToUTC(sampleSeries(), index); err == nil {
			t.Errorf("expected error for index %d", index)
		}
	}
}

func TestSunriseForDate(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name       string
		utcInstant time.Time
		want       time.Time
	}{
		{
			name:       "matching first day",
			utcInstant: time.Date(2025, 6, 4, 18, 0, 0, 0, time.UTC),
			want:       time.Date(2025, 6, 4, 4, 12, 0, 0, time.UTC),
		},
		{
			name:       "next local day picks next entry",
			utcInstant: time.Date(2025, 6, 5, 18, 0, 0, 0, time.UTC),
			want:       time.Date(2025, 6, 5, 4, 11, 0, 0, time.UTC),
		},
		{
			name: "offset pushes UTC instant into next local day",
			// 23:30 UTC on the 4th is 00:30 local on the 5th
			utcInstant: time.Date(2025, 6, 4, 23, 30, 0, 0, time.UTC),
			want:       time.Date(2025, 6, 5, 4, 11, 0, 0, time.UTC),
		},
		{
			name:       "date absent from series falls back to midnight",
			utcInstant: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
			want:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.SunriseForDate(sampleSeries(), tt.utcInstant)
			if err != nil {
				t.Fatalf("SunriseForDate returned error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("SunriseForDate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSunriseForDate_MalformedEntries(t *testing.T) {
	svc := NewService()

	t.Run("malformed daily date", func(t *testing.T) {
		series := sampleSeries()
		series.Daily.Time[0] = "06/04/2025"
		if _, err := svc.SunriseForDate(series, time.Date(2025, 6, 4, 18, 0, 0, 0, time.UTC)); err == nil {
			t.Error("expected error for malformed daily date")
		}
	})

	t.Run("malformed sunrise timestamp", func(t *testing.T) {
		series := sampleSeries()
		series.Daily.Sunrise[0] = "dawn"
		if _, err := svc.SunriseForDate(series, time.Date(2025, 6, 4, 18, 0, 0, 0, time.UTC)); err == nil {
			t.Error("expected error for malformed sunrise timestamp")
		}
	})
}

// Full pipeline over the sample series: current local time, hourly
// index, cache key, sunrise.
func TestNormalizationPipeline(t *testing.T) {
	series := sampleSeries()

	now := time.Date(2025, 6, 4, 18, 30, 45, 0, time.UTC)
	svc := NewServiceWithClock(frozenClock(now))

	local := svc.CurrentLocalTime(series)

	index, err := svc.FindHourlyIndex(series, local)
	if err != nil {
		t.Fatalf("FindHourlyIndex returned error: %v", err)
	}
	if index != 1 {
		t.Fatalf("FindHourlyIndex = %d, want 1", index)
	}

	key, err := svc.NormalizeToUTC(series, index)
	if err != nil {
		t.Fatalf("NormalizeToUTC returned error: %v", err)
	}
	if want := time.Date(2025, 6, 4, 18, 0, 0, 0, time.UTC); !key.Equal(want) {
		t.Fatalf("cache key = %v, want %v", key, want)
	}

	sunrise, err := svc.SunriseForDate(series, key)
	if err != nil {
		t.Fatalf("SunriseForDate returned error: %v", err)
	}
	if want := time.Date(2025, 6, 4, 4, 12, 0, 0, time.UTC); !sunrise.Equal(want) {
		t.Errorf("sunrise = %v, want %v", sunrise, want)
	}
}

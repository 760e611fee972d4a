package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/packing-service/internal/domain/model"
)

func TestFallback_Forecast(t *testing.T) {
	start := time.Date(2026, 7, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		destination string
		wantFirst   model.WeatherForecast
	}{
		{
			name:        "exact city",
			destination: "London",
			wantFirst: model.WeatherForecast{
				MinTemp: 55, MaxTemp: 65, Condition: "Rainy", Precipitation: 80,
			},
		},
		{
			name:        "destination contains city",
			destination: "  New York City, USA ",
			wantFirst: model.WeatherForecast{
				MinTemp: 65, MaxTemp: 78, Condition: "Partly Cloudy", Precipitation: 20,
			},
		},
		{
			name:        "city contains destination",
			destination: "MIA",
			wantFirst: model.WeatherForecast{
				MinTemp: 78, MaxTemp: 88, Condition: "Sunny", Precipitation: 10,
			},
		},
		{
			name:        "unknown destination",
			destination: "Reykjavik",
			wantFirst: model.WeatherForecast{
				MinTemp: 65, MaxTemp: 75, Condition: "Partly Cloudy", Precipitation: 20,
			},
		},
		{
			name:        "empty destination",
			destination: "",
			wantFirst: model.WeatherForecast{
				MinTemp: 65, MaxTemp: 75, Condition: "Partly Cloudy", Precipitation: 20,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewFallback().Forecast(tt.destination, start, 0)

			require.Len(t, got, 3)
			want := tt.wantFirst
			want.Date = time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
			want.Source = model.ForecastSourceFallback
			assert.Equal(t, want, got[0])

			for i, day := range got {
				assert.Equal(t, want.Date.AddDate(0, 0, i), day.Date)
				assert.Equal(t, model.ForecastSourceFallback, day.Source)
			}
		})
	}
}

func TestFallback_DenverCoolsDown(t *testing.T) {
	got := NewFallback().Forecast("denver", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 3)

	require.Len(t, got, 3)
	assert.Equal(t, []float64{45, 40, 35}, []float64{got[0].MinTemp, got[1].MinTemp, got[2].MinTemp})
	assert.Equal(t, "Cloudy", got[2].Condition)
}

func TestFallback_ForecastHonorsDayLimit(t *testing.T) {
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		destination string
		limit       int
		wantLen     int
	}{
		{name: "one day trip", destination: "London", limit: 1, wantLen: 1},
		{name: "two day default", destination: "Reykjavik", limit: 2, wantLen: 2},
		{name: "limit matches table", destination: "Miami", limit: 3, wantLen: 3},
		{name: "longer trip keeps table", destination: "Denver", limit: 7, wantLen: 3},
		{name: "no limit", destination: "London", limit: 0, wantLen: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewFallback().Forecast(tt.destination, start, tt.limit)

			require.Len(t, got, tt.wantLen)
			assert.Equal(t, start, got[0].Date)
		})
	}
}

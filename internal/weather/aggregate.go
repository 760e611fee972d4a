package weather

import (
	"math"
	"time"

	"github.com/guttosm/packing-service/internal/domain/model"
)

var conditionLabels = map[string]string{
	"Thunderstorm": "Stormy",
	"Drizzle":      "Light Rain",
	"Rain":         "Rainy",
	"Snow":         "Snowy",
	"Mist":         "Misty",
	"Smoke":        "Smoky",
	"Haze":         "Hazy",
	"Dust":         "Dusty",
	"Fog":          "Foggy",
	"Sand":         "Sandy",
	"Ash":          "Ashy",
	"Squall":       "Windy",
	"Tornado":      "Severe",
	"Clear":        "Sunny",
	"Clouds":       "Cloudy",
}

// MapCondition turns an OpenWeather group label into a display label.
func MapCondition(main string) string {
	if label, ok := conditionLabels[main]; ok {
		return label
	}
	return main
}

type dayBucket struct {
	date       time.Time
	minTemp    float64
	maxTemp    float64
	popSum     float64
	entries    int
	conditions []string
	counts     map[string]int
}

func (b *dayBucket) add(e forecastEntry) {
	if b.entries == 0 || e.Main.Temp < b.minTemp {
		b.minTemp = e.Main.Temp
	}
	if b.entries == 0 || e.Main.Temp > b.maxTemp {
		b.maxTemp = e.Main.Temp
	}
	b.popSum += e.Pop
	b.entries++

	if len(e.Weather) == 0 || e.Weather[0].Main == "" {
		return
	}
	label := e.Weather[0].Main
	if _, seen := b.counts[label]; !seen {
		b.conditions = append(b.conditions, label)
	}
	b.counts[label]++
}

// condition is the most frequent label; ties go to the label seen first.
func (b *dayBucket) condition() string {
	best, bestCount := "", 0
	for _, label := range b.conditions {
		if b.counts[label] > bestCount {
			best, bestCount = label, b.counts[label]
		}
	}
	return MapCondition(best)
}

func (b *dayBucket) forecast() model.WeatherForecast {
	return model.WeatherForecast{
		Date:          b.date,
		MinTemp:       math.Floor(b.minTemp),
		MaxTemp:       math.Ceil(b.maxTemp),
		Condition:     b.condition(),
		Precipitation: int(math.Round(b.popSum / float64(b.entries) * 100)),
		Source:        model.ForecastSourceLive,
	}
}

// aggregateDays buckets 3-hour entries by calendar day at the destination,
// using the city's UTC offset in seconds, and keeps at most days buckets.
func aggregateDays(entries []forecastEntry, tzOffset, days int) []model.WeatherForecast {
	zone := time.FixedZone("destination", tzOffset)
	buckets := make([]*dayBucket, 0, days)
	index := make(map[time.Time]*dayBucket)

	for _, e := range entries {
		local := time.Unix(e.Dt, 0).In(zone)
		date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

		bucket, ok := index[date]
		if !ok {
			bucket = &dayBucket{date: date, counts: make(map[string]int)}
			index[date] = bucket
			buckets = append(buckets, bucket)
		}
		bucket.add(e)
	}

	if len(buckets) > days {
		buckets = buckets[:days]
	}
	out := make([]model.WeatherForecast, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b.forecast())
	}
	return out
}

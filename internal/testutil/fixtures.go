// Package testutil provides fixtures and testcontainers setup for tests.
package testutil

import (
	"fmt"
	"time"

	"github.com/guttosm/packing-service/internal/domain/model"
)

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Item builds a catalog item tagged for all seasons.
func Item(id string, category model.Category) model.ClothingItem {
	return model.ClothingItem{
		ID:                id,
		Name:              id,
		Category:          category,
		Seasons:           []model.Season{model.SeasonAll},
		WeatherConditions: []string{},
		Color:             "blue",
		AddedAt:           Date(2026, 1, 1),
	}
}

// Items builds n catalog items of one category with IDs prefix-1..prefix-n.
func Items(prefix string, category model.Category, n int) []model.ClothingItem {
	items := make([]model.ClothingItem, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, Item(fmt.Sprintf("%s-%d", prefix, i), category))
	}
	return items
}

// Trip builds a trip with the default bag template and fixed bag IDs
// backpack, carry-on and large-luggage.
func Trip(id, destination string, start, end time.Time) model.Trip {
	bags := make([]model.Bag, 0, len(model.DefaultBagSizes))
	for _, size := range model.DefaultBagSizes {
		bags = append(bags, model.NewBag(string(size), size))
	}
	return model.Trip{
		ID:          id,
		Destination: destination,
		StartDate:   start,
		EndDate:     end,
		Bags:        bags,
		CreatedAt:   start,
		UpdatedAt:   start,
	}
}

// Forecast builds one forecast day.
func Forecast(date time.Time, minTemp, maxTemp float64, condition string) model.WeatherForecast {
	return model.WeatherForecast{
		Date:          date,
		MinTemp:       minTemp,
		MaxTemp:       maxTemp,
		Condition:     condition,
		Precipitation: 0,
		Source:        model.ForecastSourceLive,
	}
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, Category("hats").Valid())
	assert.False(t, Category("").Valid())
}

func TestCategories_Order(t *testing.T) {
	categories := Categories()

	assert.Len(t, categories, 9)
	assert.Equal(t, CategoryShirts, categories[0])
	assert.Equal(t, CategorySocks, categories[len(categories)-1])
}

func TestSeason_Valid(t *testing.T) {
	assert.True(t, SeasonAll.Valid())
	assert.True(t, SeasonWinter.Valid())
	assert.False(t, Season("monsoon").Valid())
}

func TestClothingItem_HasSeason(t *testing.T) {
	tests := []struct {
		name     string
		seasons  []Season
		season   Season
		expected bool
	}{
		{name: "exact match", seasons: []Season{SeasonWinter}, season: SeasonWinter, expected: true},
		{name: "all matches every season", seasons: []Season{SeasonAll}, season: SeasonSummer, expected: true},
		{name: "no match", seasons: []Season{SeasonSummer, SeasonSpring}, season: SeasonWinter, expected: false},
		{name: "no seasons", seasons: nil, season: SeasonFall, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := ClothingItem{Seasons: tt.seasons}
			assert.Equal(t, tt.expected, item.HasSeason(tt.season))
		})
	}
}

func TestClothingItem_Matches(t *testing.T) {
	item := ClothingItem{Name: "Rain Jacket", Description: "Packable shell", Color: "Yellow"}

	tests := []struct {
		query    string
		expected bool
	}{
		{query: "rain", expected: true},
		{query: "SHELL", expected: true},
		{query: "yel", expected: true},
		{query: "", expected: true},
		{query: "parka", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.expected, item.Matches(tt.query))
		})
	}
}

func TestClothingItem_Normalize(t *testing.T) {
	item := ClothingItem{WeatherConditions: []string{" Rain ", "SNOW", ""}}

	item.Normalize()

	assert.Equal(t, []Season{SeasonAll}, item.Seasons)
	assert.Equal(t, []string{"rain", "snow"}, item.WeatherConditions)
}

func TestClothingItem_Normalize_KeepsSeasons(t *testing.T) {
	item := ClothingItem{Seasons: []Season{SeasonSummer}}

	item.Normalize()

	assert.Equal(t, []Season{SeasonSummer}, item.Seasons)
	assert.Empty(t, item.WeatherConditions)
}

func TestIsLightColor(t *testing.T) {
	tests := []struct {
		color    string
		expected bool
	}{
		{color: "white", expected: true},
		{color: "Yellow", expected: true},
		{color: "#FFFFFF", expected: true},
		{color: "#f0e68c", expected: true},
		{color: "black", expected: false},
		{color: "navy", expected: false},
		{color: "#000080", expected: false},
		{color: "#zzzzzz", expected: false},
		{color: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLightColor(tt.color))
			assert.Equal(t, tt.expected, ClothingItem{Color: tt.color}.IsLightColor())
		})
	}
}

// Package model defines the core domain entities for the packing service.
package model

import (
	"strings"
	"time"
)

// Category is the closed set of clothing categories.
type Category string

const (
	CategoryShirts      Category = "shirts"
	CategoryPants       Category = "pants"
	CategoryShorts      Category = "shorts"
	CategoryHoodies     Category = "hoodies"
	CategoryJackets     Category = "jackets"
	CategoryShoes       Category = "shoes"
	CategoryAccessories Category = "accessories"
	CategoryUnderwear   Category = "underwear"
	CategorySocks       Category = "socks"
)

// Categories returns every clothing category in display order.
func Categories() []Category {
	return []Category{
		CategoryShirts,
		CategoryPants,
		CategoryShorts,
		CategoryHoodies,
		CategoryJackets,
		CategoryShoes,
		CategoryAccessories,
		CategoryUnderwear,
		CategorySocks,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Season is a season tag on a clothing item. SeasonAll matches every season.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
	SeasonAll    Season = "all"
)

// Seasons returns every season tag, with the wildcard last.
func Seasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter, SeasonAll}
}

// Valid reports whether s is one of the known season tags.
func (s Season) Valid() bool {
	for _, known := range Seasons() {
		if s == known {
			return true
		}
	}
	return false
}

// ClothingItem is a single piece of clothing in the catalog.
//
// @Description Clothing item registered in the catalog
type ClothingItem struct {
	ID                string    `json:"id" bson:"id" example:"6f1c2b7e-8a63-4a8e-9d5b-2f0f3f1e9c11"`
	Name              string    `json:"name" bson:"name" example:"Rain Jacket"`
	Category          Category  `json:"category" bson:"category" example:"jackets"`
	Seasons           []Season  `json:"seasons" bson:"seasons"`
	WeatherConditions []string  `json:"weather_conditions" bson:"weather_conditions"`
	Color             string    `json:"color" bson:"color" example:"yellow"`
	Description       string    `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL          string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	AddedAt           time.Time `json:"added_at" bson:"added_at"`
}

// HasSeason reports whether the item is worn in the given season.
// An item tagged "all" matches every season.
func (i ClothingItem) HasSeason(season Season) bool {
	for _, s := range i.Seasons {
		if s == season || s == SeasonAll {
			return true
		}
	}
	return false
}

// Matches reports whether query appears in the name, description or color, ignoring case.
func (i ClothingItem) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(i.Name), q) ||
		strings.Contains(strings.ToLower(i.Description), q) ||
		strings.Contains(strings.ToLower(i.Color), q)
}

// IsLightColor reports whether the item's color is light enough to need dark text.
func (i ClothingItem) IsLightColor() bool {
	return IsLightColor(i.Color)
}

// Normalize applies catalog defaults: seasons default to "all" and
// weather conditions are lowercased and trimmed.
func (i *ClothingItem) Normalize() {
	if len(i.Seasons) == 0 {
		i.Seasons = []Season{SeasonAll}
	}
	conditions := make([]string, 0, len(i.WeatherConditions))
	for _, c := range i.WeatherConditions {
		if c = strings.ToLower(strings.TrimSpace(c)); c != "" {
			conditions = append(conditions, c)
		}
	}
	i.WeatherConditions = conditions
}

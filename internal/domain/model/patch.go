package model

import "time"

// ClothingItemPatch holds the fields to change on a clothing item. Nil fields are left as they are.
type ClothingItemPatch struct {
	Name              *string
	Category          *Category
	Seasons           []Season
	WeatherConditions []string
	Color             *string
	Description       *string
	ImageURL          *string
}

// Apply merges the patch into item.
func (p ClothingItemPatch) Apply(item *ClothingItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Seasons != nil {
		item.Seasons = p.Seasons
	}
	if p.WeatherConditions != nil {
		item.WeatherConditions = p.WeatherConditions
	}
	if p.Color != nil {
		item.Color = *p.Color
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.ImageURL != nil {
		item.ImageURL = *p.ImageURL
	}
	item.Normalize()
}

// NewTrip is the input for creating a trip.
type NewTrip struct {
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Notes       string
}

// TripPatch holds the trip fields that may change after creation. Bags are not patchable.
type TripPatch struct {
	Destination *string
	StartDate   *time.Time
	EndDate     *time.Time
	Notes       *string
}

// Apply merges the patch into trip.
func (p TripPatch) Apply(trip *Trip) {
	if p.Destination != nil {
		trip.Destination = *p.Destination
	}
	if p.StartDate != nil {
		trip.StartDate = DateOnly(*p.StartDate)
	}
	if p.EndDate != nil {
		trip.EndDate = DateOnly(*p.EndDate)
	}
	if p.Notes != nil {
		trip.Notes = *p.Notes
	}
}

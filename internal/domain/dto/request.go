// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"strings"
	"time"

	"github.com/guttosm/packing-service/internal/domain/model"
)

// DateLayout is the calendar-day format accepted for trip dates.
const DateLayout = "2006-01-02"

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Is lets callers match any ValidationError with errors.Is(err, model.ErrValidation).
func (e *ValidationError) Is(target error) bool {
	return target == model.ErrValidation
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

var (
	// ErrDestinationRequired is returned when a trip has no destination.
	ErrDestinationRequired = invalid("destination", "is required")
	// ErrEndBeforeStart is returned when end_date precedes start_date.
	ErrEndBeforeStart = invalid("end_date", "must not be before start_date")
	// ErrNameRequired is returned when a clothing item has no name.
	ErrNameRequired = invalid("name", "is required")
)

// ParseDate accepts YYYY-MM-DD or RFC 3339 and returns the calendar day at midnight UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return model.DateOnly(t), nil
}

func parseDateField(field, value string) (time.Time, error) {
	t, err := ParseDate(value)
	if err != nil {
		return time.Time{}, invalid(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

func validateSeasons(seasons []string) ([]model.Season, error) {
	if seasons == nil {
		return nil, nil
	}
	out := make([]model.Season, 0, len(seasons))
	for _, s := range seasons {
		season := model.Season(strings.ToLower(strings.TrimSpace(s)))
		if !season.Valid() {
			return nil, invalid("seasons", "unknown season "+s)
		}
		out = append(out, season)
	}
	return out, nil
}

func validateCategory(category string) (model.Category, error) {
	c := model.Category(strings.ToLower(strings.TrimSpace(category)))
	if !c.Valid() {
		return "", invalid("category", "unknown category "+category)
	}
	return c, nil
}

// CreateClothingItemRequest is the JSON body for adding a clothing item.
//
// @Description Request to add a clothing item to the catalog
type CreateClothingItemRequest struct {
	Name              string   `json:"name" binding:"required" example:"Rain Jacket"`
	Category          string   `json:"category" binding:"required" example:"jackets"`
	Seasons           []string `json:"seasons" example:"spring,fall"`
	WeatherConditions []string `json:"weather_conditions" example:"rain"`
	Color             string   `json:"color" example:"yellow"`
	Description       string   `json:"description,omitempty"`
	ImageURL          string   `json:"image_url,omitempty"`
} // @name CreateClothingItemRequest

// ToModel validates the request and converts it into a catalog item.
func (r *CreateClothingItemRequest) ToModel() (model.ClothingItem, error) {
	if strings.TrimSpace(r.Name) == "" {
		return model.ClothingItem{}, ErrNameRequired
	}
	category, err := validateCategory(r.Category)
	if err != nil {
		return model.ClothingItem{}, err
	}
	seasons, err := validateSeasons(r.Seasons)
	if err != nil {
		return model.ClothingItem{}, err
	}
	return model.ClothingItem{
		Name:              strings.TrimSpace(r.Name),
		Category:          category,
		Seasons:           seasons,
		WeatherConditions: r.WeatherConditions,
		Color:             r.Color,
		Description:       r.Description,
		ImageURL:          r.ImageURL,
	}, nil
}

// PatchClothingItemRequest is the JSON body for a partial clothing item update.
//
// @Description Partial update of a clothing item
type PatchClothingItemRequest struct {
	Name              *string  `json:"name,omitempty"`
	Category          *string  `json:"category,omitempty"`
	Seasons           []string `json:"seasons,omitempty"`
	WeatherConditions []string `json:"weather_conditions,omitempty"`
	Color             *string  `json:"color,omitempty"`
	Description       *string  `json:"description,omitempty"`
	ImageURL          *string  `json:"image_url,omitempty"`
} // @name PatchClothingItemRequest

// ToPatch validates the request and converts it into a model patch.
func (r *PatchClothingItemRequest) ToPatch() (model.ClothingItemPatch, error) {
	patch := model.ClothingItemPatch{
		Name:              r.Name,
		WeatherConditions: r.WeatherConditions,
		Color:             r.Color,
		Description:       r.Description,
		ImageURL:          r.ImageURL,
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return patch, ErrNameRequired
	}
	if r.Category != nil {
		category, err := validateCategory(*r.Category)
		if err != nil {
			return patch, err
		}
		patch.Category = &category
	}
	seasons, err := validateSeasons(r.Seasons)
	if err != nil {
		return patch, err
	}
	patch.Seasons = seasons
	return patch, nil
}

// CreateTripRequest is the JSON body for creating a trip.
//
// @Description Request to create a trip
type CreateTripRequest struct {
	Destination string `json:"destination" example:"London"`
	StartDate   string `json:"start_date" example:"2026-06-01"`
	EndDate     string `json:"end_date" example:"2026-06-04"`
	Notes       string `json:"notes,omitempty"`
} // @name CreateTripRequest

// ToModel validates the request: destination is required and end_date must not precede start_date.
func (r *CreateTripRequest) ToModel() (model.NewTrip, error) {
	if strings.TrimSpace(r.Destination) == "" {
		return model.NewTrip{}, ErrDestinationRequired
	}
	start, err := parseDateField("start_date", r.StartDate)
	if err != nil {
		return model.NewTrip{}, err
	}
	end, err := parseDateField("end_date", r.EndDate)
	if err != nil {
		return model.NewTrip{}, err
	}
	if end.Before(start) {
		return model.NewTrip{}, ErrEndBeforeStart
	}
	return model.NewTrip{
		Destination: strings.TrimSpace(r.Destination),
		StartDate:   start,
		EndDate:     end,
		Notes:       r.Notes,
	}, nil
}

// PatchTripRequest is the JSON body for a partial trip update.
//
// @Description Partial update of a trip
type PatchTripRequest struct {
	Destination *string `json:"destination,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Notes       *string `json:"notes,omitempty"`
} // @name PatchTripRequest

// ToPatch validates the fields that are present and converts them into a model patch.
func (r *PatchTripRequest) ToPatch() (model.TripPatch, error) {
	patch := model.TripPatch{Notes: r.Notes}
	if r.Destination != nil {
		destination := strings.TrimSpace(*r.Destination)
		if destination == "" {
			return patch, ErrDestinationRequired
		}
		patch.Destination = &destination
	}
	if r.StartDate != nil {
		start, err := parseDateField("start_date", *r.StartDate)
		if err != nil {
			return patch, err
		}
		patch.StartDate = &start
	}
	if r.EndDate != nil {
		end, err := parseDateField("end_date", *r.EndDate)
		if err != nil {
			return patch, err
		}
		patch.EndDate = &end
	}
	if patch.StartDate != nil && patch.EndDate != nil && patch.EndDate.Before(*patch.StartDate) {
		return patch, ErrEndBeforeStart
	}
	return patch, nil
}

// AddItemToBagRequest is the JSON body for packing a catalog item into a bag.
//
// @Description Request to pack a clothing item
type AddItemToBagRequest struct {
	ItemID string `json:"item_id" binding:"required" example:"6f1c2b7e-8a63-4a8e-9d5b-2f0f3f1e9c11"`
} // @name AddItemToBagRequest

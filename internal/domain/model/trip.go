package model

import (
	"math"
	"time"
)

// BagSize classifies a bag.
type BagSize string

const (
	BagSizeBackpack     BagSize = "backpack"
	BagSizeCarryOn      BagSize = "carry-on"
	BagSizeLargeLuggage BagSize = "large-luggage"
)

// DefaultCapacity returns the capacity a bag of this size gets in the default trip template.
func (s BagSize) DefaultCapacity() int {
	switch s {
	case BagSizeBackpack:
		return 10
	case BagSizeCarryOn:
		return 20
	case BagSizeLargeLuggage:
		return 40
	default:
		return 0
	}
}

// DisplayName returns the default bag name for this size.
func (s BagSize) DisplayName() string {
	switch s {
	case BagSizeBackpack:
		return "Backpack"
	case BagSizeCarryOn:
		return "Carry On"
	case BagSizeLargeLuggage:
		return "Large Luggage"
	default:
		return string(s)
	}
}

// Bag holds snapshots of the clothing items packed into it.
// Invariant: len(Items) <= Capacity and an item ID appears at most once.
//
// @Description Bag belonging to a trip
type Bag struct {
	ID       string         `json:"id" bson:"id"`
	Size     BagSize        `json:"size" bson:"size" example:"carry-on"`
	Name     string         `json:"name" bson:"name" example:"Carry On"`
	Capacity int            `json:"capacity" bson:"capacity" example:"20"`
	Items    []ClothingItem `json:"items" bson:"items"`
}

// NewBag creates an empty bag of the given size with its default name and capacity.
func NewBag(id string, size BagSize) Bag {
	return Bag{
		ID:       id,
		Size:     size,
		Name:     size.DisplayName(),
		Capacity: size.DefaultCapacity(),
		Items:    []ClothingItem{},
	}
}

// DefaultBagSizes is the bag template every new trip starts with.
var DefaultBagSizes = []BagSize{BagSizeBackpack, BagSizeCarryOn, BagSizeLargeLuggage}

// Contains reports whether an item with itemID is in the bag.
func (b Bag) Contains(itemID string) bool {
	for _, item := range b.Items {
		if item.ID == itemID {
			return true
		}
	}
	return false
}

// IsFull reports whether the bag has no room left.
func (b Bag) IsFull() bool {
	return len(b.Items) >= b.Capacity
}

// FreeCapacity returns how many more items fit in the bag.
func (b Bag) FreeCapacity() int {
	if free := b.Capacity - len(b.Items); free > 0 {
		return free
	}
	return 0
}

// Trip is the top-level aggregate. It exclusively owns its bags and forecast.
//
// @Description Trip with its bags and weather forecast
type Trip struct {
	ID              string            `json:"id" bson:"id"`
	Destination     string            `json:"destination" bson:"destination" example:"London"`
	StartDate       time.Time         `json:"start_date" bson:"start_date"`
	EndDate         time.Time         `json:"end_date" bson:"end_date"`
	Bags            []Bag             `json:"bags" bson:"bags"`
	WeatherForecast []WeatherForecast `json:"weather_forecast,omitempty" bson:"weather_forecast,omitempty"`
	Notes           string            `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" bson:"updated_at"`
}

// BagIndex returns the index of the bag with bagID, or -1.
func (t *Trip) BagIndex(bagID string) int {
	for i := range t.Bags {
		if t.Bags[i].ID == bagID {
			return i
		}
	}
	return -1
}

// IsPacked reports whether itemID is in any of the trip's bags.
func (t *Trip) IsPacked(itemID string) bool {
	for _, bag := range t.Bags {
		if bag.Contains(itemID) {
			return true
		}
	}
	return false
}

// PackedItemIDs returns the IDs of every item packed in any bag.
func (t *Trip) PackedItemIDs() map[string]bool {
	packed := make(map[string]bool)
	for _, bag := range t.Bags {
		for _, item := range bag.Items {
			packed[item.ID] = true
		}
	}
	return packed
}

// LengthDays returns the whole-day trip length, rounded up.
func (t *Trip) LengthDays() int {
	return TripLengthDays(t.StartDate, t.EndDate)
}

// HasEnded reports whether the trip ended before the calendar day of now.
func (t *Trip) HasEnded(now time.Time) bool {
	return DateOnly(t.EndDate).Before(DateOnly(now))
}

// TripLengthDays returns ceil((end - start) in days). It is never negative.
func TripLengthDays(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// DateOnly returns midnight UTC of t's calendar day, as seen in t's own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

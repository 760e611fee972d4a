package model

// TripLength buckets trips by duration.
type TripLength string

const (
	TripLengthShort  TripLength = "short"
	TripLengthMedium TripLength = "medium"
	TripLengthLong   TripLength = "long"
)

// ClassifyTripLength returns short for up to 3 days, medium for up to 7 and long beyond that.
func ClassifyTripLength(days int) TripLength {
	switch {
	case days <= 3:
		return TripLengthShort
	case days <= 7:
		return TripLengthMedium
	default:
		return TripLengthLong
	}
}

// RecommendedItem is a catalog item suggested for a trip.
type RecommendedItem struct {
	ClothingItem
	Packed bool `json:"packed"`
}

// Recommendation is the packing suggestion for a trip.
//
// @Description Packing recommendation for a trip
type Recommendation struct {
	TripID       string            `json:"trip_id"`
	TripLength   TripLength        `json:"trip_length" example:"short"`
	Days         int               `json:"days" example:"3"`
	Weather      WeatherProfile    `json:"weather"`
	MatchedRules []string          `json:"matched_rules"`
	Items        []RecommendedItem `json:"items"`
}

// BagPlan is the suggested set of bags for a number of items.
//
// @Description Suggested bags for the recommendation list
type BagPlan struct {
	TripID       string `json:"trip_id"`
	ItemCount    int    `json:"item_count" example:"12"`
	Bags         []Bag  `json:"bags"`
	FreeCapacity int    `json:"free_capacity" example:"20"`
	Fits         bool   `json:"fits" example:"true"`
}

package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/packing-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeConflict indicates a conflict with current state, such as a full bag.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a dependency is unavailable.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"conflict"`
	Message string `json:"message,omitempty" example:"The Backpack is full. Remove some items or choose a different bag."`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// ClothingItemResponse is a catalog item with presentation hints.
// @Description Clothing item with presentation hints
type ClothingItemResponse struct {
	model.ClothingItem
	IsLightColor bool `json:"is_light_color" example:"false"`
} // @name ClothingItemResponse

// NewClothingItemResponse wraps a single item.
func NewClothingItemResponse(item model.ClothingItem) ClothingItemResponse {
	return ClothingItemResponse{ClothingItem: item, IsLightColor: item.IsLightColor()}
}

// NewClothingItemResponses wraps a list of items. It never returns nil.
func NewClothingItemResponses(items []model.ClothingItem) []ClothingItemResponse {
	out := make([]ClothingItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewClothingItemResponse(item))
	}
	return out
}

// ClosetResponse groups the catalog by season.
// @Description Catalog grouped by season
type ClosetResponse map[model.Season][]ClothingItemResponse // @name ClosetResponse

// NewClosetResponse wraps a season grouping.
func NewClosetResponse(groups map[model.Season][]model.ClothingItem) ClosetResponse {
	out := make(ClosetResponse, len(groups))
	for season, items := range groups {
		out[season] = NewClothingItemResponses(items)
	}
	return out
}

// SeedResponse reports how many sample items were inserted.
// @Description Result of seeding the sample catalog
type SeedResponse struct {
	Inserted int `json:"inserted" example:"24"`
} // @name SeedResponse

// PackedResponse reports whether an item is packed in a trip.
// @Description Packed status of an item
type PackedResponse struct {
	TripID string `json:"trip_id"`
	ItemID string `json:"item_id"`
	Packed bool   `json:"packed" example:"true"`
} // @name PackedResponse

// ForecastResponse is a standalone weather preview.
// @Description Weather preview for a destination
type ForecastResponse struct {
	Destination string                  `json:"destination" example:"London"`
	Days        int                     `json:"days" example:"3"`
	Forecast    []model.WeatherForecast `json:"forecast"`
} // @name ForecastResponse

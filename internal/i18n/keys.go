// Package i18n provides internationalization support for the packing service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyTripNotFound indicates the trip does not exist.
	ErrKeyTripNotFound = "error.trip_not_found"
	// ErrKeyBagNotFound indicates the trip or bag does not exist.
	ErrKeyBagNotFound = "error.bag_not_found"
	// ErrKeyClothingNotFound indicates the clothing item does not exist.
	ErrKeyClothingNotFound = "error.clothing_not_found"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyBagFull takes the bag name.
	ErrKeyBagFull = "error.bag_full"
	// ErrKeyDuplicateInBag takes the bag name.
	ErrKeyDuplicateInBag = "error.duplicate_in_bag"
	// ErrKeyAlreadyPacked takes the bag name.
	ErrKeyAlreadyPacked = "error.already_packed"
	// ErrKeyWeatherUnavailable indicates the live weather provider failed.
	ErrKeyWeatherUnavailable = "error.weather_unavailable"
	// ErrKeyServiceUnavailable indicates a dependency is unavailable.
	ErrKeyServiceUnavailable = "error.service_unavailable"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a trip, bag or clothing item does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks malformed input.
	ErrValidation = errors.New("validation failed")
	// ErrCapacityExceeded is returned when a bag already holds Capacity items.
	ErrCapacityExceeded = errors.New("bag capacity exceeded")
	// ErrDuplicateInBag is returned when the item is already in the target bag.
	ErrDuplicateInBag = errors.New("item already in bag")
	// ErrAlreadyPacked is returned, with cross-bag uniqueness enabled,
	// when the item sits in another bag of the same trip.
	ErrAlreadyPacked = errors.New("item already packed in another bag")
)

// AllocationError is a rejected bag mutation. Its message is safe to show to users.
type AllocationError struct {
	Err     error
	BagName string
}

// NewAllocationError builds an AllocationError for the named bag.
func NewAllocationError(err error, bagName string) *AllocationError {
	return &AllocationError{Err: err, BagName: bagName}
}

func (e *AllocationError) Error() string {
	switch {
	case errors.Is(e.Err, ErrCapacityExceeded):
		return fmt.Sprintf("The %s is full. Remove some items or choose a different bag.", e.BagName)
	case errors.Is(e.Err, ErrDuplicateInBag):
		return fmt.Sprintf("This item is already in the %s.", e.BagName)
	case errors.Is(e.Err, ErrAlreadyPacked):
		return fmt.Sprintf("This item is already packed in the %s.", e.BagName)
	default:
		return fmt.Sprintf("%s: %v", e.BagName, e.Err)
	}
}

func (e *AllocationError) Unwrap() error {
	return e.Err
}

package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/packing-service/internal/domain/model"
	"github.com/guttosm/packing-service/internal/metrics"
)

var errBagMissing = errors.New("bag not found")

// AddItemToBag packs a snapshot of item into the bag. It returns nil when the
// trip or bag does not exist and an *model.AllocationError when the bag is
// full or already holds the item. A failed add leaves the bag untouched.
func (s *TripServiceImpl) AddItemToBag(ctx context.Context, tripID, bagID string, item model.ClothingItem) (*model.Trip, error) {
	trip, err := s.mutate(ctx, "add item to bag", tripID, func(trip *model.Trip) error {
		i := trip.BagIndex(bagID)
		if i < 0 {
			return errBagMissing
		}
		bag := &trip.Bags[i]

		if bag.IsFull() {
			return model.NewAllocationError(model.ErrCapacityExceeded, bag.Name)
		}
		if bag.Contains(item.ID) {
			return model.NewAllocationError(model.ErrDuplicateInBag, bag.Name)
		}
		if s.crossBagUnique {
			for _, other := range trip.Bags {
				if other.ID != bag.ID && other.Contains(item.ID) {
					return model.NewAllocationError(model.ErrAlreadyPacked, other.Name)
				}
			}
		}

		bag.Items = append(bag.Items, item)
		return nil
	})

	switch {
	case errors.Is(err, errBagMissing):
		metrics.RecordBagOperation("add", "not_found")
		return nil, nil
	case errors.Is(err, model.ErrCapacityExceeded):
		metrics.RecordBagOperation("add", "capacity_exceeded")
	case errors.Is(err, model.ErrDuplicateInBag):
		metrics.RecordBagOperation("add", "duplicate")
	case errors.Is(err, model.ErrAlreadyPacked):
		metrics.RecordBagOperation("add", "already_packed")
	case err != nil:
		metrics.RecordBagOperation("add", "error")
	case trip == nil:
		metrics.RecordBagOperation("add", "not_found")
	default:
		metrics.RecordBagOperation("add", "success")
		log.Ctx(ctx).Debug().Str("trip_id", tripID).Str("bag_id", bagID).Str("item_id", item.ID).Msg("Item packed")
	}
	return trip, err
}

// RemoveItemFromBag removes the item from the bag if present. Removing an
// absent item is not an error. It returns nil when the trip or bag does not exist.
func (s *TripServiceImpl) RemoveItemFromBag(ctx context.Context, tripID, bagID, itemID string) (*model.Trip, error) {
	trip, err := s.mutate(ctx, "remove item from bag", tripID, func(trip *model.Trip) error {
		i := trip.BagIndex(bagID)
		if i < 0 {
			return errBagMissing
		}
		bag := &trip.Bags[i]

		kept := make([]model.ClothingItem, 0, len(bag.Items))
		for _, packed := range bag.Items {
			if packed.ID != itemID {
				kept = append(kept, packed)
			}
		}
		bag.Items = kept
		return nil
	})

	switch {
	case errors.Is(err, errBagMissing), err == nil && trip == nil:
		metrics.RecordBagOperation("remove", "not_found")
		return nil, nil
	case err != nil:
		metrics.RecordBagOperation("remove", "error")
	default:
		metrics.RecordBagOperation("remove", "success")
	}
	return trip, err
}

// IsItemPacked reports whether any bag of the trip holds the item. A missing trip holds nothing.
func (s *TripServiceImpl) IsItemPacked(ctx context.Context, tripID, itemID string) (bool, error) {
	trip, err := s.Get(ctx, tripID)
	if err != nil || trip == nil {
		return false, err
	}
	return trip.IsPacked(itemID), nil
}

// PackedItemIDs returns the IDs packed in any bag of the trip, or nil when the trip does not exist.
func (s *TripServiceImpl) PackedItemIDs(ctx context.Context, tripID string) (map[string]bool, error) {
	trip, err := s.Get(ctx, tripID)
	if err != nil || trip == nil {
		return nil, err
	}
	return trip.PackedItemIDs(), nil
}

package repository

import (
	"encoding/json"
	"fmt"
)

// encodeCollection serializes a collection as a JSON array. Times are written as RFC 3339.
func encodeCollection[T any](key string, items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", key, err)
	}
	return data, nil
}

// decodeCollection parses a JSON array. Empty input yields an empty collection.
func decodeCollection[T any](key string, data []byte) ([]T, error) {
	items := []T{}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return items, nil
}

// Package service contains the business logic for the packing service.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/packing-service/internal/domain/model"
	"github.com/guttosm/packing-service/internal/repository"
)

// ClothingService manages the clothing catalog.
type ClothingService interface {
	List(ctx context.Context) ([]model.ClothingItem, error)
	Get(ctx context.Context, id string) (*model.ClothingItem, error)
	Add(ctx context.Context, item model.ClothingItem) (*model.ClothingItem, error)
	Update(ctx context.Context, id string, patch model.ClothingItemPatch) (*model.ClothingItem, error)
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, query string) ([]model.ClothingItem, error)
	FilterBySeason(ctx context.Context, season model.Season) ([]model.ClothingItem, error)
	FilterByCategory(ctx context.Context, category model.Category) ([]model.ClothingItem, error)
	Categories() []model.Category
	Closet(ctx context.Context) (map[model.Season][]model.ClothingItem, error)
	SeedSampleData(ctx context.Context) (int, error)
}

// ClothingServiceImpl implements ClothingService on a document store.
// Mutations load and save the whole collection under mu.
type ClothingServiceImpl struct {
	store repository.ClothingStore
	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

// NewClothingService creates a catalog service backed by store.
func NewClothingService(store repository.ClothingStore) *ClothingServiceImpl {
	return &ClothingServiceImpl{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *ClothingServiceImpl) List(ctx context.Context) ([]model.ClothingItem, error) {
	items, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clothing: %w", err)
	}
	return items, nil
}

// Get returns the item with id, or nil when there is none.
func (s *ClothingServiceImpl) Get(ctx context.Context, id string) (*model.ClothingItem, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOfItem(items, id); i >= 0 {
		return &items[i], nil
	}
	return nil, nil
}

// Add assigns an ID and timestamp and appends the item to the catalog.
func (s *ClothingServiceImpl) Add(ctx context.Context, item model.ClothingItem) (*model.ClothingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("add clothing: %w", err)
	}

	item.ID = s.newID()
	item.AddedAt = s.now().UTC()
	item.Normalize()

	items = append(items, item)
	if err := s.store.SaveAll(ctx, items); err != nil {
		return nil, fmt.Errorf("add clothing: %w", err)
	}
	return &item, nil
}

// Update applies patch to the item with id. It returns nil when there is no such item.
func (s *ClothingServiceImpl) Update(ctx context.Context, id string, patch model.ClothingItemPatch) (*model.ClothingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("update clothing %s: %w", id, err)
	}
	i := indexOfItem(items, id)
	if i < 0 {
		return nil, nil
	}

	patch.Apply(&items[i])
	if err := s.store.SaveAll(ctx, items); err != nil {
		return nil, fmt.Errorf("update clothing %s: %w", id, err)
	}
	updated := items[i]
	return &updated, nil
}

// Delete removes the item with id and reports whether it existed.
// Snapshots already packed into bags are left alone.
func (s *ClothingServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("delete clothing %s: %w", id, err)
	}
	i := indexOfItem(items, id)
	if i < 0 {
		return false, nil
	}

	items = append(items[:i], items[i+1:]...)
	if err := s.store.SaveAll(ctx, items); err != nil {
		return false, fmt.Errorf("delete clothing %s: %w", id, err)
	}
	return true, nil
}

// Search matches query against name, description and color. An empty query returns everything.
func (s *ClothingServiceImpl) Search(ctx context.Context, query string) ([]model.ClothingItem, error) {
	query = strings.TrimSpace(query)
	return s.filter(ctx, func(item model.ClothingItem) bool {
		return query == "" || item.Matches(query)
	})
}

func (s *ClothingServiceImpl) FilterBySeason(ctx context.Context, season model.Season) ([]model.ClothingItem, error) {
	return s.filter(ctx, func(item model.ClothingItem) bool {
		return item.HasSeason(season)
	})
}

func (s *ClothingServiceImpl) FilterByCategory(ctx context.Context, category model.Category) ([]model.ClothingItem, error) {
	return s.filter(ctx, func(item model.ClothingItem) bool {
		return item.Category == category
	})
}

func (s *ClothingServiceImpl) Categories() []model.Category {
	return model.Categories()
}

// Closet groups the catalog by season. Items tagged "all" only appear under "all".
func (s *ClothingServiceImpl) Closet(ctx context.Context) (map[model.Season][]model.ClothingItem, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	closet := make(map[model.Season][]model.ClothingItem, len(model.Seasons()))
	for _, season := range model.Seasons() {
		closet[season] = []model.ClothingItem{}
	}
	for _, item := range items {
		if containsSeason(item.Seasons, model.SeasonAll) {
			closet[model.SeasonAll] = append(closet[model.SeasonAll], item)
			continue
		}
		seen := make(map[model.Season]bool, len(item.Seasons))
		for _, season := range item.Seasons {
			if seen[season] || !season.Valid() {
				continue
			}
			seen[season] = true
			closet[season] = append(closet[season], item)
		}
	}
	return closet, nil
}

// SeedSampleData fills an empty catalog with the sample wardrobe and returns how many items it inserted.
func (s *ClothingServiceImpl) SeedSampleData(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.store.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed clothing: %w", err)
	}
	if len(items) > 0 {
		return 0, nil
	}

	addedAt := s.now().UTC()
	seeded := make([]model.ClothingItem, 0, len(sampleCatalog))
	for _, sample := range sampleCatalog {
		item := sample
		item.Seasons = append([]model.Season(nil), sample.Seasons...)
		item.WeatherConditions = append([]string(nil), sample.WeatherConditions...)
		item.ID = s.newID()
		item.AddedAt = addedAt
		item.Normalize()
		seeded = append(seeded, item)
	}

	if err := s.store.SaveAll(ctx, seeded); err != nil {
		return 0, fmt.Errorf("seed clothing: %w", err)
	}
	log.Ctx(ctx).Info().Int("items", len(seeded)).Msg("Seeded sample clothing catalog")
	return len(seeded), nil
}

func (s *ClothingServiceImpl) filter(ctx context.Context, keep func(model.ClothingItem) bool) ([]model.ClothingItem, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.ClothingItem, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

func indexOfItem(items []model.ClothingItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func containsSeason(seasons []model.Season, season model.Season) bool {
	for _, s := range seasons {
		if s == season {
			return true
		}
	}
	return false
}

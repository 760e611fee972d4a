package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/guttosm/packing-service/internal/domain/model"
	"github.com/guttosm/packing-service/internal/metrics"
	"github.com/guttosm/packing-service/internal/repository"
	"github.com/guttosm/packing-service/internal/weather"
)

// ForecastSource supplies trip forecasts. *weather.Service implements it.
type ForecastSource interface {
	ForecastForTrip(ctx context.Context, destination string, start, end time.Time) []model.WeatherForecast
	LiveForecast(ctx context.Context, destination string, days int) ([]model.WeatherForecast, error)
}

// CatalogReader lists the clothing catalog.
type CatalogReader interface {
	List(ctx context.Context) ([]model.ClothingItem, error)
}

// TripService manages trips, their bags and their forecasts.
type TripService interface {
	List(ctx context.Context) ([]model.Trip, error)
	Get(ctx context.Context, id string) (*model.Trip, error)
	Create(ctx context.Context, input model.NewTrip) (*model.Trip, error)
	Update(ctx context.Context, id string, patch model.TripPatch) (*model.Trip, error)
	Delete(ctx context.Context, id string) (bool, error)
	RefreshWeather(ctx context.Context, id string) (*model.Trip, error)

	AddItemToBag(ctx context.Context, tripID, bagID string, item model.ClothingItem) (*model.Trip, error)
	RemoveItemFromBag(ctx context.Context, tripID, bagID, itemID string) (*model.Trip, error)
	IsItemPacked(ctx context.Context, tripID, itemID string) (bool, error)
	PackedItemIDs(ctx context.Context, tripID string) (map[string]bool, error)

	Recommendations(ctx context.Context, tripID string) (*model.Recommendation, error)
	BagPlan(ctx context.Context, tripID string) (*model.BagPlan, error)
}

// TripOption configures a TripServiceImpl.
type TripOption func(*TripServiceImpl)

// WithCrossBagUniqueness rejects adding an item already packed in another bag of the trip.
func WithCrossBagUniqueness(enabled bool) TripOption {
	return func(s *TripServiceImpl) {
		s.crossBagUnique = enabled
	}
}

// WithClock overrides the clock used for timestamps and the "trip has ended" check.
func WithClock(now func() time.Time) TripOption {
	return func(s *TripServiceImpl) {
		s.now = now
	}
}

// WithRecommendationEngine replaces the default engine.
func WithRecommendationEngine(engine *RecommendationEngine) TripOption {
	return func(s *TripServiceImpl) {
		s.engine = engine
	}
}

// refreshTimeout bounds a shared weather refresh once it no longer follows a caller's context.
const refreshTimeout = 30 * time.Second

// TripServiceImpl implements TripService on a document store.
// Every mutation loads and saves the whole collection under mu; weather
// fetches happen outside the lock.
type TripServiceImpl struct {
	store          repository.TripStore
	catalog        CatalogReader
	weather        ForecastSource
	engine         *RecommendationEngine
	planner        *BagPlanner
	refreshes      singleflight.Group
	mu             sync.Mutex
	crossBagUnique bool
	now            func() time.Time
	newID          func() string
}

// NewTripService creates a trip service.
func NewTripService(store repository.TripStore, catalog CatalogReader, forecasts ForecastSource, opts ...TripOption) *TripServiceImpl {
	s := &TripServiceImpl{
		store:   store,
		catalog: catalog,
		weather: forecasts,
		engine:  NewRecommendationEngine(),
		planner: NewBagPlanner(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TripServiceImpl) List(ctx context.Context) ([]model.Trip, error) {
	trips, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return trips, nil
}

// Get returns the trip with id, or nil when there is none.
func (s *TripServiceImpl) Get(ctx context.Context, id string) (*model.Trip, error) {
	trips, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOfTrip(trips, id); i >= 0 {
		return &trips[i], nil
	}
	return nil, nil
}

// Create builds the default bags, attaches a forecast and stores the trip.
// Weather problems never fail creation.
func (s *TripServiceImpl) Create(ctx context.Context, input model.NewTrip) (*model.Trip, error) {
	start := model.DateOnly(input.StartDate)
	end := model.DateOnly(input.EndDate)
	destination := strings.TrimSpace(input.Destination)
	if destination == "" {
		return nil, fmt.Errorf("%w: destination is required", model.ErrValidation)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date must not be before start date", model.ErrValidation)
	}

	var forecast []model.WeatherForecast
	if s.weather != nil {
		forecast = s.weather.ForecastForTrip(ctx, destination, start, end)
	}

	bags := make([]model.Bag, 0, len(model.DefaultBagSizes))
	for _, size := range model.DefaultBagSizes {
		bags = append(bags, model.NewBag(s.newID(), size))
	}

	now := s.now().UTC()
	trip := model.Trip{
		ID:              s.newID(),
		Destination:     destination,
		StartDate:       start,
		EndDate:         end,
		Bags:            bags,
		WeatherForecast: forecast,
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trips, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}
	trips = append(trips, trip)
	if err := s.store.SaveAll(ctx, trips); err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}

	log.Ctx(ctx).Info().
		Str("trip_id", trip.ID).
		Str("destination", trip.Destination).
		Int("forecast_days", len(forecast)).
		Msg("Trip created")
	return &trip, nil
}

// Update patches destination, dates and notes. It returns nil when the trip does not exist.
func (s *TripServiceImpl) Update(ctx context.Context, id string, patch model.TripPatch) (*model.Trip, error) {
	return s.mutate(ctx, "update trip", id, func(trip *model.Trip) error {
		updated := *trip
		patch.Apply(&updated)
		if strings.TrimSpace(updated.Destination) == "" {
			return fmt.Errorf("%w: destination is required", model.ErrValidation)
		}
		if updated.EndDate.Before(updated.StartDate) {
			return fmt.Errorf("%w: end date must not be before start date", model.ErrValidation)
		}
		*trip = updated
		return nil
	})
}

// Delete removes the trip with its bags and reports whether it existed.
func (s *TripServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips, err := s.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("delete trip %s: %w", id, err)
	}
	i := indexOfTrip(trips, id)
	if i < 0 {
		return false, nil
	}
	trips = append(trips[:i], trips[i+1:]...)
	if err := s.store.SaveAll(ctx, trips); err != nil {
		return false, fmt.Errorf("delete trip %s: %w", id, err)
	}
	return true, nil
}

// RefreshWeather replaces the forecast with a live one. Trips that already
// ended are returned unchanged, and a failed fetch keeps the old forecast.
// Concurrent refreshes of one trip share a single fetch. The shared fetch is
// detached from any single caller, so one caller giving up neither fails the
// others nor drops the forecast.
func (s *TripServiceImpl) RefreshWeather(ctx context.Context, id string) (*model.Trip, error) {
	ch := s.refreshes.DoChan(id, func() (interface{}, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()
		return s.refresh(shared, id)
	})
	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	trip, _ := res.Val.(*model.Trip)
	if trip == nil {
		return nil, nil
	}
	out := *trip
	return &out, nil
}

func (s *TripServiceImpl) refresh(ctx context.Context, id string) (*model.Trip, error) {
	trip, err := s.Get(ctx, id)
	if err != nil || trip == nil {
		return trip, err
	}
	if trip.HasEnded(s.now()) {
		log.Ctx(ctx).Debug().Str("trip_id", id).Msg("Trip has ended, keeping existing forecast")
		return trip, nil
	}
	if s.weather == nil {
		return trip, nil
	}

	days := weather.ClampDays(trip.LengthDays())
	forecast, err := s.weather.LiveForecast(ctx, trip.Destination, days)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).
			Str("trip_id", id).
			Str("destination", trip.Destination).
			Msg("Weather refresh failed, keeping previous forecast")
		return trip, nil
	}

	return s.mutate(ctx, "refresh weather", id, func(stored *model.Trip) error {
		stored.WeatherForecast = forecast
		return nil
	})
}

// Recommendations runs the engine over the catalog and the trip forecast and
// flags items already packed. It returns nil when the trip does not exist.
func (s *TripServiceImpl) Recommendations(ctx context.Context, tripID string) (*model.Recommendation, error) {
	trip, err := s.Get(ctx, tripID)
	if err != nil || trip == nil {
		return nil, err
	}
	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("recommendations for %s: %w", tripID, err)
	}

	packed, err := s.PackedItemIDs(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("recommendations for %s: %w", tripID, err)
	}

	eval := s.engine.Evaluate(catalog, trip.WeatherForecast, trip.StartDate, trip.EndDate)

	items := make([]model.RecommendedItem, 0, len(eval.Items))
	for _, item := range eval.Items {
		items = append(items, model.RecommendedItem{ClothingItem: item, Packed: packed[item.ID]})
	}
	metrics.RecordRecommendation(string(eval.TripLength), len(items))

	return &model.Recommendation{
		TripID:       trip.ID,
		TripLength:   eval.TripLength,
		Days:         eval.Days,
		Weather:      eval.Weather,
		MatchedRules: eval.MatchedRules,
		Items:        items,
	}, nil
}

// BagPlan suggests bags for the recommended items that are not packed yet.
func (s *TripServiceImpl) BagPlan(ctx context.Context, tripID string) (*model.BagPlan, error) {
	rec, err := s.Recommendations(ctx, tripID)
	if err != nil || rec == nil {
		return nil, err
	}
	trip, err := s.Get(ctx, tripID)
	if err != nil || trip == nil {
		return nil, err
	}

	pending := 0
	for _, item := range rec.Items {
		if !item.Packed {
			pending++
		}
	}
	plan := s.planner.Plan(*trip, pending)
	return &plan, nil
}

// mutate loads the collection, applies fn to the trip with id and saves.
// It returns nil without saving when the trip does not exist.
func (s *TripServiceImpl) mutate(ctx context.Context, op, id string, fn func(*model.Trip) error) (*model.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, id, err)
	}
	i := indexOfTrip(trips, id)
	if i < 0 {
		return nil, nil
	}

	if err := fn(&trips[i]); err != nil {
		return nil, err
	}
	trips[i].UpdatedAt = s.now().UTC()

	if err := s.store.SaveAll(ctx, trips); err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, id, err)
	}
	updated := trips[i]
	return &updated, nil
}

func indexOfTrip(trips []model.Trip, id string) int {
	for i := range trips {
		if trips[i].ID == id {
			return i
		}
	}
	return -1
}

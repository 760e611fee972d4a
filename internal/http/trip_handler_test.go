package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/packing-service/internal/circuitbreaker"
	"github.com/guttosm/packing-service/internal/domain/dto"
	"github.com/guttosm/packing-service/internal/domain/model"
	"github.com/guttosm/packing-service/internal/testutil"
)

func londonTrip() *model.Trip {
	trip := testutil.Trip("trip-1", "London", testutil.Date(2026, 6, 1), testutil.Date(2026, 6, 3))
	return &trip
}

func TestTripHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*testAPI)
		expectedStatus int
		wantField      string
	}{
		{
			name: "valid trip",
			body: `{"destination":" London ","start_date":"2026-06-01","end_date":"2026-06-03","notes":"conference"}`,
			setup: func(a *testAPI) {
				a.trips.On("Create", mock.Anything, model.NewTrip{
					Destination: "London",
					StartDate:   testutil.Date(2026, 6, 1),
					EndDate:     testutil.Date(2026, 6, 3),
					Notes:       "conference",
				}).Return(londonTrip(), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "RFC 3339 dates are truncated to the day",
			body: `{"destination":"London","start_date":"2026-06-01T15:04:05Z","end_date":"2026-06-03T08:00:00Z"}`,
			setup: func(a *testAPI) {
				a.trips.On("Create", mock.Anything, mock.MatchedBy(func(in model.NewTrip) bool {
					return in.StartDate.Equal(testutil.Date(2026, 6, 1)) && in.EndDate.Equal(testutil.Date(2026, 6, 3))
				})).Return(londonTrip(), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing destination",
			body:           `{"start_date":"2026-06-01","end_date":"2026-06-03"}`,
			setup:          func(a *testAPI) {},
			expectedStatus: http.StatusBadRequest,
			wantField:      "destination",
		},
		{
			name:           "end before start",
			body:           `{"destination":"London","start_date":"2026-06-03","end_date":"2026-06-01"}`,
			setup:          func(a *testAPI) {},
			expectedStatus: http.StatusBadRequest,
			wantField:      "end_date",
		},
		{
			name:           "bad date",
			body:           `{"destination":"London","start_date":"June 1st","end_date":"2026-06-03"}`,
			setup:          func(a *testAPI) {},
			expectedStatus: http.StatusBadRequest,
			wantField:      "start_date",
		},
		{
			name: "service validation",
			body: `{"destination":"London","start_date":"2026-06-01","end_date":"2026-06-03"}`,
			setup: func(a *testAPI) {
				a.trips.On("Create", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: destination is required", model.ErrValidation))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "storage circuit open",
			body: `{"destination":"London","start_date":"2026-06-01","end_date":"2026-06-03"}`,
			setup: func(a *testAPI) {
				a.trips.On("Create", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("create trip: %w", circuitbreaker.ErrCircuitOpen))
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			tt.setup(api)

			w := api.do(http.MethodPost, "/api/trips", tt.body)

			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus == http.StatusCreated {
				var trip model.Trip
				decodeData(t, w, &trip)
				assert.Equal(t, "trip-1", trip.ID)
				assert.Len(t, trip.Bags, 3)
			}
			if tt.wantField != "" {
				assert.Contains(t, decodeError(t, w).Details, tt.wantField)
			}
		})
	}
}

func TestTripHandler_ReadsAndWrites(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setup          func(*testAPI)
		expectedStatus int
	}{
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/api/trips",
			setup: func(a *testAPI) {
				a.trips.On("List", mock.Anything).Return([]model.Trip{*londonTrip()}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/api/trips/trip-1",
			setup: func(a *testAPI) {
				a.trips.On("Get", mock.Anything, "trip-1").Return(londonTrip(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			path:   "/api/trips/trip-1",
			setup: func(a *testAPI) {
				a.trips.On("Get", mock.Anything, "trip-1").Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "update notes",
			method: http.MethodPatch,
			path:   "/api/trips/trip-1",
			body:   `{"notes":"bring umbrella"}`,
			setup: func(a *testAPI) {
				a.trips.On("Update", mock.Anything, "trip-1", mock.MatchedBy(func(p model.TripPatch) bool {
					return p.Notes != nil && *p.Notes == "bring umbrella" && p.Destination == nil
				})).Return(londonTrip(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "update with inverted dates",
			method:         http.MethodPatch,
			path:           "/api/trips/trip-1",
			body:           `{"start_date":"2026-06-05","end_date":"2026-06-01"}`,
			setup:          func(a *testAPI) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "update missing",
			method: http.MethodPatch,
			path:   "/api/trips/trip-1",
			body:   `{"notes":"x"}`,
			setup: func(a *testAPI) {
				a.trips.On("Update", mock.Anything, "trip-1", mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/api/trips/trip-1",
			setup: func(a *testAPI) {
				a.trips.On("Delete", mock.Anything, "trip-1").Return(true, nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "delete missing",
			method: http.MethodDelete,
			path:   "/api/trips/trip-1",
			setup: func(a *testAPI) {
				a.trips.On("Delete", mock.Anything, "trip-1").Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "refresh weather",
			method: http.MethodPost,
			path:   "/api/trips/trip-1/weather/refresh",
			setup: func(a *testAPI) {
				a.trips.On("RefreshWeather", mock.Anything, "trip-1").Return(londonTrip(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "refresh missing trip",
			method: http.MethodPost,
			path:   "/api/trips/trip-1/weather/refresh",
			setup: func(a *testAPI) {
				a.trips.On("RefreshWeather", mock.Anything, "trip-1").Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "recommendations",
			method: http.MethodGet,
			path:   "/api/trips/trip-1/recommendations",
			setup: func(a *testAPI) {
				a.trips.On("Recommendations", mock.Anything, "trip-1").Return(&model.Recommendation{
					TripID:       "trip-1",
					TripLength:   model.TripLengthShort,
					Days:         2,
					MatchedRules: []string{},
					Items:        []model.RecommendedItem{},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "recommendations for missing trip",
			method: http.MethodGet,
			path:   "/api/trips/trip-1/recommendations",
			setup: func(a *testAPI) {
				a.trips.On("Recommendations", mock.Anything, "trip-1").Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "bag plan",
			method: http.MethodGet,
			path:   "/api/trips/trip-1/bag-plan",
			setup: func(a *testAPI) {
				a.trips.On("BagPlan", mock.Anything, "trip-1").Return(&model.BagPlan{TripID: "trip-1", Fits: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "bag plan store failure",
			method: http.MethodGet,
			path:   "/api/trips/trip-1/bag-plan",
			setup: func(a *testAPI) {
				a.trips.On("BagPlan", mock.Anything, "trip-1").Return(nil, errors.New("disk on fire"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			tt.setup(api)

			w := api.do(tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestTripHandler_AddItem(t *testing.T) {
	shirt := testutil.Item("shirt-1", model.CategoryShirts)

	tests := []struct {
		name           string
		body           string
		headers        []string
		setup          func(*testAPI)
		expectedStatus int
		wantMessage    string
	}{
		{
			name: "packs the catalog item",
			body: `{"item_id":"shirt-1"}`,
			setup: func(a *testAPI) {
				a.clothing.On("Get", mock.Anything, "shirt-1").Return(&shirt, nil)
				packed := londonTrip()
				packed.Bags[0].Items = []model.ClothingItem{shirt}
				a.trips.On("AddItemToBag", mock.Anything, "trip-1", "backpack", shirt).Return(packed, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing item_id",
			body:           `{}`,
			setup:          func(a *testAPI) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown catalog item",
			body: `{"item_id":"shirt-1"}`,
			setup: func(a *testAPI) {
				a.clothing.On("Get", mock.Anything, "shirt-1").Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			wantMessage:    "Clothing item not found",
		},
		{
			name: "unknown trip or bag",
			body: `{"item_id":"shirt-1"}`,
			setup: func(a *testAPI) {
				a.clothing.On("Get", mock.Anything, "shirt-1").Return(&shirt, nil)
				a.trips.On("AddItemToBag", mock.Anything, "trip-1", "backpack", shirt).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			wantMessage:    "Trip or bag not found",
		},
		{
			name: "bag full",
			body: `{"item_id":"shirt-1"}`,
			setup: func(a *testAPI) {
				a.clothing.On("Get", mock.Anything, "shirt-1").Return(&shirt, nil)
				a.trips.On("AddItemToBag", mock.Anything, "trip-1", "backpack", shirt).
					Return(nil, model.NewAllocationError(model.ErrCapacityExceeded, "Backpack"))
			},
			expectedStatus: http.StatusConflict,
			wantMessage:    "The Backpack is full. Remove some items or choose a different bag.",
		},
		{
			name: "duplicate",
			body: `{"item_id":"shirt-1"}`,
			setup: func(a *testAPI) {
				a.clothing.On("Get", mock.Anything, "shirt-1").Return(&shirt, nil)
				a.trips.On("AddItemToBag", mock.Anything, "trip-1", "backpack", shirt).
					Return(nil, model.NewAllocationError(model.ErrDuplicateInBag, "Backpack"))
			},
			expectedStatus: http.StatusConflict,
			wantMessage:    "This item is already in the Backpack.",
		},
		{
			name:    "already packed elsewhere, translated",
			body:    `{"item_id":"shirt-1"}`,
			headers: []string{"Accept-Language", "pt-BR,pt;q=0.9"},
			setup: func(a *testAPI) {
				a.clothing.On("Get", mock.Anything, "shirt-1").Return(&shirt, nil)
				a.trips.On("AddItemToBag", mock.Anything, "trip-1", "backpack", shirt).
					Return(nil, model.NewAllocationError(model.ErrAlreadyPacked, "Carry On"))
			},
			expectedStatus: http.StatusConflict,
			wantMessage:    "Este item já foi guardado na Carry On.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			tt.setup(api)

			w := api.do(http.MethodPost, "/api/trips/trip-1/bags/backpack/items", tt.body, tt.headers...)

			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeError(t, w).Message)
			}
			if tt.expectedStatus == http.StatusConflict {
				assert.Equal(t, dto.ErrCodeConflict, decodeError(t, w).Error)
			}
		})
	}
}

func TestTripHandler_RemoveItem(t *testing.T) {
	tests := []struct {
		name           string
		trip           *model.Trip
		expectedStatus int
	}{
		{"removed", londonTrip(), http.StatusOK},
		{"missing trip or bag", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.trips.On("RemoveItemFromBag", mock.Anything, "trip-1", "backpack", "shirt-1").Return(tt.trip, nil)

			w := api.do(http.MethodDelete, "/api/trips/trip-1/bags/backpack/items/shirt-1", "")

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestTripHandler_IsPacked(t *testing.T) {
	t.Run("packed", func(t *testing.T) {
		api := newTestAPI(t)
		api.trips.On("Get", mock.Anything, "trip-1").Return(londonTrip(), nil)
		api.trips.On("IsItemPacked", mock.Anything, "trip-1", "shirt-1").Return(true, nil)

		w := api.do(http.MethodGet, "/api/trips/trip-1/items/shirt-1/packed", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.PackedResponse
		decodeData(t, w, &resp)
		assert.Equal(t, dto.PackedResponse{TripID: "trip-1", ItemID: "shirt-1", Packed: true}, resp)
	})

	t.Run("missing trip", func(t *testing.T) {
		api := newTestAPI(t)
		api.trips.On("Get", mock.Anything, "trip-1").Return(nil, nil)

		w := api.do(http.MethodGet, "/api/trips/trip-1/items/shirt-1/packed", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		api.trips.AssertNotCalled(t, "IsItemPacked", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTripHandler_ListReturnsDates(t *testing.T) {
	api := newTestAPI(t)
	api.trips.On("List", mock.Anything).Return([]model.Trip{*londonTrip()}, nil)

	w := api.do(http.MethodGet, "/api/trips", "")

	require.Equal(t, http.StatusOK, w.Code)
	var trips []model.Trip
	decodeData(t, w, &trips)
	require.Len(t, trips, 1)
	assert.True(t, trips[0].StartDate.Equal(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)))
}

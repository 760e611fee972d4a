package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/packing-service/internal/domain/model"
)

func newTestCache(capacity int, ttl time.Duration) (*ForecastCache, *time.Time) {
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewForecastCache(capacity, ttl)
	c.now = func() time.Time { return clock }
	return c, &clock
}

func sampleForecast(condition string) []model.WeatherForecast {
	return []model.WeatherForecast{{
		Date:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		MinTemp:   40,
		MaxTemp:   50,
		Condition: condition,
		Source:    model.ForecastSourceLive,
	}}
}

func TestForecastCache_GetSet(t *testing.T) {
	c, _ := newTestCache(4, time.Minute)

	_, ok := c.Get("paris|3")
	assert.False(t, ok)

	c.Set("paris|3", sampleForecast("Sunny"))
	got, ok := c.Get("paris|3")

	require.True(t, ok)
	assert.Equal(t, sampleForecast("Sunny"), got)
	assert.Equal(t, CacheStats{Hits: 1, Misses: 1, Size: 1, Capacity: 4}, c.Stats())
}

func TestForecastCache_ReturnsCopies(t *testing.T) {
	c, _ := newTestCache(4, time.Minute)
	value := sampleForecast("Sunny")
	c.Set("k", value)

	value[0].Condition = "mutated"
	got, _ := c.Get("k")
	got[0].MaxTemp = 999

	again, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "Sunny", again[0].Condition)
	assert.Equal(t, float64(50), again[0].MaxTemp)
}

func TestForecastCache_Expiry(t *testing.T) {
	c, clock := newTestCache(4, time.Minute)
	c.Set("k", sampleForecast("Sunny"))

	*clock = clock.Add(59 * time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok)

	*clock = clock.Add(2 * time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Stats().Size)
}

func TestForecastCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := newTestCache(2, time.Minute)
	c.Set("a", sampleForecast("A"))
	c.Set("b", sampleForecast("B"))

	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", sampleForecast("C"))

	_, ok = c.Get("b")
	assert.False(t, ok, "b was least recently used")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, int64(1), c.Stats().Evictions)
}

func TestForecastCache_SetOverwrites(t *testing.T) {
	c, _ := newTestCache(2, time.Minute)
	c.Set("a", sampleForecast("Old"))
	c.Set("a", sampleForecast("New"))

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "New", got[0].Condition)
	assert.Equal(t, 1, c.Stats().Size)
}

func TestForecastCache_InvalidateAndClear(t *testing.T) {
	c, _ := newTestCache(4, time.Minute)
	c.Set("a", sampleForecast("A"))
	c.Set("b", sampleForecast("B"))

	c.Invalidate("a")
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Clear()
	assert.Equal(t, CacheStats{Capacity: 4}, c.Stats())
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "new york|3", CacheKey("  New York ", 3))
	assert.Equal(t, CacheKey("LONDON", 2), CacheKey("london", 2))
	assert.NotEqual(t, CacheKey("london", 2), CacheKey("london", 3))
}

package weather

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/guttosm/packing-service/internal/domain/model"
	"github.com/guttosm/packing-service/internal/metrics"
)

// CacheStats reports forecast cache counters.
type CacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
	Capacity  int   `json:"capacity"`
}

// ForecastCache is an LRU cache of provider forecasts with a fixed TTL.
// Expired entries are dropped on read.
type ForecastCache struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[string]*cacheEntry
	head      *cacheEntry
	tail      *cacheEntry
	hits      int64
	misses    int64
	evictions int64
	now       func() time.Time
}

type cacheEntry struct {
	key       string
	value     []model.WeatherForecast
	expiresAt time.Time
	prev      *cacheEntry
	next      *cacheEntry
}

// NewForecastCache creates a cache holding at most capacity forecasts for ttl each.
func NewForecastCache(capacity int, ttl time.Duration) *ForecastCache {
	if capacity < 1 {
		capacity = 1
	}
	metrics.UpdateCacheMetrics(0, capacity)
	return &ForecastCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry, capacity),
		now:      time.Now,
	}
}

// CacheKey builds the cache key for a destination and day count.
func CacheKey(destination string, days int) string {
	return fmt.Sprintf("%s|%d", strings.ToLower(strings.TrimSpace(destination)), days)
}

// Get returns a copy of the cached forecast when present and fresh.
func (c *ForecastCache) Get(key string) ([]model.WeatherForecast, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		c.misses++
		metrics.RecordCacheOperation("get", "miss")
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		c.removeEntry(entry)
		c.misses++
		metrics.RecordCacheOperation("get", "expired")
		metrics.UpdateCacheMetrics(len(c.items), c.capacity)
		return nil, false
	}

	c.moveToFront(entry)
	c.hits++
	metrics.RecordCacheOperation("get", "hit")
	return cloneForecast(entry.value), true
}

// Set stores a copy of value, evicting the least recently used entry when full.
func (c *ForecastCache) Set(key string, value []model.WeatherForecast) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if entry, ok := c.items[key]; ok {
		entry.value = cloneForecast(value)
		entry.expiresAt = expiresAt
		c.moveToFront(entry)
		metrics.RecordCacheOperation("set", "success")
		return
	}

	entry := &cacheEntry{key: key, value: cloneForecast(value), expiresAt: expiresAt}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeEntry(c.tail)
		c.evictions++
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
	metrics.UpdateCacheMetrics(len(c.items), c.capacity)
}

// Invalidate removes key from the cache.
func (c *ForecastCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
		metrics.RecordCacheOperation("invalidate", "success")
		metrics.UpdateCacheMetrics(len(c.items), c.capacity)
	}
}

// Clear drops every entry and resets the counters.
func (c *ForecastCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*cacheEntry, c.capacity)
	c.head, c.tail = nil, nil
	c.hits, c.misses, c.evictions = 0, 0, 0
	metrics.RecordCacheOperation("clear", "success")
	metrics.UpdateCacheMetrics(0, c.capacity)
}

// Stats returns a snapshot of the cache counters.
func (c *ForecastCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

func (c *ForecastCache) removeEntry(entry *cacheEntry) {
	delete(c.items, entry.key)
	c.unlink(entry)
}

func (c *ForecastCache) moveToFront(entry *cacheEntry) {
	if entry == c.head {
		return
	}
	c.unlink(entry)
	c.addToFront(entry)
}

func (c *ForecastCache) addToFront(entry *cacheEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *ForecastCache) unlink(entry *cacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev, entry.next = nil, nil
}

func cloneForecast(in []model.WeatherForecast) []model.WeatherForecast {
	if in == nil {
		return nil
	}
	out := make([]model.WeatherForecast, len(in))
	copy(out, in)
	return out
}

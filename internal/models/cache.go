package models

import (
	"container/list"
	"sync"
)

// Cache is an in-memory LRU cache for analyses. It is used when Redis is not configured.
type Cache struct {
	// capacity is the maximum number of entries
	capacity int

	// data maps cache keys to elements of order
	data map[string]*list.Element

	// order has the most recently used entry in front
	order *list.List

	// mutex protects data and order
	mutex sync.Mutex
}

type cacheEntry struct {
	key      string
	analysis Analysis
}

// NewCache creates a new cache holding at most capacity analyses.
func NewCache(capacity int) *Cache {
	if capacity < 1 {
		panic("cache capacity must be positive")
	}

	return &Cache{
		capacity: capacity,
		data:     make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Upsert adds or replaces an analysis, evicting the least recently used one if the cache is full.
func (c *Cache) Upsert(analysis Analysis) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	key := analysis.CacheKey()

	if elem, ok := c.data[key]; ok {
		elem.Value = cacheEntry{key: key, analysis: analysis}
		c.order.MoveToFront(elem)
		return
	}

	c.data[key] = c.order.PushFront(cacheEntry{key: key, analysis: analysis})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.data, oldest.Value.(cacheEntry).key) //nolint:forcetypeassert
	}
}

// Lookup looks up an analysis by cache key.
func (c *Cache) Lookup(key string) (Analysis, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	elem, ok := c.data[key]
	if !ok {
		return Analysis{}, false
	}

	c.order.MoveToFront(elem)
	return elem.Value.(cacheEntry).analysis, true //nolint:forcetypeassert
}

// Len returns the number of items in the cache.
func (c *Cache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.order.Len()
}

// Package cache provides a generic, thread-safe LRU cache used to
// memoize node resolution against the graph reference.
package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
)

// Cache is a generic thread-safe LRU cache.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	items    map[K]*entry[K, V]
	order    *list.List
	capacity int

	hits   atomic.Uint64
	misses atomic.Uint64
}

type entry[K comparable, V any] struct {
	value   V
	element *list.Element
}

// New creates a Cache with the given capacity. When full, the least
// recently used item is evicted.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = 128
	}
	return &Cache[K, V]{
		items:    make(map[K]*entry[K, V], capacity),
		order:    list.New(),
		capacity: capacity,
	}
}

// Get retrieves a value, marking it as most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}

	c.hits.Add(1)
	c.order.MoveToFront(e.element)
	return e.value, true
}

// Set adds or updates a value, evicting the least recently used item
// if the cache is at capacity.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

func (c *Cache[K, V]) set(key K, value V) {
	if e, ok := c.items[key]; ok {
		e.value = value
		c.order.MoveToFront(e.element)
		return
	}

	if len(c.items) >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			delete(c.items, oldest.Value.(K))
			c.order.Remove(oldest)
		}
	}

	c.items[key] = &entry[K, V]{
		value:   value,
		element: c.order.PushFront(key),
	}
}

// GetOrSet returns the cached value for key, computing and storing it
// with fn on a miss.
func (c *Cache[K, V]) GetOrSet(key K, fn func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		c.hits.Add(1)
		c.order.MoveToFront(e.element)
		return e.value
	}

	c.misses.Add(1)
	value := fn()
	c.set(key, value)
	return value
}

// Len returns the number of cached items.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats holds cache counters.
type Stats struct {
	Size   int
	Hits   uint64
	Misses uint64
}

// Stats returns the current counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	size := len(c.items)
	c.mu.Unlock()

	return Stats{
		Size:   size,
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}

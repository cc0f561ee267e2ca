package cache

import (
	"errors"
	"fmt"
)

// ErrInvalidCapacity is returned by New when Config.Capacity is below 1.
var ErrInvalidCapacity = errors.New("cache capacity must be at least 1")

// Config controls cache construction.
//
//   - Capacity is the maximum number of entries held at once. It must be >= 1.
//   - OnEvict, if set, is called once per capacity eviction, after the cache
//     is consistent again. It is not called for Remove or Clear, and it must
//     not call back into the cache.
type Config[K comparable, V any] struct {
	Capacity int
	OnEvict  func(key K, value V)
}

// Cache is a fixed-capacity key–value cache with LRU eviction.
//
// A map gives O(1) key lookup, and a doubly linked list kept in an arena
// maintains recency ordering. The map stores handles into the arena rather
// than pointers to list nodes.
//
// Cache is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
type Cache[K comparable, V any] struct {
	capacity int
	onEvict  func(K, V)

	index map[K]handle
	order arena[K, V] // head = most recently used (MRU), tail = least recently used (LRU)
}

// New constructs an empty cache.
//
// It returns an error wrapping ErrInvalidCapacity, and no cache, when
// cfg.Capacity < 1.
func New[K comparable, V any](cfg Config[K, V]) (*Cache[K, V], error) {
	if cfg.Capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, cfg.Capacity)
	}

	return &Cache[K, V]{
		capacity: cfg.Capacity,
		onEvict:  cfg.OnEvict,
		index:    make(map[K]handle, min(cfg.Capacity, preallocLimit)),
		order:    newArena[K, V](cfg.Capacity),
	}, nil
}

// Get reads a key.
//
// A hit moves the entry to the MRU position and returns its value with true.
// A miss returns the zero V and false and changes nothing. Get never evicts.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	h, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.order.moveToFront(h)
	return c.order.nodes[h].value, true
}

// Put writes or overwrites a key.
//
// Overwriting counts as use: the entry moves to MRU and size is unchanged.
// A new key is inserted at MRU; if that takes the cache over capacity, the
// LRU entry is evicted. At most one entry is evicted per call.
func (c *Cache[K, V]) Put(key K, value V) {
	if h, ok := c.index[key]; ok {
		c.order.nodes[h].value = value
		c.order.moveToFront(h)
		return
	}

	// Evicting before inserting keeps the arena at capacity+sentinels slots.
	// The resulting state is the same as insert-then-evict.
	var (
		evicted bool
		oldest  node[K, V]
	)
	if len(c.index) == c.capacity {
		oldest, evicted = c.removeOldest(), true
	}

	h := c.order.alloc(key, value)
	c.order.pushFront(h)
	c.index[key] = h

	if evicted && c.onEvict != nil {
		c.onEvict(oldest.key, oldest.value)
	}
}

// Peek reads a key without updating recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	h, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.order.nodes[h].value, true
}

// Contains reports whether key is cached, without updating recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Remove deletes key if present and reports whether it was.
func (c *Cache[K, V]) Remove(key K) bool {
	h, ok := c.index[key]
	if !ok {
		return false
	}
	c.deleteHandle(h)
	return true
}

// Oldest returns the entry that the next eviction would remove.
func (c *Cache[K, V]) Oldest() (K, V, bool) {
	h, ok := c.order.back()
	if !ok {
		var (
			zk K
			zv V
		)
		return zk, zv, false
	}
	n := c.order.nodes[h]
	return n.key, n.value, true
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int { return len(c.index) }

// Cap returns the capacity fixed at construction.
func (c *Cache[K, V]) Cap() int { return c.capacity }

// Keys returns keys in MRU -> LRU order.
func (c *Cache[K, V]) Keys() []K {
	out := make([]K, 0, len(c.index))
	for h := c.order.nodes[headSlot].next; h != tailSlot; h = c.order.nodes[h].next {
		out = append(out, c.order.nodes[h].key)
	}
	return out
}

// Clear removes every entry. Capacity is unchanged and OnEvict is not called.
func (c *Cache[K, V]) Clear() {
	clear(c.index)
	c.order.reset()
}

// removeOldest evicts the LRU entry and returns a copy of it.
// The cache must not be empty.
func (c *Cache[K, V]) removeOldest() node[K, V] {
	h, _ := c.order.back()
	n := c.order.nodes[h]
	c.deleteHandle(h)
	return n
}

func (c *Cache[K, V]) deleteHandle(h handle) {
	delete(c.index, c.order.nodes[h].key)
	c.order.unlink(h)
	c.order.release(h)
}

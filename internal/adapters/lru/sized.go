// Package lru provides a byte-budgeted recency cache whose entries can be
// pinned while they are being read.
package lru

import (
	"math"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"go.trai.ch/zerr"
)

// maxEntries bounds the entry count far above any byte budget in practice,
// so only the byte budget ever triggers eviction.
const maxEntries = math.MaxInt32

type entry[V any] struct {
	value V
	size  int64
	pins  int
}

type removal[K comparable, V any] struct {
	key   K
	value V
}

// Sized is a recency ordered cache bounded by the total byte size of its
// entries. Entries pinned through Acquire are never evicted. The eviction
// callback runs outside the cache lock.
type Sized[K comparable, V any] struct {
	mu        sync.Mutex
	items     *simplelru.LRU[K, *entry[V]]
	budget    int64
	total     int64
	evictions int64

	onEvict func(K, V)
	pending []removal[K, V]
}

// New creates a Sized cache with the given byte budget. A non-positive
// budget keeps nothing that is not pinned.
func New[K comparable, V any](budget int64, onEvict func(K, V)) (*Sized[K, V], error) {
	c := &Sized[K, V]{budget: budget, onEvict: onEvict}

	items, err := simplelru.NewLRU[K, *entry[V]](maxEntries, c.removed)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create lru index")
	}
	c.items = items
	return c, nil
}

// removed is called by simplelru with c.mu held.
func (c *Sized[K, V]) removed(key K, e *entry[V]) {
	c.total -= e.size
	if c.onEvict != nil {
		c.pending = append(c.pending, removal[K, V]{key: key, value: e.value})
	}
}

// unlock releases the lock and runs the eviction callbacks collected meanwhile.
func (c *Sized[K, V]) unlock() {
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, r := range pending {
		c.onEvict(r.key, r.value)
	}
}

// Add inserts or replaces key and evicts the least recently used unpinned
// entries until the cache fits its budget.
func (c *Sized[K, V]) Add(key K, value V, size int64) {
	c.mu.Lock()
	defer c.unlock()

	if old, ok := c.items.Peek(key); ok {
		c.total += size - old.size
		old.value = value
		old.size = size
		c.items.Get(key)
	} else {
		c.items.Add(key, &entry[V]{value: value, size: size})
		c.total += size
	}
	c.shrink()
}

// Get returns the value for key and marks it most recently used.
func (c *Sized[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Acquire returns the value for key and pins it until release is called.
// Release is safe to call more than once.
func (c *Sized[K, V]) Acquire(key K) (value V, release func(), ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, found := c.items.Get(key)
	if !found {
		var zero V
		return zero, func() {}, false
	}
	e.pins++

	var once sync.Once
	release = func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.unlock()
			e.pins--
			c.shrink()
		})
	}
	return e.value, release, true
}

// Remove drops key regardless of pins.
func (c *Sized[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.unlock()
	return c.items.Remove(key)
}

// Contains reports whether key is present without touching recency.
func (c *Sized[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items.Contains(key)
}

// Keys returns the keys from oldest to newest.
func (c *Sized[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items.Keys()
}

// Len returns the number of entries.
func (c *Sized[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items.Len()
}

// Size returns the total byte size of all entries.
func (c *Sized[K, V]) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Evictions returns how many entries were evicted to honor the budget.
func (c *Sized[K, V]) Evictions() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictions
}

// Purge drops every entry.
func (c *Sized[K, V]) Purge() {
	c.mu.Lock()
	defer c.unlock()
	c.items.Purge()
	c.total = 0
}

// shrink evicts unpinned entries oldest first while over budget.
func (c *Sized[K, V]) shrink() {
	if c.total <= c.budget {
		return
	}

	for _, key := range c.items.Keys() {
		if c.total <= c.budget {
			return
		}
		e, ok := c.items.Peek(key)
		if !ok || e.pins > 0 {
			continue
		}
		c.items.Remove(key)
		c.evictions++
	}
}

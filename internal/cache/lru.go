// Package cache provides a small thread-safe LRU cache with optional expiry.
package cache

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// LRU is a fixed-capacity least-recently-used cache. Entries older than ttl
// are treated as missing; a ttl of zero disables expiry.
type LRU[K comparable, V any] struct {
	maxEntries int
	ttl        time.Duration
	clock      clockwork.Clock

	mu      sync.Mutex
	entries map[K]*entry[K, V]
	head    *entry[K, V] // most recently used
	tail    *entry[K, V] // least recently used
}

type entry[K comparable, V any] struct {
	key      K
	value    V
	storedAt time.Time
	prev     *entry[K, V]
	next     *entry[K, V]
}

// New creates an LRU holding at most maxEntries items. A nil clock uses real
// time.
func New[K comparable, V any](maxEntries int, ttl time.Duration, clock clockwork.Clock) *LRU[K, V] {
	if maxEntries < 1 {
		maxEntries = 1
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &LRU[K, V]{
		maxEntries: maxEntries,
		ttl:        ttl,
		clock:      clock,
		entries:    make(map[K]*entry[K, V]),
	}
}

// Get returns the cached value and whether a live entry was found. Expired
// entries are removed on access.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if c.expired(e) {
		delete(c.entries, key)
		c.remove(e)
		return zero, false
	}
	c.moveToFront(e)
	return e.value, true
}

// Put stores a value, evicting the least recently used entry when full.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if e, ok := c.entries[key]; ok {
		e.value = value
		e.storedAt = now
		c.moveToFront(e)
		return
	}

	e := &entry[K, V]{key: key, value: value, storedAt: now}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

// Len returns the number of stored entries, including expired ones not yet
// evicted.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *LRU[K, V]) expired(e *entry[K, V]) bool {
	return c.ttl > 0 && c.clock.Since(e.storedAt) >= c.ttl
}

func (c *LRU[K, V]) moveToFront(e *entry[K, V]) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *LRU[K, V]) addToFront(e *entry[K, V]) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *LRU[K, V]) remove(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev, e.next = nil, nil
}

func (c *LRU[K, V]) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}

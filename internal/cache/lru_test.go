package cache

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestLRU_BasicGetPut(t *testing.T) {
	c := New[string, int](3, 0, nil)

	c.Put("a", 1)
	c.Put("b", 2)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestLRU_Eviction(t *testing.T) {
	c := New[string, string](2, 0, nil)

	c.Put("a", "A")
	c.Put("b", "B")
	c.Put("c", "C") // evicts "a"

	_, ok := c.Get("a")
	assert.False(t, ok, "a should have been evicted")

	v, ok := c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "B", v)

	v, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, "C", v)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_AccessPromotesEntry(t *testing.T) {
	c := New[string, string](2, 0, nil)

	c.Put("a", "A")
	c.Put("b", "B")

	// Access "a" to promote it
	c.Get("a")

	// Insert "c", which should evict "b" (LRU), not "a"
	c.Put("c", "C")

	_, ok := c.Get("a")
	assert.True(t, ok, "a was accessed recently, should not be evicted")

	_, ok = c.Get("b")
	assert.False(t, ok, "b should have been evicted")
}

func TestLRU_UpdateExisting(t *testing.T) {
	c := New[string, string](2, 0, nil)

	c.Put("a", "A1")
	c.Put("a", "A2")

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "A2", v)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_Expiry(t *testing.T) {
	clk := clockwork.NewFakeClock()
	c := New[string, string](4, time.Minute, clk)

	c.Put("a", "A")
	clk.Advance(59 * time.Second)
	_, ok := c.Get("a")
	assert.True(t, ok, "entry is still fresh")

	clk.Advance(time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok, "entry should expire at ttl")
	assert.Equal(t, 0, c.Len())
}

func TestLRU_PutRefreshesExpiry(t *testing.T) {
	clk := clockwork.NewFakeClock()
	c := New[string, string](4, time.Minute, clk)

	c.Put("a", "A1")
	clk.Advance(45 * time.Second)
	c.Put("a", "A2")
	clk.Advance(45 * time.Second)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "A2", v)
}

func TestLRU_MinimumCapacity(t *testing.T) {
	c := New[int, int](0, 0, nil)
	c.Put(1, 1)
	c.Put(2, 2)
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get(2)
	assert.True(t, ok)
}

package classcss

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGetSet(t *testing.T) {
	c := newCache[string, int](3)

	_, ok := c.get("missing")
	assert.False(t, ok)

	c.set("a", 1)
	c.set("b", 2)
	v, ok := c.get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, c.len())
}

func TestCacheOverwriteRefreshesRecency(t *testing.T) {
	c := newCache[string, int](2)
	c.set("a", 1)
	c.set("b", 2)

	// Overwriting "a" makes it most recently used; "b" should be the
	// one evicted by the next new key.
	c.set("a", 10)
	c.set("c", 3)

	v, ok := c.get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
	_, ok = c.get("b")
	assert.False(t, ok)
	assert.Equal(t, 2, c.len())
}

func TestCacheGetPromotes(t *testing.T) {
	c := newCache[string, int](2)
	c.set("a", 1)
	c.set("b", 2)

	// Reading "a" promotes it, so inserting "c" evicts "b".
	_, ok := c.get("a")
	require.True(t, ok)
	c.set("c", 3)

	_, ok = c.get("a")
	assert.True(t, ok)
	_, ok = c.get("b")
	assert.False(t, ok)
}

func TestCacheEvictionOrder(t *testing.T) {
	c := newCache[string, int](50)

	for i := 0; i < 60; i++ {
		c.set(fmt.Sprintf("key-%d", i), i)
	}

	assert.Equal(t, 50, c.len())

	// Exactly the 10 oldest keys are gone, not an arbitrary subset.
	for i := 0; i < 10; i++ {
		_, ok := c.get(fmt.Sprintf("key-%d", i))
		assert.False(t, ok, "key-%d should have been evicted", i)
	}
	for i := 10; i < 60; i++ {
		_, ok := c.get(fmt.Sprintf("key-%d", i))
		assert.True(t, ok, "key-%d should still be resident", i)
	}
}

func TestCacheClear(t *testing.T) {
	c := newCache[string, int](5)
	c.set("a", 1)
	c.set("b", 2)

	c.clear()

	assert.Equal(t, 0, c.len())
	_, ok := c.get("a")
	assert.False(t, ok)

	// Usable after clearing.
	c.set("c", 3)
	v, ok := c.get("c")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

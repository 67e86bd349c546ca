package classcss

import "container/list"

// cache is a bounded key/value store with least-recently-used eviction.
// Reads promote the entry to most-recently-used; inserting a new key at
// capacity evicts exactly one entry, the least recently accessed.
//
// The cache is not safe for concurrent use. Converter owns one instance
// per processor and accesses it from a single logical call sequence.
type cache[K comparable, V any] struct {
	capacity int
	order    *list.List // front = most recently used
	entries  map[K]*list.Element
}

type cacheEntry[K comparable, V any] struct {
	key   K
	value V
}

func newCache[K comparable, V any](capacity int) *cache[K, V] {
	return &cache[K, V]{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[K]*list.Element, capacity),
	}
}

// get returns the value stored under key, promoting it to most-recently-used.
func (c *cache[K, V]) get(key K) (V, bool) {
	elem, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry[K, V]).value, true
}

// set inserts or overwrites key. An existing key is removed first so
// re-insertion refreshes its recency. Inserting a brand-new key at capacity
// evicts the single least-recently-used entry.
func (c *cache[K, V]) set(key K, value V) {
	if elem, ok := c.entries[key]; ok {
		c.order.Remove(elem)
		delete(c.entries, key)
	} else if len(c.entries) >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry[K, V]).key)
		}
	}
	c.entries[key] = c.order.PushFront(&cacheEntry[K, V]{key: key, value: value})
}

// clear empties the cache.
func (c *cache[K, V]) clear() {
	c.order.Init()
	c.entries = make(map[K]*list.Element, c.capacity)
}

// len returns the current entry count.
func (c *cache[K, V]) len() int {
	return len(c.entries)
}

package rich

import (
	"container/list"
	"sync"
)

// DefaultCacheSize is the number of measurements NewCachedMetrics keeps
// when asked for a non-positive size.
const DefaultCacheSize = 4096

type measureKey struct {
	style uint64
	text  string
}

type lruEntry struct {
	key   measureKey
	value float64
}

// CachedMetrics memoizes another Metrics in an LRU cache. It is safe for
// concurrent use, so blocks laid out in parallel can share one.
type CachedMetrics struct {
	m Metrics

	mu     sync.Mutex
	items  map[measureKey]*list.Element
	order  *list.List
	size   int
	hits   int
	misses int
}

var _ Metrics = (*CachedMetrics)(nil)

// NewCachedMetrics returns m behind a cache of size entries.
func NewCachedMetrics(m Metrics, size int) *CachedMetrics {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &CachedMetrics{
		m:     m,
		items: make(map[measureKey]*list.Element, size),
		order: list.New(),
		size:  size,
	}
}

func (c *CachedMetrics) Measure(text string, style Style) float64 {
	if text == "" {
		return 0
	}
	key := measureKey{style: style.Key(), text: text}

	c.mu.Lock()
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		c.hits++
		c.mu.Unlock()
		return elem.Value.(lruEntry).value
	}
	c.misses++
	c.mu.Unlock()

	// Measure outside the lock; a concurrent miss on the same key
	// measures twice and stores the same value.
	w := c.m.Measure(text, style)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		return w
	}
	if c.order.Len() >= c.size {
		// Evict least recently used (back of list)
		if back := c.order.Back(); back != nil {
			c.order.Remove(back)
			delete(c.items, back.Value.(lruEntry).key)
		}
	}
	c.items[key] = c.order.PushFront(lruEntry{key: key, value: w})
	return w
}

func (c *CachedMetrics) Height(style Style) float64 {
	return c.m.Height(style)
}

// Stats returns the cache's hit and miss counts.
func (c *CachedMetrics) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Len returns the number of cached measurements.
func (c *CachedMetrics) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

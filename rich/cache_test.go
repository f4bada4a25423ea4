package rich

import (
	"sync"
	"sync/atomic"
	"testing"
)

// countingMetrics counts the measurements that reach it.
type countingMetrics struct {
	Metrics
	n atomic.Int64
}

func (c *countingMetrics) Measure(text string, style Style) float64 {
	c.n.Add(1)
	return c.Metrics.Measure(text, style)
}

func TestCachedMetrics(t *testing.T) {
	inner := &countingMetrics{Metrics: unitMetrics()}
	c := NewCachedMetrics(inner, 2)

	c.Measure("ab", DefaultStyle())
	c.Measure("ab", DefaultStyle())
	c.Measure("ab", StyleBold) // different style, different entry
	if got := inner.n.Load(); got != 2 {
		t.Errorf("inner metrics measured %d times, want 2", got)
	}

	c.Measure("cd", DefaultStyle()) // evicts the least recently used: ab/plain
	if got := c.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	c.Measure("ab", StyleBold)
	c.Measure("ab", DefaultStyle())
	if got := inner.n.Load(); got != 4 {
		t.Errorf("inner metrics measured %d times, want 4", got)
	}
	if hits, misses := c.Stats(); hits != 2 || misses != 4 {
		t.Errorf("Stats() = %d hits, %d misses, want 2, 4", hits, misses)
	}
}

func TestCachedMetricsConcurrent(t *testing.T) {
	c := NewCachedMetrics(unitMetrics(), 0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, s := range []string{"one", "two", "three", "one"} {
				if got, want := c.Measure(s, StyleItalic), float64(len(s)); got != want {
					t.Errorf("Measure(%q) = %g, want %g", s, got, want)
				}
			}
		}()
	}
	wg.Wait()
	if got := c.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

package ruler

import (
	"fmt"
	"math"
	"testing"
)

// TestMeasureCacheBasicOperations tests store/lookup with exact keys.
func TestMeasureCacheBasicOperations(t *testing.T) {
	c := newMeasureCache()

	// Lookup on empty cache
	if _, ok := c.lookup("hello", 100); ok {
		t.Error("expected miss on empty cache")
	}

	m := &Metrics{Width: 42}
	c.store("hello", 100, m)

	got, ok := c.lookup("hello", 100)
	if !ok || got != m {
		t.Errorf("lookup(hello, 100) = (%v, %v), want stored metrics", got, ok)
	}

	// The key is the exact width. A nearby width is a different key.
	if _, ok := c.lookup("hello", 100.5); ok {
		t.Error("expected miss for width 100.5 after storing width 100")
	}

	// The key is the exact text.
	if _, ok := c.lookup("hello ", 100); ok {
		t.Error("expected miss for different text")
	}

	// Same text and width replaces in place.
	m2 := &Metrics{Width: 43}
	c.store("hello", 100, m2)
	if got, _ := c.lookup("hello", 100); got != m2 {
		t.Error("expected replacement to win the lookup")
	}
	if n := c.resultCount("hello"); n != 1 {
		t.Errorf("resultCount after replace = %d, want 1", n)
	}
}

// TestMeasureCacheInfiniteWidth tests that the unconstrained width is a
// usable key.
func TestMeasureCacheInfiniteWidth(t *testing.T) {
	c := newMeasureCache()
	m := &Metrics{Width: 7}
	c.store("hi", math.Inf(1), m)

	got, ok := c.lookup("hi", math.Inf(1))
	if !ok || got != m {
		t.Error("expected hit for infinite width key")
	}
	if _, ok := c.lookup("hi", 100); ok {
		t.Error("finite width should miss after storing infinite width")
	}
}

// TestMeasureCachePerTextCap tests that one text holds at most
// maxResultsPerText results and that the oldest result is evicted.
func TestMeasureCachePerTextCap(t *testing.T) {
	c := newMeasureCache()

	for i := 0; i <= maxResultsPerText; i++ {
		c.store("hello", float64(i*10), &Metrics{Width: float64(i)})
	}

	if n := c.resultCount("hello"); n != maxResultsPerText {
		t.Fatalf("resultCount = %d, want %d", n, maxResultsPerText)
	}

	// Width 0 was the oldest result and should be gone.
	if _, ok := c.lookup("hello", 0); ok {
		t.Error("expected oldest width to be evicted")
	}
	// All later widths survive.
	for i := 1; i <= maxResultsPerText; i++ {
		if _, ok := c.lookup("hello", float64(i*10)); !ok {
			t.Errorf("expected width %d to survive", i*10)
		}
	}

	// Only one text key exists regardless of result count.
	if n := c.size(); n != 1 {
		t.Errorf("size = %d, want 1", n)
	}
}

// TestMeasureCacheKeyCapBatchEviction tests the global text-key cap and
// the batched eviction of the least recently used keys.
func TestMeasureCacheKeyCapBatchEviction(t *testing.T) {
	c := newMeasureCache()

	for i := 0; i < maxTextKeys; i++ {
		c.store(fmt.Sprintf("text-%d", i), 100, &Metrics{Width: float64(i)})
	}
	if n := c.size(); n != maxTextKeys {
		t.Fatalf("size = %d, want %d", n, maxTextKeys)
	}

	// Touch the very first key so recency protects it.
	if _, ok := c.lookup("text-0", 100); !ok {
		t.Fatal("expected text-0 to be cached before overflow")
	}

	// One more key overflows the cap and evicts a whole batch.
	c.store("overflow", 100, &Metrics{})

	want := maxTextKeys + 1 - evictBatch
	if n := c.size(); n != want {
		t.Fatalf("size after overflow = %d, want %d", n, want)
	}

	// The touched key survived; the untouched oldest keys did not.
	if _, ok := c.lookup("text-0", 100); !ok {
		t.Error("recently used text-0 should have survived the batch eviction")
	}
	for _, i := range []int{1, 50, evictBatch} {
		if _, ok := c.lookup(fmt.Sprintf("text-%d", i), 100); ok {
			t.Errorf("expected text-%d to be evicted", i)
		}
	}
	if _, ok := c.lookup(fmt.Sprintf("text-%d", evictBatch+1), 100); !ok {
		t.Errorf("expected text-%d to survive", evictBatch+1)
	}
	if _, ok := c.lookup("overflow", 100); !ok {
		t.Error("expected the newly stored key to survive")
	}
}

// TestMeasureCacheCounters tests hit and miss accounting.
func TestMeasureCacheCounters(t *testing.T) {
	c := newMeasureCache()
	c.store("a", 10, &Metrics{})

	c.lookup("a", 10) // hit
	c.lookup("a", 20) // miss (width)
	c.lookup("b", 10) // miss (text)

	if c.hits != 1 || c.misses != 2 {
		t.Errorf("counters = (%d hits, %d misses), want (1, 2)", c.hits, c.misses)
	}
}

// TestMeasureCacheClear tests that clear drops everything.
func TestMeasureCacheClear(t *testing.T) {
	c := newMeasureCache()
	c.store("a", 10, &Metrics{})
	c.store("b", 10, &Metrics{})

	c.clear()

	if n := c.size(); n != 0 {
		t.Errorf("size after clear = %d, want 0", n)
	}
	if _, ok := c.lookup("a", 10); ok {
		t.Error("expected miss after clear")
	}
}

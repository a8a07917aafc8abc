package ruler

import (
	"log/slog"

	"github.com/strata-gl/strata/internal/logging"
	"github.com/strata-gl/strata/internal/mru"
)

const (
	// maxResultsPerText caps how many distinct constraints are kept per
	// text. Text fields re-measure the same string under a handful of
	// widths; past that the oldest result goes.
	maxResultsPerText = 8

	// maxTextKeys caps how many distinct texts one ruler tracks.
	maxTextKeys = 2400

	// evictBatch is how many of the least recently used texts are
	// dropped in one sweep once maxTextKeys is exceeded. Batching keeps
	// eviction off the per-measure path.
	evictBatch = 100
)

// cachedResult pairs a width constraint with the metrics measured under
// it. Constraint matching is exact float equality.
type cachedResult struct {
	width   float64
	metrics *Metrics
}

// textEntry holds all cached results for one text, oldest first.
type textEntry struct {
	results []cachedResult
	node    *mru.Node[string]
}

// measureCache is the per-ruler measurement cache: text -> up to
// maxResultsPerText (constraint, metrics) pairs, with a recency list
// across texts for batch eviction. Not safe for concurrent use; the
// frame pipeline is single-threaded.
type measureCache struct {
	entries map[string]*textEntry
	order   *mru.List[string]
	hits    uint64
	misses  uint64
}

func newMeasureCache() *measureCache {
	return &measureCache{
		entries: make(map[string]*textEntry),
		order:   mru.New[string](),
	}
}

// lookup returns the metrics cached for the exact (text, width) pair.
func (c *measureCache) lookup(text string, width float64) (*Metrics, bool) {
	e, ok := c.entries[text]
	if !ok {
		c.misses++
		return nil, false
	}
	for i := range e.results {
		if e.results[i].width == width {
			c.order.MoveToFront(e.node)
			c.hits++
			return e.results[i].metrics, true
		}
	}
	c.misses++
	return nil, false
}

// store records a measurement. A ninth distinct constraint for the same
// text evicts that text's oldest result; a new text beyond maxTextKeys
// evicts the evictBatch least recently used texts in one batch.
func (c *measureCache) store(text string, width float64, m *Metrics) {
	if e, ok := c.entries[text]; ok {
		for i := range e.results {
			if e.results[i].width == width {
				e.results[i].metrics = m
				c.order.MoveToFront(e.node)
				return
			}
		}
		e.results = append(e.results, cachedResult{width: width, metrics: m})
		if len(e.results) > maxResultsPerText {
			copy(e.results, e.results[1:])
			e.results = e.results[:maxResultsPerText]
		}
		c.order.MoveToFront(e.node)
		return
	}

	e := &textEntry{results: []cachedResult{{width: width, metrics: m}}}
	e.node = c.order.PushFront(text)
	c.entries[text] = e

	if c.order.Len() > maxTextKeys {
		c.evictOldest()
	}
}

// evictOldest drops the evictBatch least recently used texts.
func (c *measureCache) evictOldest() {
	evicted := 0
	for evicted < evictBatch {
		key, ok := c.order.RemoveOldest()
		if !ok {
			break
		}
		delete(c.entries, key)
		evicted++
	}
	logging.Get().Debug("ruler cache evicted batch",
		slog.Int("evicted", evicted),
		slog.Int("remaining", c.order.Len()))
}

// clear drops everything.
func (c *measureCache) clear() {
	c.entries = make(map[string]*textEntry)
	c.order.Clear()
}

// size returns the number of distinct texts tracked.
func (c *measureCache) size() int {
	return c.order.Len()
}

// resultCount returns how many results are cached for a text. Zero when
// the text is unknown.
func (c *measureCache) resultCount(text string) int {
	if e, ok := c.entries[text]; ok {
		return len(e.results)
	}
	return 0
}

// Package rastercache caches rasterized pictures across frames.
//
// The cache is keyed by (picture identity, exact transform): any change
// to any matrix component is a different key, because rasters are only
// valid for the precise device mapping they were produced under.
// Candidates register during preroll via Prepare; rasterization itself
// is deferred to the paint pass, so discarded frames never pay for
// speculative rasters. Entries unused for a configurable number of
// frames are evicted by Sweep at frame end, and the whole cache is
// dropped by Clear when the device pixel ratio changes.
//
// Cache mutation is serialized by the single-threaded frame pipeline;
// only the statistics counters are atomic so they can be read from
// monitoring goroutines.
package rastercache

import (
	"log/slog"
	"sync/atomic"

	"github.com/strata-gl/strata"
	"github.com/strata-gl/strata/internal/logging"
	"github.com/strata-gl/strata/picture"
)

// Default tuning. The access threshold is deliberately a tunable, not a
// contract: it trades rasterization latency against cache churn.
const (
	// DefaultAccessThreshold is how many consecutive frames a
	// (picture, transform) pair must repeat before it becomes eligible
	// without an explicit hint.
	DefaultAccessThreshold = 3

	// DefaultRetention is how many frames an entry survives without
	// being used.
	DefaultRetention = 3

	// DefaultMaxPictureArea caps the device-space area of a cached
	// raster, in square pixels.
	DefaultMaxPictureArea = 2048 * 2048

	// minCacheableOps is the draw-op count below which replaying the
	// picture is assumed cheaper than compositing a cached raster.
	minCacheableOps = 4

	bytesPerPixel = 4
)

// Key identifies one cached raster. Matrix is compared by value across
// all sixteen components.
type Key struct {
	PictureID uint64
	Transform strata.Matrix
}

// entry tracks one (picture, transform) pair from its first preroll
// sighting. The raster stays nil until the paint pass populates it.
type entry struct {
	key           Key
	complex       bool
	willChange    bool
	streak        int
	preparedFrame uint64
	usedFrame     uint64
	raster        *CachedRaster
}

// access tracks per-picture preroll sightings independent of transform.
type access struct {
	count     int
	lastFrame uint64
}

// Cache is the process-wide raster cache shared by all frames.
type Cache struct {
	entries  map[Key]*entry
	accesses map[uint64]*access
	frame    uint64

	threshold int
	retention uint64
	maxArea   float64

	size atomic.Int64

	hits        atomic.Uint64
	misses      atomic.Uint64
	populations atomic.Uint64
	evictions   atomic.Uint64
}

// Option configures a Cache.
type Option func(*Cache)

// WithAccessThreshold sets how many consecutive same-transform frames
// make an unhinted picture eligible. Values below 1 are clamped to 1.
func WithAccessThreshold(n int) Option {
	return func(c *Cache) {
		if n < 1 {
			n = 1
		}
		c.threshold = n
	}
}

// WithRetention sets how many frames an unused entry survives before
// Sweep evicts it. Values below 1 are clamped to 1.
func WithRetention(frames int) Option {
	return func(c *Cache) {
		if frames < 1 {
			frames = 1
		}
		c.retention = uint64(frames)
	}
}

// WithMaxPictureArea caps the device-space area, in square pixels, a
// picture may occupy and still be cached.
func WithMaxPictureArea(px float64) Option {
	return func(c *Cache) {
		if px > 0 {
			c.maxArea = px
		}
	}
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries:   make(map[Key]*entry),
		accesses:  make(map[uint64]*access),
		threshold: DefaultAccessThreshold,
		retention: DefaultRetention,
		maxArea:   DefaultMaxPictureArea,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BeginFrame advances the frame stamp. Every preroll/paint/sweep cycle
// runs under one stamp; an abandoned frame simply never sweeps.
func (c *Cache) BeginFrame() {
	c.frame++
}

// FrameStamp returns the current frame stamp.
func (c *Cache) FrameStamp() uint64 { return c.frame }

// Prepare registers a picture sighting during preroll. It is
// idempotent within a frame, so re-prerolling an abandoned frame does
// not distort the bookkeeping. Prepare never rasterizes.
func (c *Cache) Prepare(pic *picture.Picture, m strata.Matrix, isComplex, willChange bool) {
	if pic == nil {
		return
	}

	a := c.accesses[pic.ID()]
	if a == nil {
		a = &access{}
		c.accesses[pic.ID()] = a
	}
	if a.lastFrame != c.frame {
		a.count++
		a.lastFrame = c.frame
	}

	key := Key{PictureID: pic.ID(), Transform: m}
	e := c.entries[key]
	if e == nil {
		e = &entry{key: key}
		c.entries[key] = e
	}
	if e.preparedFrame == c.frame && e.streak > 0 {
		return
	}
	if e.preparedFrame == c.frame-1 {
		e.streak++
	} else {
		e.streak = 1
	}
	e.preparedFrame = c.frame
	e.usedFrame = c.frame
	e.complex = isComplex
	e.willChange = willChange
}

// Get looks up a populated raster for the exact transform. A hit
// refreshes the entry's last-used stamp. Misses are explicit: the
// caller paints the picture by replay and may then populate the cache
// if ShouldPopulate agrees.
func (c *Cache) Get(pictureID uint64, m strata.Matrix) (*CachedRaster, bool) {
	e := c.entries[Key{PictureID: pictureID, Transform: m}]
	if e == nil || e.raster == nil {
		c.misses.Add(1)
		return nil, false
	}
	e.usedFrame = c.frame
	c.hits.Add(1)
	return e.raster, true
}

// ShouldPopulate reports whether the paint pass should rasterize this
// picture after its vector replay. True requires a Prepare sighting
// this frame, no raster yet, a non-trivial picture within the area
// budget, and one of the eligibility signals: an explicit hint or a
// stable transform streak.
func (c *Cache) ShouldPopulate(pic *picture.Picture, m strata.Matrix) bool {
	if pic == nil {
		return false
	}
	e := c.entries[Key{PictureID: pic.ID(), Transform: m}]
	if e == nil || e.preparedFrame != c.frame || e.raster != nil {
		return false
	}
	if pic.OpCount() < minCacheableOps {
		return false
	}
	device := m.MapRect(pic.Bounds())
	if device.IsEmpty() || device.Width()*device.Height() > c.maxArea {
		return false
	}
	return e.complex || e.willChange || e.streak >= c.threshold
}

// Populate stores the rasterized output for a key. The entry keeps its
// eligibility bookkeeping; only the raster handle and byte accounting
// change.
func (c *Cache) Populate(pic *picture.Picture, m strata.Matrix, raster *CachedRaster) {
	if pic == nil || raster == nil {
		return
	}
	key := Key{PictureID: pic.ID(), Transform: m}
	e := c.entries[key]
	if e == nil {
		e = &entry{key: key, preparedFrame: c.frame}
		c.entries[key] = e
	}
	if e.raster != nil {
		c.size.Add(-e.raster.sizeBytes())
	}
	e.raster = raster
	e.usedFrame = c.frame
	c.size.Add(raster.sizeBytes())
	c.populations.Add(1)
	logging.Get().Debug("raster cache populated",
		slog.Uint64("picture", pic.ID()),
		slog.Int64("bytes", raster.sizeBytes()))
}

// Sweep evicts entries whose last use is older than the retention
// window. It runs once per committed frame; abandoned frames skip it so
// their partial bookkeeping ages out naturally.
func (c *Cache) Sweep() {
	evicted := 0
	for key, e := range c.entries {
		if c.frame-e.usedFrame >= c.retention {
			c.drop(key, e)
			evicted++
		}
	}
	for id, a := range c.accesses {
		if c.frame-a.lastFrame >= c.retention {
			delete(c.accesses, id)
		}
	}
	if evicted > 0 {
		c.evictions.Add(uint64(evicted))
		logging.Get().Debug("raster cache swept",
			slog.Int("evicted", evicted),
			slog.Int("remaining", len(c.entries)))
	}
}

// Clear drops every entry. Rasters are resolution-dependent, so the
// surface calls this whenever the device pixel ratio changes.
func (c *Cache) Clear() {
	n := len(c.entries)
	for key, e := range c.entries {
		c.drop(key, e)
	}
	c.accesses = make(map[uint64]*access)
	if n > 0 {
		c.evictions.Add(uint64(n))
		logging.Get().Info("raster cache cleared", slog.Int("entries", n))
	}
}

func (c *Cache) drop(key Key, e *entry) {
	if e.raster != nil {
		c.size.Add(-e.raster.sizeBytes())
	}
	delete(c.entries, key)
}

// EntryCount returns the number of tracked (picture, transform) pairs,
// populated or not.
func (c *Cache) EntryCount() int { return len(c.entries) }

// PictureAccessCount returns how many distinct frames have prerolled
// the picture, across all transforms, within the retention horizon.
func (c *Cache) PictureAccessCount(pictureID uint64) int {
	if a := c.accesses[pictureID]; a != nil {
		return a.count
	}
	return 0
}

// Stats is a point-in-time snapshot of cache behavior.
type Stats struct {
	// Entries is the number of tracked keys, populated or not.
	Entries int
	// Size is the memory held by cached rasters, in bytes.
	Size int64
	// Hits is the number of Get calls served from cache.
	Hits uint64
	// Misses is the number of Get calls that fell back to replay.
	Misses uint64
	// Populations is the number of rasters stored.
	Populations uint64
	// Evictions counts entries removed by Sweep and Clear.
	Evictions uint64
	// HitRate is Hits over all Get calls, 0 when idle.
	HitRate float64
}

// Stats returns current statistics. Counter reads are atomic and safe
// from any goroutine.
func (c *Cache) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Stats{
		Entries:     len(c.entries),
		Size:        c.size.Load(),
		Hits:        hits,
		Misses:      misses,
		Populations: c.populations.Load(),
		Evictions:   c.evictions.Load(),
		HitRate:     rate,
	}
}

package scene

import (
	"github.com/strata-gl/strata"
	"github.com/strata-gl/strata/picture"
	"github.com/strata-gl/strata/rastercache"
)

// RasterizeFunc renders a picture under a transform into a cacheable
// raster. The render driver supplies one backed by the bitmap backend;
// without it the paint pass still draws but never populates the cache.
type RasterizeFunc func(pic *picture.Picture, m strata.Matrix) (*rastercache.CachedRaster, error)

// PrerollContext carries the per-frame state of the bounds pass. One
// context serves the whole tree; layers receive it by reference and
// must not retain it past the pass.
type PrerollContext struct {
	// Cache receives picture candidates. Nil disables raster caching
	// for the frame.
	Cache *rastercache.Cache
}

// PaintContext carries the per-frame state of the paint pass.
type PaintContext struct {
	// Canvas is the destination surface. Layers swap it temporarily
	// when they need to filter their subtree's draws.
	Canvas strata.Canvas

	// Cache is consulted for rasters and populated on eligible misses.
	// Nil disables raster caching for the frame.
	Cache *rastercache.Cache

	// Rasterize produces cache artifacts on eligible misses. Nil
	// disables population while leaving lookups active.
	Rasterize RasterizeFunc
}

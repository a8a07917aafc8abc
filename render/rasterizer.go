// Copyright 2026 The strata Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"log/slog"
	"time"

	strata "github.com/strata-gl/strata"
	"github.com/strata-gl/strata/backend/bitmap"
	"github.com/strata-gl/strata/internal/logging"
	"github.com/strata-gl/strata/picture"
	"github.com/strata-gl/strata/rastercache"
	"github.com/strata-gl/strata/scene"
	"github.com/strata-gl/strata/surface"
)

// Rasterizer renders layer trees into pixels and presents them to a
// surface. It keeps its bitmap canvas and raster cache across frames;
// constructing one per frame defeats both.
type Rasterizer struct {
	surface surface.Surface
	cache   *rastercache.Cache
	canvas  *bitmap.Canvas
	clock   func() time.Time
}

// Option configures a Rasterizer.
type Option func(*Rasterizer)

// WithCache substitutes the raster cache. Hosts running several
// rasterizers can share one cache by passing the same instance to
// each; nil keeps the default.
func WithCache(c *rastercache.Cache) Option {
	return func(r *Rasterizer) {
		if c != nil {
			r.cache = c
		}
	}
}

// WithClock substitutes the time source behind frame timing logs.
func WithClock(clock func() time.Time) Option {
	return func(r *Rasterizer) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// NewRasterizer creates a rasterizer presenting to surf.
func NewRasterizer(surf surface.Surface, opts ...Option) (*Rasterizer, error) {
	if surf == nil {
		return nil, ErrNilSurface
	}
	r := &Rasterizer{
		surface: surf,
		cache:   rastercache.New(),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Surface returns the surface frames are presented to.
func (r *Rasterizer) Surface() surface.Surface { return r.surface }

// Cache returns the raster cache.
func (r *Rasterizer) Cache() *rastercache.Cache { return r.cache }

// Stats returns the raster cache's statistics.
func (r *Rasterizer) Stats() rastercache.Stats { return r.cache.Stats() }

// Draw renders one frame of tree and presents it.
//
// The frame runs preroll, paint, cache sweep and present in order. A
// paint error abandons the frame: the error is returned, nothing is
// presented, and the cache skips its sweep so the abandoned frame's
// bookkeeping ages out instead of evicting entries a committed frame
// still wants.
func (r *Rasterizer) Draw(tree *scene.LayerTree) error {
	if tree == nil {
		return ErrNilTree
	}
	start := r.clock()

	dpr := r.surface.DevicePixelRatio()
	if r.canvas != nil && !r.canvas.IsReusable(dpr) {
		logging.Get().Info("device pixel ratio changed",
			slog.Float64("from", r.canvas.Raster().DevicePixelRatio()),
			slog.Float64("to", dpr))
		r.canvas = nil
		r.cache.Clear()
	}
	if r.canvas == nil || r.canvas.Size() != tree.Size() {
		r.canvas = bitmap.NewCanvas(bitmap.NewRaster(tree.Size(), dpr))
	}

	r.cache.BeginFrame()
	tree.Preroll(&scene.PrerollContext{Cache: r.cache})

	r.canvas.Reset()
	if err := r.canvas.Clear(strata.Color{}); err != nil {
		return err
	}
	err := tree.Paint(&scene.PaintContext{
		Canvas:    r.canvas,
		Cache:     r.cache,
		Rasterize: r.rasterizePicture,
	})
	if err != nil {
		logging.Get().Warn("frame abandoned", slog.Any("error", err))
		return err
	}

	r.cache.Sweep()
	if err := r.surface.Present(r.canvas.Raster().Image()); err != nil {
		return err
	}
	logging.Get().Debug("frame presented",
		slog.Duration("elapsed", r.clock().Sub(start)),
		slog.Float64("ratio", dpr))
	return nil
}

// CompositeFrame finalizes the builder's tree at the given logical
// size and draws it. The builder resets and can begin the next frame
// immediately.
func (r *Rasterizer) CompositeFrame(b *scene.Builder, size strata.Size) error {
	if b == nil {
		return ErrNilBuilder
	}
	return r.Draw(b.Build(size))
}

// rasterizePicture renders a picture at the given logical transform
// into a standalone raster for the cache. The output covers the
// picture's device-space bounds at the frame's pixel ratio; placement
// rides along in the CachedRaster so paint can composite it back under
// an identity transform.
func (r *Rasterizer) rasterizePicture(pic *picture.Picture, m strata.Matrix) (*rastercache.CachedRaster, error) {
	dpr := r.canvas.Raster().DevicePixelRatio()
	deviceI := m.MapRect(pic.Bounds()).Scale(dpr).RoundOut()
	if deviceI.Empty() {
		return nil, fmt.Errorf("render: picture %d covers no device pixels", pic.ID())
	}
	device := strata.RectLTRB(
		float64(deviceI.Min.X), float64(deviceI.Min.Y),
		float64(deviceI.Max.X), float64(deviceI.Max.Y),
	)

	// The scratch raster carries ratio 1 with the real ratio folded
	// into the transform, so its pixel grid is exactly the device
	// region.
	raster := bitmap.NewRaster(device.Size(), 1)
	c := bitmap.NewCanvas(raster)
	c.SetTransform(strata.MatrixTranslate2D(-device.MinX, -device.MinY).
		Mul(strata.MatrixScale2D(dpr, dpr)).
		Mul(m))
	if err := pic.Playback(c); err != nil {
		return nil, err
	}
	return rastercache.NewCachedRaster(raster.Image(), device, dpr), nil
}

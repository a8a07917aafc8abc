// Package strata is a compositor layer tree with raster caching.
//
// # Overview
//
// strata retains a frame as a tree of layers (clips, transforms,
// opacity, physical shapes, picture leaves) and renders it in two
// passes: preroll walks the tree bottom-up computing paint bounds and
// registering cache candidates, paint walks top-down replaying content
// onto a canvas. Pictures that are expensive or repeat with a stable
// transform are rasterized once and reused from the raster cache on
// later frames.
//
// # Quick Start
//
//	import (
//	    "github.com/strata-gl/strata"
//	    "github.com/strata-gl/strata/picture"
//	    "github.com/strata-gl/strata/render"
//	    "github.com/strata-gl/strata/scene"
//	    "github.com/strata-gl/strata/surface"
//	)
//
//	// Record a picture
//	rec := picture.NewRecorder(strata.RectXYWH(0, 0, 200, 200))
//	c := rec.Canvas()
//	c.DrawRect(strata.RectXYWH(20, 20, 160, 160), strata.NewPaint())
//	pic := rec.Finish()
//
//	// Build a layer tree and draw it
//	b := scene.NewBuilder()
//	b.PushTransform(strata.MatrixTranslate2D(10, 10))
//	b.AddPicture(pic, strata.Point{}, false, false)
//	b.Pop()
//	tree := b.Build(strata.Size{Width: 400, Height: 300})
//
//	surf := surface.NewImageSurface(strata.Size{Width: 400, Height: 300}, 1)
//	r, err := render.NewRasterizer(surf)
//	if err != nil {
//	    // ...
//	}
//	if err := r.Draw(tree); err != nil {
//	    // frame abandoned, caches untouched
//	}
//
// # Packages
//
//   - strata: geometry, paint, path, the Canvas interface and the save
//     stack both backends share
//   - picture: display-list recording and replay
//   - scene: layer variants, the preroll and paint passes, Builder
//   - rastercache: picture raster cache keyed by content and transform
//   - ruler: text measurement with a bounded result cache
//   - backend/bitmap, backend/dom: the two canvas implementations
//   - surface, render: presentation targets and the frame driver
//
// # Coordinate System
//
// Origin at top-left, X right, Y down, angles in radians. Logical
// pixels scale to device pixels by the surface's device pixel ratio.
//
// # Concurrency
//
// The frame pipeline is single-threaded: one goroutine owns preroll,
// paint and the caches. SetLogger is the only API safe to call
// concurrently with a frame.
package strata

// Copyright 2026 The strata Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render drives complete frames from a layer tree to a surface.
//
// A Rasterizer owns what a frame pipeline keeps between frames: the
// surface frames are presented to, the raster cache, and the bitmap
// canvas pictures rasterize into. Draw runs one frame end to end:
//
//  1. Read the surface's device pixel ratio. A canvas allocated at
//     another ratio is dropped and the raster cache cleared, since
//     cached pixels are only valid at the resolution they were
//     produced under.
//  2. Allocate or reuse a bitmap canvas at the tree's logical size.
//  3. Stamp a new cache frame, preroll the tree to compute paint
//     bounds and register cache candidates, then clear and paint.
//  4. A paint error abandons the frame: nothing is presented and the
//     cache skips its end-of-frame sweep, so the frame's partial
//     bookkeeping ages out on later committed frames.
//  5. On success, sweep stale cache entries and present the raster.
//
// DrawToDOM is the structural counterpart: the same tree replays onto
// a backend/dom canvas, producing a node tree instead of pixels.
//
// # Thread safety
//
// A Rasterizer is single-goroutine, like the surface and canvases it
// drives. Only the cache statistics behind Stats may be read from
// other goroutines.
package render

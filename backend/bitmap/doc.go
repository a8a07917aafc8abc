// Package bitmap renders canvas operations into an in-memory pixel
// buffer.
//
// Shape coverage comes from golang.org/x/image/vector, compositing and
// image sampling from golang.org/x/image/draw, and glyph rendering
// from golang.org/x/image/font. Canvas transforms stay in logical
// coordinates; the surface's device pixel ratio folds in only when
// geometry reaches the rasterizer, so a transform read back from the
// canvas never depends on resolution.
//
// Every canvas primitive is supported. Operations the structural DOM
// backend rejects, arbitrary path clips and donut fills among them,
// rasterize here like any other shape.
package bitmap

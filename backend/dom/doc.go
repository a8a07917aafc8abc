// Package dom builds a structural node tree from canvas operations
// instead of rasterizing them.
//
// The tree mirrors what a browser compositor would receive: styled
// block nodes for rectangles, text nodes for paragraphs, group nodes
// for clips and transforms. It is a structural representation for
// embedding and inspection, not a pixel-accurate stylesheet; each
// drawn node carries its own local geometry and the transform that was
// current when it was drawn.
//
// Only primitives with a structural equivalent are supported. The rest,
// path clips, path fills, donut fills, shadows that must show through
// their occluder, return *strata.UnsupportedOpError so that routing
// them here is caught as a bug in layer assignment rather than painted
// wrong silently.
package dom

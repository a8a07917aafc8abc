// Package scene implements the compositor layer tree.
//
// A tree of layers describes one frame: containers group children,
// clip and transform layers scope canvas state, and picture leaves
// carry recorded drawing commands. Each frame runs two passes. Preroll
// walks bottom-up, computing every layer's paint bounds and
// registering picture leaves with the raster cache. Paint walks
// top-down, applying clips and transforms through the canvas save
// stack and drawing pictures either from cache or by vector replay.
//
// Trees are built fresh each frame, usually through a Builder, and are
// not mutated after preroll. Layer bounds are only meaningful after
// the current frame's preroll has completed.
package scene

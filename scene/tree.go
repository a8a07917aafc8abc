package scene

import (
	"errors"

	"github.com/strata-gl/strata"
)

// ErrPaintBeforePreroll reports a tree painted without a completed
// preroll. Bounds and cache registration would be stale or absent, so
// the paint pass refuses to run.
var ErrPaintBeforePreroll = errors.New("scene: tree painted before preroll")

// LayerTree is one frame's compositor input: a root layer and the
// logical size of the frame it describes. Trees are built fresh per
// frame and never mutated between preroll and paint.
type LayerTree struct {
	root      Layer
	size      strata.Size
	prerolled bool
}

// NewLayerTree wraps a root layer for a frame of the given size. A nil
// root yields an empty tree that prerolls to empty bounds.
func NewLayerTree(root Layer, size strata.Size) *LayerTree {
	if root == nil {
		root = NewContainerLayer()
	}
	return &LayerTree{root: root, size: size}
}

// Root returns the root layer.
func (t *LayerTree) Root() Layer { return t.root }

// Size returns the frame's logical size.
func (t *LayerTree) Size() strata.Size { return t.size }

// PaintBounds returns the root layer's bounds. Valid only after
// Preroll.
func (t *LayerTree) PaintBounds() strata.Rect {
	return t.root.PaintBounds()
}

// Preroll runs the bounds pass from the identity transform. A nil
// context is treated as caching disabled.
func (t *LayerTree) Preroll(ctx *PrerollContext) {
	if ctx == nil {
		ctx = &PrerollContext{}
	}
	t.root.preroll(ctx, strata.MatrixIdentity())
	t.prerolled = true
}

// Paint runs the paint pass. It requires a completed Preroll and skips
// entirely when the tree has nothing to draw. The first traversal
// error aborts the pass; the canvas may hold a partial frame, but the
// raster cache stays consistent because population happens only after
// a picture's own replay succeeded.
func (t *LayerTree) Paint(ctx *PaintContext) error {
	if !t.prerolled {
		return ErrPaintBeforePreroll
	}
	if !t.root.NeedsPainting() {
		return nil
	}
	return t.root.paint(ctx)
}

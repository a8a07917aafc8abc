package scene

import (
	"github.com/strata-gl/strata"
)

// Layer is one node of the compositor tree. The variant set is closed:
// both traversal passes dispatch through unexported methods, so new
// variants can only be added inside this package where both passes can
// be taught about them.
//
// PaintBounds is expressed in the layer's parent coordinate space and
// is valid only after the current frame's preroll. NeedsPainting is
// derived from it; callers skip layers that report false.
type Layer interface {
	// preroll computes paint bounds bottom-up. m is the transform
	// accumulated from the root, used to key raster-cache candidates.
	preroll(ctx *PrerollContext, m strata.Matrix)

	// paint draws the layer. Precondition: NeedsPainting is true and
	// preroll ran this frame. The first error aborts the traversal.
	paint(ctx *PaintContext) error

	// PaintBounds returns the rectangle the layer may draw into,
	// in its parent's coordinate space.
	PaintBounds() strata.Rect

	// NeedsPainting reports whether the layer has anything to draw.
	NeedsPainting() bool
}

// ContainerLayer groups an ordered sequence of children. Insertion
// order is paint order, back to front. It is also the base other
// grouping variants embed for child bookkeeping.
type ContainerLayer struct {
	children []Layer
	bounds   strata.Rect
}

var _ Layer = (*ContainerLayer)(nil)

// NewContainerLayer creates an empty container.
func NewContainerLayer() *ContainerLayer {
	return &ContainerLayer{}
}

// Add appends a child. Children must not be added after the tree has
// been prerolled; bounds from a previous preroll go stale silently.
func (l *ContainerLayer) Add(child Layer) {
	if child == nil {
		return
	}
	l.children = append(l.children, child)
}

// Children returns the child layers in paint order.
func (l *ContainerLayer) Children() []Layer {
	return l.children
}

// PaintBounds returns the rectangle the layer may draw into, in its
// parent's coordinate space.
func (l *ContainerLayer) PaintBounds() strata.Rect {
	return l.bounds
}

// NeedsPainting reports whether the layer has anything to draw.
func (l *ContainerLayer) NeedsPainting() bool {
	return !l.bounds.IsEmpty()
}

func (l *ContainerLayer) preroll(ctx *PrerollContext, m strata.Matrix) {
	l.bounds = l.prerollChildren(ctx, m)
}

// prerollChildren prerolls every child under the given accumulated
// transform and returns the union of their bounds. Empty children
// contribute nothing; an all-empty child set unions to empty.
func (l *ContainerLayer) prerollChildren(ctx *PrerollContext, m strata.Matrix) strata.Rect {
	var union strata.Rect
	for _, child := range l.children {
		child.preroll(ctx, m)
		union = union.Union(child.PaintBounds())
	}
	return union
}

func (l *ContainerLayer) paint(ctx *PaintContext) error {
	return l.paintChildren(ctx)
}

// paintChildren paints children back to front, skipping those with
// nothing to draw. The first failure aborts the rest of the pass.
func (l *ContainerLayer) paintChildren(ctx *PaintContext) error {
	for _, child := range l.children {
		if !child.NeedsPainting() {
			continue
		}
		if err := child.paint(ctx); err != nil {
			return err
		}
	}
	return nil
}

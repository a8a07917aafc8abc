package scene

import (
	"github.com/strata-gl/strata"
	"github.com/strata-gl/strata/picture"
)

// container is the subset of layers that can hold children: every
// grouping variant embeds ContainerLayer, so they all satisfy it.
type container interface {
	Layer
	Add(child Layer)
}

// Builder assembles one frame's layer tree with a push/pop API.
// Grouping layers opened by a Push call enclose everything added until
// the matching Pop. Leaves attach to the innermost open layer.
//
// Example:
//
//	b := scene.NewBuilder()
//	b.PushOffset(40, 40)
//	b.AddPicture(background, strata.Point{}, false, false)
//	b.PushClipRect(strata.RectXYWH(0, 0, 200, 200))
//	b.AddPicture(content, strata.Pt(10, 10), true, false)
//	b.Pop()
//	b.Pop()
//	tree := b.Build(strata.Size{Width: 800, Height: 600})
type Builder struct {
	root  *ContainerLayer
	stack []container
}

// NewBuilder creates a builder with an empty root container.
func NewBuilder() *Builder {
	root := NewContainerLayer()
	return &Builder{root: root, stack: []container{root}}
}

func (b *Builder) current() container {
	return b.stack[len(b.stack)-1]
}

func (b *Builder) push(l container) {
	b.current().Add(l)
	b.stack = append(b.stack, l)
}

// PushTransform opens a layer applying m to its children.
func (b *Builder) PushTransform(m strata.Matrix) *TransformLayer {
	l := NewTransformLayer(m)
	b.push(l)
	return l
}

// PushOffset opens a layer translating its children.
func (b *Builder) PushOffset(dx, dy float64) *TransformLayer {
	l := NewOffsetLayer(dx, dy)
	b.push(l)
	return l
}

// PushClipRect opens a layer clipping its children to r.
func (b *Builder) PushClipRect(r strata.Rect) *ClipRectLayer {
	l := NewClipRectLayer(r)
	b.push(l)
	return l
}

// PushClipRRect opens a layer clipping its children to rr.
func (b *Builder) PushClipRRect(rr strata.RRect) *ClipRRectLayer {
	l := NewClipRRectLayer(rr)
	b.push(l)
	return l
}

// PushClipPath opens a layer clipping its children to path.
func (b *Builder) PushClipPath(path *strata.Path) *ClipPathLayer {
	l := NewClipPathLayer(path)
	b.push(l)
	return l
}

// PushOpacity opens a layer painting its children at the given alpha,
// optionally offset.
func (b *Builder) PushOpacity(alpha uint8, offset strata.Point) *OpacityLayer {
	l := NewOpacityLayer(alpha, offset)
	b.push(l)
	return l
}

// PushPhysicalShape opens an elevated shape layer clipping its
// children to the shape outline.
func (b *Builder) PushPhysicalShape(path *strata.Path, elevation float64, fill, shadow strata.Color) *PhysicalShapeLayer {
	l := NewPhysicalShapeLayer(path, elevation, fill, shadow)
	b.push(l)
	return l
}

// AddPicture attaches a picture leaf to the innermost open layer. The
// hints feed raster-cache eligibility as described on NewPictureLayer.
func (b *Builder) AddPicture(pic *picture.Picture, offset strata.Point, isComplex, willChange bool) *PictureLayer {
	l := NewPictureLayer(pic, offset, isComplex, willChange)
	b.current().Add(l)
	return l
}

// Add attaches an already constructed layer to the innermost open
// layer, for callers composing subtrees by hand.
func (b *Builder) Add(l Layer) {
	b.current().Add(l)
}

// Pop closes the innermost open layer. Popping at the root is a no-op.
func (b *Builder) Pop() {
	if len(b.stack) > 1 {
		b.stack = b.stack[:len(b.stack)-1]
	}
}

// Depth returns how many layers are open, 1 when only the root is.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Build finalizes the tree for a frame of the given logical size. Open
// layers are implicitly closed. The builder can be reused afterwards;
// it starts over with a fresh root.
func (b *Builder) Build(size strata.Size) *LayerTree {
	tree := NewLayerTree(b.root, size)
	b.root = NewContainerLayer()
	b.stack = append(b.stack[:0], b.root)
	return tree
}

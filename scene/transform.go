package scene

import (
	"github.com/strata-gl/strata"
)

// TransformLayer applies a transform to everything below it.
type TransformLayer struct {
	ContainerLayer
	transform strata.Matrix
}

var _ Layer = (*TransformLayer)(nil)

// NewTransformLayer creates a layer applying m to its children.
func NewTransformLayer(m strata.Matrix) *TransformLayer {
	return &TransformLayer{transform: m}
}

// NewOffsetLayer creates a layer translating its children, the common
// positioning case of a transform layer.
func NewOffsetLayer(dx, dy float64) *TransformLayer {
	return &TransformLayer{transform: strata.MatrixTranslate2D(dx, dy)}
}

// Transform returns the layer's transform.
func (l *TransformLayer) Transform() strata.Matrix {
	return l.transform
}

func (l *TransformLayer) preroll(ctx *PrerollContext, m strata.Matrix) {
	child := m.Mul(l.transform)
	// Projecting the child union's corners handles rotation at the cost
	// of over-approximating bounds for rotated content.
	l.bounds = l.transform.MapRect(l.prerollChildren(ctx, child))
}

func (l *TransformLayer) paint(ctx *PaintContext) error {
	c := ctx.Canvas
	c.Save()
	c.Concat(l.transform)
	err := l.paintChildren(ctx)
	if rerr := c.Restore(); err == nil {
		err = rerr
	}
	return err
}

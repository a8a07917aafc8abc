package scene

import (
	"github.com/strata-gl/strata"
)

// PhysicalShapeLayer draws an elevated, colored shape casting a
// shadow, and clips its children to the shape's outline.
type PhysicalShapeLayer struct {
	ContainerLayer
	path        *strata.Path
	elevation   float64
	color       strata.Color
	shadowColor strata.Color
}

var _ Layer = (*PhysicalShapeLayer)(nil)

// NewPhysicalShapeLayer creates a shape layer. The path is cloned.
// A translucent fill color forces the slow, explicitly blurred shadow
// at paint time, since a silhouette shadow would show through it.
func NewPhysicalShapeLayer(path *strata.Path, elevation float64, fill, shadow strata.Color) *PhysicalShapeLayer {
	return &PhysicalShapeLayer{
		path:        path.Clone(),
		elevation:   elevation,
		color:       fill,
		shadowColor: shadow,
	}
}

// Elevation returns the height the shape floats at.
func (l *PhysicalShapeLayer) Elevation() float64 { return l.elevation }

// Shape returns the outline path.
func (l *PhysicalShapeLayer) Shape() *strata.Path { return l.path }

func (l *PhysicalShapeLayer) preroll(ctx *PrerollContext, m strata.Matrix) {
	// Children are clipped to the shape, so only the shadow can extend
	// the layer's own footprint.
	l.prerollChildren(ctx, m)
	l.bounds = strata.ShadowBounds(l.path.Bounds(), l.elevation)
}

func (l *PhysicalShapeLayer) paint(ctx *PaintContext) error {
	c := ctx.Canvas
	if l.elevation > 0 {
		transparent := !l.color.IsOpaque()
		if err := c.DrawShadow(l.path, l.shadowColor, l.elevation, transparent); err != nil {
			return err
		}
	}

	fill := strata.NewPaint()
	fill.Color = l.color
	if err := c.DrawPath(l.path, fill); err != nil {
		return err
	}

	c.Save()
	err := c.ClipPath(l.path)
	if err == nil {
		err = l.paintChildren(ctx)
	}
	if rerr := c.Restore(); err == nil {
		err = rerr
	}
	return err
}

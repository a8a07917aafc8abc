package strata

// LineCap is the shape a stroke ends with.
type LineCap int

const (
	// LineCapButt cuts the stroke flat at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound caps the stroke with a half disc.
	LineCapRound
	// LineCapSquare extends the stroke by half its width.
	LineCapSquare
)

// String returns the name of the line cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "Butt"
	case LineCapRound:
		return "Round"
	case LineCapSquare:
		return "Square"
	default:
		return "Unknown"
	}
}

// LineJoin is the shape where two stroke segments meet.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges to a sharp corner,
	// subject to the paint's miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound rounds the corner with an arc.
	LineJoinRound
	// LineJoinBevel cuts the corner with a straight edge.
	LineJoinBevel
)

// PaintStyle selects between filling and stroking.
type PaintStyle int

const (
	// PaintFill fills the interior of the shape.
	PaintFill PaintStyle = iota
	// PaintStroke strokes the outline of the shape.
	PaintStroke
)

// BlendMode specifies how source pixels combine with the destination.
// Backends may reject modes they cannot express.
type BlendMode int

const (
	// BlendSrcOver composites the source over the destination (default).
	BlendSrcOver BlendMode = iota
	// BlendSrc replaces the destination with the source.
	BlendSrc
	// BlendClear sets the destination to transparent.
	BlendClear
	// BlendDstOver composites the source under the destination.
	BlendDstOver
	// BlendMultiply multiplies source and destination channels.
	BlendMultiply
)

// String returns the name of the blend mode.
func (b BlendMode) String() string {
	switch b {
	case BlendSrcOver:
		return "SrcOver"
	case BlendSrc:
		return "Src"
	case BlendClear:
		return "Clear"
	case BlendDstOver:
		return "DstOver"
	case BlendMultiply:
		return "Multiply"
	default:
		return "Unknown"
	}
}

// Paint carries the styling for a draw call. Paints are recorded by
// value into pictures, so mutating one after a draw call never changes
// what was already recorded.
type Paint struct {
	// Color is the fill or stroke color.
	Color Color

	// Style selects filling or stroking.
	Style PaintStyle

	// LineWidth is the width of strokes.
	LineWidth float64

	// LineCap is the shape of line endpoints.
	LineCap LineCap

	// LineJoin is the shape of line joins.
	LineJoin LineJoin

	// MiterLimit is the miter limit for sharp joins.
	MiterLimit float64

	// BlendMode combines source pixels with the destination.
	BlendMode BlendMode

	// AntiAlias enables edge anti-aliasing.
	AntiAlias bool

	// MaskBlur, when positive, blurs the coverage mask with the given
	// sigma before compositing. The shadow path for transparent
	// occluders draws through this.
	MaskBlur float64
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	return &Paint{
		Color:      Black,
		Style:      PaintFill,
		LineWidth:  1.0,
		LineCap:    LineCapButt,
		LineJoin:   LineJoinMiter,
		MiterLimit: 10.0,
		BlendMode:  BlendSrcOver,
		AntiAlias:  true,
	}
}

// Clone returns a copy of the paint. Nil-safe: cloning nil yields the
// default paint.
func (p *Paint) Clone() *Paint {
	if p == nil {
		return NewPaint()
	}
	out := *p
	return &out
}

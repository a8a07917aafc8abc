package ruler

import "math"

// Unconstrained is the width constraint meaning "no wrapping".
func Unconstrained() Constraints {
	return Constraints{Width: math.Inf(1)}
}

// Constraints is the width a paragraph must fit into. The value is part
// of the measurement cache key and matches exactly: measuring at 200 and
// at 200.5 are distinct entries.
type Constraints struct {
	Width float64
}

// NewConstraints normalizes a width into a Constraints value.
// Non-positive and NaN widths mean unconstrained.
func NewConstraints(width float64) Constraints {
	if width <= 0 || math.IsNaN(width) {
		return Unconstrained()
	}
	return Constraints{Width: width}
}

// IsInfinite reports whether the constraint imposes no wrapping.
func (c Constraints) IsInfinite() bool {
	return math.IsInf(c.Width, 1)
}

// Direction is the resolved base direction of a paragraph.
type Direction uint8

const (
	// DirectionLTR lays lines out left to right.
	DirectionLTR Direction = iota
	// DirectionRTL lays lines out right to left.
	DirectionRTL
)

// String returns the name of the direction.
func (d Direction) String() string {
	if d == DirectionRTL {
		return "RTL"
	}
	return "LTR"
}

// LineMetrics describes one laid-out line.
type LineMetrics struct {
	// Text is the line's content with any trailing break character
	// removed.
	Text string

	// Start and End are rune offsets of the line within the source
	// text.
	Start, End int

	// X is the left edge of the line box relative to the paragraph.
	// Right-to-left paragraphs push short lines toward the right edge.
	X float64

	// Baseline is the distance from the paragraph top to the line's
	// alphabetic baseline.
	Baseline float64

	// Width is the advance width of the visible content, trailing
	// whitespace excluded.
	Width float64

	// Hard reports whether the line ends at an explicit newline rather
	// than a wrap.
	Hard bool
}

// Metrics is the complete result of measuring one text under one
// constraint. Metrics values are immutable once cached; callers must
// not mutate them.
type Metrics struct {
	// Width is the tight width of the laid-out text.
	Width float64

	// Height is the sum of the line heights of all laid-out lines.
	Height float64

	// LineHeight is the height of a single line under the style.
	LineHeight float64

	// MinIntrinsicWidth is the narrowest width that avoids breaking
	// inside an unbreakable run.
	MinIntrinsicWidth float64

	// MaxIntrinsicWidth is the width the text occupies with wrapping
	// disabled.
	MaxIntrinsicWidth float64

	// AlphabeticBaseline is the distance from the top to the first
	// line's alphabetic baseline.
	AlphabeticBaseline float64

	// IdeographicBaseline approximates the ideographic baseline as the
	// bottom of the em box (ascent plus descent).
	IdeographicBaseline float64

	// IsSingleLine reports whether the text laid out as exactly one
	// line.
	IsSingleLine bool

	// Direction is the paragraph's resolved base direction.
	Direction Direction

	// Lines holds per-line placement, in visual order top to bottom.
	Lines []LineMetrics
}

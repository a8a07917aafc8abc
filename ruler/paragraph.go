package ruler

import (
	"image/color"
	"strings"
)

// Paragraph is a laid-out block of styled text. Build one with a
// ParagraphBuilder, call Layout with the width constraint, then hand it
// to a canvas for drawing or read its metrics.
type Paragraph struct {
	text        string
	style       Style
	color       color.NRGBA
	metrics     *Metrics
	source      *FontSource
	constraints Constraints
	laidOut     bool
}

// ParagraphBuilder accumulates text for a single-style paragraph.
type ParagraphBuilder struct {
	style Style
	color color.NRGBA
	text  strings.Builder
}

// NewParagraphBuilder returns a builder for paragraphs in style. Text
// draws opaque black unless SetColor changes it.
func NewParagraphBuilder(style Style) *ParagraphBuilder {
	return &ParagraphBuilder{style: style.normalized(), color: color.NRGBA{A: 0xff}}
}

// AddText appends text to the paragraph.
func (b *ParagraphBuilder) AddText(s string) {
	b.text.WriteString(s)
}

// SetColor sets the color the paragraph's text draws with. Color never
// affects measurement, so it lives outside Style and identical text in
// different colors shares one measurement.
func (b *ParagraphBuilder) SetColor(c color.NRGBA) {
	b.color = c
}

// Build returns the paragraph. The paragraph still needs Layout before
// it can be measured or drawn.
func (b *ParagraphBuilder) Build() *Paragraph {
	return &Paragraph{style: b.style, color: b.color, text: b.text.String()}
}

// Layout measures the paragraph under the constraints using the
// manager's rulers. Calling Layout again with the same constraints is
// a cheap no-op; a different constraint re-measures (typically a cache
// hit on the ruler).
func (p *Paragraph) Layout(m *Manager, c Constraints) error {
	if p.laidOut && p.constraints == c {
		return nil
	}
	r, err := m.RulerFor(p.style)
	if err != nil {
		return err
	}
	metrics, err := r.Measure(p.text, c)
	if err != nil {
		return err
	}
	p.metrics = metrics
	p.source = r.Source()
	p.constraints = c
	p.laidOut = true
	return nil
}

// Text returns the paragraph's full text.
func (p *Paragraph) Text() string { return p.text }

// Style returns the paragraph's style.
func (p *Paragraph) Style() Style { return p.style }

// Color returns the text draw color.
func (p *Paragraph) Color() color.NRGBA { return p.color }

// LaidOut reports whether Layout has completed.
func (p *Paragraph) LaidOut() bool { return p.laidOut }

// Constraints returns the constraints of the last Layout call.
func (p *Paragraph) Constraints() Constraints { return p.constraints }

// Metrics returns the measured metrics.
func (p *Paragraph) Metrics() (*Metrics, error) {
	if !p.laidOut {
		return nil, ErrNotLaidOut
	}
	return p.metrics, nil
}

// Source returns the font the paragraph was measured with.
func (p *Paragraph) Source() (*FontSource, error) {
	if !p.laidOut {
		return nil, ErrNotLaidOut
	}
	return p.source, nil
}

// Lines returns the laid-out lines, or nil before Layout.
func (p *Paragraph) Lines() []LineMetrics {
	if !p.laidOut {
		return nil
	}
	return p.metrics.Lines
}

// Width returns the tight width of the laid-out text, 0 before Layout.
func (p *Paragraph) Width() float64 {
	if !p.laidOut {
		return 0
	}
	return p.metrics.Width
}

// Height returns the laid-out height, 0 before Layout.
func (p *Paragraph) Height() float64 {
	if !p.laidOut {
		return 0
	}
	return p.metrics.Height
}

// Direction returns the detected base direction, DirectionLTR before
// Layout.
func (p *Paragraph) Direction() Direction {
	if !p.laidOut {
		return DirectionLTR
	}
	return p.metrics.Direction
}

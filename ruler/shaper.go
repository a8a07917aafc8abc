package ruler

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotextfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// shaper wraps go-text/typesetting's HarfBuzz port. HarfbuzzShaper
// instances keep internal buffers and are not safe for concurrent use,
// so they are pooled and checked out per shaping call.
type shaper struct {
	pool sync.Pool
}

func newShaper() *shaper {
	return &shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// session is one batched measurement pass over a single text. It holds
// the per-cycle font face (font.Face is not safe for concurrent use,
// but one measurement cycle runs on one goroutine) so that repeated
// sub-range measurements reuse the face's glyph caches.
type session struct {
	shaper *shaper
	face   *gotextfont.Face
	runes  []rune
	style  Style
	dir    di.Direction
}

// newSession prepares a shaping session for the whole text.
func (s *shaper) newSession(src *FontSource, runes []rune, style Style, dir Direction) *session {
	d := di.DirectionLTR
	if dir == DirectionRTL {
		d = di.DirectionRTL
	}
	return &session{
		shaper: s,
		face:   gotextfont.NewFace(src.shaped),
		runes:  runes,
		style:  style,
		dir:    d,
	}
}

// width shapes the rune range [start, end) and returns its advance
// width in pixels, with letter and word spacing applied.
func (ss *session) width(start, end int) float64 {
	if start >= end {
		return 0
	}
	input := shaping.Input{
		Text:      ss.runes,
		RunStart:  start,
		RunEnd:    end,
		Direction: ss.dir,
		Face:      ss.face,
		Size:      floatToFixed(ss.style.FontSize),
		Script:    detectScript(ss.runes[start:end]),
		Language:  language.NewLanguage("en"),
	}

	hb := ss.shaper.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	ss.shaper.pool.Put(hb)

	w := 0.0
	for _, g := range out.Glyphs {
		w += fixedToFloat(g.Advance)
	}
	if ss.style.LetterSpacing != 0 && len(out.Glyphs) > 1 {
		w += ss.style.LetterSpacing * float64(len(out.Glyphs)-1)
	}
	if ss.style.WordSpacing != 0 {
		for _, r := range ss.runes[start:end] {
			if r == ' ' {
				w += ss.style.WordSpacing
			}
		}
	}
	return w
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script text measures under the first
// script's rules; measurement does not split runs.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// detectBaseDirection resolves the paragraph base direction from the
// first strong run.
func detectBaseDirection(text string) Direction {
	if text == "" {
		return DirectionLTR
	}
	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}

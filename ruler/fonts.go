package ruler

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"

	gotextfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/strata-gl/strata/internal/logging"
)

// FontSource is a registered font usable for both shaping and
// rasterization. The typesetting font drives width measurement, the
// sfnt font supplies vertical metrics and gives raster backends an
// x/image face to draw with.
type FontSource struct {
	family string
	data   []byte
	shaped *gotextfont.Font
	raster *opentype.Font
}

// Family returns the family name the source was registered under.
func (s *FontSource) Family() string { return s.family }

// Data returns the raw font bytes. Callers must not mutate the slice.
func (s *FontSource) Data() []byte { return s.data }

// ShapedFont returns the parsed typesetting font. The value is
// read-only and safe for concurrent use.
func (s *FontSource) ShapedFont() *gotextfont.Font { return s.shaped }

// RasterFont returns the parsed x/image font for glyph rasterization.
func (s *FontSource) RasterFont() *opentype.Font { return s.raster }

// lineMetrics returns ascent, descent (both positive) and line gap in
// pixels at the given size.
func (s *FontSource) lineMetrics(size float64) (ascent, descent, gap float64) {
	var buf sfnt.Buffer
	m, err := s.raster.Metrics(&buf, fixed.Int26_6(size*64), font.HintingFull)
	if err != nil {
		// Degenerate fonts still need plausible boxes.
		return size * 0.8, size * 0.2, 0
	}
	ascent = fixedToFloat(m.Ascent)
	descent = fixedToFloat(m.Descent)
	gap = fixedToFloat(m.Height) - ascent - descent
	if gap < 0 {
		gap = 0
	}
	return ascent, descent, gap
}

// FontRegistry holds the fonts available for measurement, keyed by
// family name. Registering a font bumps the registry generation and
// notifies listeners; the Manager listens and throws away every cached
// measurement, since any of them may have resolved through fallback
// that the new font changes.
type FontRegistry struct {
	mu            sync.RWMutex
	families      map[string]*FontSource
	defaultFamily string
	generation    uint64
	onChange      []func()
}

// NewFontRegistry creates an empty registry.
func NewFontRegistry() *FontRegistry {
	return &FontRegistry{families: make(map[string]*FontSource)}
}

// Register parses and stores a font under the given family name. The
// first registered family becomes the default. Registering an existing
// family replaces it. The change notification fires after the registry
// is updated, typically the completion path of an asynchronous font
// load.
func (r *FontRegistry) Register(family string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}

	shapedFace, err := gotextfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("ruler: parse font %q for shaping: %w", family, err)
	}
	rasterFont, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("ruler: parse font %q: %w", family, err)
	}

	src := &FontSource{
		family: family,
		data:   data,
		shaped: shapedFace.Font,
		raster: rasterFont,
	}

	r.mu.Lock()
	r.families[family] = src
	if r.defaultFamily == "" {
		r.defaultFamily = family
	}
	r.generation++
	gen := r.generation
	listeners := make([]func(), len(r.onChange))
	copy(listeners, r.onChange)
	r.mu.Unlock()

	logging.Get().Info("font registered",
		slog.String("family", family),
		slog.Int("bytes", len(data)),
		slog.Uint64("generation", gen))

	for _, fn := range listeners {
		fn()
	}
	return nil
}

// Source resolves a family name to its font. The empty name selects the
// default family.
func (r *FontRegistry) Source(family string) (*FontSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.families) == 0 {
		return nil, ErrNoFonts
	}
	if family == "" {
		family = r.defaultFamily
	}
	src, ok := r.families[family]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
	return src, nil
}

// Generation returns a counter that increases every time a font is
// registered. Cached measurements are only valid for the generation
// they were taken in.
func (r *FontRegistry) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generation
}

// OnChange registers a callback invoked after every font registration.
func (r *FontRegistry) OnChange(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = append(r.onChange, fn)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// floatToFixed converts a float64 to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

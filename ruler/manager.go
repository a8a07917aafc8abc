package ruler

import (
	"log/slog"
	"sort"

	"github.com/strata-gl/strata/internal/logging"
)

// maxRulers bounds how many per-style rulers the manager keeps alive.
// When the cap is exceeded the least-used rulers are disposed and all
// hit counts reset, so usage is ranked per trim window rather than over
// the manager's whole lifetime.
const maxRulers = 10

// Manager hands out rulers by style and owns their lifecycle. All
// rulers share one shaper and one font registry. Registering a font on
// the registry invalidates every ruler the manager holds, since glyph
// coverage and fallback can change retroactively.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	registry *FontRegistry
	shaper   *shaper
	rulers   map[Style]*Ruler
	disposed bool
}

// NewManager creates a manager over the registry and subscribes to its
// font-change notifications.
func NewManager(registry *FontRegistry) *Manager {
	m := &Manager{
		registry: registry,
		shaper:   newShaper(),
		rulers:   make(map[Style]*Ruler),
	}
	registry.OnChange(m.InvalidateCaches)
	return m
}

// Registry returns the font registry the manager measures against.
func (m *Manager) Registry() *FontRegistry { return m.registry }

// RulerCount returns how many rulers are currently cached.
func (m *Manager) RulerCount() int { return len(m.rulers) }

// RulerFor returns the ruler for style, creating it on first use. The
// style is normalized first, so styles differing only in unset defaults
// share a ruler.
func (m *Manager) RulerFor(style Style) (*Ruler, error) {
	if m.disposed {
		return nil, ErrManagerDisposed
	}
	style = style.normalized()
	if r, ok := m.rulers[style]; ok {
		return r, nil
	}
	r, err := newRuler(style, m.registry, m.shaper)
	if err != nil {
		return nil, err
	}
	m.rulers[style] = r
	if len(m.rulers) > maxRulers {
		m.trim()
	}
	return r, nil
}

// MeasureText measures text in the given style, creating or reusing
// the matching ruler.
func (m *Manager) MeasureText(text string, style Style, c Constraints) (*Metrics, error) {
	r, err := m.RulerFor(style)
	if err != nil {
		return nil, err
	}
	return r.Measure(text, c)
}

// InvalidateCaches disposes every cached ruler. Measurements made
// before a font change may no longer be valid, so the whole set is
// dropped rather than guessing which styles a new font affects.
func (m *Manager) InvalidateCaches() {
	if m.disposed {
		return
	}
	for style, r := range m.rulers {
		if err := r.Dispose(); err != nil {
			logging.Get().Warn("ruler dropped while measuring", slog.Any("err", err))
		}
		delete(m.rulers, style)
	}
}

// Dispose releases the manager and all of its rulers. Further RulerFor
// calls fail with ErrManagerDisposed.
func (m *Manager) Dispose() {
	if m.disposed {
		return
	}
	m.InvalidateCaches()
	m.disposed = true
}

// trim disposes the least-used rulers down to the cap, then resets the
// hit counts of the survivors.
func (m *Manager) trim() {
	type entry struct {
		style Style
		r     *Ruler
	}
	all := make([]entry, 0, len(m.rulers))
	for s, r := range m.rulers {
		all = append(all, entry{s, r})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].r.HitCount() > all[j].r.HitCount()
	})
	for _, e := range all[maxRulers:] {
		if err := e.r.Dispose(); err != nil {
			logging.Get().Warn("ruler dropped while measuring", slog.Any("err", err))
		}
		delete(m.rulers, e.style)
	}
	for _, e := range all[:maxRulers] {
		e.r.resetHitCount()
	}
	logging.Get().Debug("ruler set trimmed",
		slog.Int("kept", maxRulers),
		slog.Int("dropped", len(all)-maxRulers))
}

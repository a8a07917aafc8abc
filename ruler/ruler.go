package ruler

// Ruler measures text under a single style. Rulers are created by the
// Manager and remember every measurement in a bounded cache keyed by
// the exact text and the exact width constraint.
//
// A ruler runs one measurement cycle at a time: WillMeasure opens the
// cycle, the shaping inputs are batched and read, DidMeasure closes it.
// Measure drives the cycle itself; the methods are exported so hosts
// that batch several measurements can manage the cycle explicitly.
type Ruler struct {
	style     Style
	registry  *FontRegistry
	source    *FontSource
	shaper    *shaper
	cache     *measureCache
	hitCount  int
	measuring bool
	disposed  bool
}

func newRuler(style Style, registry *FontRegistry, sh *shaper) (*Ruler, error) {
	src, err := registry.Source(style.FontFamily)
	if err != nil {
		return nil, err
	}
	return &Ruler{
		style:    style,
		registry: registry,
		source:   src,
		shaper:   sh,
		cache:    newMeasureCache(),
	}, nil
}

// Style returns the style the ruler is bound to.
func (r *Ruler) Style() Style { return r.style }

// Source returns the font the style resolved to.
func (r *Ruler) Source() *FontSource { return r.source }

// HitCount returns how many times this ruler has served a measurement
// since the count was last reset. The manager uses it to rank rulers
// for eviction.
func (r *Ruler) HitCount() int { return r.hitCount }

func (r *Ruler) resetHitCount() { r.hitCount = 0 }

// WillMeasure opens a measurement cycle. Only one cycle may be active
// at a time.
func (r *Ruler) WillMeasure() error {
	if r.disposed {
		return ErrRulerDisposed
	}
	if r.measuring {
		return ErrMeasurementInProgress
	}
	r.measuring = true
	return nil
}

// DidMeasure closes the active measurement cycle.
func (r *Ruler) DidMeasure() error {
	if !r.measuring {
		return ErrNoMeasurement
	}
	r.measuring = false
	return nil
}

// Measuring reports whether a measurement cycle is active.
func (r *Ruler) Measuring() bool { return r.measuring }

// Dispose releases the ruler. Disposing during an active measurement
// cycle is misuse: the error is returned and the ruler stays usable.
// Disposing twice is a no-op.
func (r *Ruler) Dispose() error {
	if r.measuring {
		return ErrDisposeDuringMeasurement
	}
	if r.disposed {
		return nil
	}
	r.disposed = true
	r.cache.clear()
	return nil
}

// Disposed reports whether Dispose has completed.
func (r *Ruler) Disposed() bool { return r.disposed }

// CacheLookup returns a previously measured result for the exact
// (text, constraint) pair without measuring.
func (r *Ruler) CacheLookup(text string, c Constraints) (*Metrics, bool) {
	if r.disposed {
		return nil, false
	}
	m, ok := r.cache.lookup(text, c.Width)
	if ok {
		r.hitCount++
	}
	return m, ok
}

// Measure returns the metrics of text under the constraint, from cache
// when possible. A miss runs one full measurement cycle and stores the
// result.
func (r *Ruler) Measure(text string, c Constraints) (*Metrics, error) {
	if r.disposed {
		return nil, ErrRulerDisposed
	}
	if m, ok := r.cache.lookup(text, c.Width); ok {
		r.hitCount++
		return m, nil
	}
	if err := r.WillMeasure(); err != nil {
		return nil, err
	}
	m := r.measure(text, c)
	if err := r.DidMeasure(); err != nil {
		return nil, err
	}
	r.cache.store(text, c.Width, m)
	r.hitCount++
	return m, nil
}

// measure runs the three layout passes for one text. All shaping
// inputs are prepared first (tokenization, the shaping session), then
// widths are read back, honoring the batched write-then-read contract
// of the measurement cycle.
func (r *Ruler) measure(text string, c Constraints) *Metrics {
	style := r.style
	dir := detectBaseDirection(text)
	ascent, descent, gap := r.source.lineMetrics(style.FontSize)
	lineHeight := ascent + descent + gap
	if style.LineHeight > 0 {
		lineHeight = style.LineHeight * style.FontSize
	}

	m := &Metrics{
		LineHeight:          lineHeight,
		AlphabeticBaseline:  ascent,
		IdeographicBaseline: ascent + descent,
		Direction:           dir,
	}

	runes := []rune(text)
	if len(runes) == 0 {
		m.IsSingleLine = true
		m.Height = lineHeight
		m.Lines = []LineMetrics{{Baseline: ascent}}
		return m
	}

	tokens := tokenize(runes)
	ss := r.shaper.newSession(r.source, runes, style, dir)

	widths := make([]float64, len(tokens))
	visibles := make([]float64, len(tokens))
	for i, t := range tokens {
		widths[i] = ss.width(t.start, t.end)
		if t.visibleEnd == t.end {
			visibles[i] = widths[i]
		} else {
			visibles[i] = ss.width(t.start, t.visibleEnd)
		}
		if visibles[i] > m.MinIntrinsicWidth {
			m.MinIntrinsicWidth = visibles[i]
		}
	}

	// Max intrinsic: the widest hard line with wrapping disabled.
	full := 0.0
	for i, t := range tokens {
		if t.hard {
			full = 0
			continue
		}
		if w := full + visibles[i]; w > m.MaxIntrinsicWidth {
			m.MaxIntrinsicWidth = w
		}
		full += widths[i]
	}

	maxWidth := c.Width
	if !c.IsInfinite() {
		tokens, widths, visibles = splitOversized(ss, tokens, widths, visibles, maxWidth)
	}

	lines := buildLines(tokens, widths, visibles, maxWidth)
	if style.MaxLines > 0 && len(lines) > style.MaxLines {
		lines = lines[:style.MaxLines]
	}

	layoutWidth := 0.0
	for _, ln := range lines {
		if ln.width > layoutWidth {
			layoutWidth = ln.width
		}
	}
	m.Width = layoutWidth
	m.Height = float64(len(lines)) * lineHeight
	m.IsSingleLine = len(lines) == 1

	alignBase := layoutWidth
	if !c.IsInfinite() {
		alignBase = maxWidth
	}
	m.Lines = make([]LineMetrics, len(lines))
	for i, ln := range lines {
		lm := LineMetrics{
			Text:     string(runes[ln.start:ln.visibleEnd]),
			Start:    ln.start,
			End:      ln.visibleEnd,
			Baseline: float64(i)*lineHeight + ascent,
			Width:    ln.width,
			Hard:     ln.hard,
		}
		if dir == DirectionRTL {
			lm.X = alignBase - ln.width
		}
		m.Lines[i] = lm
	}
	return m
}

// pendingLine is a line under construction during wrapping.
type pendingLine struct {
	start      int
	visibleEnd int
	width      float64
	hard       bool
}

// buildLines packs tokens greedily into lines no wider than maxWidth.
// Every token is assumed to fit on its own (splitOversized guarantees
// it under finite constraints); a line always takes at least one token
// so pathological constraints still terminate.
func buildLines(tokens []token, widths, visibles []float64, maxWidth float64) []pendingLine {
	var built []pendingLine
	cur := pendingLine{start: tokens[0].start, visibleEnd: tokens[0].start}
	full := 0.0
	count := 0
	for i, t := range tokens {
		if t.hard {
			cur.hard = true
			built = append(built, cur)
			cur = pendingLine{start: t.end, visibleEnd: t.end}
			full = 0
			count = 0
			continue
		}
		if count > 0 && full+visibles[i] > maxWidth {
			built = append(built, cur)
			cur = pendingLine{start: t.start, visibleEnd: t.start}
			full = 0
			count = 0
		}
		cur.width = full + visibles[i]
		cur.visibleEnd = t.visibleEnd
		full += widths[i]
		count++
	}
	return append(built, cur)
}

// splitOversized breaks tokens wider than the constraint into
// character-level segments so the greedy packer never has to overflow a
// multi-rune token. Cross-character kerning inside a split token is
// dropped; the fallback only triggers for words wider than the whole
// line.
func splitOversized(ss *session, tokens []token, widths, visibles []float64, maxWidth float64) ([]token, []float64, []float64) {
	outT := make([]token, 0, len(tokens))
	outW := make([]float64, 0, len(tokens))
	outV := make([]float64, 0, len(tokens))
	for i, t := range tokens {
		if t.hard || visibles[i] <= maxWidth || t.visibleEnd-t.start <= 1 {
			outT = append(outT, t)
			outW = append(outW, widths[i])
			outV = append(outV, visibles[i])
			continue
		}
		trailing := widths[i] - visibles[i]
		pos := t.start
		for pos < t.visibleEnd {
			end := pos
			w := 0.0
			for end < t.visibleEnd {
				cw := ss.width(end, end+1)
				if end > pos && w+cw > maxWidth {
					break
				}
				w += cw
				end++
			}
			seg := token{start: pos, end: end, visibleEnd: end}
			segW := w
			if end == t.visibleEnd {
				seg.end = t.end
				segW += trailing
			}
			outT = append(outT, seg)
			outW = append(outW, segW)
			outV = append(outV, w)
			pos = end
		}
	}
	return outT, outW, outV
}

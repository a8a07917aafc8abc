// Package ruler measures text and caches the results.
//
// Measuring text is one of the most expensive operations a frame can
// perform, so the package is built around reuse: a Ruler is bound to a
// single paragraph style and remembers every measurement it has done,
// keyed by the exact text and the exact width constraint. A Manager
// hands out rulers per style and bounds how many exist at once.
//
// The cache discipline follows fixed limits: at most 8 results are kept
// per distinct text (oldest evicted first), and a ruler tracks at most
// 2,400 distinct texts on a most-recently-used list, evicting the oldest
// 100 in one batch when the limit is exceeded.
//
// Measurement runs in an explicit cycle: WillMeasure begins a cycle,
// shaping inputs are batched, results are read back, and DidMeasure ends
// it. A ruler performs one cycle at a time; overlapping cycles and
// disposing mid-cycle are misuse and return errors.
//
// Shaping uses github.com/go-text/typesetting's HarfBuzz port for
// widths and golang.org/x/image/font/sfnt for vertical font metrics.
// Registering a font in the FontRegistry invalidates every measurement
// cache wholesale, since any cached layout may have depended on font
// fallback that the new font changes.
package ruler

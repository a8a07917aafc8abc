package ruler

// DefaultFontSize is used when a style leaves FontSize zero.
const DefaultFontSize = 14.0

// Style is the set of text properties that affect measurement. Two
// pieces of text measure identically whenever their styles compare
// equal, so Style is a plain comparable struct and keys the manager's
// ruler cache directly.
type Style struct {
	// FontFamily names a registered font. Empty selects the registry's
	// default family.
	FontFamily string

	// FontSize in logical pixels. Zero means DefaultFontSize.
	FontSize float64

	// Weight is the CSS-style weight (400 regular, 700 bold). Zero
	// means 400. Weight participates in cache identity even though the
	// measurement path does not synthesize bold.
	Weight int

	// Italic requests the slanted variant. Like Weight it is cache
	// identity only unless the registered font itself is italic.
	Italic bool

	// LetterSpacing is extra space in pixels added between glyphs.
	LetterSpacing float64

	// WordSpacing is extra space in pixels added at each space
	// character.
	WordSpacing float64

	// LineHeight is a multiplier on the font's natural line height.
	// Zero keeps the font default.
	LineHeight float64

	// MaxLines truncates measurement to the first n lines when
	// positive.
	MaxLines int
}

// normalized fills in defaulted fields so that styles differing only in
// how they spell a default share a ruler.
func (s Style) normalized() Style {
	if s.FontSize == 0 {
		s.FontSize = DefaultFontSize
	}
	if s.Weight == 0 {
		s.Weight = 400
	}
	return s
}

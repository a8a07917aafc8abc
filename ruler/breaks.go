package ruler

// token is an unbreakable run of text together with the trailing
// whitespace that attaches to it. Lines may end after any token;
// trailing whitespace never counts toward the visible line width.
type token struct {
	start      int  // first rune, inclusive
	end        int  // past the trailing whitespace, exclusive
	visibleEnd int  // past the visible content, exclusive
	hard       bool // token is an explicit newline
}

// tokenize splits runes into wrap tokens. Break opportunities open
// after whitespace, after hyphens, around CJK ideographs, and at
// newlines (which become their own hard tokens).
func tokenize(runes []rune) []token {
	var tokens []token
	i := 0
	n := len(runes)
	for i < n {
		start := i
		r := runes[i]

		if r == '\n' {
			tokens = append(tokens, token{start: start, end: i + 1, visibleEnd: i, hard: true})
			i++
			continue
		}

		if isBreakableSpace(r) {
			for i < n && isBreakableSpace(runes[i]) {
				i++
			}
			tokens = append(tokens, token{start: start, end: i, visibleEnd: start})
			continue
		}

		if isCJK(r) {
			// Each ideograph wraps independently.
			i++
			viz := i
			for i < n && isBreakableSpace(runes[i]) {
				i++
			}
			tokens = append(tokens, token{start: start, end: i, visibleEnd: viz})
			continue
		}

		// A word runs until whitespace, a newline, an ideograph, or
		// just past a hyphen.
		for i < n {
			r = runes[i]
			if isBreakableSpace(r) || r == '\n' || isCJK(r) {
				break
			}
			i++
			if r == '-' || r == '‐' {
				break
			}
		}
		viz := i
		for i < n && isBreakableSpace(runes[i]) {
			i++
		}
		tokens = append(tokens, token{start: start, end: i, visibleEnd: viz})
	}
	return tokens
}

func isBreakableSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// isCJK reports whether the rune is an ideograph that wraps on its own.
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // CJK Extension B
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xFF00 && r <= 0xFFEF) // Fullwidth forms
}

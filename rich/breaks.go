package rich

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// WordBreaker refines where a range is split across lines.
type WordBreaker interface {
	// Refine returns the split position to use in s given that at most
	// pos runes fit, 0 < pos < len(s). A result in [1, pos] moves the
	// split back to a better place; returning pos keeps the fitted
	// position.
	Refine(s []rune, pos int) int
}

// ASCIIWords keeps Latin-1 words whole and never starts a line with a
// space or punctuation. Other scripts may break between any two runes.
type ASCIIWords struct{}

func (ASCIIWords) Refine(s []rune, pos int) int {
	for i := pos; i >= 1; i-- {
		if isLatinLetter(s[i-1]) && isLatinLetter(s[i]) {
			continue
		}
		if unicode.IsSpace(s[i]) || isWordSeparator(s[i]) {
			continue
		}
		return i
	}
	return pos
}

func isLatinLetter(r rune) bool {
	return r < 0x100 && unicode.IsLetter(r)
}

// UnicodeWords breaks at UAX #29 word boundaries, falling back to
// grapheme cluster boundaries when a single word is wider than the line.
type UnicodeWords struct{}

func (UnicodeWords) Refine(s []rune, pos int) int {
	str := string(s)
	words := boundaries(str, uniseg.FirstWordInString)
	if i := lastGoodBreak(s, words, pos); i > 0 {
		return i
	}
	graphemes := boundaries(str, func(str string, state int) (string, string, int) {
		c, rest, _, st := uniseg.FirstGraphemeClusterInString(str, state)
		return c, rest, st
	})
	for i := len(graphemes) - 1; i >= 0; i-- {
		if b := graphemes[i]; b >= 1 && b <= pos {
			return b
		}
	}
	return pos
}

// boundaries returns the rune offsets at which segments of str end.
func boundaries(str string, next func(string, int) (string, string, int)) []int {
	var out []int
	off, state := 0, -1
	for len(str) > 0 {
		var seg string
		seg, str, state = next(str, state)
		off += len([]rune(seg))
		out = append(out, off)
	}
	return out
}

// lastGoodBreak returns the last boundary in [1, pos] that does not start
// the next line with a space or separator, or 0.
func lastGoodBreak(s []rune, bounds []int, pos int) int {
	for i := len(bounds) - 1; i >= 0; i-- {
		b := bounds[i]
		if b < 1 || b > pos || b >= len(s) {
			continue
		}
		if unicode.IsSpace(s[b]) || isWordSeparator(s[b]) {
			continue
		}
		return b
	}
	return 0
}

// isWordSeparator reports whether r is punctuation that should not
// start a line.
func isWordSeparator(r rune) bool {
	switch r {
	case '.', ',', '?', '!', '@', '#', '$', ':', ';', '-', '<', '>',
		'[', ']', '(', ')', '{', '}', '=', '/', '+', '%', '&', '^',
		'*', '\'', '"', '`', '~', '|', '\\':
		return true
	case 0x2013, 0x2018, 0x2019, 0x201C, 0x201D, 0x2026:
		return true
	case 0x3001, 0x3002, // ideographic comma and full stop
		0xFF01, 0xFF0C, 0xFF0E, 0xFF1A, 0xFF1B, 0xFF1F, // full-width ! , . : ; ?
		0x300A, 0x300B, 0x300C, 0x300D, 0x300E, 0x300F,
		0x3010, 0x3011, 0x3014, 0x3015, 0x3016, 0x3017,
		0x301C, 0x301D, 0x301E, 0x301F, 0x3030, 0x30FB, 0x30FC:
		return true
	}
	return false
}

package markdown

import (
	"unicode/utf8"

	"github.com/rjkroege/mdblock/rich"
)

// Scanner finds the markup a block hides when it does not hold the
// cursor. It implements rich.Scanner.
type Scanner struct {
	rules []Rule
}

var _ rich.Scanner = (*Scanner)(nil)

// NewScanner returns a scanner running rules, which must come from
// LoadRules or DefaultRules.
func NewScanner(rules []Rule) *Scanner {
	return &Scanner{rules: rules}
}

// DefaultScanner returns a scanner running the built-in rules.
func DefaultScanner() *Scanner {
	return NewScanner(MustDefaultRules())
}

// Scan returns the directives for text, sorted.
func (s *Scanner) Scan(text []rune, kind rich.BlockKind) []rich.Directive {
	if len(text) == 0 {
		return nil
	}
	str := string(text)
	var runeOf []int // byte offset to rune offset, built on first use

	var ds []rich.Directive
	for i := range s.rules {
		r := &s.rules[i]
		if !r.applies(kind) {
			continue
		}
		if r.Kind == "link" {
			for _, t := range linkTargets(text) {
				ds = append(ds, r.directive(t[0], t[1]-t[0]))
			}
			continue
		}

		for _, m := range r.re.FindAllStringSubmatchIndex(str, -1) {
			b0, b1 := m[2*r.Group], m[2*r.Group+1]
			if b0 < 0 || b1 <= b0 {
				continue
			}
			if runeOf == nil {
				runeOf = runeOffsets(str)
			}
			start, end := runeOf[b0], runeOf[b1]
			if r.Unescaped && escaped(text, start) {
				continue
			}
			ds = append(ds, r.directive(start, end-start))
		}
	}
	rich.SortDirectives(ds)
	return ds
}

func (r *Rule) directive(start, n int) rich.Directive {
	d := rich.Directive{Start: start, Len: n, Transform: r.transform, Rule: r.Name}
	if r.transform == rich.Replaced {
		d.Replacement = r.Replacement
		d.Fill = r.Fill
	}
	return d
}

// runeOffsets maps every byte offset of s (and len(s)) to a rune offset.
func runeOffsets(s string) []int {
	out := make([]int, len(s)+1)
	n := 0
	for b := 0; b < len(s); b++ {
		out[b] = n
		if b+1 == len(s) || utf8.RuneStart(s[b+1]) {
			n++
		}
	}
	out[len(s)] = n
	return out
}

// escaped reports whether text[i] is preceded by an odd number of
// backslashes.
func escaped(text []rune, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && text[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

// linkTargets returns the [start, end) extents of every parenthesised
// link or image target in text: the "(" following "]" through its
// matching ")". Escaped parentheses do not count and unclosed targets
// are ignored.
func linkTargets(text []rune) [][2]int {
	var out [][2]int
	for i := 1; i < len(text); i++ {
		if text[i] != '(' || text[i-1] != ']' || escaped(text, i-1) {
			continue
		}
		if end := matchParen(text, i); end > 0 {
			out = append(out, [2]int{i, end + 1})
			i = end
		}
	}
	return out
}

// matchParen returns the index of the ")" closing the "(" at open, or
// -1.
func matchParen(text []rune, open int) int {
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

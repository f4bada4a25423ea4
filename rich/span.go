package rich

// Span is a formatting span reported by the formatting model: runes
// [Start, Start+Len) of a block carry Style. Spans may overlap; where
// they do, the earlier span in the list wins.
type Span struct {
	Start int
	Len   int
	Style Style
}

// End returns the offset just past the span.
func (s Span) End() int { return s.Start + s.Len }

// covers reports whether the span formats offset p.
func (s Span) covers(p int) bool {
	return s.Start <= p && p < s.End()
}

// Plain returns the spans for n runes of unstyled text.
func Plain(n int) []Span {
	if n == 0 {
		return nil
	}
	return []Span{{Start: 0, Len: n, Style: DefaultStyle()}}
}

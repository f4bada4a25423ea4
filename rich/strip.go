package rich

// styleSigns lists the markdown signs that produce a style, in the order
// they are stripped.
var styleSigns = []struct {
	has  func(Style) bool
	sign []rune
}{
	{func(s Style) bool { return s.Bold }, []rune("**")},
	{func(s Style) bool { return s.Italic }, []rune("*")},
	{func(s Style) bool { return s.Strike }, []rune("~~")},
}

// StripStyles hides the emphasis signs of styled ranges: a bold range
// loses its surrounding "**", an italic one "*" and a struck one "~~".
// Each input range is replaced by the pieces it is cut into; the result
// still partitions the text.
func StripStyles(text []rune, rs []Range) []Range {
	out := make([]Range, 0, len(rs))
	for _, r := range rs {
		out = append(out, stripRange(text, r)...)
	}
	return out
}

// stripRange runs every applicable sign over r. Later signs see the
// pieces left by earlier ones.
func stripRange(text []rune, r Range) []Range {
	pieces := []Range{r}
	if r.Transform == Removed || r.Tab || r.Fill {
		return pieces
	}
	for _, ss := range styleSigns {
		if !ss.has(r.Style) {
			continue
		}
		next := make([]Range, 0, len(pieces)+2)
		for _, p := range pieces {
			if p.Transform == Removed {
				next = append(next, p)
				continue
			}
			next = append(next, stripSign(text, p, ss.sign)...)
		}
		pieces = next
	}
	return pieces
}

// stripSign cuts sign off both ends of r. When both ends carry the sign,
// doubled signs inside (two styled runs written back to back, as in
// "**a****b**") are cut out as well.
func stripSign(text []rune, r Range, sign []rune) []Range {
	t := text[r.Start:r.End()]
	k := len(sign)
	if len(t) < k {
		return []Range{r}
	}

	head, tail := 0, 0
	if hasPrefix(t, sign) {
		head = k
	}
	if len(t)-head > k && hasSuffix(t, sign) {
		tail = k
	}
	if head == 0 && tail == 0 {
		return []Range{r}
	}
	body := t[head : len(t)-tail]
	if onlySign(body, sign) {
		return []Range{piece(r, r.Start, r.Len, Removed)}
	}

	var out []Range
	cut := newCutter(r)
	pos := r.Start
	if head > 0 {
		out = append(out, piece(r, pos, head, Removed))
		pos += head
	}

	if head > 0 && tail > 0 && len(body) > 2*k && !hasPrefix(body, sign) && !hasSuffix(body, sign) {
		double := append(append([]rune{}, sign...), sign...)
		for i := 0; ; {
			j := index(body[i:], double)
			if j < 0 {
				break
			}
			if j > 0 {
				out = append(out, cut.keep(pos, j))
				pos += j
			}
			out = append(out, piece(r, pos, 2*k, Removed))
			pos += 2 * k
			i += j + 2*k
		}
	}

	out = append(out, cut.keep(pos, r.End()-tail-pos))
	if tail > 0 {
		out = append(out, piece(r, r.End()-tail, tail, Removed))
	}
	return out
}

// cutter hands out the visible pieces of a range. A replaced range shows
// its replacement once, on its first piece; later pieces are hidden.
type cutter struct {
	r    Range
	used bool
}

func newCutter(r Range) *cutter { return &cutter{r: r} }

func (c *cutter) keep(start, n int) Range {
	if c.r.Transform != Replaced {
		return piece(c.r, start, n, c.r.Transform)
	}
	if c.used {
		return piece(c.r, start, n, Removed)
	}
	c.used = true
	p := piece(c.r, start, n, Replaced)
	p.Replacement = c.r.Replacement
	return p
}

// piece returns the part [start, start+n) of r with transform tr.
func piece(r Range, start, n int, tr Transform) Range {
	return Range{Start: start, Len: n, Style: r.Style, Transform: tr}
}

func hasPrefix(s, p []rune) bool {
	if len(s) < len(p) {
		return false
	}
	for i := range p {
		if s[i] != p[i] {
			return false
		}
	}
	return true
}

func hasSuffix(s, p []rune) bool {
	return len(s) >= len(p) && hasPrefix(s[len(s)-len(p):], p)
}

// index returns the offset of the first p in s, or -1.
func index(s, p []rune) int {
	for i := 0; i+len(p) <= len(s); i++ {
		if hasPrefix(s[i:], p) {
			return i
		}
	}
	return -1
}

// onlySign reports whether s is made only of runes from sign.
func onlySign(s, sign []rune) bool {
	for _, r := range s {
		found := false
		for _, c := range sign {
			if r == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

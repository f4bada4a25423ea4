package rich

// Partition merges formatting spans and markup directives into the
// block's range list. The text is walked in chunks that share one
// format: every span start and end is a chunk boundary, and text no span
// covers gets def. Each chunk is then cut around tabs and directives.
//
// dirs must be sorted with SortDirectives. The result is sorted and
// covers [0, len(text)) exactly once.
func Partition(text []rune, spans []Span, def Style, dirs []Directive) []Range {
	n := len(text)
	if n == 0 {
		return []Range{{Style: def}}
	}

	var out []Range
	for pos := 0; pos < n; {
		style, end := chunkAt(spans, def, pos, n)
		out = appendChunk(out, text, pos, end, style, dirs)
		pos = end
	}
	return out
}

// chunkAt returns the style at pos and the end of the chunk starting
// there.
func chunkAt(spans []Span, def Style, pos, n int) (Style, int) {
	style, end := def, n
	covered := false
	for _, s := range spans {
		if s.Len <= 0 {
			continue
		}
		if s.Start > pos && s.Start < end {
			end = s.Start
		}
		if s.covers(pos) {
			if s.End() < end {
				end = s.End()
			}
			if !covered {
				style = s.Style
				covered = true
			}
		}
	}
	return style, end
}

// appendChunk appends the ranges for [start, end). Each tab gets a range
// of its own that directives never touch.
func appendChunk(out []Range, text []rune, start, end int, style Style, dirs []Directive) []Range {
	s := start
	for i := start; i < end; i++ {
		if text[i] != '\t' {
			continue
		}
		if i > s {
			out = applyDirectives(out, s, i, style, dirs)
		}
		out = append(out, Range{Start: i, Len: 1, Style: style, Tab: true})
		s = i + 1
	}
	if s < end {
		out = applyDirectives(out, s, end, style, dirs)
	}
	return out
}

// applyDirectives cuts [start, end) into the runs before, inside and
// after each directive that overlaps it.
func applyDirectives(out []Range, start, end int, style Style, dirs []Directive) []Range {
	for _, d := range dirs {
		if d.Len <= 0 || d.End() <= start {
			continue
		}
		if d.Start >= end {
			break
		}
		if d.Start > start {
			out = append(out, Range{Start: start, Len: d.Start - start, Style: style})
			start = d.Start
		}

		stop := min(end, d.End())
		r := Range{Start: start, Len: stop - start, Style: style, Transform: d.Transform}
		if d.Transform == Replaced {
			// Only the first piece of a replaced run shows the
			// replacement. The rest of the source is hidden.
			if start == d.Start {
				r.Replacement = d.Replacement
				r.Fill = d.Fill
			} else {
				r.Transform = Removed
			}
		}
		out = append(out, r)

		start = stop
		if start >= end {
			return out
		}
	}
	return append(out, Range{Start: start, Len: end - start, Style: style})
}

// CheckPartition reports every gap and overlap in rs, which must be
// sorted, against a text of n runes.
func CheckPartition(rs []Range, n int) []Diagnostic {
	var ds []Diagnostic
	if n == 0 {
		for _, r := range rs {
			if r.Len != 0 {
				ds = append(ds, diagf(DiagOverlap, r.Start, "%v in an empty block", r))
			}
		}
		return ds
	}

	next := 0
	for _, r := range rs {
		switch {
		case r.Start > next:
			ds = append(ds, diagf(DiagGap, next, "[%d,%d) not covered before %v", next, r.Start, r))
		case r.Start < next:
			ds = append(ds, diagf(DiagOverlap, r.Start, "%v overlaps text up to %d", r, next))
		}
		next = max(next, r.End())
	}
	if next < n {
		ds = append(ds, diagf(DiagGap, next, "[%d,%d) not covered at end of block", next, n))
	} else if next > n {
		ds = append(ds, diagf(DiagOverlap, n, "ranges extend to %d past end of block", next))
	}
	return ds
}

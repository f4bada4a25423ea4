package rich

// minSelectionWidth is the width given to a selection that lies wholly
// inside hidden markup, so that it still shows.
const minSelectionWidth = 0.5

// SpanWidth returns the displayed width of source runes [start,
// start+n) on line l. The span is expected to lie within the line.
func (m Measurer) SpanWidth(text []rune, l Line, start, n int) float64 {
	if n <= 0 {
		return 0
	}
	if start == l.Start && n == l.Len {
		return l.Width
	}
	return m.spanWidth(text, l, start, n, true)
}

func (m Measurer) spanWidth(text []rune, l Line, start, n int, nominal bool) float64 {
	end := start + n
	var w float64
	for _, r := range l.Ranges {
		if r.End() <= start {
			continue
		}
		if end <= r.Start {
			break
		}
		if r.End() < end {
			// The range ends inside the span: add its right-hand part.
			if r.Tab || start <= r.Start {
				w += r.Wid
			} else {
				w += m.sliceWidth(text, r, start-r.Start, r.End()-start)
			}
			start = r.End()
			continue
		}

		// The span ends inside the range: add its left-hand part.
		switch {
		case r.Tab:
			w += r.Wid
		case start <= r.Start && end == r.End():
			w += r.Wid
		default:
			off := max(start-r.Start, 0)
			w += m.sliceWidth(text, r, off, end-r.Start-off)
		}
		if nominal && r.Transform == Removed && w == 0 {
			return minSelectionWidth
		}
		break
	}
	return w
}

// XOf returns the x position of source offset off on line l, measured
// from the line's left edge.
func (m Measurer) XOf(text []rune, l Line, off int) float64 {
	switch {
	case off <= l.Start:
		return 0
	case off >= l.End():
		return l.Width
	}
	return m.spanWidth(text, l, l.Start, off-l.Start, false)
}

// OffsetAt returns the source offset nearest to x on line l.
func (m Measurer) OffsetAt(text []rune, l Line, x float64) int {
	var acc float64
	for _, r := range l.Ranges {
		if r.Transform == Removed {
			continue
		}
		if x >= acc+r.Wid {
			acc += r.Wid
			continue
		}
		if r.Tab || r.Fill || r.Transform != Unchanged {
			if x < acc+r.Wid/2 {
				return r.Start
			}
			return r.End()
		}
		// Pick the rune boundary closest to x.
		prev := 0.0
		for k := 1; k <= r.Len; k++ {
			wk := m.prefixWidth(text, r, k)
			if acc+wk > x {
				if x-(acc+prev) < (acc+wk)-x {
					return r.Start + k - 1
				}
				return r.Start + k
			}
			prev = wk
		}
		return r.End()
	}
	return l.End()
}

// Rect is a rectangle in layout units.
type Rect struct {
	X, Y, W, H float64
}

// SelectionRect returns the highlight for selection [p0, p1) on line l,
// positioned by the line's shaped handle. ok is false when the selection
// misses the line.
func (m Measurer) SelectionRect(text []rune, l Line, p0, p1 int) (r Rect, ok bool) {
	s, e := max(p0, l.Start), min(p1, l.End())
	if s >= e {
		return Rect{}, false
	}
	r.X = m.XOf(text, l, s)
	r.W = m.SpanWidth(text, l, s, e-s)
	if l.Shaped != nil {
		x, y := l.Shaped.Position()
		r.X += x
		r.Y = y
		r.H = l.Shaped.Height()
	}
	return r, r.W > 0
}

// Run is a piece of a line ready to paint.
type Run struct {
	X      float64 // from the line's left edge
	Width  float64
	Text   string // empty for tabs and hidden text
	Style  Style
	Hidden bool // blanked: occupies Width but paints nothing
	Range  Range
}

// Runs lists the paintable runs of l in order. Removed ranges are
// skipped.
func (l Line) Runs(text []rune) []Run {
	var out []Run
	var x float64
	for _, r := range l.Ranges {
		if r.Transform == Removed {
			continue
		}
		out = append(out, Run{
			X:      x,
			Width:  r.Wid,
			Text:   r.Shown(text),
			Style:  r.Style,
			Hidden: r.Transform == Blanked,
			Range:  r,
		})
		x += r.Wid
	}
	return out
}

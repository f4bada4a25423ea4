package rich

import (
	"strings"
)

// Line is one visual line of a block: the ranges placed on it, with
// widths resolved.
type Line struct {
	Shaped ShapedLine // the shaping engine's handle, if any

	Start  int     // rune offset of the first source rune on the line
	Len    int     // source runes consumed by the line
	Width  float64 // sum of the placed ranges' widths
	Ranges []Range
}

// End returns the offset just past the line's source text.
func (l Line) End() int { return l.Start + l.Len }

// Fitter places ranges on lines.
type Fitter struct {
	Measurer Measurer
	TabStop  float64
	Breaker  WordBreaker
}

// FitLine fills a line width wide with ranges from queue, starting at
// source offset start. queue holds the block's unplaced ranges in
// order; FitLine returns the line and the queue for the next line, with
// the remainder of a split range first.
//
// A line takes whole ranges while they fit. The first range that does
// not fit is split at a word boundary, its prefix ends the line and the
// remainder carries over. Tabs and blanked ranges are never split. A fill
// placeholder takes the rest of the line. When nothing fits on an empty
// line, the first range (or a one-rune prefix of it) is placed anyway so
// that layout always advances.
func (f Fitter) FitLine(text []rune, queue []Range, start int, width float64) (Line, []Range, []Diagnostic) {
	var ds []Diagnostic
	line := Line{Start: start}

	i := 0
	for i < len(queue) && queue[i].Start < start && queue[i].End() <= start {
		i++
	}
	if i < len(queue) && queue[i].Start != start {
		ds = append(ds, diagf(DiagStart, start, "line starts at %d but next range is %v", start, queue[i]))
		line.Start = queue[i].Start
	}

	place := func(r Range) {
		line.Ranges = append(line.Ranges, r)
		line.Len += r.Len
		line.Width += r.Wid
	}

	var carry []Range
fill:
	for ; i < len(queue); i++ {
		r := queue[i]
		distance := width - line.Width

		switch {
		case r.Transform == Replaced && r.Fill:
			place(f.fill(text, r, distance))
			i++
			// Hidden markup after the placeholder has no width; keep it
			// on this line rather than start a blank one.
			for i < len(queue) && queue[i].Transform == Removed {
				place(queue[i])
				i++
			}
			break fill

		case r.Tab:
			r.Wid = tabWidth(line.Width, f.TabStop)
		}

		if r.Wid <= distance || r.Wid == 0 {
			place(r)
			continue
		}

		if r.Tab || r.Transform == Blanked {
			if len(line.Ranges) == 0 {
				ds = append(ds, diagf(DiagOverflow, r.Start, "%v is %g wide, line has %g", r, r.Wid, distance))
				place(r)
				i++
			}
			break
		}

		head, tail, ok, d := f.split(text, r, distance, len(line.Ranges) == 0)
		ds = append(ds, d...)
		if ok {
			place(head)
			i++
			if tail.Len > 0 {
				carry = []Range{tail}
			}
		}
		break
	}

	next := make([]Range, 0, len(carry)+len(queue)-i)
	next = append(next, carry...)
	next = append(next, queue[i:]...)
	return line, next, ds
}

// fill expands the placeholder r to as many copies of its first rune as
// fit in distance.
func (f Fitter) fill(text []rune, r Range, distance float64) Range {
	rep := []rune(r.Replacement)
	if len(rep) == 0 {
		r.Wid = 0
		return r
	}
	unit := f.Measurer.sliceWidth(text, r, 0, 1)
	n := fillCount(distance, unit)
	r.Replacement = strings.Repeat(string(rep[0]), n)
	r.Wid = float64(n) * unit
	return r
}

// split cuts r so that its head fits in distance. empty says the line
// has nothing on it yet, in which case a head is always produced. ok is
// false when r should go to the next line whole.
func (f Fitter) split(text []rune, r Range, distance float64, empty bool) (head, tail Range, ok bool, ds []Diagnostic) {
	shown := text[r.Start:r.End()]
	if r.Transform == Replaced {
		shown = []rune(r.Replacement)
	}
	n := len(shown)

	pos := f.fitPrefix(text, r, n, distance)
	if pos > 0 && pos < n {
		pos = f.breaker().Refine(shown, pos)
	}
	// The italic allowance depends on the prefix, so a prefix that fits
	// unslanted can still be too wide.
	for pos > 0 && f.Measurer.prefixWidth(text, r, pos) > distance {
		pos--
		if pos > 0 {
			pos = f.breaker().Refine(shown, pos)
		}
	}

	srcLen := r.Len
	if r.Transform == Replaced {
		// The source behind a replacement is split at the same count,
		// keeping at least one rune on each side.
		srcLen = min(pos, r.Len-1)
	} else {
		srcLen = pos
	}

	forced := false
	if pos == 0 || srcLen <= 0 {
		if !empty {
			return Range{}, Range{}, false, nil
		}
		if r.Len <= 1 || (r.Transform == Replaced && n <= 1) {
			ds = append(ds, diagf(DiagOverflow, r.Start, "%v is %g wide, line has %g", r, r.Wid, distance))
			return r, Range{}, true, ds
		}
		pos, srcLen, forced = 1, 1, true
		ds = append(ds, diagf(DiagOverflow, r.Start, "no prefix of %v fits in %g", r, distance))
	}

	head, tail = r, r
	head.Len = srcLen
	tail.Start = r.Start + srcLen
	tail.Len = r.Len - srcLen
	if r.Transform == Replaced {
		head.Replacement = string(shown[:pos])
		tail.Replacement = string(shown[pos:])
	}
	head.Wid = f.Measurer.Width(text, head)
	tail.Wid = f.Measurer.Width(text, tail)

	if head.Wid > distance && !forced {
		ds = append(ds, diagf(DiagOverBudget, head.Start, "split %v is %g wide, line has %g", head, head.Wid, distance))
	}
	return head, tail, true, ds
}

// fitPrefix returns the largest count of shown runes of r whose width,
// before any italic allowance, is at most distance.
func (f Fitter) fitPrefix(text []rune, r Range, n int, distance float64) int {
	lo, hi, best := 0, n, 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if f.Measurer.rawPrefixWidth(text, r, mid) <= distance {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best
}

func (f Fitter) breaker() WordBreaker {
	if f.Breaker == nil {
		return ASCIIWords{}
	}
	return f.Breaker
}

package rich

import (
	"fmt"
	"sort"
)

// Transform says how a range of source text is shown.
type Transform int

const (
	Unchanged Transform = iota // shown as is
	Removed                    // hidden, takes no space
	Replaced                   // shown as Range.Replacement
	Blanked                    // hidden, but keeps the space of its source text
)

func (t Transform) String() string {
	switch t {
	case Unchanged:
		return "unchanged"
	case Removed:
		return "removed"
	case Replaced:
		return "replaced"
	case Blanked:
		return "blanked"
	}
	return fmt.Sprintf("Transform(%d)", int(t))
}

// Range is a run of a block's source text with one style and one
// transform. This is the layout model: the block's ranges partition its
// text, and lines are made from them.
type Range struct {
	Start int // rune offset in the block text
	Len   int // rune count; 0 only for the range of an empty block

	Style     Style
	Transform Transform

	// Replacement is the text shown instead of the source when
	// Transform is Replaced.
	Replacement string

	// Fill marks a Replaced placeholder that repeats to the end of its
	// line (thematic breaks, fence delimiters).
	Fill bool

	// Tab is set for the one-rune range of a tab character. Its width
	// depends on where it lands on a line.
	Tab bool

	// Width in device-independent units (computed).
	Wid float64
}

// End returns the offset just past the range.
func (r Range) End() int { return r.Start + r.Len }

// Contains reports whether offset p is inside r.
func (r Range) Contains(p int) bool { return r.Start <= p && p < r.End() }

func (r Range) String() string {
	s := fmt.Sprintf("%s[%d,%d)", r.Transform, r.Start, r.End())
	if r.Tab {
		s += " tab"
	}
	if r.Transform == Replaced {
		s += fmt.Sprintf(" %q", r.Replacement)
	}
	return s
}

// Text returns the source text of r.
func (r Range) Text(text []rune) string {
	return string(text[r.Start:r.End()])
}

// Shown returns the text painted for r: the source for Unchanged ranges
// and the replacement for Replaced ones. Removed and Blanked ranges
// paint nothing.
func (r Range) Shown(text []rune) string {
	switch r.Transform {
	case Unchanged:
		if r.Tab {
			return ""
		}
		return r.Text(text)
	case Replaced:
		return r.Replacement
	}
	return ""
}

// rangeLess orders by start, and for equal starts the longer range first.
func rangeLess(a, b Range) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.Len > b.Len
}

// SortRanges sorts rs into layout order.
func SortRanges(rs []Range) {
	sort.SliceStable(rs, func(i, j int) bool { return rangeLess(rs[i], rs[j]) })
}

// Directive asks for a run of source text to be hidden or substituted.
// Directives are produced by scanning markup and consumed by Partition.
type Directive struct {
	Start       int
	Len         int
	Transform   Transform
	Replacement string
	Fill        bool

	// Rule names the markup rule that produced the directive.
	Rule string
}

// End returns the offset just past the directive.
func (d Directive) End() int { return d.Start + d.Len }

// SortDirectives sorts ds by start, longer directive first on ties.
func SortDirectives(ds []Directive) {
	sort.SliceStable(ds, func(i, j int) bool {
		if ds[i].Start != ds[j].Start {
			return ds[i].Start < ds[j].Start
		}
		return ds[i].Len > ds[j].Len
	})
}

// BlockKind distinguishes code blocks (inside a fenced region,
// including the fence lines) from prose.
type BlockKind int

const (
	Prose BlockKind = iota
	Code
)

func (k BlockKind) String() string {
	if k == Code {
		return "code"
	}
	return "prose"
}

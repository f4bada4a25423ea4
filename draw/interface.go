// Package draw provides the font metrics used to lay out rich text.
//
// Fonts come from several backends: Plan 9 bitmap fonts served by
// devdraw, OpenType faces (including the Go fonts) and fixed cell
// terminals. All of them satisfy Font.
package draw

// Font measures text. Widths are in device-independent units: pixels for
// Plan 9 and OpenType fonts, cells for terminals.
type Font interface {
	Name() string
	Height() int
	BytesWidth(b []byte) int
	RunesWidth(r []rune) int
	StringWidth(s string) int
}

// Advancer is implemented by fonts that can report fractional advances.
// Layout prefers it over StringWidth when available so that long runs
// do not accumulate rounding error.
type Advancer interface {
	StringAdvance(s string) float64
}

// Advance returns the width of s in f, fractional when f supports it.
func Advance(f Font, s string) float64 {
	if a, ok := f.(Advancer); ok {
		return a.StringAdvance(s)
	}
	return float64(f.StringWidth(s))
}

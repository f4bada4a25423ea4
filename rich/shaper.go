package rich

// ShapedLine is a visual line handed out by a shaping engine. Layout
// asks it for its width and tells it which source runes it shows.
type ShapedLine interface {
	Width() float64
	Height() float64
	Position() (x, y float64)

	// SetSource records the source runes [start, start+n) placed on the
	// line.
	SetSource(start, n int)
}

// Shaper produces the visual lines of one block, top to bottom.
type Shaper interface {
	NewLine() ShapedLine
}

// FixedShaper hands out lines of one width, stacked LineHeight apart.
type FixedShaper struct {
	LineWidth  float64
	LineHeight float64
	Origin     [2]float64

	n int
}

// NewFixedShaper returns a shaper for a column width wide.
func NewFixedShaper(width, height float64) *FixedShaper {
	return &FixedShaper{LineWidth: width, LineHeight: height}
}

func (s *FixedShaper) NewLine() ShapedLine {
	l := &fixedLine{
		w: s.LineWidth,
		h: s.LineHeight,
		x: s.Origin[0],
		y: s.Origin[1] + float64(s.n)*s.LineHeight,
	}
	s.n++
	return l
}

type fixedLine struct {
	w, h, x, y float64
	start, n   int
}

func (l *fixedLine) Width() float64               { return l.w }
func (l *fixedLine) Height() float64              { return l.h }
func (l *fixedLine) Position() (float64, float64) { return l.x, l.y }
func (l *fixedLine) SetSource(start, n int)       { l.start, l.n = start, n }

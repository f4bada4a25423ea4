package mdblocktest

import (
	"fmt"
	"strings"
	"sync"
)

// Shaper is a mock shaping engine. Line i is Widths[i] wide; lines past
// the end of Widths repeat the last width. It records what each line
// was asked to show.
type Shaper struct {
	Widths     []float64
	LineHeight float64

	mu    sync.Mutex
	lines []*Line
}

// NewShaper returns a shaper handing out lines of the given widths.
func NewShaper(widths ...float64) *Shaper {
	return &Shaper{Widths: widths, LineHeight: 1}
}

// NewLine returns the next line. Callers that need a rich.Shaper wrap
// it, as this package does not import rich.
func (s *Shaper) NewLine() *Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := 0.0
	if n := len(s.Widths); n > 0 {
		w = s.Widths[min(len(s.lines), n-1)]
	}
	l := &Line{W: w, H: s.LineHeight, Y: float64(len(s.lines)) * s.LineHeight, Start: -1}
	s.lines = append(s.lines, l)
	return l
}

// Lines returns the lines handed out so far.
func (s *Shaper) Lines() []*Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Line(nil), s.lines...)
}

// Sources describes the source span recorded on each line, one per
// line: "start+n".
func (s *Shaper) Sources() string {
	var parts []string
	for _, l := range s.Lines() {
		parts = append(parts, fmt.Sprintf("%d+%d", l.Start, l.N))
	}
	return strings.Join(parts, " ")
}

// Line is a mock shaped line.
type Line struct {
	W, H, X, Y float64

	Start, N int // set by SetSource; Start is -1 until then
}

func (l *Line) Width() float64               { return l.W }
func (l *Line) Height() float64              { return l.H }
func (l *Line) Position() (float64, float64) { return l.X, l.Y }
func (l *Line) SetSource(start, n int)       { l.Start, l.N = start, n }

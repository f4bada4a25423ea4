package draw

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face adapts a golang.org/x/image/font.Face to Font. A font.Face keeps
// glyph caches that are not safe for concurrent use so every
// measurement takes the lock.
type Face struct {
	name string

	mu   sync.Mutex
	face font.Face
}

var (
	_ Font     = (*Face)(nil)
	_ Advancer = (*Face)(nil)
)

// NewFace wraps face under the given name.
func NewFace(name string, face font.Face) *Face {
	return &Face{name: name, face: face}
}

func (f *Face) Name() string { return f.name }

func (f *Face) Height() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.face.Metrics().Height.Ceil()
}

func (f *Face) BytesWidth(b []byte) int {
	return f.StringWidth(string(b))
}

func (f *Face) RunesWidth(r []rune) int {
	return f.StringWidth(string(r))
}

func (f *Face) StringWidth(s string) int {
	return f.measure(s).Round()
}

// StringAdvance returns the unrounded advance of s.
func (f *Face) StringAdvance(s string) float64 {
	return float64(f.measure(s)) / 64
}

func (f *Face) measure(s string) fixed.Int26_6 {
	if s == "" {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	// font.MeasureString applies kerning between pairs, which makes the
	// width of a prefix depend on the rune that follows it. Sum plain
	// advances instead so that widths add up across a split.
	var adv fixed.Int26_6
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		a, ok := f.face.GlyphAdvance(r)
		if !ok {
			a, _ = f.face.GlyphAdvance('\uFFFD')
		}
		adv += a
	}
	return adv
}

package rich

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
)

// Color is an RGBA color packed as 0xRRGGBBAA. The zero Color means
// "use the default".
type Color uint32

// Style is the formatting descriptor of a run of text. Styles are plain
// values: two styles are the same format exactly when they compare ==.
type Style struct {
	// Colors (0 means use default)
	Fg Color
	Bg Color

	// Font variations
	Bold   bool
	Italic bool
	Strike bool
	Code   bool // Monospace font for code spans
	Link   bool // Hyperlink (rendered in blue by default)

	// Size multiplier (1.0 = normal body text)
	// Used for headings: H1=2.0, H2=1.5, H3=1.25, etc.
	Scale float64
}

// DefaultStyle returns the default body text style.
func DefaultStyle() Style {
	return Style{Scale: 1.0}
}

// LinkBlue is the standard blue color for hyperlinks.
const LinkBlue Color = 0x0000EEFF

// InlineCodeBg is the light gray background for inline code spans.
const InlineCodeBg Color = 0xE6E6E6FF

// Common styles
var (
	StyleH1     = Style{Bold: true, Scale: 2.0}
	StyleH2     = Style{Bold: true, Scale: 1.5}
	StyleH3     = Style{Bold: true, Scale: 1.25}
	StyleBold   = Style{Bold: true, Scale: 1.0}
	StyleItalic = Style{Italic: true, Scale: 1.0}
	StyleStrike = Style{Strike: true, Scale: 1.0}
	StyleCode   = Style{Code: true, Bg: InlineCodeBg, Scale: 1.0} // Monospace font
	StyleLink   = Style{Link: true, Fg: LinkBlue, Scale: 1.0}     // Blue hyperlink
)

// Key returns a hash of s that is stable across processes, for use as a
// cache key.
func (s Style) Key() uint64 {
	var buf [17]byte
	binary.LittleEndian.PutUint32(buf[0:], uint32(s.Fg))
	binary.LittleEndian.PutUint32(buf[4:], uint32(s.Bg))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(s.scale()))
	var flags byte
	for i, b := range []bool{s.Bold, s.Italic, s.Strike, s.Code, s.Link} {
		if b {
			flags |= 1 << i
		}
	}
	buf[16] = flags
	h := fnv.New64a()
	h.Write(buf[:])
	return h.Sum64()
}

// scale treats an unset Scale as body text.
func (s Style) scale() float64 {
	if s.Scale == 0 {
		return 1.0
	}
	return s.Scale
}

func (s Style) String() string {
	var parts []string
	for _, f := range []struct {
		on   bool
		name string
	}{
		{s.Bold, "bold"},
		{s.Italic, "italic"},
		{s.Strike, "strike"},
		{s.Code, "code"},
		{s.Link, "link"},
	} {
		if f.on {
			parts = append(parts, f.name)
		}
	}
	if sc := s.scale(); sc != 1.0 {
		parts = append(parts, fmt.Sprintf("x%g", sc))
	}
	if s.Fg != 0 {
		parts = append(parts, fmt.Sprintf("fg=%08x", uint32(s.Fg)))
	}
	if s.Bg != 0 {
		parts = append(parts, fmt.Sprintf("bg=%08x", uint32(s.Bg)))
	}
	if len(parts) == 0 {
		return "plain"
	}
	return strings.Join(parts, ",")
}

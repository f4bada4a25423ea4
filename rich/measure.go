package rich

import (
	"github.com/rjkroege/mdblock/draw"
)

// Metrics measures styled text. It is the font-metrics provider layout
// runs against.
type Metrics interface {
	// Measure returns the advance of text drawn in style.
	Measure(text string, style Style) float64

	// Height returns the line height of style.
	Height(style Style) float64
}

// FontMetrics implements Metrics over a set of draw.Font variants.
type FontMetrics struct {
	font draw.Font // regular body font

	// Font variants for styled text
	boldFont       draw.Font
	italicFont     draw.Font
	boldItalicFont draw.Font
	codeFont       draw.Font // monospace font for code spans

	// Scaled fonts for headings (key is scale factor: 2.0 for H1, 1.5 for H2, etc.)
	scaledFonts map[float64]draw.Font
}

var _ Metrics = (*FontMetrics)(nil)

// NewFontMetrics returns metrics that measure with font and the variants
// set by opts. Styles without a matching variant use font.
func NewFontMetrics(font draw.Font, opts ...FontOption) *FontMetrics {
	m := &FontMetrics{font: font}
	for _, o := range opts {
		o(m)
	}
	return m
}

// FamilyMetrics returns metrics for every variant of fam.
func FamilyMetrics(fam *draw.Family) *FontMetrics {
	return NewFontMetrics(fam.Regular,
		WithBoldFont(fam.Bold),
		WithItalicFont(fam.Italic),
		WithBoldItalicFont(fam.BoldItalic),
		WithCodeFont(fam.Mono),
	)
}

func (m *FontMetrics) Measure(text string, style Style) float64 {
	if text == "" {
		return 0
	}
	return draw.Advance(m.fontForStyle(style), text)
}

func (m *FontMetrics) Height(style Style) float64 {
	return float64(m.fontForStyle(style).Height())
}

// fontForStyle returns the appropriate font for the given style.
// Falls back to the regular font if the variant is not available.
// When a style has a Scale != 1.0, the scaled font takes precedence
// since it provides the correct metrics for heading layout.
func (m *FontMetrics) fontForStyle(style Style) draw.Font {
	if s := style.scale(); s != 1.0 && m.scaledFonts != nil {
		if scaledFont, ok := m.scaledFonts[s]; ok {
			return scaledFont
		}
	}

	if style.Code && m.codeFont != nil {
		return m.codeFont
	}

	if style.Bold && style.Italic {
		if m.boldItalicFont != nil {
			return m.boldItalicFont
		}
	} else if style.Bold {
		if m.boldFont != nil {
			return m.boldFont
		}
	} else if style.Italic {
		if m.italicFont != nil {
			return m.italicFont
		}
	}
	return m.font
}

// Measurer assigns widths to ranges.
type Measurer struct {
	Metrics Metrics

	// ItalicFactor is the share of the average character width added to
	// italic runs.
	ItalicFactor float64
}

// Width returns the display width of r. Removed ranges and tabs measure
// zero (a tab's width is only known once it is placed on a line).
// Replaced ranges measure their replacement and everything else its
// source text, including Blanked ranges, which keep their space.
func (m Measurer) Width(text []rune, r Range) float64 {
	if r.Transform == Removed || r.Tab {
		return 0
	}
	if r.Transform == Replaced {
		return m.slant(m.Metrics.Measure(r.Replacement, r.Style), len([]rune(r.Replacement)), r.Style)
	}
	return m.slant(m.Metrics.Measure(r.Text(text), r.Style), r.Len, r.Style)
}

// MeasureAll returns a copy of rs with every width set.
func (m Measurer) MeasureAll(text []rune, rs []Range) []Range {
	out := make([]Range, len(rs))
	for i, r := range rs {
		r.Wid = m.Width(text, r)
		out[i] = r
	}
	return out
}

// prefixWidth returns the width of the first n runes of r, measured the
// way Width measures the whole range.
func (m Measurer) prefixWidth(text []rune, r Range, n int) float64 {
	return m.sliceWidth(text, r, 0, n)
}

// rawPrefixWidth is prefixWidth without the italic allowance. Unlike
// prefixWidth it never shrinks as n grows.
func (m Measurer) rawPrefixWidth(text []rune, r Range, n int) float64 {
	s, _ := m.slice(text, r, 0, n)
	if s == "" {
		return 0
	}
	return m.Metrics.Measure(s, r.Style)
}

// sliceWidth returns the width of n runes of r starting off runes into
// it. For a replaced range the runes are those of the replacement.
func (m Measurer) sliceWidth(text []rune, r Range, off, n int) float64 {
	s, count := m.slice(text, r, off, n)
	if s == "" {
		return 0
	}
	return m.slant(m.Metrics.Measure(s, r.Style), count, r.Style)
}

// slice returns n shown runes of r starting off runes into it, and how
// many runes that is after clipping.
func (m Measurer) slice(text []rune, r Range, off, n int) (string, int) {
	if n <= 0 || r.Transform == Removed || r.Tab {
		return "", 0
	}
	var s []rune
	if r.Transform == Replaced {
		s = []rune(r.Replacement)
	} else {
		s = text[r.Start:r.End()]
	}
	off = min(max(off, 0), len(s))
	end := min(off+n, len(s))
	if end <= off {
		return "", 0
	}
	return string(s[off:end]), end - off
}

// slant adds the italic allowance to a run of n runes that is w wide.
func (m Measurer) slant(w float64, n int, style Style) float64 {
	if style.Italic && n > 0 {
		w += m.ItalicFactor * w / float64(n)
	}
	return w
}

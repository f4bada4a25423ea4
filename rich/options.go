package rich

import (
	"log/slog"

	"github.com/rjkroege/mdblock/draw"
)

// Option is a functional option for configuring a Block.
type Option func(*Block)

// WithMetrics is an Option that sets the font metrics the block is
// measured with.
func WithMetrics(m Metrics) Option {
	return func(b *Block) {
		b.metrics = m
	}
}

// WithScanner is an Option that sets the markup scanner. Without one,
// no markup is hidden.
func WithScanner(s Scanner) Option {
	return func(b *Block) {
		b.scanner = s
	}
}

// WithTabStop is an Option that sets the distance between tab stops.
func WithTabStop(w float64) Option {
	return func(b *Block) {
		b.tabStop = w
	}
}

// WithItalicFactor is an Option that sets the extra width given to
// italic runs, as a share of their average character width.
func WithItalicFactor(f float64) Option {
	return func(b *Block) {
		b.italicFactor = f
	}
}

// WithWordBreaker is an Option that sets how split points are refined.
func WithWordBreaker(wb WordBreaker) Option {
	return func(b *Block) {
		b.breaker = wb
	}
}

// WithDefaultStyle is an Option that sets the style of text no
// formatting span covers.
func WithDefaultStyle(s Style) Option {
	return func(b *Block) {
		b.defaultStyle = s
	}
}

// WithLogger is an Option that sets where layout diagnostics are logged.
func WithLogger(l *slog.Logger) Option {
	return func(b *Block) {
		b.log = l
	}
}

// FontOption is a functional option for configuring FontMetrics.
type FontOption func(*FontMetrics)

// WithBoldFont is a FontOption that sets the bold font variant.
func WithBoldFont(f draw.Font) FontOption {
	return func(m *FontMetrics) {
		m.boldFont = f
	}
}

// WithItalicFont is a FontOption that sets the italic font variant.
func WithItalicFont(f draw.Font) FontOption {
	return func(m *FontMetrics) {
		m.italicFont = f
	}
}

// WithBoldItalicFont is a FontOption that sets the bold-italic font variant.
func WithBoldItalicFont(f draw.Font) FontOption {
	return func(m *FontMetrics) {
		m.boldItalicFont = f
	}
}

// WithCodeFont is a FontOption that sets the monospace font for code spans.
func WithCodeFont(f draw.Font) FontOption {
	return func(m *FontMetrics) {
		m.codeFont = f
	}
}

// WithScaledFont is a FontOption that sets a scaled font for a specific scale factor.
// Common scale factors: 2.0 for H1, 1.5 for H2, 1.25 for H3.
func WithScaledFont(scale float64, f draw.Font) FontOption {
	return func(m *FontMetrics) {
		if m.scaledFonts == nil {
			m.scaledFonts = make(map[float64]draw.Font)
		}
		m.scaledFonts[scale] = f
	}
}

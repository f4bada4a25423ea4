package rich

import (
	"log/slog"

	"github.com/rjkroege/mdblock/draw"
)

// Scanner finds the markup to hide in a block.
type Scanner interface {
	Scan(text []rune, kind BlockKind) []Directive
}

// Block holds the layout state of one block of text: its ranges and the
// lines fitted so far. Reset rebuilds it from scratch; lines are then
// fitted one at a time with FitLine, or all at once with Layout.
//
// A Block is not safe for concurrent use.
type Block struct {
	metrics      Metrics
	scanner      Scanner
	breaker      WordBreaker
	tabStop      float64
	italicFactor float64
	defaultStyle Style
	log          *slog.Logger

	text   []rune
	kind   BlockKind
	cursor bool

	ranges []Range // measured ranges before fitting
	queue  []Range // ranges not yet placed on a line
	lines  []Line
	diags  []Diagnostic
}

// NewBlock returns an empty block configured by opts. Without
// WithMetrics it measures in terminal cells.
func NewBlock(opts ...Option) *Block {
	b := &Block{
		tabStop:      DefaultTabStop,
		italicFactor: DefaultItalicFactor,
		defaultStyle: DefaultStyle(),
	}
	for _, o := range opts {
		o(b)
	}
	if b.metrics == nil {
		b.metrics = NewFontMetrics(draw.NewCells(false))
	}
	if b.breaker == nil {
		b.breaker = ASCIIWords{}
	}
	if b.log == nil {
		b.log = slog.New(slog.DiscardHandler)
	}
	b.Reset("", nil, Prose, false)
	return b
}

// Reset replaces the block's text and formatting and rebuilds its
// ranges. Fitted lines are discarded. The cursor block shows its markup,
// so it is neither scanned nor stripped; code blocks are scanned but
// their emphasis signs are literal.
func (b *Block) Reset(text string, spans []Span, kind BlockKind, cursor bool) {
	b.text = []rune(text)
	b.kind = kind
	b.cursor = cursor
	b.lines = nil
	b.diags = nil

	var dirs []Directive
	if !cursor && b.scanner != nil {
		dirs = b.scanner.Scan(b.text, kind)
	}
	rs := Partition(b.text, spans, b.defaultStyle, dirs)
	b.report(CheckPartition(rs, len(b.text)))
	if !cursor && kind == Prose {
		rs = StripStyles(b.text, rs)
		b.report(CheckPartition(rs, len(b.text)))
	}
	b.ranges = b.measurer().MeasureAll(b.text, rs)
	b.queue = b.ranges
	b.log.Debug("block reset", "runes", len(b.text), "kind", kind.String(), "cursor", cursor,
		"directives", len(dirs), "ranges", len(b.ranges))
}

// FitLine fits the next line of the block onto sl, starting at source
// offset start, and returns the offset the following line starts at.
// A line that places nothing advances by one rune so that callers
// always make progress.
func (b *Block) FitLine(sl ShapedLine, start int) int {
	line, next, ds := b.fitter().FitLine(b.text, b.queue, start, sl.Width())
	b.report(ds)
	b.queue = next
	line.Shaped = sl
	sl.SetSource(line.Start, line.Len)
	b.lines = append(b.lines, line)

	if line.Len == 0 {
		return min(start+1, len(b.text))
	}
	return line.End()
}

// Layout fits the whole block, taking lines from s until the text is
// used up, and returns the lines.
func (b *Block) Layout(s Shaper) []Line {
	b.lines = nil
	b.queue = b.ranges
	for start := 0; ; {
		next := b.FitLine(s.NewLine(), start)
		if next >= len(b.text) || next <= start {
			break
		}
		start = next
	}
	return b.lines
}

// Text returns the block's source text.
func (b *Block) Text() []rune { return b.text }

// Kind returns the kind the block was last reset with.
func (b *Block) Kind() BlockKind { return b.kind }

// Ranges returns the measured ranges of the block before line fitting.
func (b *Block) Ranges() []Range { return b.ranges }

// Lines returns the lines fitted since the last Reset.
func (b *Block) Lines() []Line { return b.lines }

// Diagnostics returns the inconsistencies met since the last Reset.
func (b *Block) Diagnostics() []Diagnostic { return b.diags }

// Metrics returns the metrics the block measures with.
func (b *Block) Metrics() Metrics { return b.metrics }

// SpanWidth returns the displayed width of source runes [start,
// start+n) on line i.
func (b *Block) SpanWidth(i, start, n int) float64 {
	return b.measurer().SpanWidth(b.text, b.lines[i], start, n)
}

// SelectionRect returns the highlight of selection [p0, p1) on line i.
func (b *Block) SelectionRect(i, p0, p1 int) (Rect, bool) {
	return b.measurer().SelectionRect(b.text, b.lines[i], p0, p1)
}

// XOf returns the x position of source offset off on line i.
func (b *Block) XOf(i, off int) float64 {
	return b.measurer().XOf(b.text, b.lines[i], off)
}

// OffsetAt returns the source offset nearest x on line i.
func (b *Block) OffsetAt(i int, x float64) int {
	return b.measurer().OffsetAt(b.text, b.lines[i], x)
}

// LineAt returns the index of the line showing source offset off.
func (b *Block) LineAt(off int) int {
	for i, l := range b.lines {
		if off < l.End() {
			return i
		}
	}
	return len(b.lines) - 1
}

// SourceMap returns the map between the block's source and its rendered
// text.
func (b *Block) SourceMap() *SourceMap {
	return NewSourceMap(b.text, b.ranges)
}

func (b *Block) measurer() Measurer {
	return Measurer{Metrics: b.metrics, ItalicFactor: b.italicFactor}
}

func (b *Block) fitter() Fitter {
	return Fitter{Measurer: b.measurer(), TabStop: b.tabStop, Breaker: b.breaker}
}

func (b *Block) report(ds []Diagnostic) {
	if len(ds) == 0 {
		return
	}
	b.diags = append(b.diags, ds...)
	logDiagnostics(b.log, ds)
}

package markdown

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rjkroege/mdblock/rich"
)

// Config controls LayoutDocument.
type Config struct {
	Width   float64      // line width
	Cursor  int          // line holding the cursor, -1 for none
	Metrics rich.Metrics // shared by every block through one cache
	Rules   []Rule       // nil for DefaultRules

	// CacheSize bounds the shared metrics cache; see rich.NewCachedMetrics.
	CacheSize int

	// Options configure every block, after the settings above.
	Options []rich.Option

	Logger *slog.Logger
}

// Document is a laid out markdown document.
type Document struct {
	Blocks  []BlockInfo
	Layouts []*rich.Block
	Metrics *rich.CachedMetrics
}

// LayoutDocument lays out every block of doc at cfg.Width. Blocks are
// laid out concurrently and share one metrics cache.
func LayoutDocument(ctx context.Context, doc string, cfg Config) (*Document, error) {
	if cfg.Metrics == nil {
		return nil, fmt.Errorf("layout document: no metrics")
	}
	if cfg.Width <= 0 {
		return nil, fmt.Errorf("layout document: width %g", cfg.Width)
	}
	rules := cfg.Rules
	if rules == nil {
		var err error
		if rules, err = DefaultRules(); err != nil {
			return nil, fmt.Errorf("layout document: %w", err)
		}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	d := &Document{
		Blocks:  Classify(doc),
		Metrics: rich.NewCachedMetrics(cfg.Metrics, cfg.CacheSize),
	}
	d.Layouts = make([]*rich.Block, len(d.Blocks))
	scanner := NewScanner(rules)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, info := range d.Blocks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			opts := append([]rich.Option{
				rich.WithMetrics(d.Metrics),
				rich.WithScanner(scanner),
				rich.WithLogger(logger.With("line", info.Line)),
			}, cfg.Options...)
			b := rich.NewBlock(opts...)
			spans := Highlight(info.Text, info.Kind)
			b.Reset(info.Text, spans, info.Kind, info.Line == cfg.Cursor)
			b.Layout(rich.NewFixedShaper(cfg.Width, lineHeight(d.Metrics, spans)))
			d.Layouts[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("layout document: %w", err)
	}

	hits, misses := d.Metrics.Stats()
	logger.Debug("document laid out", "blocks", len(d.Blocks), "cache_hits", hits, "cache_misses", misses)
	return d, nil
}

// lineHeight returns the height of the tallest style in spans.
func lineHeight(m rich.Metrics, spans []rich.Span) float64 {
	h := m.Height(rich.DefaultStyle())
	for _, s := range spans {
		h = max(h, m.Height(s.Style))
	}
	return h
}

// Lines returns the number of visual lines in d.
func (d *Document) Lines() int {
	n := 0
	for _, b := range d.Layouts {
		n += len(b.Lines())
	}
	return n
}

// Diagnostics returns every block's diagnostics, with offsets made
// relative to the document.
func (d *Document) Diagnostics() []rich.Diagnostic {
	var out []rich.Diagnostic
	for i, b := range d.Layouts {
		for _, diag := range b.Diagnostics() {
			diag.Offset += d.Blocks[i].SourceRuneStart
			out = append(out, diag)
		}
	}
	return out
}

// LinkAt returns the URL of the link label at document rune offset off,
// or "".
func (d *Document) LinkAt(off int) string {
	for _, b := range d.Blocks {
		if off >= b.SourceRuneStart && off < b.SourceRuneEnd {
			return Links(b.Text).URLAt(off - b.SourceRuneStart)
		}
	}
	return ""
}

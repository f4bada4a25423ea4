// Mdblock lays out a markdown file the way a rich text view would and
// prints the visual lines.
//
// Usage:
//
//	mdblock [flags] [file]
//
// With no file, mdblock reads standard input. Widths are in terminal
// cells with -metrics cells, otherwise in pixels of the chosen font.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rjkroege/mdblock/draw"
	"github.com/rjkroege/mdblock/markdown"
	"github.com/rjkroege/mdblock/rich"
)

var (
	width     = flag.Float64("width", 80, "line width")
	metrics   = flag.String("metrics", "cells", "font metrics: cells, gofont or plan9")
	fontName  = flag.String("font", "", "Plan 9 font for -metrics plan9")
	fontSize  = flag.Float64("size", 12, "point size for -metrics gofont")
	eastAsian = flag.Bool("eastasian", false, "treat ambiguous runes as two cells wide")
	tabStop   = flag.Float64("tabstop", 0, "tab stop width, 0 for 8 cells or 80 pixels")
	rulesFile = flag.String("rules", "", "YAML file of markup rules replacing the built-in ones")
	cursor    = flag.Int("cursor", -1, "line holding the cursor; its markup stays visible")
	uniWords  = flag.Bool("unicode", false, "break lines at Unicode word boundaries")
	styled    = flag.Bool("style", false, "paint lines with terminal styles")
	dumpRange = flag.Bool("ranges", false, "print each line's ranges")
	links     = flag.Bool("links", false, "list link targets")
	verbose   = flag.Bool("v", false, "log layout diagnostics")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: mdblock [flags] [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(context.Background(), logger, os.Stdout); err != nil {
		logger.Error("mdblock failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, w io.Writer) error {
	doc, err := readInput(flag.Arg(0))
	if err != nil {
		return err
	}

	m, closer, err := openMetrics(*metrics)
	if err != nil {
		return err
	}
	defer closer()

	cfg := markdown.Config{
		Width:   *width,
		Cursor:  *cursor,
		Metrics: m,
		Logger:  logger,
	}
	if *rulesFile != "" {
		f, err := os.Open(*rulesFile)
		if err != nil {
			return fmt.Errorf("opening rules: %w", err)
		}
		defer f.Close()
		if cfg.Rules, err = markdown.LoadRules(f); err != nil {
			return err
		}
	}
	switch {
	case *tabStop > 0:
		cfg.Options = append(cfg.Options, rich.WithTabStop(*tabStop))
	case *metrics == "cells":
		cfg.Options = append(cfg.Options, rich.WithTabStop(8))
	}
	if *uniWords {
		cfg.Options = append(cfg.Options, rich.WithWordBreaker(rich.UnicodeWords{}))
	}

	d, err := markdown.LayoutDocument(ctx, doc, cfg)
	if err != nil {
		return err
	}
	p := newPainter(*styled)
	for i, b := range d.Layouts {
		for _, l := range b.Lines() {
			fmt.Fprintln(w, p.line(b.Text(), l))
			if *dumpRange {
				for _, r := range l.Ranges {
					fmt.Fprintf(w, "\t%v\n", r)
				}
			}
		}
		if *links {
			for _, e := range markdown.Links(d.Blocks[i].Text).Entries() {
				start := d.Blocks[i].SourceRuneStart
				fmt.Fprintf(w, "\t#%d,#%d %s\n", start+e.Start, start+e.End, e.URL)
			}
		}
	}
	return nil
}

func readInput(name string) (string, error) {
	if name == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(b), nil
}

// openMetrics returns the metrics named by kind and a function releasing
// whatever backs them.
func openMetrics(kind string) (rich.Metrics, func(), error) {
	switch kind {
	case "cells":
		return rich.NewFontMetrics(draw.NewCells(*eastAsian)), func() {}, nil
	case "gofont":
		fam, err := draw.GoFonts(*fontSize, 72)
		if err != nil {
			return nil, nil, err
		}
		return rich.FamilyMetrics(fam), func() {}, nil
	case "plan9":
		p, err := draw.OpenPlan9(*fontName)
		if err != nil {
			return nil, nil, err
		}
		return rich.NewFontMetrics(p.DefaultFont()), func() { p.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown metrics %q", kind)
}

//go:build !duitdraw && !windows
// +build !duitdraw,!windows

package draw

import (
	"fmt"

	draw "9fans.net/go/draw"
)

type (
	drawDisplay = draw.Display
	drawFont    = draw.Font
)

var initDisplay = draw.Init

// Plan9 is a connection to devdraw used only to load bitmap fonts and
// read their metrics.
type Plan9 struct {
	display *drawDisplay
}

// OpenPlan9 connects to devdraw with fontname as the default font. An
// empty fontname selects devdraw's default.
func OpenPlan9(fontname string) (*Plan9, error) {
	d, err := initDisplay(nil, fontname, "mdblock", "1x1")
	if err != nil {
		return nil, fmt.Errorf("draw: connecting to devdraw: %w", err)
	}
	return &Plan9{display: d}, nil
}

// DefaultFont returns the font the display was opened with.
func (p *Plan9) DefaultFont() Font {
	return &fontImpl{p.display.DefaultFont}
}

// OpenFont loads the named Plan 9 font.
func (p *Plan9) OpenFont(name string) (Font, error) {
	f, err := p.display.OpenFont(name)
	if err != nil {
		return nil, fmt.Errorf("draw: opening font %q: %w", name, err)
	}
	return &fontImpl{f}, nil
}

// Close releases the devdraw connection.
func (p *Plan9) Close() error {
	return p.display.Close()
}

type fontImpl struct {
	*drawFont
}

func (f *fontImpl) Name() string { return f.drawFont.Name }
func (f *fontImpl) Height() int  { return f.drawFont.Height }

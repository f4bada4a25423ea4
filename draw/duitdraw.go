//go:build duitdraw || windows
// +build duitdraw windows

package draw

import (
	"fmt"

	draw "github.com/ktye/duitdraw"
)

type (
	drawDisplay = draw.Display
	drawFont    = draw.Font
)

var initDisplay = draw.Init

// Plan9 is a duitdraw display used only to load fonts and read their
// metrics.
type Plan9 struct {
	display *drawDisplay
}

// OpenPlan9 opens a duitdraw display with fontname as the default font.
func OpenPlan9(fontname string) (*Plan9, error) {
	d, err := initDisplay(nil, fontname, "mdblock", "1x1")
	if err != nil {
		return nil, fmt.Errorf("draw: opening display: %w", err)
	}
	return &Plan9{display: d}, nil
}

// DefaultFont returns the font the display was opened with.
func (p *Plan9) DefaultFont() Font {
	return &fontImpl{p.display.DefaultFont}
}

// OpenFont loads the named font.
func (p *Plan9) OpenFont(name string) (Font, error) {
	f, err := p.display.OpenFont(name)
	if err != nil {
		return nil, fmt.Errorf("draw: opening font %q: %w", name, err)
	}
	return &fontImpl{f}, nil
}

// Close drops the display.
func (p *Plan9) Close() error {
	p.display = nil
	return nil
}

type fontImpl struct {
	*drawFont
}

func (f *fontImpl) Name() string { return f.drawFont.Name }
func (f *fontImpl) Height() int  { return f.drawFont.Height }

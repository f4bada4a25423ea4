package draw

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Family is a set of font variants for one size.
type Family struct {
	Regular    Font
	Bold       Font
	Italic     Font
	BoldItalic Font
	Mono       Font
}

// GoFonts loads the Go font family at size points and dpi.
func GoFonts(size, dpi float64) (*Family, error) {
	load := func(name string, ttf []byte) (Font, error) {
		return OpenType(name, ttf, size, dpi)
	}
	var (
		fam Family
		err error
	)
	if fam.Regular, err = load("goregular", goregular.TTF); err != nil {
		return nil, err
	}
	if fam.Bold, err = load("gobold", gobold.TTF); err != nil {
		return nil, err
	}
	if fam.Italic, err = load("goitalic", goitalic.TTF); err != nil {
		return nil, err
	}
	if fam.BoldItalic, err = load("gobolditalic", gobolditalic.TTF); err != nil {
		return nil, err
	}
	if fam.Mono, err = load("gomono", gomono.TTF); err != nil {
		return nil, err
	}
	return &fam, nil
}

// OpenType parses an OpenType or TrueType font and returns a face of the
// given size.
func OpenType(name string, data []byte, size, dpi float64) (Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("draw: parsing %s: %w", name, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("draw: sizing %s at %gpt: %w", name, size, err)
	}
	return NewFace(fmt.Sprintf("%s/%g", name, size), face), nil
}

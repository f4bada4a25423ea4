package draw

import (
	"math"
	"testing"
)

func TestGoFonts(t *testing.T) {
	fam, err := GoFonts(12, 72)
	if err != nil {
		t.Fatalf("GoFonts: %v", err)
	}
	for name, f := range map[string]Font{
		"regular":    fam.Regular,
		"bold":       fam.Bold,
		"italic":     fam.Italic,
		"bolditalic": fam.BoldItalic,
		"mono":       fam.Mono,
	} {
		t.Run(name, func(t *testing.T) {
			if f.Height() <= 0 {
				t.Errorf("Height() = %d, want > 0", f.Height())
			}
			if got := f.StringWidth(""); got != 0 {
				t.Errorf("StringWidth(\"\") = %d, want 0", got)
			}
			m := Advance(f, "m")
			mm := Advance(f, "mm")
			if m <= 0 {
				t.Fatalf("Advance(m) = %v, want > 0", m)
			}
			if math.Abs(mm-2*m) > 1e-9 {
				t.Errorf("Advance(mm) = %v, want %v", mm, 2*m)
			}
			if got, want := f.StringWidth("hello"), int(math.Round(Advance(f, "hello"))); got != want {
				t.Errorf("StringWidth(hello) = %d, want %d", got, want)
			}
		})
	}
}

func TestGoMonoIsFixedPitch(t *testing.T) {
	fam, err := GoFonts(10, 96)
	if err != nil {
		t.Fatalf("GoFonts: %v", err)
	}
	if i, m := Advance(fam.Mono, "i"), Advance(fam.Mono, "m"); i != m {
		t.Errorf("mono advances differ: i=%v m=%v", i, m)
	}
	if i, m := Advance(fam.Regular, "i"), Advance(fam.Regular, "m"); i >= m {
		t.Errorf("regular advance of i (%v) should be narrower than m (%v)", i, m)
	}
}

func TestOpenTypeRejectsGarbage(t *testing.T) {
	if _, err := OpenType("junk", []byte("not a font"), 12, 72); err == nil {
		t.Error("OpenType accepted garbage")
	}
}

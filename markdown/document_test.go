package markdown

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rjkroege/mdblock/mdblocktest"
	"github.com/rjkroege/mdblock/rich"
)

func shown(b *rich.Block) []string {
	var out []string
	for _, l := range b.Lines() {
		var sb strings.Builder
		for _, r := range l.Runs(b.Text()) {
			sb.WriteString(r.Text)
		}
		out = append(out, sb.String())
	}
	return out
}

func TestLayoutDocument(t *testing.T) {
	doc := strings.Join([]string{
		"# Title",
		"Some **bold** text that wraps",
		"```",
		"code *x*",
		"```",
		"see [here](http://x.org)",
	}, "\n")
	d, err := LayoutDocument(context.Background(), doc, Config{
		Width:   12,
		Cursor:  -1,
		Metrics: rich.NewFontMetrics(mdblocktest.NewFont(1, 1)),
	})
	if err != nil {
		t.Fatalf("LayoutDocument: %v", err)
	}

	tests := []struct {
		line int
		want []string
	}{
		{0, []string{"Title"}},
		{1, []string{"Some bold ", "text that ", "wraps"}},
		{2, []string{strings.Repeat("_", 12)}},
		{3, []string{"code *x*"}},
		{5, []string{"see [here]"}},
	}
	for _, tt := range tests {
		got := shown(d.Layouts[tt.line])
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("line %d shows %q, want %q", tt.line, got, tt.want)
		}
	}
	if got, want := d.Lines(), 8; got != want {
		t.Errorf("Lines() = %d, want %d", got, want)
	}
	if ds := d.Diagnostics(); len(ds) > 0 {
		t.Errorf("unexpected diagnostics: %v", ds)
	}
	if got := d.LinkAt(strings.Index(doc, "[here]") + 1); got != "http://x.org" {
		t.Errorf("LinkAt = %q", got)
	}
}

func TestLayoutDocumentCursor(t *testing.T) {
	d, err := LayoutDocument(context.Background(), "# a\n# b", Config{
		Width:   20,
		Cursor:  1,
		Metrics: rich.NewFontMetrics(mdblocktest.NewFont(1, 1)),
	})
	if err != nil {
		t.Fatalf("LayoutDocument: %v", err)
	}
	if got := shown(d.Layouts[0]); got[0] != "a" {
		t.Errorf("line 0 shows %q, want markup hidden", got)
	}
	if got := shown(d.Layouts[1]); got[0] != "# b" {
		t.Errorf("cursor line shows %q, want markup", got)
	}
}

func TestLayoutDocumentErrors(t *testing.T) {
	metrics := rich.NewFontMetrics(mdblocktest.NewFont(1, 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := LayoutDocument(ctx, "a\nb", Config{Width: 10, Metrics: metrics}); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled layout returned %v", err)
	}
	if _, err := LayoutDocument(context.Background(), "a", Config{Width: 10}); err == nil {
		t.Error("layout without metrics succeeded")
	}
	if _, err := LayoutDocument(context.Background(), "a", Config{Width: 0, Metrics: metrics}); err == nil {
		t.Error("layout at zero width succeeded")
	}
}

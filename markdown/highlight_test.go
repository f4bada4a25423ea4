package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rjkroege/mdblock/rich"
)

func TestHighlight(t *testing.T) {
	def := rich.DefaultStyle()
	h1Italic := rich.StyleH1
	h1Italic.Italic = true
	code := def
	code.Code = true
	code.Bg = rich.InlineCodeBg
	link := def
	link.Link = true
	link.Fg = rich.LinkBlue

	tests := []struct {
		name  string
		block string
		kind  rich.BlockKind
		want  []rich.Span
	}{
		{
			name:  "empty",
			block: "",
		},
		{
			name:  "heading with emphasis",
			block: "# Hello *world*",
			want: []rich.Span{
				{Start: 0, Len: 8, Style: rich.StyleH1},
				{Start: 8, Len: 7, Style: h1Italic},
			},
		},
		{
			name:  "adjacent bold runs",
			block: "**bold1****bold2**",
			want: []rich.Span{
				{Start: 0, Len: 9, Style: rich.StyleBold},
				{Start: 9, Len: 9, Style: rich.StyleBold},
			},
		},
		{
			name:  "code, link and strikethrough",
			block: "a `b` [l](u) ~~s~~",
			want: []rich.Span{
				{Start: 0, Len: 2, Style: def},
				{Start: 2, Len: 3, Style: code},
				{Start: 5, Len: 1, Style: def},
				{Start: 6, Len: 6, Style: link},
				{Start: 12, Len: 1, Style: def},
				{Start: 13, Len: 5, Style: rich.StyleStrike},
			},
		},
		{
			name:  "bold and italic",
			block: "***x***",
			want:  []rich.Span{{Start: 0, Len: 7, Style: rich.Style{Bold: true, Italic: true, Scale: 1.0}}},
		},
		{
			name:  "unclosed bold is plain",
			block: "**open",
			want:  []rich.Span{{Start: 0, Len: 6, Style: def}},
		},
		{
			name:  "escaped sign is plain",
			block: `\*no*`,
			want:  []rich.Span{{Start: 0, Len: 5, Style: def}},
		},
		{
			name:  "code block",
			block: "# **x**",
			kind:  rich.Code,
			want:  []rich.Span{{Start: 0, Len: 7, Style: rich.StyleCode}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlight(tt.block, tt.kind)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Highlight(%q) mismatch (-want +got):\n%s", tt.block, diff)
			}
		})
	}
}

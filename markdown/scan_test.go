package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/rjkroege/mdblock/rich"
)

func TestScan(t *testing.T) {
	removed := func(start, n int, rule string) rich.Directive {
		return rich.Directive{Start: start, Len: n, Transform: rich.Removed, Rule: rule}
	}
	tests := []struct {
		name string
		text string
		kind rich.BlockKind
		want []rich.Directive
	}{
		{
			name: "heading prefix",
			text: "# Hello *world*",
			want: []rich.Directive{removed(0, 2, "heading")},
		},
		{
			name: "deeper heading",
			text: "### Title",
			want: []rich.Directive{removed(0, 4, "heading")},
		},
		{
			name: "thematic break",
			text: "***",
			want: []rich.Directive{{Start: 0, Len: 3, Transform: rich.Replaced, Replacement: "_", Fill: true, Rule: "thematic-break"}},
		},
		{
			name: "fence",
			text: "```go",
			kind: rich.Code,
			want: []rich.Directive{{Start: 0, Len: 5, Transform: rich.Replaced, Replacement: "_", Fill: true, Rule: "fence"}},
		},
		{
			name: "code block content is left alone",
			text: "# **x** `y` $z$",
			kind: rich.Code,
		},
		{
			name: "link target with nested parens",
			text: "[a](b(c)d) x",
			want: []rich.Directive{removed(3, 7, "link-target")},
		},
		{
			name: "unclosed link target",
			text: "[a](b",
		},
		{
			name: "inline code delimiters",
			text: "a `b` c",
			want: []rich.Directive{removed(2, 1, "inline-code"), removed(4, 1, "inline-code")},
		},
		{
			name: "escaped backtick",
			text: "\\`x` y",
			want: []rich.Directive{removed(3, 1, "inline-code")},
		},
		{
			name: "math",
			text: "cost $x^2$ here",
			want: []rich.Directive{{Start: 5, Len: 5, Transform: rich.Blanked, Rule: "math"}},
		},
		{
			name: "rune offsets",
			text: "中文 `x`",
			want: []rich.Directive{removed(3, 1, "inline-code"), removed(5, 1, "inline-code")},
		},
		{
			name: "sorted across rules",
			text: "# [a](b) `c`",
			want: []rich.Directive{
				removed(0, 2, "heading"),
				removed(5, 3, "link-target"),
				removed(9, 1, "inline-code"),
				removed(11, 1, "inline-code"),
			},
		},
	}

	s := DefaultScanner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Scan([]rune(tt.text), tt.kind)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Scan(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestRuneOffsets(t *testing.T) {
	got := runeOffsets("a中b")
	want := []int{0, 1, 1, 1, 2, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("runeOffsets mismatch (-want +got):\n%s", diff)
	}
}

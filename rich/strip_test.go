package rich

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStripStyles(t *testing.T) {
	boldItalic := Style{Bold: true, Italic: true, Scale: 1.0}
	tests := []struct {
		name string
		text string
		in   []Range
		want []Range
	}{
		{
			name: "bold",
			text: "**bold**",
			in:   []Range{{Start: 0, Len: 8, Style: StyleBold}},
			want: []Range{
				{Start: 0, Len: 2, Style: StyleBold, Transform: Removed},
				{Start: 2, Len: 4, Style: StyleBold},
				{Start: 6, Len: 2, Style: StyleBold, Transform: Removed},
			},
		},
		{
			name: "italic",
			text: "*world*",
			in:   []Range{{Start: 0, Len: 7, Style: StyleItalic}},
			want: []Range{
				{Start: 0, Len: 1, Style: StyleItalic, Transform: Removed},
				{Start: 1, Len: 5, Style: StyleItalic},
				{Start: 6, Len: 1, Style: StyleItalic, Transform: Removed},
			},
		},
		{
			name: "strikethrough",
			text: "~~gone~~",
			in:   []Range{{Start: 0, Len: 8, Style: StyleStrike}},
			want: []Range{
				{Start: 0, Len: 2, Style: StyleStrike, Transform: Removed},
				{Start: 2, Len: 4, Style: StyleStrike},
				{Start: 6, Len: 2, Style: StyleStrike, Transform: Removed},
			},
		},
		{
			name: "bold and italic",
			text: "***x***",
			in:   []Range{{Start: 0, Len: 7, Style: boldItalic}},
			want: []Range{
				{Start: 0, Len: 2, Style: boldItalic, Transform: Removed},
				{Start: 2, Len: 1, Style: boldItalic, Transform: Removed},
				{Start: 3, Len: 1, Style: boldItalic},
				{Start: 4, Len: 1, Style: boldItalic, Transform: Removed},
				{Start: 5, Len: 2, Style: boldItalic, Transform: Removed},
			},
		},
		{
			name: "adjacent bold runs",
			text: "**bold1****bold2**",
			in:   []Range{{Start: 0, Len: 18, Style: StyleBold}},
			want: []Range{
				{Start: 0, Len: 2, Style: StyleBold, Transform: Removed},
				{Start: 2, Len: 5, Style: StyleBold},
				{Start: 7, Len: 4, Style: StyleBold, Transform: Removed},
				{Start: 11, Len: 5, Style: StyleBold},
				{Start: 16, Len: 2, Style: StyleBold, Transform: Removed},
			},
		},
		{
			name: "only signs",
			text: "**",
			in:   []Range{{Start: 0, Len: 2, Style: StyleBold}},
			want: []Range{{Start: 0, Len: 2, Style: StyleBold, Transform: Removed}},
		},
		{
			name: "opening sign only",
			text: "**open",
			in:   []Range{{Start: 0, Len: 6, Style: StyleBold}},
			want: []Range{
				{Start: 0, Len: 2, Style: StyleBold, Transform: Removed},
				{Start: 2, Len: 4, Style: StyleBold},
			},
		},
		{
			name: "unstyled and removed ranges are left alone",
			text: "# **x**",
			in: []Range{
				{Start: 0, Len: 2, Style: StyleBold, Transform: Removed},
				{Start: 2, Len: 5, Style: DefaultStyle()},
			},
			want: []Range{
				{Start: 0, Len: 2, Style: StyleBold, Transform: Removed},
				{Start: 2, Len: 5, Style: DefaultStyle()},
			},
		},
		{
			name: "no sign",
			text: "bold",
			in:   []Range{{Start: 0, Len: 4, Style: StyleBold}},
			want: []Range{{Start: 0, Len: 4, Style: StyleBold}},
		},
		{
			name: "blanked keeps its transform",
			text: "*$x$*",
			in:   []Range{{Start: 0, Len: 5, Style: StyleItalic, Transform: Blanked}},
			want: []Range{
				{Start: 0, Len: 1, Style: StyleItalic, Transform: Removed},
				{Start: 1, Len: 3, Style: StyleItalic, Transform: Blanked},
				{Start: 4, Len: 1, Style: StyleItalic, Transform: Removed},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := []rune(tt.text)
			got := StripStyles(text, tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("StripStyles mismatch (-want +got):\n%s", diff)
			}
			if ds := CheckPartition(got, len(text)); len(ds) > 0 {
				t.Errorf("CheckPartition: %v", ds)
			}
		})
	}
}

func TestStripStylesVisibleText(t *testing.T) {
	text := []rune("# Hello *world*")
	rs := Partition(text, []Span{{Start: 8, Len: 7, Style: StyleItalic}}, DefaultStyle(),
		[]Directive{{Start: 0, Len: 2, Transform: Removed}})
	rs = StripStyles(text, rs)

	want := []Range{
		{Start: 0, Len: 2, Style: DefaultStyle(), Transform: Removed},
		{Start: 2, Len: 6, Style: DefaultStyle()},
		{Start: 8, Len: 1, Style: StyleItalic, Transform: Removed},
		{Start: 9, Len: 5, Style: StyleItalic},
		{Start: 14, Len: 1, Style: StyleItalic, Transform: Removed},
	}
	if diff := cmp.Diff(want, rs); diff != "" {
		t.Errorf("ranges mismatch (-want +got):\n%s", diff)
	}

	var shown string
	for _, r := range rs {
		shown += r.Shown(text)
	}
	if got, want := shown, "Hello world"; got != want {
		t.Errorf("shown text = %q, want %q", got, want)
	}
}

package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rjkroege/mdblock/rich"
)

func TestClassify(t *testing.T) {
	doc := "# T\n\ntext\n```go\n# not heading\n```\n---"
	want := []BlockInfo{
		{Line: 0, SourceRuneStart: 0, SourceRuneEnd: 3, Text: "# T", Type: BlockHeading},
		{Line: 1, SourceRuneStart: 4, SourceRuneEnd: 4, Text: "", Type: BlockBlankLine},
		{Line: 2, SourceRuneStart: 5, SourceRuneEnd: 9, Text: "text", Type: BlockParagraph},
		{Line: 3, SourceRuneStart: 10, SourceRuneEnd: 15, Text: "```go", Type: BlockFencedCode, Kind: rich.Code},
		{Line: 4, SourceRuneStart: 16, SourceRuneEnd: 29, Text: "# not heading", Type: BlockFencedCode, Kind: rich.Code},
		{Line: 5, SourceRuneStart: 30, SourceRuneEnd: 33, Text: "```", Type: BlockFencedCode, Kind: rich.Code},
		{Line: 6, SourceRuneStart: 34, SourceRuneEnd: 37, Text: "---", Type: BlockHRule},
	}
	if diff := cmp.Diff(want, Classify(doc)); diff != "" {
		t.Errorf("Classify mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyFences(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []rich.BlockKind
	}{
		{"unclosed fence runs to the end", "a\n```\nb\nc", []rich.BlockKind{rich.Prose, rich.Code, rich.Code, rich.Code}},
		{"shorter fence does not close", "````\n```\nx\n````\ny", []rich.BlockKind{rich.Code, rich.Code, rich.Code, rich.Code, rich.Prose}},
		{"inline backticks are not a fence", "``` x ```\ny", []rich.BlockKind{rich.Prose, rich.Prose}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []rich.BlockKind
			for _, b := range Classify(tt.doc) {
				got = append(got, b.Kind)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("kinds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

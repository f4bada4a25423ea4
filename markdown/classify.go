package markdown

import (
	"strings"
	"unicode/utf8"

	"github.com/rjkroege/mdblock/rich"
)

// BlockType identifies the kind of markdown block.
type BlockType int

const (
	BlockParagraph BlockType = iota
	BlockFencedCode
	BlockHeading
	BlockHRule
	BlockBlankLine
)

func (t BlockType) String() string {
	switch t {
	case BlockParagraph:
		return "paragraph"
	case BlockFencedCode:
		return "code"
	case BlockHeading:
		return "heading"
	case BlockHRule:
		return "rule"
	case BlockBlankLine:
		return "blank"
	}
	return "unknown"
}

// BlockInfo records the source extent of a block. Every line of a
// document is one block.
type BlockInfo struct {
	Line            int // line index (0-based)
	SourceRuneStart int // first rune position in source
	SourceRuneEnd   int // rune position after the block, before its newline
	Text            string
	Type            BlockType
	Kind            rich.BlockKind
}

// Classify splits doc into blocks and marks fenced code, including the
// fence lines themselves. An unclosed fence runs to the end of the
// document.
func Classify(doc string) []BlockInfo {
	lines := strings.Split(doc, "\n")
	blocks := make([]BlockInfo, 0, len(lines))

	runePos := 0
	fence := 0 // backtick count of the open fence, 0 outside code
	for i, line := range lines {
		n := utf8.RuneCountInString(line)
		b := BlockInfo{
			Line:            i,
			SourceRuneStart: runePos,
			SourceRuneEnd:   runePos + n,
			Text:            line,
		}
		runePos += n + 1

		switch {
		case fence > 0:
			b.Type, b.Kind = BlockFencedCode, rich.Code
			if isClosingFence(line, fence) {
				fence = 0
			}
		case openingFence(line) > 0:
			b.Type, b.Kind = BlockFencedCode, rich.Code
			fence = openingFence(line)
		case strings.TrimSpace(line) == "":
			b.Type = BlockBlankLine
		case headingLevel([]rune(line)) > 0:
			b.Type = BlockHeading
		case isHRule(line):
			b.Type = BlockHRule
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// openingFence returns the backtick count of a fence line ("```" and an
// optional info word), or 0.
func openingFence(line string) int {
	n := len(line) - len(strings.TrimLeft(line, "`"))
	if n < 3 || strings.ContainsAny(line[n:], " \t`") {
		return 0
	}
	return n
}

// isClosingFence reports whether line closes a fence opened with n
// backticks.
func isClosingFence(line string, n int) bool {
	m := len(line) - len(strings.TrimLeft(line, "`"))
	return m >= n && strings.TrimSpace(line[m:]) == ""
}

func isHRule(line string) bool {
	return len(line) >= 3 && strings.Trim(line, "*-") == ""
}

package markdown

import (
	"github.com/rjkroege/mdblock/rich"
)

// headingStyles holds the style of heading levels 1 to 6.
var headingStyles = [...]rich.Style{
	rich.StyleH1,
	rich.StyleH2,
	rich.StyleH3,
	rich.StyleBold,
	rich.StyleBold,
	rich.StyleBold,
}

// Highlight returns the formatting spans of one block, the way a syntax
// highlighter reports them: the spans cover the whole block and include
// the markup signs. Code blocks are one code span; headings style their
// whole line.
func Highlight(block string, kind rich.BlockKind) []rich.Span {
	text := []rune(block)
	if len(text) == 0 {
		return nil
	}
	if kind == rich.Code {
		return []rich.Span{{Start: 0, Len: len(text), Style: rich.StyleCode}}
	}
	base := rich.DefaultStyle()
	if level := headingLevel(text); level > 0 {
		base = headingStyles[level-1]
	}
	return highlightInline(text, base)
}

// headingLevel returns the ATX heading level of text, or 0.
func headingLevel(text []rune) int {
	n := 0
	for n < len(text) && text[n] == '#' {
		n++
	}
	if n == 0 || n > len(headingStyles) || n == len(text) || text[n] != ' ' {
		return 0
	}
	return n
}

// highlightInline styles inline code, links, strikethrough, bold and
// italic runs within text. Runs that match nothing get baseStyle.
func highlightInline(text []rune, baseStyle rich.Style) []rich.Span {
	var spans []rich.Span
	plain := 0 // start of the pending plain run

	emit := func(start, end int, s rich.Style) {
		if start > plain {
			spans = append(spans, rich.Span{Start: plain, Len: start - plain, Style: baseStyle})
		}
		spans = append(spans, rich.Span{Start: start, Len: end - start, Style: s})
		plain = end
	}

	for i := 0; i < len(text); {
		// 1. Escaped character
		if text[i] == '\\' {
			i += 2
			continue
		}

		// 2. Link or image: [text](url), ![alt](url)
		if text[i] == '[' {
			if end := linkEnd(text, i); end > 0 {
				start := i
				if i > 0 && text[i-1] == '!' && i-1 >= plain {
					start = i - 1
				}
				s := baseStyle
				s.Fg = rich.LinkBlue
				s.Link = true
				emit(start, end, s)
				i = end
				continue
			}
		}

		// 3. Inline code: `text`
		if text[i] == '`' {
			if end := indexFrom(text, i+1, "`"); end >= 0 {
				s := baseStyle
				s.Bg = rich.InlineCodeBg
				s.Code = true
				emit(i, end+1, s)
				i = end + 1
				continue
			}
		}

		// 4. Strikethrough: ~~text~~
		if hasPrefixAt(text, i, "~~") {
			if end := indexFrom(text, i+2, "~~"); end >= 0 {
				s := baseStyle
				s.Strike = true
				emit(i, end+2, s)
				i = end + 2
				continue
			}
		}

		// 5. Bold+italic: ***text***
		if hasPrefixAt(text, i, "***") {
			if end := indexFrom(text, i+3, "***"); end >= 0 {
				s := baseStyle
				s.Bold = true
				s.Italic = true
				emit(i, end+3, s)
				i = end + 3
				continue
			}
		}

		// 6. Bold: **text**
		if hasPrefixAt(text, i, "**") {
			if end := indexFrom(text, i+2, "**"); end >= 0 {
				s := baseStyle
				s.Bold = true
				emit(i, end+2, s)
				i = end + 2
				continue
			}
			// No closing ** found, treat as literal
			i += 2
			continue
		}

		// 7. Italic: *text*
		if text[i] == '*' {
			if end := indexFrom(text, i+1, "*"); end > i+1 {
				s := baseStyle
				s.Italic = true
				emit(i, end+1, s)
				i = end + 1
				continue
			}
		}

		// 8. Regular character
		i++
	}

	if plain < len(text) {
		spans = append(spans, rich.Span{Start: plain, Len: len(text) - plain, Style: baseStyle})
	}
	return spans
}

// linkEnd returns the end of the link starting with the "[" at i, or -1.
func linkEnd(text []rune, i int) int {
	rb := indexFrom(text, i+1, "]")
	if rb < 0 || rb+1 >= len(text) || text[rb+1] != '(' {
		return -1
	}
	end := matchParen(text, rb+1)
	if end < 0 {
		return -1
	}
	return end + 1
}

// indexFrom returns the index of the first unescaped sep in text at or
// after i, or -1.
func indexFrom(text []rune, i int, sep string) int {
	for ; i < len(text); i++ {
		if text[i] == '\\' {
			i++
			continue
		}
		if hasPrefixAt(text, i, sep) {
			return i
		}
	}
	return -1
}

func hasPrefixAt(text []rune, i int, prefix string) bool {
	for _, r := range prefix {
		if i >= len(text) || text[i] != r {
			return false
		}
		i++
	}
	return true
}

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rjkroege/mdblock/rich"
)

// painter renders the runs of a line as terminal text.
type painter struct {
	styled bool
}

func newPainter(styled bool) painter {
	return painter{styled: styled}
}

func (p painter) line(text []rune, l rich.Line) string {
	var sb strings.Builder
	for _, r := range l.Runs(text) {
		s := r.Text
		switch {
		case r.Hidden:
			s = strings.Repeat(" ", len([]rune(r.Range.Text(text))))
		case r.Range.Tab:
			s = strings.Repeat(" ", max(1, int(r.Width)))
		}
		if p.styled {
			s = terminalStyle(r.Style).Render(s)
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// terminalStyle maps a rich style onto lipgloss. Scale has no terminal
// equivalent; scaled text is shown bold.
func terminalStyle(s rich.Style) lipgloss.Style {
	ts := lipgloss.NewStyle().
		Bold(s.Bold || s.Scale > 1).
		Italic(s.Italic).
		Strikethrough(s.Strike).
		Underline(s.Link)
	if s.Fg != 0 {
		ts = ts.Foreground(hexColor(s.Fg))
	}
	if s.Bg != 0 {
		ts = ts.Background(hexColor(s.Bg))
	}
	return ts
}

func hexColor(c rich.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06X", uint32(c)>>8))
}

package rich

import (
	"fmt"
	"log/slog"
)

// DiagKind classifies a layout inconsistency.
type DiagKind int

const (
	DiagGap        DiagKind = iota // ranges leave part of the text uncovered
	DiagOverlap                    // ranges cover part of the text twice
	DiagStart                      // a line does not begin where the previous one ended
	DiagOverBudget                 // a placed split is wider than the space left
	DiagOverflow                   // content was placed on a line too narrow for it
)

func (k DiagKind) String() string {
	switch k {
	case DiagGap:
		return "gap"
	case DiagOverlap:
		return "overlap"
	case DiagStart:
		return "start"
	case DiagOverBudget:
		return "over-budget"
	case DiagOverflow:
		return "overflow"
	}
	return fmt.Sprintf("DiagKind(%d)", int(k))
}

// Diagnostic reports an inconsistency that layout recovered from. None
// of them stop layout; they are returned so callers can log or assert.
type Diagnostic struct {
	Kind   DiagKind
	Offset int // rune offset in the block text
	Msg    string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at %d: %s", d.Kind, d.Offset, d.Msg)
}

func diagf(kind DiagKind, off int, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: kind, Offset: off, Msg: fmt.Sprintf(format, args...)}
}

func logDiagnostics(l *slog.Logger, ds []Diagnostic) {
	for _, d := range ds {
		l.Warn("layout inconsistency", "kind", d.Kind.String(), "offset", d.Offset, "msg", d.Msg)
	}
}

// Package mdblocktest contains utility functions that help with testing
// block layout.
package mdblocktest

import (
	"unicode/utf8"

	"github.com/rjkroege/mdblock/draw"
)

var _ = draw.Font((*mockFont)(nil))

// mockFont implements draw.Font and mocks as a fixed width font.
type mockFont struct {
	width, height int
	wide          map[rune]int
}

// NewFont returns a draw.Font that mocks a fixed-width font.
func NewFont(width, height int) draw.Font {
	return &mockFont{
		width:  width,
		height: height,
	}
}

// NewWideFont returns a mock font that is width wide except for the
// runes listed in wide.
func NewWideFont(width, height int, wide map[rune]int) draw.Font {
	return &mockFont{
		width:  width,
		height: height,
		wide:   wide,
	}
}

func (f *mockFont) Name() string            { return "mock" }
func (f *mockFont) Height() int             { return f.height }
func (f *mockFont) BytesWidth(b []byte) int { return f.StringWidth(string(b)) }
func (f *mockFont) RunesWidth(r []rune) int { return f.StringWidth(string(r)) }

func (f *mockFont) StringWidth(s string) int {
	if f.wide == nil {
		return f.width * utf8.RuneCountInString(s)
	}
	w := 0
	for _, r := range s {
		if rw, ok := f.wide[r]; ok {
			w += rw
		} else {
			w += f.width
		}
	}
	return w
}

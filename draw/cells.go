package draw

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Cells measures text in terminal cells. East Asian wide runes take two
// cells and combining marks none.
type Cells struct {
	cond *runewidth.Condition
}

var _ Font = (*Cells)(nil)

// NewCells returns a cell font. When eastAsian is set, ambiguous width
// runes take two cells.
func NewCells(eastAsian bool) *Cells {
	c := runewidth.NewCondition()
	c.EastAsianWidth = eastAsian
	return &Cells{cond: c}
}

func (c *Cells) Name() string { return "cells" }
func (c *Cells) Height() int  { return 1 }

func (c *Cells) BytesWidth(b []byte) int {
	w := 0
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		w += c.cond.RuneWidth(r)
	}
	return w
}

func (c *Cells) RunesWidth(r []rune) int {
	w := 0
	for _, x := range r {
		w += c.cond.RuneWidth(x)
	}
	return w
}

func (c *Cells) StringWidth(s string) int {
	return c.cond.StringWidth(s)
}

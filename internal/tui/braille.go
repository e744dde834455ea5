// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tui

import "strings"

// brailleDots maps a micro-pixel (column, row) inside a cell to its bit in
// the Unicode braille pattern block (U+2800).
var brailleDots = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// brailleBuf is a w×h grid of terminal cells, each holding 2×4 dots.
type brailleBuf struct {
	w, h int
	m    []uint8
}

func newBrailleBuf(w, h int) *brailleBuf {
	w, h = max(w, 0), max(h, 0)
	return &brailleBuf{w: w, h: h, m: make([]uint8, w*h)}
}

// set turns on the dot at micro coordinates. Dots off the grid are ignored.
func (b *brailleBuf) set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.m[cy*b.w+cx] |= brailleDots[mx%2][my%4]
}

// dots returns the number of dots that are on.
func (b *brailleBuf) dots() int {
	var n int
	for _, c := range b.m {
		for ; c != 0; c &= c - 1 {
			n++
		}
	}
	return n
}

// line draws a Bresenham line between two micro points. Lines lying fully
// off one side of the grid are skipped without walking them.
func (b *brailleBuf) line(x0, y0, x1, y1 int) {
	mw, mh := b.w*2, b.h*4
	if (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) || (x0 >= mw && x1 >= mw) || (y0 >= mh && y1 >= mh) {
		return
	}
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// String renders the grid, one line per cell row.
func (b *brailleBuf) String() string {
	var sb strings.Builder
	sb.Grow(b.h * (b.w*3 + 1))
	for y := range b.h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, mask := range b.m[y*b.w : (y+1)*b.w] {
			if mask == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune(rune(0x2800 + int(mask)))
			}
		}
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

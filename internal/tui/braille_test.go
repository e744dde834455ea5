// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tui

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBrailleSet(t *testing.T) {
	tests := []struct {
		mx, my int
		want   rune
	}{
		{0, 0, '⠁'},
		{0, 3, '⡀'},
		{1, 0, '⠈'},
		{1, 3, '⢀'},
	}
	for _, tt := range tests {
		b := newBrailleBuf(1, 1)
		b.set(tt.mx, tt.my)
		if got := b.String(); got != string(tt.want) {
			t.Errorf("set(%d,%d) = %q, want %q", tt.mx, tt.my, got, tt.want)
		}
	}

	full := newBrailleBuf(1, 1)
	for x := range 2 {
		for y := range 4 {
			full.set(x, y)
		}
	}
	if full.String() != "⣿" {
		t.Errorf("full cell = %q, want ⣿", full.String())
	}
}

func TestBrailleOffGrid(t *testing.T) {
	b := newBrailleBuf(2, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 8}, {100, 100}} {
		b.set(p[0], p[1])
	}
	if b.dots() != 0 {
		t.Errorf("off-grid dots were set: %d", b.dots())
	}
}

func TestBrailleLine(t *testing.T) {
	b := newBrailleBuf(5, 2)
	b.line(0, 1, 9, 1)
	if b.dots() != 10 {
		t.Errorf("horizontal line has %d dots, want 10", b.dots())
	}

	d := newBrailleBuf(4, 2)
	d.line(0, 0, 7, 7)
	if d.dots() != 8 {
		t.Errorf("diagonal has %d dots, want 8", d.dots())
	}

	off := newBrailleBuf(4, 2)
	off.line(-50, -3, 50, -1)
	if off.dots() != 0 {
		t.Error("line above the grid drew dots")
	}
}

func TestBrailleString(t *testing.T) {
	b := newBrailleBuf(3, 2)
	lines := strings.Split(b.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, l := range lines {
		if utf8.RuneCountInString(l) != 3 {
			t.Errorf("line %q has %d cells, want 3", l, utf8.RuneCountInString(l))
		}
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		ok             bool
	}{
		{"inside", 1, 1, 5, 5, true},
		{"crossing", -10, 5, 20, 5, true},
		{"outside left", -5, 0, -1, 9, false},
		{"outside below", 0, 12, 9, 15, false},
		{"huge", -1e12, 5, 1e12, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1, ok := clip(tt.x0, tt.y0, tt.x1, tt.y1, 10, 10)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			for _, v := range []float64{x0, y0, x1, y1} {
				if v < 0 || v >= 10 {
					t.Errorf("clipped coordinate %v outside [0,10)", v)
				}
			}
		})
	}
}

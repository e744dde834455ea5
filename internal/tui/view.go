// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/raster"
)

// View renders the header, the figure, the optional preset list and the
// footer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	w, h := m.mapSize()

	header := lipgloss.NewStyle().Width(m.width).Render(titleStyle.Render(m.title()))

	figure := lipgloss.NewStyle().Width(w).Height(h).MaxHeight(h).
		Render(figureStyle.Render(m.render(w, h)))
	body := figure
	if m.showList {
		side := listStyle.Width(sidebarWidth - 2).Height(h - 2).Render(m.l.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, side, " ", figure)
	}

	status := dimStyle.Render(" " + m.status + " ")
	switch {
	case m.err != nil:
		status = errorStyle.Render(" " + m.err.Error() + " ")
	case m.building:
		status = dimStyle.Render(" building… ")
	}
	footer := lipgloss.NewStyle().Width(m.width).MaxHeight(footerHeight).
		Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(m.width).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	keys := []string{
		"1/2 zoom",
		"wasd pan",
		"z/x depth",
		"m mode",
		"f fit",
		"tab presets",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}

// render draws the sprite into a w×h cell braille grid.
func (m Model) render(w, h int) string {
	if m.preset().IsField() {
		return m.renderField(w, h)
	}
	buf := newBrailleBuf(w, h)
	if m.sprite.IsEmpty() || m.view.Step <= 0 {
		return buf.String()
	}
	mw, mh := w*2, h*4
	toMicro := func(x, y float64) (float64, float64) {
		return m.view.ToPixel(x, y, mw, mh)
	}
	seg := func(x0, y0, x1, y1 float64) {
		x0, y0, x1, y1, ok := clip(x0, y0, x1, y1, float64(mw), float64(mh))
		if ok {
			buf.line(int(x0), int(y0), int(x1), int(y1))
		}
	}

	mode, _ := m.scene.DrawMode()
	switch mode {
	case raster.Points:
		for _, p := range m.sprite.All() {
			x, y := toMicro(p.X(), p.Y())
			if x >= 0 && y >= 0 && x < float64(mw) && y < float64(mh) {
				buf.set(int(x), int(y))
			}
		}
	case raster.Segments:
		for a, b := range m.sprite.Segments() {
			x0, y0 := toMicro(a.X(), a.Y())
			x1, y1 := toMicro(b.X(), b.Y())
			seg(x0, y0, x1, y1)
		}
	case raster.Polyline:
		var px, py float64
		for i, p := range m.sprite.All() {
			x, y := toMicro(p.X(), p.Y())
			if i > 0 {
				seg(px, py, x, y)
			}
			px, py = x, y
		}
	}
	return buf.String()
}

// renderField sets every braille dot whose center lies in the escape-time
// set.
func (m Model) renderField(w, h int) string {
	key := fieldKey{view: m.view, w: w, h: h, depth: m.scene.Depth}
	if m.field != nil && m.field.ok && m.field.key == key {
		return m.field.out
	}
	buf := newBrailleBuf(w, h)
	if m.view.Step > 0 {
		mw, mh := w*2, h*4
		for py := range mh {
			for px := range mw {
				x, y := m.view.ToWorld(float64(px)+0.5, float64(py)+0.5, mw, mh)
				if fractal.Bounded(x, y, m.scene.Depth) {
					buf.set(px, py)
				}
			}
		}
	}
	out := buf.String()
	if m.field != nil {
		*m.field = fieldCache{key: key, out: out, ok: true}
	}
	return out
}

// clip trims the segment to [0,w)×[0,h) with the Liang-Barsky algorithm.
func clip(x0, y0, x1, y1, w, h float64) (float64, float64, float64, float64, bool) {
	const inset = 1e-6
	xmax, ymax := w-inset, h-inset
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-dx, x0},
		{dx, xmax - x0},
		{-dy, y0},
		{dy, ymax - y0},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

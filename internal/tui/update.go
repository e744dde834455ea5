// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tui

import (
	"fmt"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/config"
	"github.com/gogpu/fractal/raster"
)

var modes = []raster.Mode{raster.Points, raster.Segments, raster.Polyline}

// Update handles window, key and build messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.l.SetSize(sidebarWidth-2, max(m.height-headerHeight-footerHeight-2, 1))
		if !m.fitted {
			m.fit()
		}
		return m, nil

	case builtMsg:
		if msg.key != config.KeyOf(m.scene) {
			// A newer request is in flight.
			return m, nil
		}
		m.building = false
		if msg.err != nil {
			m.err = msg.err
			m.status = "build failed"
			return m, nil
		}
		m.err = nil
		m.sprite = msg.sprite
		if !m.fitted {
			m.fit()
		}
		m.status = fmt.Sprintf("%d rows in %s", m.sprite.Len(), msg.elapsed.Round(time.Millisecond))
		return m, nil

	case tea.KeyMsg:
		if m.showList {
			return m.updateList(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "1":
		m.view = m.view.Zoom(zoomIn)
		m.status = fmt.Sprintf("step %.3g", m.view.Step)
	case "2":
		m.view = m.view.Zoom(zoomOut)
		m.status = fmt.Sprintf("step %.3g", m.view.Step)
	case "w":
		m.view = m.view.Pan(0, panSteps)
	case "s":
		m.view = m.view.Pan(0, -panSteps)
	case "a":
		m.view = m.view.Pan(-panSteps, 0)
	case "d":
		m.view = m.view.Pan(panSteps, 0)
	case "z":
		p := m.preset()
		if m.scene.Depth >= p.MaxDepth {
			m.status = fmt.Sprintf("depth %d is the limit for %s", m.scene.Depth, m.scene.Preset)
			return m, nil
		}
		if p.IsField() {
			m.scene.Depth = min(max(int(float64(m.scene.Depth)*deepen), m.scene.Depth+1), p.MaxDepth)
		} else {
			m.scene.Depth++
		}
		cmd := m.build()
		return m, cmd
	case "x":
		if m.scene.Depth == 0 {
			return m, nil
		}
		if m.preset().IsField() {
			m.scene.Depth = int(float64(m.scene.Depth) * shallow)
		} else {
			m.scene.Depth--
		}
		cmd := m.build()
		return m, cmd
	case "m":
		mode, _ := m.scene.DrawMode()
		next := modes[(int(mode)+1)%len(modes)]
		m.scene.Mode = next.String()
		m.status = "mode " + m.scene.Mode
	case "f":
		m.fit()
	case "tab":
		m.showList = true
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.l.FilterState() != list.Filtering {
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab", "esc":
			m.showList = false
			return m, nil
		case "enter":
			m.showList = false
			it, ok := m.l.SelectedItem().(presetItem)
			if !ok || it.p.Name == m.scene.Preset {
				return m, nil
			}
			scene, err := m.scene.WithPreset(it.p.Name)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.scene = scene
			m.fitted = false
			m.sprite = fractal.Sprite{}
			cmd := m.build()
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.l, cmd = m.l.Update(msg)
	return m, cmd
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tui is a terminal previewer for fractal scenes. The current scene
// is drawn into a braille dot grid and can be panned, zoomed and deepened
// from the keyboard.
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

const (
	sidebarWidth = 32
	headerHeight = 1
	footerHeight = 1

	zoomIn   = 0.75
	zoomOut  = 1.25
	panSteps = 50

	// Field presets grow and shrink their iteration limit by these factors.
	deepen  = 1.25
	shallow = 0.75

	fitMargin = 2
)

type presetItem struct{ p config.Preset }

func (i presetItem) Title() string       { return i.p.Name }
func (i presetItem) Description() string { return i.p.Description }
func (i presetItem) FilterValue() string { return i.p.Name }

// builtMsg carries a finished build back to Update.
type builtMsg struct {
	key     config.Key
	sprite  fractal.Sprite
	err     error
	elapsed time.Duration
}

// Model is the bubbletea model of the previewer.
type Model struct {
	width  int
	height int

	scene   config.Scene
	builder *config.Builder

	sprite   fractal.Sprite
	view     raster.Viewport
	fitted   bool
	building bool

	showList bool
	l        list.Model

	status string
	err    error

	field *fieldCache
}

// fieldKey identifies a rendered escape-time field.
type fieldKey struct {
	view  raster.Viewport
	w, h  int
	depth int
}

// fieldCache holds the last rendered field.
type fieldCache struct {
	key fieldKey
	out string
	ok  bool
}

// New returns a model showing scene. Sprites are built through builder so
// that revisiting a depth or preset is instant.
func New(scene config.Scene, builder *config.Builder) Model {
	items := make([]list.Item, 0, len(config.Presets()))
	for _, p := range config.Presets() {
		items = append(items, presetItem{p})
	}
	d := list.NewDefaultDelegate()
	l := list.New(items, d, sidebarWidth-2, 10)
	l.Title = "Presets"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	for i, it := range items {
		if it.(presetItem).p.Name == scene.Preset {
			l.Select(i)
		}
	}

	return Model{
		scene:   scene,
		builder: builder,
		view:    raster.Viewport{CenterX: scene.View.CenterX, CenterY: scene.View.CenterY, Step: scene.View.Step},
		fitted:  scene.View.Step > 0,
		l:       l,
		status:  "fractal ready",
		field:   &fieldCache{},
	}
}

// Init starts building the initial scene.
func (m Model) Init() tea.Cmd { return m.build() }

// Scene returns the scene being shown.
func (m Model) Scene() config.Scene { return m.scene }

// Viewport returns the current view.
func (m Model) Viewport() raster.Viewport { return m.view }

func (m *Model) build() tea.Cmd {
	if m.preset().IsField() {
		m.building = false
		m.err = nil
		m.sprite = fractal.Sprite{}
		if !m.fitted {
			m.fit()
		}
		m.status = fmt.Sprintf("escape time, %d iterations", m.scene.Depth)
		return nil
	}
	m.building = true
	s, b := m.scene, m.builder
	return func() tea.Msg {
		start := time.Now()
		sprite, err := b.Build(s)
		return builtMsg{key: config.KeyOf(s), sprite: sprite, err: err, elapsed: time.Since(start)}
	}
}

// mapSize returns the figure area in cells.
func (m Model) mapSize() (int, int) {
	w := m.width
	if m.showList {
		w -= sidebarWidth + 1
	}
	h := m.height - headerHeight - footerHeight
	return max(w, 1), max(h, 1)
}

// fit centers the current sprite, or the extent of a field preset, in the
// figure area.
func (m *Model) fit() {
	if m.width == 0 || m.height == 0 {
		return
	}
	p := m.preset()
	bounds := p.Extent()
	if !p.IsField() {
		if m.sprite.IsEmpty() {
			return
		}
		bounds = m.sprite.Bounds()
	}
	w, h := m.mapSize()
	m.view = raster.Fit(bounds, w*2, h*4, fitMargin)
	m.fitted = true
}

func (m Model) preset() config.Preset {
	p, _ := config.Lookup(m.scene.Preset)
	return p
}

func (m Model) title() string {
	s := fmt.Sprintf(" fractal ─ %s  depth %d", m.scene.Preset, m.scene.Depth)
	if m.preset().UsesAngle() {
		s += fmt.Sprintf("  angle %g°", m.scene.Angle)
	}
	return s + " "
}

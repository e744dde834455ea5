// Package config describes renderable fractal scenes.
//
// A Scene names a preset, its parameters and the image to draw it into.
// Scenes are usually read from TOML:
//
//	preset = "triangle-pulse"
//	angle = 60
//	depth = 6
//	mode = "segments"
//	width = 1200
//	height = 600
//
//	[view]
//	step = 0 # 0 fits the figure into the image
//
// Fields left out of the file keep their Default values.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/raster"
)

// ErrInvalidScene is matched by every ValidationError.
var ErrInvalidScene = errors.New("config: invalid scene")

// ValidationError describes one bad scene field.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s = %v: %s", e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidScene.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidScene
}

// View is the optional viewport of a scene. A zero Step fits the figure.
type View struct {
	CenterX float64 `toml:"center_x"`
	CenterY float64 `toml:"center_y"`
	Step    float64 `toml:"step"`
}

// Scene is a complete description of one picture.
type Scene struct {
	Preset string  `toml:"preset"`
	Angle  float64 `toml:"angle"` // degrees
	Depth  int     `toml:"depth"`
	Mode   string  `toml:"mode"` // points, segments or polyline; empty uses the preset's

	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	Supersample int     `toml:"supersample"`
	LineWidth   float64 `toml:"line_width"`
	PointSize   float64 `toml:"point_size"`
	Foreground  string  `toml:"foreground"`
	Background  string  `toml:"background"`
	View        View    `toml:"view"`

	// Workers is the iterator pool size. 0 uses GOMAXPROCS, 1 iterates
	// serially.
	Workers int `toml:"workers"`
}

const (
	maxImageSide   = 16384
	maxSupersample = 8
	fitMargin      = 10
)

// Default returns the scene used when no file is given: a depth 5 Koch
// curve on a 900×450 canvas.
func Default() Scene {
	return Scene{
		Preset:     "triangle-pulse",
		Angle:      60,
		Depth:      5,
		Width:      900,
		Height:     450,
		LineWidth:  1,
		PointSize:  1,
		Foreground: "#000000",
		Background: "#ffffff",
	}
}

// Load reads a scene from a TOML file on top of Default and validates it.
func Load(path string) (Scene, error) {
	s := Default()
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Scene{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := undecoded(md); err != nil {
		return Scene{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return s, s.Validate()
}

// Decode reads a scene from TOML on top of Default and validates it.
func Decode(r io.Reader) (Scene, error) {
	s := Default()
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Scene{}, fmt.Errorf("config: %w", err)
	}
	if err := undecoded(md); err != nil {
		return Scene{}, err
	}
	return s, s.Validate()
}

func undecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return &ValidationError{Field: "file", Value: strings.Join(names, ", "), Reason: "unknown keys"}
}

// Encode writes the scene as TOML.
func (s Scene) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}

// Validate checks every field and joins all problems found.
func (s Scene) Validate() error {
	var errs []error
	bad := func(field string, value any, reason string) {
		errs = append(errs, &ValidationError{Field: field, Value: value, Reason: reason})
	}

	p, err := Lookup(s.Preset)
	if err != nil {
		errs = append(errs, err)
	} else {
		if s.Depth < 0 || s.Depth > p.MaxDepth {
			bad("depth", s.Depth, fmt.Sprintf("must be within [0, %d] for %s", p.MaxDepth, p.Name))
		}
		if p.UsesAngle() && (s.Angle <= 0 || s.Angle > 180) {
			bad("angle", s.Angle, "must be within (0, 180] degrees")
		}
	}
	if s.Mode != "" {
		if _, err := raster.ParseMode(s.Mode); err != nil {
			bad("mode", s.Mode, "must be points, segments or polyline")
		}
	}
	if s.Width <= 0 || s.Width > maxImageSide {
		bad("width", s.Width, fmt.Sprintf("must be within [1, %d]", maxImageSide))
	}
	if s.Height <= 0 || s.Height > maxImageSide {
		bad("height", s.Height, fmt.Sprintf("must be within [1, %d]", maxImageSide))
	}
	if s.Supersample < 0 || s.Supersample > maxSupersample {
		bad("supersample", s.Supersample, fmt.Sprintf("must be within [0, %d]", maxSupersample))
	} else if side := max(s.Width, s.Height) * max(s.Supersample, 1); side > maxImageSide {
		bad("supersample", s.Supersample,
			fmt.Sprintf("supersampled side %d exceeds %d", side, maxImageSide))
	}
	if s.LineWidth <= 0 {
		bad("line_width", s.LineWidth, "must be positive")
	}
	if s.PointSize <= 0 {
		bad("point_size", s.PointSize, "must be positive")
	}
	if _, err := ParseColor(s.Foreground); err != nil {
		bad("foreground", s.Foreground, err.Error())
	}
	if _, err := ParseColor(s.Background); err != nil {
		bad("background", s.Background, err.Error())
	}
	if s.View.Step < 0 {
		bad("view.step", s.View.Step, "must not be negative")
	}
	if s.Workers < 0 {
		bad("workers", s.Workers, "must not be negative")
	}
	return errors.Join(errs...)
}

// WithPreset switches to the named preset and resets angle, depth and mode
// to its defaults.
func (s Scene) WithPreset(name string) (Scene, error) {
	p, err := Lookup(name)
	if err != nil {
		return s, err
	}
	s.Preset = p.Name
	s.Angle = p.DefaultAngle
	s.Depth = p.DefaultDepth
	s.Mode = ""
	return s, nil
}

// DrawMode returns the scene's draw mode, falling back to the preset's.
func (s Scene) DrawMode() (raster.Mode, error) {
	if s.Mode != "" {
		return raster.ParseMode(s.Mode)
	}
	p, err := Lookup(s.Preset)
	if err != nil {
		return 0, err
	}
	return p.Mode, nil
}

// Build produces the scene's sprite. Field presets return ErrFieldPreset.
func (s Scene) Build() (fractal.Sprite, error) {
	p, err := Lookup(s.Preset)
	if err != nil {
		return fractal.Sprite{}, err
	}
	return p.Build(s.Angle, s.Depth, s.Workers)
}

// Shade returns the pixel function of a field scene. Escaping points take
// the background color.
func (s Scene) Shade() (func(x, y float64) color.Color, error) {
	p, err := Lookup(s.Preset)
	if err != nil {
		return nil, err
	}
	bg, err := ParseColor(s.Background)
	if err != nil {
		return nil, &ValidationError{Field: "background", Value: s.Background, Reason: err.Error()}
	}
	return p.Shade(s.Depth, bg)
}

// CanvasOptions returns raster options for the scene. bounds is the extent
// of the sprite to draw and is used when the view step is zero.
func (s Scene) CanvasOptions(bounds fractal.Rect) (raster.Options, error) {
	mode, err := s.DrawMode()
	if err != nil {
		return raster.Options{}, err
	}
	fg, err := ParseColor(s.Foreground)
	if err != nil {
		return raster.Options{}, &ValidationError{Field: "foreground", Value: s.Foreground, Reason: err.Error()}
	}
	bg, err := ParseColor(s.Background)
	if err != nil {
		return raster.Options{}, &ValidationError{Field: "background", Value: s.Background, Reason: err.Error()}
	}

	view := raster.Viewport{CenterX: s.View.CenterX, CenterY: s.View.CenterY, Step: s.View.Step}
	if view.Step == 0 {
		view = raster.Fit(bounds, s.Width, s.Height, fitMargin)
	}
	return raster.Options{
		Width:       s.Width,
		Height:      s.Height,
		View:        view,
		Mode:        mode,
		Foreground:  fg,
		Background:  bg,
		PointSize:   s.PointSize,
		LineWidth:   s.LineWidth,
		Supersample: s.Supersample,
		Workers:     s.Workers,
	}, nil
}

var namedColors = map[string]color.NRGBA{
	"black": {A: 0xff},
	"white": {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"red":   {R: 0xff, A: 0xff},
	"green": {G: 0x80, A: 0xff},
	"blue":  {B: 0xff, A: 0xff},
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or a basic color name.
func ParseColor(s string) (color.NRGBA, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("color %q must start with #", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("color %q has %d hex digits", s, len(hex))
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

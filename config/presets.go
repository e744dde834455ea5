package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/raster"
)

// ErrFieldPreset is returned when a sprite is requested from a preset that
// only shades pixels.
var ErrFieldPreset = errors.New("config: preset draws a field, not a sprite")

// Kind tells how a preset produces its picture.
type Kind int

const (
	// KindIFS presets iterate an operator system over a seed sprite.
	KindIFS Kind = iota
	// KindCurve presets trace a recursive turtle curve.
	KindCurve
	// KindField presets shade every pixel with an escape-time test. Their
	// depth is the iteration limit.
	KindField
)

func (k Kind) String() string {
	switch k {
	case KindCurve:
		return "curve"
	case KindField:
		return "field"
	}
	return "ifs"
}

// Preset is a named, ready-to-draw fractal.
type Preset struct {
	Name        string
	Description string
	Kind        Kind

	// Mode is the draw mode the preset looks best in.
	Mode raster.Mode

	// DefaultAngle is the peak angle in degrees, or 0 when the preset does
	// not take one.
	DefaultAngle float64

	DefaultDepth int
	MaxDepth     int

	system func(theta float64) fractal.IFS
	seed   []float64
	curve  fractal.Generator
	extent fractal.Rect
}

// UsesAngle reports whether the preset is parameterised by an angle.
func (p Preset) UsesAngle() bool { return p.DefaultAngle != 0 }

// IsField reports whether the preset shades pixels instead of building a
// sprite.
func (p Preset) IsField() bool { return p.Kind == KindField }

// Extent returns the region a field preset is framed in. It is zero for
// sprite presets, whose extent is the bounds of the built sprite.
func (p Preset) Extent() fractal.Rect { return p.extent }

var unitSegment = []float64{0, 0, 1, 0}

var presets = []Preset{
	{
		Name:         "triangle-pulse",
		Description:  "Koch-type curve, four maps",
		Kind:         KindIFS,
		Mode:         raster.Segments,
		DefaultAngle: 60,
		DefaultDepth: 5,
		MaxDepth:     10,
		system:       fractal.TrianglePulse,
		seed:         unitSegment,
	},
	{
		Name:         "triangle-pulse-reduced",
		Description:  "Koch-type curve, two flipped maps",
		Kind:         KindIFS,
		Mode:         raster.Segments,
		DefaultAngle: 60,
		DefaultDepth: 10,
		MaxDepth:     20,
		system:       fractal.TrianglePulseReduced,
		seed:         unitSegment,
	},
	{
		Name:         "quad-pulse",
		Description:  "square pulse curve, five maps",
		Kind:         KindIFS,
		Mode:         raster.Segments,
		DefaultAngle: 90,
		DefaultDepth: 4,
		MaxDepth:     9,
		system:       fractal.QuadPulse,
		seed:         unitSegment,
	},
	{
		Name:         "sierpinski",
		Description:  "Sierpinski triangle",
		Kind:         KindIFS,
		Mode:         raster.Segments,
		DefaultDepth: 6,
		MaxDepth:     12,
		system:       func(float64) fractal.IFS { return fractal.Sierpinski() },
		seed:         []float64{0, 0, 1, 0, 1, 0, 0.5, math.Sqrt(3) / 2, 0.5, math.Sqrt(3) / 2, 0, 0},
	},
	{
		Name:         "barnsley",
		Description:  "Barnsley fern, deterministic",
		Kind:         KindIFS,
		Mode:         raster.Points,
		DefaultDepth: 8,
		MaxDepth:     11,
		system:       func(float64) fractal.IFS { return fractal.BarnsleyFern() },
		seed:         []float64{0, 0},
	},
	{
		Name:         "koch",
		Description:  "Koch curve, turtle",
		Kind:         KindCurve,
		Mode:         raster.Segments,
		DefaultDepth: 5,
		MaxDepth:     10,
		curve:        fractal.KochCurve,
	},
	{
		Name:         "koch-sqrt3",
		Description:  "√3 Koch variant, turtle",
		Kind:         KindCurve,
		Mode:         raster.Segments,
		DefaultDepth: 10,
		MaxDepth:     20,
		curve:        fractal.SqrtThreeKoch,
	},
	{
		Name:         "levy-c",
		Description:  "Lévy C curve, turtle",
		Kind:         KindCurve,
		Mode:         raster.Segments,
		DefaultDepth: 12,
		MaxDepth:     20,
		curve:        fractal.LevyC,
	},
	{
		Name:         "mandelbrot",
		Description:  "Mandelbrot set, escape time",
		Kind:         KindField,
		Mode:         raster.Points,
		DefaultDepth: 100,
		MaxDepth:     10000,
		extent:       fractal.Rect{MinX: -2.25, MinY: -1.25, MaxX: 0.75, MaxY: 1.25},
	},
}

// Presets returns the built-in presets in display order.
func Presets() []Preset {
	return slices.Clone(presets)
}

// Lookup returns the preset with the given name.
func Lookup(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, &ValidationError{Field: "preset", Value: name, Reason: "unknown preset"}
}

// Build produces the preset's sprite. angle is in degrees and ignored by
// presets that take none. workers selects the parallel iterator when it is
// not 1; 0 means GOMAXPROCS.
func (p Preset) Build(angle float64, depth, workers int) (fractal.Sprite, error) {
	if err := p.checkDepth(depth); err != nil {
		return fractal.Sprite{}, err
	}

	switch p.Kind {
	case KindField:
		return fractal.Sprite{}, fmt.Errorf("%s: %w", p.Name, ErrFieldPreset)
	case KindCurve:
		t, err := p.curve.Draw(fractal.NewTurtle(), depth)
		if err != nil {
			return fractal.Sprite{}, fmt.Errorf("%s: %w", p.Name, err)
		}
		path, ok := t.Path()
		if !ok {
			return fractal.Sprite{}, fmt.Errorf("%s: %w", p.Name, fractal.ErrEmptyCollection)
		}
		return path, nil
	}

	seed, err := fractal.SpriteXY(p.seed...)
	if err != nil {
		return fractal.Sprite{}, fmt.Errorf("%s seed: %w", p.Name, err)
	}
	sys := p.system(angle * math.Pi / 180)

	var out fractal.Sprite
	if workers == 1 {
		out, err = sys.Iterate(depth, seed)
	} else {
		it := fractal.NewIterator(sys, workers)
		out, err = it.Iterate(depth, seed)
		it.Close()
	}
	if err != nil {
		return fractal.Sprite{}, fmt.Errorf("%s: %w", p.Name, err)
	}
	fractal.Logger().Debug("preset built", "name", p.Name, "depth", depth, "rows", out.Len())
	return out, nil
}

func (p Preset) checkDepth(depth int) error {
	if depth < 0 || depth > p.MaxDepth {
		return &ValidationError{
			Field:  "depth",
			Value:  depth,
			Reason: fmt.Sprintf("must be within [0, %d] for %s", p.MaxDepth, p.Name),
		}
	}
	return nil
}

// Shade returns the pixel function of a field preset. Points whose orbit
// escapes within depth steps are painted outside. Bounded points get a cyan
// to green tint that turns with the squared distance between the point and
// its last orbit value.
func (p Preset) Shade(depth int, outside color.Color) (func(x, y float64) color.Color, error) {
	if !p.IsField() {
		return nil, &ValidationError{Field: "preset", Value: p.Name, Reason: "not a field preset"}
	}
	if err := p.checkDepth(depth); err != nil {
		return nil, err
	}
	return func(x, y float64) color.Color {
		n, z, err := fractal.Escape(fractal.Pt(x, y), depth)
		if err != nil || n < depth {
			return outside
		}
		dx, dy := x-z.X(), y-z.Y()
		r, g := fractal.Rotate((dx*dx + dy*dy) * math.Pi).Apply(0, 1)
		return color.NRGBA{R: channel(r), G: channel(g), B: 0xff, A: 0xff}
	}, nil
}

func channel(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 0xff))
}

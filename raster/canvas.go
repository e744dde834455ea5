// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster draws fractal sprites into images.
//
// A Canvas owns an RGBA image and a Viewport. Sprites are drawn either as
// discrete points, as pairwise segments (turtle paths and IFS-iterated
// segments), or as one connected polyline. Geometry is filled with
// golang.org/x/image/vector; optional supersampling is resolved with
// golang.org/x/image/draw.
//
// Field shades every pixel from a function of its world position, which is
// how escape-time sets are drawn.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/internal/parallel"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// ErrInvalidSize is returned for non-positive canvas dimensions.
var ErrInvalidSize = errors.New("raster: invalid canvas size")

// Mode selects how sprite rows are interpreted.
type Mode int

const (
	// Points draws every row as a square dot.
	Points Mode = iota

	// Segments draws rows (0,1), (2,3), ... as independent line segments.
	Segments

	// Polyline connects every row to the next.
	Polyline
)

// String returns the mode name used in configuration files.
func (m Mode) String() string {
	switch m {
	case Points:
		return "points"
	case Segments:
		return "segments"
	case Polyline:
		return "polyline"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "points":
		return Points, nil
	case "segments", "":
		return Segments, nil
	case "polyline":
		return Polyline, nil
	}
	return 0, fmt.Errorf("raster: unknown mode %q", s)
}

// Options configure a Canvas.
type Options struct {
	Width, Height int
	View          Viewport
	Mode          Mode
	Foreground    color.Color
	Background    color.Color

	// PointSize is the side of a dot in pixels (Points mode).
	PointSize float64

	// LineWidth is the stroke width in pixels (Segments and Polyline).
	LineWidth float64

	// Supersample renders at this many times the resolution and scales
	// down. Values below 2 disable it.
	Supersample int

	// Workers is the number of goroutines used by Field. 0 means
	// GOMAXPROCS.
	Workers int
}

// DefaultOptions returns a 900×900 black-on-white canvas.
func DefaultOptions() Options {
	return Options{
		Width:      900,
		Height:     900,
		View:       DefaultViewport(),
		Mode:       Segments,
		Foreground: color.Black,
		Background: color.White,
		PointSize:  2,
		LineWidth:  1,
	}
}

// Canvas is a drawing surface for sprites. It is not safe for concurrent use.
type Canvas struct {
	opts  Options
	scale int
	img   *image.RGBA
	rast  *vector.Rasterizer

	// toPx maps world coordinates to pixels of img.
	toPx f64.Aff3
}

// NewCanvas creates a canvas cleared to the background color.
func NewCanvas(opts Options) (*Canvas, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	if opts.View.Step <= 0 {
		return nil, fmt.Errorf("raster: viewport step must be positive, got %g", opts.View.Step)
	}
	if opts.Foreground == nil {
		opts.Foreground = color.Black
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	scale := max(opts.Supersample, 1)
	w, h := opts.Width*scale, opts.Height*scale
	view := opts.View
	view.Step /= float64(scale)

	c := &Canvas{
		opts:  opts,
		scale: scale,
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		rast:  vector.NewRasterizer(w, h),
		toPx:  view.Transform(w, h).Aff3(),
	}
	c.Clear()
	return c, nil
}

// Options returns the canvas configuration.
func (c *Canvas) Options() Options { return c.opts }

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.opts.Background), image.Point{}, draw.Src)
}

func (c *Canvas) toPixel(x, y float64) (float32, float32) {
	a := &c.toPx
	return float32(a[0]*x + a[1]*y + a[2]), float32(a[3]*x + a[4]*y + a[5])
}

// Draw renders s in the canvas mode and returns the number of primitives
// drawn.
func (c *Canvas) Draw(s fractal.Sprite) int {
	b := c.img.Bounds()
	c.rast.Reset(b.Dx(), b.Dy())

	var n int
	switch c.opts.Mode {
	case Points:
		half := float32(c.opts.PointSize*float64(c.scale)) / 2
		for _, p := range s.All() {
			x, y := c.toPixel(p.X(), p.Y())
			c.rast.MoveTo(x-half, y-half)
			c.rast.LineTo(x+half, y-half)
			c.rast.LineTo(x+half, y+half)
			c.rast.LineTo(x-half, y+half)
			c.rast.ClosePath()
			n++
		}
	case Segments:
		for p, q := range s.Segments() {
			if c.segment(p, q) {
				n++
			}
		}
	case Polyline:
		var prev fractal.Item
		for i, p := range s.All() {
			if i > 0 && c.segment(prev, p) {
				n++
			}
			prev = p
		}
	}

	c.rast.Draw(c.img, b, image.NewUniform(c.opts.Foreground), image.Point{})
	fractal.Logger().Debug("raster draw", "mode", c.opts.Mode.String(), "rows", s.Len(), "primitives", n)
	return n
}

// segment adds a stroked line from a to b as a quad. All quads share one
// winding so overlaps never cancel. Zero-length segments are skipped.
func (c *Canvas) segment(a, b fractal.Item) bool {
	x0, y0 := c.toPixel(a.X(), a.Y())
	x1, y1 := c.toPixel(b.X(), b.Y())
	dx, dy := float64(x1-x0), float64(y1-y0)
	l := math.Hypot(dx, dy)
	if l == 0 {
		return false
	}
	hw := c.opts.LineWidth * float64(c.scale) / 2
	nx, ny := float32(-dy/l*hw), float32(dx/l*hw)
	c.rast.MoveTo(x0+nx, y0+ny)
	c.rast.LineTo(x1+nx, y1+ny)
	c.rast.LineTo(x1-nx, y1-ny)
	c.rast.LineTo(x0-nx, y0-ny)
	c.rast.ClosePath()
	return true
}

// Field sets every pixel to shade(x, y), where (x, y) is the world position
// of the pixel center. Rows are shaded in parallel, so shade must be safe
// for concurrent use. Supersampled canvases call shade once per subpixel.
func (c *Canvas) Field(shade func(x, y float64) color.Color) error {
	toWorld, err := fractal.TransformFromAff3(c.toPx).Inverse()
	if err != nil {
		return fmt.Errorf("raster: field: %w", err)
	}
	b := c.img.Bounds()
	pool := parallel.NewWorkerPool(c.opts.Workers)
	defer pool.Close()
	pool.ForEach(b.Dy(), 4, func(lo, hi int) {
		for py := lo; py < hi; py++ {
			for px := range b.Dx() {
				x, y := toWorld.Apply(float64(px)+0.5, float64(py)+0.5)
				c.img.Set(px, py, shade(x, y))
			}
		}
	})
	fractal.Logger().Debug("raster field", "width", b.Dx(), "height", b.Dy(), "workers", pool.Workers())
	return nil
}

// Image returns the rendered image at the requested resolution.
func (c *Canvas) Image() *image.RGBA {
	if c.scale == 1 {
		return c.img
	}
	dst := image.NewRGBA(image.Rect(0, 0, c.opts.Width, c.opts.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), c.img, c.img.Bounds(), draw.Src, nil)
	return dst
}

// EncodePNG writes the image as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// SavePNG writes the image to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

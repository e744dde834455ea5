// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gogpu/fractal"
)

func testOptions(mode Mode) Options {
	opts := DefaultOptions()
	opts.Width, opts.Height = 100, 100
	opts.View = Viewport{CenterX: 0.5, CenterY: 0.5, Step: 0.01}
	opts.Mode = mode
	opts.LineWidth = 2
	opts.PointSize = 4
	return opts
}

func inked(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r < 0x8000 && g < 0x8000 && b < 0x8000
}

func countInk(c *Canvas) int {
	img := c.Image()
	var n int
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			if inked(img.At(x, y)) {
				n++
			}
		}
	}
	return n
}

func sprite(t *testing.T, coords ...float64) fractal.Sprite {
	t.Helper()
	s, err := fractal.SpriteXY(coords...)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewCanvasErrors(t *testing.T) {
	opts := testOptions(Segments)
	opts.Width = 0
	if _, err := NewCanvas(opts); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero width error = %v, want ErrInvalidSize", err)
	}
	opts = testOptions(Segments)
	opts.View.Step = 0
	if _, err := NewCanvas(opts); err == nil {
		t.Error("zero step should fail")
	}
}

func TestCanvasClear(t *testing.T) {
	c, err := NewCanvas(testOptions(Segments))
	if err != nil {
		t.Fatal(err)
	}
	if n := countInk(c); n != 0 {
		t.Errorf("fresh canvas has %d inked pixels", n)
	}
}

func TestCanvasSegment(t *testing.T) {
	c, err := NewCanvas(testOptions(Segments))
	if err != nil {
		t.Fatal(err)
	}
	// Horizontal line through the middle of the image.
	if n := c.Draw(sprite(t, 0.1, 0.5, 0.9, 0.5)); n != 1 {
		t.Fatalf("Draw returned %d primitives, want 1", n)
	}
	img := c.Image()
	if !inked(img.At(50, 50)) {
		t.Error("pixel on the segment is not inked")
	}
	if inked(img.At(50, 20)) || inked(img.At(5, 50)) {
		t.Error("pixel off the segment is inked")
	}
	ink := countInk(c)
	if ink < 120 || ink > 200 {
		t.Errorf("inked area = %d, want about 80×2", ink)
	}
}

func TestCanvasOverlappingSegmentsKeepInk(t *testing.T) {
	c, err := NewCanvas(testOptions(Segments))
	if err != nil {
		t.Fatal(err)
	}
	// The same segment drawn in both directions must not cancel out.
	c.Draw(sprite(t, 0.1, 0.5, 0.9, 0.5, 0.9, 0.5, 0.1, 0.5))
	if !inked(c.Image().At(50, 50)) {
		t.Error("opposite segments cancelled each other")
	}
}

func TestCanvasModes(t *testing.T) {
	// Square outline: 4 points, 2 segment pairs, 3 polyline edges.
	s := sprite(t, 0.2, 0.2, 0.8, 0.2, 0.8, 0.8, 0.2, 0.8)
	tests := []struct {
		mode Mode
		want int
	}{
		{Points, 4},
		{Segments, 2},
		{Polyline, 3},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			c, err := NewCanvas(testOptions(tt.mode))
			if err != nil {
				t.Fatal(err)
			}
			if n := c.Draw(s); n != tt.want {
				t.Errorf("Draw = %d primitives, want %d", n, tt.want)
			}
			if countInk(c) == 0 {
				t.Error("nothing drawn")
			}
		})
	}
}

func TestCanvasSkipsDegenerateSegments(t *testing.T) {
	c, err := NewCanvas(testOptions(Segments))
	if err != nil {
		t.Fatal(err)
	}
	if n := c.Draw(sprite(t, 0.5, 0.5, 0.5, 0.5)); n != 0 {
		t.Errorf("zero-length segment drawn: %d", n)
	}
}

func TestCanvasSupersample(t *testing.T) {
	opts := testOptions(Segments)
	opts.Supersample = 3
	c, err := NewCanvas(opts)
	if err != nil {
		t.Fatal(err)
	}
	c.Draw(sprite(t, 0.1, 0.5, 0.9, 0.5))
	img := c.Image()
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 100 {
		t.Fatalf("Image() bounds = %v, want 100×100", img.Bounds())
	}
	if !inked(img.At(50, 50)) {
		t.Error("supersampled segment missing")
	}
}

func TestCanvasKochPNG(t *testing.T) {
	seed := sprite(t, 0, 0, 1, 0)
	koch, err := fractal.TrianglePulse(math.Pi/3).Iterate(4, seed)
	if err != nil {
		t.Fatal(err)
	}
	opts := testOptions(Segments)
	opts.View = Fit(koch.Bounds(), opts.Width, opts.Height, 5)
	c, err := NewCanvas(opts)
	if err != nil {
		t.Fatal(err)
	}
	if n := c.Draw(koch); n != koch.Len()/2 {
		t.Errorf("Draw = %d, want %d", n, koch.Len()/2)
	}

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 100 {
		t.Errorf("decoded width = %d", img.Bounds().Dx())
	}

	path := filepath.Join(t.TempDir(), "koch.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Points, Segments, Polyline} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if m, err := ParseMode(""); err != nil || m != Segments {
		t.Errorf("ParseMode(\"\") = %v, %v; want Segments", m, err)
	}
	if _, err := ParseMode("blobs"); err == nil {
		t.Error("unknown mode should fail")
	}
}

func TestCanvasField(t *testing.T) {
	opts := testOptions(Points)
	opts.Width, opts.Height = 40, 20
	opts.View = Viewport{CenterX: 0, CenterY: 0, Step: 0.1}
	opts.Workers = 3
	c, err := NewCanvas(opts)
	if err != nil {
		t.Fatal(err)
	}
	// Ink the upper half plane.
	err = c.Field(func(x, y float64) color.Color {
		if y > 0 {
			return color.Black
		}
		return color.White
	})
	if err != nil {
		t.Fatalf("Field: %v", err)
	}
	img := c.Image()
	for y := range 20 {
		for x := range 40 {
			if got, want := inked(img.At(x, y)), y < 10; got != want {
				t.Fatalf("pixel (%d, %d) inked = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCanvasFieldPixelCenters(t *testing.T) {
	opts := testOptions(Points)
	opts.Width, opts.Height = 4, 2
	opts.View = Viewport{CenterX: 0, CenterY: 0, Step: 1}
	c, err := NewCanvas(opts)
	if err != nil {
		t.Fatal(err)
	}
	var mu sync.Mutex
	seen := map[[2]float64]bool{}
	err = c.Field(func(x, y float64) color.Color {
		mu.Lock()
		seen[[2]float64{x, y}] = true
		mu.Unlock()
		return color.White
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range [][2]float64{{-1.5, 0.5}, {1.5, 0.5}, {-0.5, -0.5}, {0.5, -0.5}} {
		if !seen[want] {
			t.Errorf("pixel center %v not sampled; got %v", want, seen)
		}
	}
	if len(seen) != 8 {
		t.Errorf("sampled %d positions, want 8", len(seen))
	}
}

func TestCanvasFieldMandelbrot(t *testing.T) {
	opts := testOptions(Points)
	opts.Width, opts.Height = 60, 40
	opts.View = Viewport{CenterX: -0.75, CenterY: 0, Step: 3.0 / 60}
	opts.Supersample = 2
	c, err := NewCanvas(opts)
	if err != nil {
		t.Fatal(err)
	}
	err = c.Field(func(x, y float64) color.Color {
		if fractal.Bounded(x, y, 50) {
			return color.Black
		}
		return color.White
	})
	if err != nil {
		t.Fatal(err)
	}
	img := c.Image()
	if !inked(img.At(30, 20)) {
		t.Error("pixel over (-0.75, 0) should be inside the set")
	}
	if inked(img.At(0, 0)) {
		t.Error("corner pixel should be outside the set")
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"

	"github.com/gogpu/fractal"
)

// Viewport maps world coordinates to pixels. The world y axis points up;
// pixel rows grow downwards.
type Viewport struct {
	// CenterX and CenterY are the world coordinates shown at the middle of
	// the image.
	CenterX, CenterY float64

	// Step is the world distance covered by one pixel.
	Step float64
}

// DefaultViewport shows the unit square [0,1]×[0,1] region around (0.5, 0.25)
// at 0.01 world units per pixel, suitable for curves built on the unit
// segment.
func DefaultViewport() Viewport {
	return Viewport{CenterX: 0.5, CenterY: 0.25, Step: 0.01}
}

// Fit returns the viewport that shows b inside a width×height image with
// margin pixels free on every side. Degenerate boxes are given a unit
// extent.
func Fit(b fractal.Rect, width, height int, margin float64) Viewport {
	w := math.Max(b.Width(), 1e-9)
	h := math.Max(b.Height(), 1e-9)
	if b.Width() == 0 && b.Height() == 0 {
		w, h = 1, 1
	}
	usableW := math.Max(float64(width)-2*margin, 1)
	usableH := math.Max(float64(height)-2*margin, 1)
	cx, cy := b.Center()
	return Viewport{
		CenterX: cx,
		CenterY: cy,
		Step:    math.Max(w/usableW, h/usableH),
	}
}

// Pan moves the center by (dx, dy) pixels worth of world distance.
func (v Viewport) Pan(dx, dy float64) Viewport {
	v.CenterX += dx * v.Step
	v.CenterY += dy * v.Step
	return v
}

// Zoom multiplies the step by f. f < 1 zooms in.
func (v Viewport) Zoom(f float64) Viewport {
	v.Step *= f
	return v
}

// ToPixel converts a world point to pixel coordinates in a width×height
// image.
func (v Viewport) ToPixel(x, y float64, width, height int) (float64, float64) {
	px := (x-v.CenterX)/v.Step + float64(width)/2
	py := float64(height)/2 - (y-v.CenterY)/v.Step
	return px, py
}

// ToWorld converts pixel coordinates back to world coordinates.
func (v Viewport) ToWorld(px, py float64, width, height int) (float64, float64) {
	x := (px-float64(width)/2)*v.Step + v.CenterX
	y := (float64(height)/2-py)*v.Step + v.CenterY
	return x, y
}

// Transform returns the world-to-pixel map of a width×height image as a
// fractal transform. It agrees with ToPixel.
func (v Viewport) Transform(width, height int) fractal.Transform {
	s := 1 / v.Step
	return fractal.Affine(s, 0, 0, -s,
		float64(width)/2-v.CenterX*s,
		float64(height)/2+v.CenterY*s)
}

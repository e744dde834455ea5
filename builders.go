package fractal

import (
	"fmt"
	"math"
)

// Shift returns the translation by (x, y).
func Shift(x, y float64) Transform {
	t := Identity()
	t.m[2][0] = x
	t.m[2][1] = y
	return t
}

// ShiftBy returns the translation by the vector v.
func ShiftBy(v Item) (Transform, error) {
	if !v.IsVector() {
		return Transform{}, invalidOperand("shift", "requires a 2D vector")
	}
	return Shift(v.X(), v.Y()), nil
}

// Rotate returns the counter-clockwise rotation by theta radians about the
// origin.
func Rotate(theta float64) Transform {
	sin, cos := math.Sincos(theta)
	t := Identity()
	t.m[0][0] = cos
	t.m[0][1] = sin
	t.m[1][0] = -sin
	t.m[1][1] = cos
	return t
}

// Scale returns the uniform scale by s about the origin.
func Scale(s float64) Transform {
	t := Identity()
	t.m[0][0] = s
	t.m[1][1] = s
	return t
}

// conjugate returns shift(-x,-y)·t·shift(x,y): t applied with (x, y) as origin.
func conjugate(x, y float64, t Transform) Transform {
	return Shift(-x, -y).Times(t).Times(Shift(x, y))
}

// RotateAbout returns the rotation by theta about the point (x, y).
func RotateAbout(x, y, theta float64) Transform {
	return conjugate(x, y, Rotate(theta))
}

// RotateAboutPoint returns the rotation by theta about the point p.
func RotateAboutPoint(p Item, theta float64) (Transform, error) {
	if !p.IsPoint() {
		return Transform{}, invalidOperand("rotate", "pivot must be a 2D point")
	}
	return RotateAbout(p.X(), p.Y(), theta), nil
}

// ScaleAbout returns the uniform scale by s about the point (x, y).
func ScaleAbout(x, y, s float64) Transform {
	return conjugate(x, y, Scale(s))
}

// ScaleAboutPoint returns the uniform scale by s about the point p.
func ScaleAboutPoint(p Item, s float64) (Transform, error) {
	if !p.IsPoint() {
		return Transform{}, invalidOperand("scale", "pivot must be a 2D point")
	}
	return ScaleAbout(p.X(), p.Y(), s), nil
}

// ScaleAlong returns the scale by s in the direction (vx, vy) through the
// point (px, py). Distances perpendicular to the direction are preserved.
func ScaleAlong(px, py, vx, vy, s float64) (Transform, error) {
	if vx == 0 && vy == 0 {
		return Transform{}, invalidOperand("scale", "axis must be a non-zero vector")
	}
	theta := math.Atan2(vy, vx)
	stretch := Identity()
	stretch.m[0][0] = s
	return conjugate(px, py, Rotate(-theta).Times(stretch).Times(Rotate(theta))), nil
}

// ScaleAlongAxis returns the scale by s along the vector v through the
// point p.
func ScaleAlongAxis(p, v Item, s float64) (Transform, error) {
	if !p.IsPoint() || !v.IsVector() {
		return Transform{}, invalidOperand("scale", "requires a 2D point and a 2D vector")
	}
	return ScaleAlong(p.X(), p.Y(), v.X(), v.Y(), s)
}

// Flip returns the reflection across the line through the origin in the
// direction of axis. Each basis vector e is mapped to 2(e·a)a - e, where a is
// the normalized axis.
func Flip(axis Item) (Transform, error) {
	if !axis.IsVector() {
		return Transform{}, invalidOperand("flip", "axis must be a 2D vector")
	}
	a, err := axis.Normalize()
	if err != nil {
		return Transform{}, err
	}
	ax, ay := a.X(), a.Y()
	t := Identity()
	t.m[0][0] = 2*ax*ax - 1
	t.m[0][1] = 2 * ax * ay
	t.m[1][0] = 2 * ax * ay
	t.m[1][1] = 2*ay*ay - 1
	return t, nil
}

// FlipAbout returns the reflection across the line through p in the
// direction of axis.
func FlipAbout(p, axis Item) (Transform, error) {
	if !p.IsPoint() {
		return Transform{}, invalidOperand("flip", "pivot must be a 2D point")
	}
	f, err := Flip(axis)
	if err != nil {
		return Transform{}, err
	}
	return conjugate(p.X(), p.Y(), f), nil
}

// Affine returns the operator with linear rows (a, b) and (c, d) and
// translation (e, f):
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
func Affine(a, b, c, d, e, f float64) Transform {
	return Transform{m: [3][3]float64{
		{a, b, 0},
		{c, d, 0},
		{e, f, 1},
	}}
}

// Frame returns the map from the canonical basis onto the frame (p; v1, v2):
// the x unit vector goes to v1, the y unit vector to v2 and the origin to p.
func Frame(p, v1, v2 Item) (Transform, error) {
	if !p.IsPoint() || !v1.IsVector() || !v2.IsVector() {
		return Transform{}, invalidOperand("frame", "requires a 2D point and two 2D vectors")
	}
	return Affine(v1.X(), v1.Y(), v2.X(), v2.Y(), p.X(), p.Y()), nil
}

// AffineBetween returns the unique affine map carrying the frame
// (p; v1, v2) onto (q; u1, u2). It inverts the source frame map and composes
// it with the target frame map, so it fails with ErrSingularMatrix when v1
// and v2 are parallel.
func AffineBetween(p, v1, v2, q, u1, u2 Item) (Transform, error) {
	src, err := Frame(p, v1, v2)
	if err != nil {
		return Transform{}, err
	}
	dst, err := Frame(q, u1, u2)
	if err != nil {
		return Transform{}, err
	}
	inv, err := src.Inverse()
	if err != nil {
		return Transform{}, fmt.Errorf("affine: degenerate source frame: %w", err)
	}
	return inv.Times(dst), nil
}

// AffineTriangles returns the affine map carrying triangle (a, b, c) onto
// triangle (a2, b2, c2) vertex by vertex.
func AffineTriangles(a, b, c, a2, b2, c2 Item) (Transform, error) {
	for _, p := range []Item{a, b, c, a2, b2, c2} {
		if !p.IsPoint() {
			return Transform{}, invalidOperand("affine", "triangle vertices must be 2D points")
		}
	}
	v1, _ := b.Minus(a)
	v2, _ := c.Minus(a)
	u1, _ := b2.Minus(a2)
	u2, _ := c2.Minus(a2)
	return AffineBetween(a, v1, v2, a2, u1, u2)
}

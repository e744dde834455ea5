package fractal

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/fractal/internal/linalg"
)

// Transform is an immutable 3×3 homogeneous operator acting on row vectors.
//
// A point p = (x, y, 1) maps to p·M:
//
//	| m00 m01 0 |
//	| m10 m11 0 |
//	| m20 m21 1 |
//
//	x' = x*m00 + y*m10 + m20
//	y' = x*m01 + y*m11 + m21
//
// The translation lives in the third row. A.Times(B) applies A first, then B,
// so builders chain left to right: Identity().Scale(0.5).Shift(1, 0) halves,
// then shifts.
type Transform struct {
	m [3][3]float64
}

// Identity returns the identity operator.
func Identity() Transform {
	return Transform{m: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// NewTransform returns the operator with the given rows.
func NewTransform(rows [3][3]float64) Transform {
	return Transform{m: rows}
}

// At returns the element in row r, column c.
func (t Transform) At(r, c int) float64 { return t.m[r][c] }

// Rows returns the operator as a row-major array.
func (t Transform) Rows() [3][3]float64 { return t.m }

func (t Transform) apply(x, y, w float64) (float64, float64, float64) {
	return x*t.m[0][0] + y*t.m[1][0] + w*t.m[2][0],
		x*t.m[0][1] + y*t.m[1][1] + w*t.m[2][1],
		x*t.m[0][2] + y*t.m[1][2] + w*t.m[2][2]
}

// Times returns the composition t·o: apply t, then o.
func (t Transform) Times(o Transform) Transform {
	var out Transform
	for r := range 3 {
		for c := range 3 {
			out.m[r][c] = t.m[r][0]*o.m[0][c] + t.m[r][1]*o.m[1][c] + t.m[r][2]*o.m[2][c]
		}
	}
	return out
}

// Apply transforms the point (x, y).
func (t Transform) Apply(x, y float64) (float64, float64) {
	x, y, _ = t.apply(x, y, 1)
	return x, y
}

func (t Transform) dense() linalg.Dense {
	d := linalg.New(3, 3)
	for r := range 3 {
		copy(d[r], t.m[r][:])
	}
	return d
}

func fromDense(d linalg.Dense) Transform {
	var t Transform
	for r := range 3 {
		copy(t.m[r][:], d[r])
	}
	return t
}

// Minor returns the 2×2 matrix left after deleting row r and column c,
// as a row-major slice.
func (t Transform) Minor(r, c int) [][]float64 {
	return t.dense().Minor(r, c)
}

// Determinant returns det(t), computed by first-row cofactor expansion.
func (t Transform) Determinant() float64 {
	d, _ := linalg.Determinant(t.dense())
	return d
}

// Inverse returns the adjugate of t divided by its determinant.
// It fails with ErrSingularMatrix when the determinant is (near) zero.
func (t Transform) Inverse() (Transform, error) {
	inv, err := linalg.Inverse(t.dense())
	if err != nil {
		if errors.Is(err, linalg.ErrSingular) {
			return Transform{}, fmt.Errorf("%w: %v", ErrSingularMatrix, err)
		}
		return Transform{}, err
	}
	return fromDense(inv), nil
}

// Equal reports whether every element of t and o agrees within Epsilon.
func (t Transform) Equal(o Transform) bool {
	for r := range 3 {
		for c := range 3 {
			if !(math.Abs(t.m[r][c]-o.m[r][c]) <= Epsilon) {
				return false
			}
		}
	}
	return true
}

// IsIdentity reports whether t equals the identity within Epsilon.
func (t Transform) IsIdentity() bool {
	return t.Equal(Identity())
}

// String formats the operator row by row.
func (t Transform) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]",
		t.m[0][0], t.m[0][1], t.m[0][2],
		t.m[1][0], t.m[1][1], t.m[1][2],
		t.m[2][0], t.m[2][1], t.m[2][2])
}

// Shift returns t followed by a translation by (x, y).
func (t Transform) Shift(x, y float64) Transform { return t.Times(Shift(x, y)) }

// Rotate returns t followed by a rotation by theta about the origin.
func (t Transform) Rotate(theta float64) Transform { return t.Times(Rotate(theta)) }

// Scale returns t followed by a uniform scale by s about the origin.
func (t Transform) Scale(s float64) Transform { return t.Times(Scale(s)) }

// RotateAbout returns t followed by a rotation by theta about (x, y).
func (t Transform) RotateAbout(x, y, theta float64) Transform {
	return t.Times(RotateAbout(x, y, theta))
}

// ScaleAbout returns t followed by a uniform scale by s about (x, y).
func (t Transform) ScaleAbout(x, y, s float64) Transform {
	return t.Times(ScaleAbout(x, y, s))
}

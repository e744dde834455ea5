// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package linalg implements small dense matrix algebra in row-major order.
//
// The routines favour clarity over speed. Determinant uses first-row Laplace
// expansion, which is O(n!) and only suitable for the 3×3 operators used by
// the fractal engine.
package linalg

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrShape is returned when operand dimensions are incompatible.
	ErrShape = errors.New("linalg: incompatible shape")

	// ErrNotSquare is returned by operations that require a square matrix.
	ErrNotSquare = errors.New("linalg: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is (near) zero.
	ErrSingular = errors.New("linalg: matrix is singular")
)

// SingularTolerance is the absolute determinant below which a matrix is
// treated as non-invertible.
const SingularTolerance = 1e-12

// Dense is a rectangular row-major matrix. All rows have the same length.
// Functions in this package never modify their arguments.
type Dense [][]float64

// New allocates a zero rows×cols matrix.
func New(rows, cols int) Dense {
	backing := make([]float64, rows*cols)
	m := make(Dense, rows)
	for r := range m {
		m[r] = backing[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) Dense {
	m := New(n, n)
	for i := range n {
		m[i][i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m Dense) Rows() int { return len(m) }

// Cols returns the number of columns.
func (m Dense) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// IsSquare reports whether m has as many rows as columns.
func (m Dense) IsSquare() bool { return m.Rows() == m.Cols() }

// Clone returns a deep copy of m.
func (m Dense) Clone() Dense {
	c := New(m.Rows(), m.Cols())
	for r := range m {
		copy(c[r], m[r])
	}
	return c
}

// Mul returns the product a·b. (r×k)·(k×c) → (r×c).
func Mul(a, b Dense) (Dense, error) {
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("%w: (%d×%d)·(%d×%d)", ErrShape, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	out := New(a.Rows(), b.Cols())
	for r := range out {
		for c := range out[r] {
			var sum float64
			for k := range a[r] {
				sum += a[r][k] * b[k][c]
			}
			out[r][c] = sum
		}
	}
	return out, nil
}

// MulVec returns the row-vector product v·m.
func MulVec(v []float64, m Dense) ([]float64, error) {
	if len(v) != m.Rows() {
		return nil, fmt.Errorf("%w: vector of %d against %d rows", ErrShape, len(v), m.Rows())
	}
	out := make([]float64, m.Cols())
	for c := range out {
		for r, x := range v {
			out[c] += x * m[r][c]
		}
	}
	return out, nil
}

// Scale returns s·m.
func Scale(m Dense, s float64) Dense {
	out := m.Clone()
	for r := range out {
		for c := range out[r] {
			out[r][c] *= s
		}
	}
	return out
}

// Minor returns m with row i and column j removed.
func (m Dense) Minor(i, j int) Dense {
	out := New(m.Rows()-1, m.Cols()-1)
	for r := range out {
		sr := r
		if r >= i {
			sr++
		}
		for c := range out[r] {
			sc := c
			if c >= j {
				sc++
			}
			out[r][c] = m[sr][sc]
		}
	}
	return out
}

// Determinant computes det(m) by recursive cofactor expansion along the
// first row.
func Determinant(m Dense) (float64, error) {
	if !m.IsSquare() || m.Rows() == 0 {
		return 0, fmt.Errorf("%w: %d×%d", ErrNotSquare, m.Rows(), m.Cols())
	}
	return det(m), nil
}

func det(m Dense) float64 {
	switch len(m) {
	case 1:
		return m[0][0]
	case 2:
		return m[0][0]*m[1][1] - m[0][1]*m[1][0]
	}
	var sum float64
	for j, a := range m[0] {
		if a == 0 {
			continue
		}
		sum += sign(j) * a * det(m.Minor(0, j))
	}
	return sum
}

func sign(k int) float64 {
	if k%2 == 0 {
		return 1
	}
	return -1
}

// Cofactor returns the signed minor determinant C(i, j).
func Cofactor(m Dense, i, j int) float64 {
	if m.Rows() == 1 {
		return 1
	}
	return sign(i+j) * det(m.Minor(i, j))
}

// Adjugate returns the transpose of the cofactor matrix of m.
func Adjugate(m Dense) (Dense, error) {
	if !m.IsSquare() || m.Rows() == 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrNotSquare, m.Rows(), m.Cols())
	}
	n := m.Rows()
	out := New(n, n)
	for i := range n {
		for j := range n {
			out[j][i] = Cofactor(m, i, j)
		}
	}
	return out, nil
}

// Inverse returns adj(m)/det(m). It fails with ErrSingular when
// |det(m)| < SingularTolerance or the determinant is not finite.
func Inverse(m Dense) (Dense, error) {
	d, err := Determinant(m)
	if err != nil {
		return nil, err
	}
	if math.Abs(d) < SingularTolerance || math.IsNaN(d) || math.IsInf(d, 0) {
		return nil, fmt.Errorf("%w: det=%g", ErrSingular, d)
	}
	adj, err := Adjugate(m)
	if err != nil {
		return nil, err
	}
	return Scale(adj, 1/d), nil
}

// Equal reports whether a and b have the same shape and every element
// differs by at most eps.
func Equal(a, b Dense, eps float64) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for r := range a {
		for c := range a[r] {
			if math.Abs(a[r][c]-b[r][c]) > eps {
				return false
			}
		}
	}
	return true
}

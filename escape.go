package fractal

import (
	"fmt"
	"math"
)

// EscapeRadius is the modulus beyond which an orbit is known to diverge.
const EscapeRadius = 2

// Escape runs the Mandelbrot orbit of c, treating the x and y coordinates of
// an item as the real and imaginary parts of a complex number. Starting from
// z = c it repeats z ← z² + c and returns the index of the first orbit value
// whose modulus exceeds EscapeRadius, together with the last value computed.
// An orbit that stays bounded for maxIter steps returns maxIter.
//
// The returned item is a vector.
func Escape(c Item, maxIter int) (int, Item, error) {
	if len(c.vals) != 3 {
		return 0, Item{}, &DimensionError{Op: "escape", Got: len(c.vals), Want: 3}
	}
	if maxIter < 0 {
		return 0, Item{}, invalidOperand("escape", fmt.Sprintf("negative iteration count %d", maxIter))
	}
	if !finite(c.X()) || !finite(c.Y()) {
		return 0, Item{}, invalidOperand("escape", fmt.Sprintf("non-finite parameter %v", c))
	}
	cv := Vec(c.X(), c.Y())
	z := cv
	for n := range maxIter {
		x, y := z.X(), z.Y()
		if z.dot(z) > EscapeRadius*EscapeRadius {
			return n, z, nil
		}
		z = Vec(x*x-y*y, 2*x*y).plus(cv)
	}
	return maxIter, z, nil
}

// Bounded reports whether the orbit of (x, y) stays within EscapeRadius for
// maxIter steps.
func Bounded(x, y float64, maxIter int) bool {
	n, _, err := Escape(Vec(x, y), maxIter)
	return err == nil && n == maxIter
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

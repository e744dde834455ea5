package fractal

import (
	"fmt"
	"math"
	"strings"
)

// Epsilon is the tolerance used by the Equal methods.
const Epsilon = 1e-6

// Item is an immutable row of homogeneous coordinates.
//
// In 2D an Item has three coordinates (x, y, w). The last coordinate
// distinguishes a free vector (w = 0) from a point (w = 1). Items are
// transformed as row vectors: p' = p·M.
type Item struct {
	vals []float64
}

// Vec returns the 2D free vector (x, y, 0).
func Vec(x, y float64) Item {
	return Item{vals: []float64{x, y, 0}}
}

// Pt returns the 2D point (x, y, 1).
func Pt(x, y float64) Item {
	return Item{vals: []float64{x, y, 1}}
}

// Item3 returns the raw homogeneous triple (x, y, w).
func Item3(x, y, w float64) Item {
	return Item{vals: []float64{x, y, w}}
}

// NewItem returns an item of arbitrary dimension. The values are copied.
func NewItem(vals ...float64) (Item, error) {
	if len(vals) == 0 {
		return Item{}, &DimensionError{Op: "item", Got: 0, Want: 1}
	}
	return Item{vals: append([]float64(nil), vals...)}, nil
}

// Dim returns the number of coordinates.
func (i Item) Dim() int { return len(i.vals) }

// At returns coordinate k.
func (i Item) At(k int) float64 { return i.vals[k] }

// X returns the first coordinate.
func (i Item) X() float64 { return i.vals[0] }

// Y returns the second coordinate.
func (i Item) Y() float64 { return i.vals[1] }

// W returns the last (homogeneous) coordinate.
func (i Item) W() float64 { return i.vals[len(i.vals)-1] }

// Values returns a copy of the coordinates.
func (i Item) Values() []float64 {
	return append([]float64(nil), i.vals...)
}

// IsPoint reports whether i is a 2D point (three coordinates, w != 0).
func (i Item) IsPoint() bool {
	return len(i.vals) == 3 && i.vals[2] != 0
}

// IsVector reports whether i is a 2D free vector (three coordinates, w == 0).
func (i Item) IsVector() bool {
	return len(i.vals) == 3 && i.vals[2] == 0
}

func (i Item) isVector() bool {
	return len(i.vals) > 0 && i.vals[len(i.vals)-1] == 0
}

// Times applies the 3×3 operator t to the row i.
func (i Item) Times(t Transform) (Item, error) {
	if len(i.vals) != 3 {
		return Item{}, &DimensionError{Op: "item times transform", Got: len(i.vals), Want: 3}
	}
	x, y, w := t.apply(i.vals[0], i.vals[1], i.vals[2])
	return Item3(x, y, w), nil
}

// Scale multiplies every coordinate, including w, by s.
// Scaling a point therefore changes its weight.
func (i Item) Scale(s float64) Item {
	out := make([]float64, len(i.vals))
	for k, v := range i.vals {
		out[k] = v * s
	}
	return Item{vals: out}
}

// Plus returns the elementwise sum i + o.
func (i Item) Plus(o Item) (Item, error) {
	if len(o.vals) != len(i.vals) {
		return Item{}, &DimensionError{Op: "plus", Got: len(o.vals), Want: len(i.vals)}
	}
	return i.plus(o), nil
}

func (i Item) plus(o Item) Item {
	out := make([]float64, len(i.vals))
	for k := range i.vals {
		out[k] = i.vals[k] + o.vals[k]
	}
	return Item{vals: out}
}

// Minus returns the elementwise difference i - o.
// The difference of two points is a vector.
func (i Item) Minus(o Item) (Item, error) {
	if len(o.vals) != len(i.vals) {
		return Item{}, &DimensionError{Op: "minus", Got: len(o.vals), Want: len(i.vals)}
	}
	return i.plus(o.Scale(-1)), nil
}

// Dot returns the dot product of two vectors.
// Both operands must be vectors of the same dimension.
func (i Item) Dot(o Item) (float64, error) {
	if len(o.vals) != len(i.vals) {
		return 0, &DimensionError{Op: "dot", Got: len(o.vals), Want: len(i.vals)}
	}
	if !i.isVector() || !o.isVector() {
		return 0, invalidOperand("dot", "operands must be vectors")
	}
	return i.dot(o), nil
}

func (i Item) dot(o Item) float64 {
	var sum float64
	for k := range i.vals {
		sum += i.vals[k] * o.vals[k]
	}
	return sum
}

// Magnitude returns the Euclidean length of a vector.
func (i Item) Magnitude() (float64, error) {
	d, err := i.Dot(i)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(d), nil
}

// Normalize returns the unit vector in the direction of i.
// It fails with ErrDivideByZero for the zero vector.
func (i Item) Normalize() (Item, error) {
	m, err := i.Magnitude()
	if err != nil {
		return Item{}, err
	}
	if m == 0 {
		return Item{}, fmt.Errorf("%w: normalize zero vector", ErrDivideByZero)
	}
	return i.Scale(1 / m), nil
}

// Equal reports whether i and o have the same dimension, their leading
// coordinates agree within Epsilon, and their weights agree. A point and a
// vector are never equal, however close their weights are.
func (i Item) Equal(o Item) bool {
	if len(i.vals) != len(o.vals) || len(i.vals) == 0 {
		return len(i.vals) == len(o.vals)
	}
	last := len(i.vals) - 1
	for k := range last {
		if !(math.Abs(i.vals[k]-o.vals[k]) <= Epsilon) {
			return false
		}
	}
	a, b := i.vals[last], o.vals[last]
	if a != b && (a == 0 || b == 0) {
		return false
	}
	return math.Abs(a-b) <= Epsilon
}

// String returns the coordinates as "(x, y, w)".
func (i Item) String() string {
	parts := make([]string, len(i.vals))
	for k, v := range i.vals {
		parts[k] = fmt.Sprintf("%g", v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

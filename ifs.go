package fractal

import (
	"fmt"
	"math"
)

// IFS is an immutable ordered list of affine operators: an iterated
// function system.
//
// Applying an IFS to a sprite replaces it by one transformed copy per
// operator. Operator order decides the order of the copies in the output,
// not the shape of the limiting figure.
type IFS struct {
	ops []Transform
}

// NewIFS returns the system made of ops, in order. The slice is copied.
func NewIFS(ops ...Transform) IFS {
	return IFS{ops: append([]Transform(nil), ops...)}
}

// Len returns the number of operators.
func (s IFS) Len() int { return len(s.ops) }

// IsEmpty reports whether s has no operators.
func (s IFS) IsEmpty() bool { return len(s.ops) == 0 }

// Transforms returns a copy of the operators.
func (s IFS) Transforms() []Transform {
	return append([]Transform(nil), s.ops...)
}

// First returns the first operator.
func (s IFS) First() (Transform, error) {
	if len(s.ops) == 0 {
		return Transform{}, wrapEmpty("ifs", "empty system has no first operator")
	}
	return s.ops[0], nil
}

// Rest returns the system without its first operator.
func (s IFS) Rest() (IFS, error) {
	if len(s.ops) == 0 {
		return IFS{}, wrapEmpty("ifs", "empty system has no rest")
	}
	return NewIFS(s.ops[1:]...), nil
}

// Prepend returns a new system with t placed before the existing operators.
func (s IFS) Prepend(t Transform) IFS {
	ops := make([]Transform, 0, len(s.ops)+1)
	ops = append(ops, t)
	return IFS{ops: append(ops, s.ops...)}
}

// Map returns a new system with f applied to every operator.
func (s IFS) Map(f func(Transform) Transform) IFS {
	ops := make([]Transform, len(s.ops))
	for i, t := range s.ops {
		ops[i] = f(t)
	}
	return IFS{ops: ops}
}

// Of applies every operator to sprite and concatenates the copies in
// operator order. The result has Len() times as many rows as sprite.
func (s IFS) Of(sprite Sprite) (Sprite, error) {
	if len(s.ops) == 0 {
		return Sprite{}, wrapEmpty("ifs", "empty system cannot be applied")
	}
	n := len(sprite.rows)
	out := make([][3]float64, n*len(s.ops))
	for i, t := range s.ops {
		transformRows(out[i*n:(i+1)*n], sprite.rows, t)
	}
	return Sprite{rows: out}, nil
}

func transformRows(dst, src [][3]float64, t Transform) {
	for j, r := range src {
		x, y, w := t.apply(r[0], r[1], r[2])
		dst[j] = [3]float64{x, y, w}
	}
}

// OfList applies every operator to sprite and returns the copies
// separately, in operator order.
func (s IFS) OfList(sprite Sprite) ([]Sprite, error) {
	if len(s.ops) == 0 {
		return nil, wrapEmpty("ifs", "empty system cannot be applied")
	}
	out := make([]Sprite, len(s.ops))
	for i, t := range s.ops {
		out[i] = sprite.Times(t)
	}
	return out, nil
}

// Iterate applies Of exactly n times to seed. Iterate(0, seed) returns seed
// for any system, including an empty one.
//
// The result has seed.Len()·Len()^n rows; use ExpectedRows to bound n
// before calling.
func (s IFS) Iterate(n int, seed Sprite) (Sprite, error) {
	if n < 0 {
		return Sprite{}, invalidOperand("iterate", fmt.Sprintf("negative iteration count %d", n))
	}
	if n == 0 {
		return seed, nil
	}
	if _, err := s.ExpectedRows(n, seed.Len()); err != nil {
		return Sprite{}, err
	}
	log := Logger()
	cur := seed
	for round := range n {
		next, err := s.Of(cur)
		if err != nil {
			return Sprite{}, err
		}
		log.Debug("ifs round", "round", round+1, "operators", len(s.ops), "rows", next.Len())
		cur = next
	}
	return cur, nil
}

// ExpectedRows returns rows·Len()^n, the size of Iterate(n, seed) for a
// seed with the given number of rows. It fails with ErrTooLarge when the
// result does not fit in an int.
func (s IFS) ExpectedRows(n, rows int) (int, error) {
	return growth(rows, len(s.ops), n)
}

// growth returns base·k^n with overflow detection.
func growth(base, k, n int) (int, error) {
	if n < 0 {
		return 0, invalidOperand("growth", fmt.Sprintf("negative depth %d", n))
	}
	total := base
	for range n {
		if total == 0 || k == 0 {
			return 0, nil
		}
		if total > math.MaxInt/k {
			return 0, fmt.Errorf("%w: %d·%d^%d", ErrTooLarge, base, k, n)
		}
		total *= k
	}
	return total, nil
}

package fractal

import (
	"iter"
	"math"
)

// Sprite is an immutable ordered list of homogeneous rows (an n×3 matrix).
//
// Sprites are what the engine hands to a renderer: rows come out in
// insertion order and the consumer decides whether to draw them as discrete
// points, as a connected polyline, or pairwise as segments.
type Sprite struct {
	rows [][3]float64
}

// NewSprite builds a sprite from 2D points. It fails with ErrEmptyCollection
// when no points are given, with ErrDimensionMismatch for items that are not
// three-dimensional, and with ErrInvalidOperand for vectors.
func NewSprite(points ...Item) (Sprite, error) {
	if len(points) == 0 {
		return Sprite{}, emptySprite()
	}
	rows := make([][3]float64, len(points))
	for i, p := range points {
		if p.Dim() != 3 {
			return Sprite{}, &DimensionError{Op: "sprite", Got: p.Dim(), Want: 3}
		}
		if p.W() == 0 {
			return Sprite{}, invalidOperand("sprite", "sprites contain points only")
		}
		rows[i] = [3]float64{p.vals[0], p.vals[1], p.vals[2]}
	}
	return Sprite{rows: rows}, nil
}

// SpriteXY builds a sprite from interleaved x, y coordinates.
func SpriteXY(coords ...float64) (Sprite, error) {
	if len(coords) == 0 {
		return Sprite{}, emptySprite()
	}
	if len(coords)%2 != 0 {
		return Sprite{}, &DimensionError{Op: "sprite coordinates", Got: len(coords), Want: len(coords) + 1}
	}
	rows := make([][3]float64, len(coords)/2)
	for i := range rows {
		rows[i] = [3]float64{coords[2*i], coords[2*i+1], 1}
	}
	return Sprite{rows: rows}, nil
}

func emptySprite() error {
	return wrapEmpty("sprite", "cannot build an empty sprite")
}

// Len returns the number of rows.
func (s Sprite) Len() int { return len(s.rows) }

// IsEmpty reports whether s has no rows.
func (s Sprite) IsEmpty() bool { return len(s.rows) == 0 }

// Row returns row i as an Item.
func (s Sprite) Row(i int) Item {
	r := s.rows[i]
	return Item3(r[0], r[1], r[2])
}

// All iterates over the rows in order.
func (s Sprite) All() iter.Seq2[int, Item] {
	return func(yield func(int, Item) bool) {
		for i := range s.rows {
			if !yield(i, s.Row(i)) {
				return
			}
		}
	}
}

// Segments iterates over consecutive row pairs (0,1), (2,3), ...
// A trailing unpaired row is skipped.
func (s Sprite) Segments() iter.Seq2[Item, Item] {
	return func(yield func(Item, Item) bool) {
		for i := 0; i+1 < len(s.rows); i += 2 {
			if !yield(s.Row(i), s.Row(i+1)) {
				return
			}
		}
	}
}

// Vertices returns a copy of the rows as (x, y, w) triples.
func (s Sprite) Vertices() [][3]float64 {
	return append([][3]float64(nil), s.rows...)
}

// Times applies t to every row.
func (s Sprite) Times(t Transform) Sprite {
	out := make([][3]float64, len(s.rows))
	for i, r := range s.rows {
		x, y, w := t.apply(r[0], r[1], r[2])
		out[i] = [3]float64{x, y, w}
	}
	return Sprite{rows: out}
}

// Concat returns the rows of s followed by the rows of o.
func (s Sprite) Concat(o Sprite) Sprite {
	return ConcatAll(s, o)
}

// ConcatAll stacks sprites in argument order.
func ConcatAll(sprites ...Sprite) Sprite {
	n := 0
	for _, s := range sprites {
		n += len(s.rows)
	}
	out := make([][3]float64, 0, n)
	for _, s := range sprites {
		out = append(out, s.rows...)
	}
	return Sprite{rows: out}
}

// Equal reports whether s and o have the same rows within Epsilon.
func (s Sprite) Equal(o Sprite) bool {
	if len(s.rows) != len(o.rows) {
		return false
	}
	for i := range s.rows {
		for c := range 3 {
			if !(math.Abs(s.rows[i][c]-o.rows[i][c]) <= Epsilon) {
				return false
			}
		}
	}
	return true
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Center returns the midpoint of the box.
func (r Rect) Center() (float64, float64) {
	return (r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2
}

// Bounds returns the bounding box of the rows' x and y coordinates.
// It returns the zero Rect for an empty sprite.
func (s Sprite) Bounds() Rect {
	if len(s.rows) == 0 {
		return Rect{}
	}
	b := Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, r := range s.rows {
		b.MinX = math.Min(b.MinX, r[0])
		b.MinY = math.Min(b.MinY, r[1])
		b.MaxX = math.Max(b.MaxX, r[0])
		b.MaxY = math.Max(b.MaxY, r[1])
	}
	return b
}

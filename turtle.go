package fractal

// Turtle is an immutable drawing state: a heading vector, a position and
// the path drawn so far.
//
// Every method returns a new Turtle. Only Forward extends the path; Move,
// Rotate and Scale change the heading or position alone. Turtles may be
// branched freely: two turtles derived from the same state share the common
// prefix of their paths and never observe each other's later segments.
type Turtle struct {
	dx, dy float64 // heading; need not be a unit vector
	x, y   float64
	path   *segment
}

// segment is a node of the persistent path list, newest first.
type segment struct {
	x0, y0, x1, y1 float64
	prev           *segment
	count          int
}

// NewTurtle returns a turtle at the origin heading along +x with unit step
// and no path.
func NewTurtle() Turtle {
	return Turtle{dx: 1}
}

// TurtleAt returns a turtle at point pos heading along dir with no path.
func TurtleAt(pos, dir Item) (Turtle, error) {
	if !pos.IsPoint() || !dir.IsVector() {
		return Turtle{}, invalidOperand("turtle", "requires a 2D point and a 2D vector")
	}
	return Turtle{dx: dir.X(), dy: dir.Y(), x: pos.X(), y: pos.Y()}, nil
}

// Position returns the current position as a point.
func (t Turtle) Position() Item { return Pt(t.x, t.y) }

// Direction returns the heading as a vector. Its magnitude is the length
// of a unit step.
func (t Turtle) Direction() Item { return Vec(t.dx, t.dy) }

// Move translates the position by s·direction without drawing.
func (t Turtle) Move(s float64) Turtle {
	t.x += s * t.dx
	t.y += s * t.dy
	return t
}

// Forward moves like Move and appends the segment from the old to the new
// position to the path.
func (t Turtle) Forward(s float64) Turtle {
	next := t.Move(s)
	count := 1
	if t.path != nil {
		count = t.path.count + 1
	}
	next.path = &segment{x0: t.x, y0: t.y, x1: next.x, y1: next.y, prev: t.path, count: count}
	return next
}

// Rotate turns the heading by theta radians counter-clockwise. The position
// is unchanged.
func (t Turtle) Rotate(theta float64) Turtle {
	t.dx, t.dy, _ = Rotate(theta).apply(t.dx, t.dy, 0)
	return t
}

// Scale multiplies the step length by s.
func (t Turtle) Scale(s float64) Turtle {
	t.dx *= s
	t.dy *= s
	return t
}

// HasPath reports whether Forward has been called.
func (t Turtle) HasPath() bool { return t.path != nil }

// Segments returns the number of segments drawn.
func (t Turtle) Segments() int {
	if t.path == nil {
		return 0
	}
	return t.path.count
}

// Path returns the drawn path as a sprite of 2·Segments() rows: each
// segment contributes its start and end point, oldest first. The boolean
// is false when nothing has been drawn yet.
func (t Turtle) Path() (Sprite, bool) {
	if t.path == nil {
		return Sprite{}, false
	}
	rows := make([][3]float64, 2*t.path.count)
	i := len(rows)
	for s := t.path; s != nil; s = s.prev {
		i -= 2
		rows[i] = [3]float64{s.x0, s.y0, 1}
		rows[i+1] = [3]float64{s.x1, s.y1, 1}
	}
	return Sprite{rows: rows}, true
}

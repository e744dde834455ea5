package fractal

import (
	"errors"
	"math"
	"testing"
)

func TestTurtleStart(t *testing.T) {
	tt := NewTurtle()
	if !tt.Position().Equal(Pt(0, 0)) {
		t.Errorf("Position() = %v, want origin", tt.Position())
	}
	if !tt.Direction().Equal(Vec(1, 0)) {
		t.Errorf("Direction() = %v, want +x", tt.Direction())
	}
	if tt.HasPath() {
		t.Error("new turtle should have no path")
	}
	if _, ok := tt.Path(); ok {
		t.Error("Path() should report absence")
	}
}

func TestTurtleMove(t *testing.T) {
	tt := NewTurtle().Move(2)
	if !tt.Position().Equal(Pt(2, 0)) {
		t.Errorf("Move(2) position = %v", tt.Position())
	}
	if tt.HasPath() {
		t.Error("Move must not draw")
	}
}

func TestTurtleRotateKeepsPosition(t *testing.T) {
	tt := NewTurtle().Move(3).Rotate(math.Pi / 2)
	if !tt.Position().Equal(Pt(3, 0)) {
		t.Errorf("Rotate moved the turtle to %v", tt.Position())
	}
	if !tt.Direction().Equal(Vec(0, 1)) {
		t.Errorf("Direction() = %v, want (0, 1, 0)", tt.Direction())
	}
}

func TestTurtleScale(t *testing.T) {
	tt := NewTurtle().Scale(0.5).Forward(1)
	if !tt.Position().Equal(Pt(0.5, 0)) {
		t.Errorf("position = %v, want (0.5, 0)", tt.Position())
	}
}

func TestTurtleForward(t *testing.T) {
	tt := NewTurtle().Forward(1)
	path, ok := tt.Path()
	if !ok {
		t.Fatal("Forward should start a path")
	}
	if !path.Equal(mustSprite(t, 0, 0, 1, 0)) {
		t.Errorf("first segment = %v", path.Vertices())
	}

	tt = tt.Rotate(math.Pi / 2).Forward(2)
	path, _ = tt.Path()
	want := mustSprite(t, 0, 0, 1, 0, 1, 0, 1, 2)
	if !path.Equal(want) {
		t.Errorf("path = %v, want %v", path.Vertices(), want.Vertices())
	}
}

func TestTurtlePathLength(t *testing.T) {
	for m := 1; m <= 20; m++ {
		tt := NewTurtle()
		for i := range m {
			tt = tt.Forward(1).Rotate(float64(i) * 0.3)
		}
		path, _ := tt.Path()
		if path.Len() != 2*m || tt.Segments() != m {
			t.Errorf("%d forwards: rows=%d segments=%d", m, path.Len(), tt.Segments())
		}
	}
}

func TestTurtleBranching(t *testing.T) {
	base := NewTurtle().Forward(1)
	left := base.Rotate(math.Pi / 2).Forward(1)
	right := base.Rotate(-math.Pi / 2).Forward(1)

	lp, _ := left.Path()
	rp, _ := right.Path()
	bp, _ := base.Path()
	if bp.Len() != 2 {
		t.Errorf("base path grew to %d rows", bp.Len())
	}
	if !lp.Row(3).Equal(Pt(1, 1)) || !rp.Row(3).Equal(Pt(1, -1)) {
		t.Errorf("branches interfere: left=%v right=%v", lp.Vertices(), rp.Vertices())
	}
}

func TestTurtleAt(t *testing.T) {
	tt, err := TurtleAt(Pt(1, 1), Vec(0, 2))
	if err != nil {
		t.Fatal(err)
	}
	if got := tt.Forward(1).Position(); !got.Equal(Pt(1, 3)) {
		t.Errorf("position = %v, want (1, 3)", got)
	}
	if _, err := TurtleAt(Vec(1, 1), Vec(0, 1)); !errors.Is(err, ErrInvalidOperand) {
		t.Errorf("TurtleAt(vector, vector) error = %v", err)
	}
}

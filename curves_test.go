package fractal

import (
	"errors"
	"math"
	"testing"
)

func TestGeneratorSegments(t *testing.T) {
	for _, g := range Generators() {
		t.Run(g.Name, func(t *testing.T) {
			for level := range 6 {
				want, err := g.Segments(level)
				if err != nil {
					t.Fatal(err)
				}
				tt, err := g.Draw(NewTurtle(), level)
				if err != nil {
					t.Fatal(err)
				}
				if tt.Segments() != want {
					t.Errorf("level %d: drew %d segments, want %d", level, tt.Segments(), want)
				}
				if want != int(math.Pow(float64(g.Branching), float64(level))) {
					t.Errorf("level %d: Segments() = %d, want %d^%d", level, want, g.Branching, level)
				}
			}
		})
	}
}

func TestGeneratorEndState(t *testing.T) {
	// Every generator ends where Forward(1) would, with the same heading.
	for _, g := range Generators() {
		t.Run(g.Name, func(t *testing.T) {
			start := NewTurtle().Rotate(0.4).Scale(2)
			want := start.Forward(1)
			got, err := g.Draw(start, 4)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Position().Equal(want.Position()) {
				t.Errorf("end position = %v, want %v", got.Position(), want.Position())
			}
			if !got.Direction().Equal(want.Direction()) {
				t.Errorf("end heading = %v, want %v", got.Direction(), want.Direction())
			}
		})
	}
}

func TestKochCurveMatchesIFS(t *testing.T) {
	tt, err := KochCurve.Draw(NewTurtle(), 3)
	if err != nil {
		t.Fatal(err)
	}
	path, _ := tt.Path()

	seed := mustSprite(t, 0, 0, 1, 0)
	want, err := TrianglePulse(math.Pi/3).Iterate(3, seed)
	if err != nil {
		t.Fatal(err)
	}
	if !path.Equal(want) {
		t.Error("turtle Koch curve differs from the IFS Koch curve")
	}
}

func TestGeneratorErrors(t *testing.T) {
	if _, err := KochCurve.Draw(NewTurtle(), -1); !errors.Is(err, ErrInvalidOperand) {
		t.Errorf("Draw(-1) error = %v, want ErrInvalidOperand", err)
	}
	if _, err := KochCurve.Segments(64); !errors.Is(err, ErrTooLarge) {
		t.Errorf("Segments(64) error = %v, want ErrTooLarge", err)
	}
	if _, err := KochCurve.Draw(NewTurtle(), 64); !errors.Is(err, ErrTooLarge) {
		t.Errorf("Draw(64) error = %v, want ErrTooLarge", err)
	}
}

func TestGeneratorKeepsPrefix(t *testing.T) {
	start := NewTurtle().Forward(1)
	got, err := LevyC.Draw(start, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got.Segments() != 1+4 {
		t.Errorf("Segments() = %d, want 5", got.Segments())
	}
	path, _ := got.Path()
	if !path.Row(1).Equal(Pt(1, 0)) {
		t.Errorf("prefix segment lost: %v", path.Row(1))
	}
}

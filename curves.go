package fractal

import (
	"fmt"
	"math"
)

// Generator is a recursive turtle curve.
//
// At level 0 a generator draws a single unit step. At level n it makes
// Branching recursive calls at level n-1, interleaved with rotations and
// rescalings that encode the curve's subdivision rule. Drawing level n
// therefore issues Branching^n Forward calls; Segments reports that number
// so callers can refuse a level before recursing.
type Generator struct {
	Name      string
	Branching int

	// rule draws one level using recurse for the sub-curves.
	rule func(t Turtle, recurse func(Turtle) Turtle) Turtle
}

// Segments returns the number of segments Draw produces at level.
func (g Generator) Segments(level int) (int, error) {
	if level < 0 {
		return 0, invalidOperand(g.Name, fmt.Sprintf("negative level %d", level))
	}
	return growth(1, g.Branching, level)
}

// Draw runs the generator from t at the given level and returns the final
// turtle. Position and heading end where an equivalent single Forward(1)
// would leave them.
func (g Generator) Draw(t Turtle, level int) (Turtle, error) {
	n, err := g.Segments(level)
	if err != nil {
		return Turtle{}, err
	}
	Logger().Debug("curve", "name", g.Name, "level", level, "segments", n)
	return g.draw(t, level), nil
}

func (g Generator) draw(t Turtle, level int) Turtle {
	if level == 0 {
		return t.Forward(1)
	}
	return g.rule(t, func(sub Turtle) Turtle { return g.draw(sub, level-1) })
}

var sqrt3 = math.Sqrt(3)

// KochCurve replaces each step by four thirds: flat, up 60°, down 60°, flat.
var KochCurve = Generator{
	Name:      "koch",
	Branching: 4,
	rule: func(t Turtle, recurse func(Turtle) Turtle) Turtle {
		t = t.Scale(1.0 / 3.0)
		t = recurse(t).Rotate(math.Pi / 3.0)
		t = recurse(t).Rotate(-2 * math.Pi / 3.0)
		t = recurse(t).Rotate(math.Pi / 3.0)
		return recurse(t).Scale(3.0)
	},
}

// SqrtThreeKoch is a two-branch Koch variant: each step is replaced by two
// steps of length 1/√3 drawn backwards from the far end, forming a 120°
// peak.
var SqrtThreeKoch = Generator{
	Name:      "koch-sqrt3",
	Branching: 2,
	rule: func(t Turtle, recurse func(Turtle) Turtle) Turtle {
		t = t.Move(1.0).
			Rotate(5.0 * math.Pi / 6.0).
			Scale(1.0 / sqrt3)
		t = recurse(t).Rotate(math.Pi / 3.0)
		return recurse(t).
			Rotate(5.0 * math.Pi / 6.0).
			Scale(sqrt3).
			Move(1.0)
	},
}

// LevyC is the Lévy C curve: each step becomes two steps of length 1/√2
// meeting at a right angle.
var LevyC = Generator{
	Name:      "levy-c",
	Branching: 2,
	rule: func(t Turtle, recurse func(Turtle) Turtle) Turtle {
		t = t.Rotate(math.Pi / 4).Scale(1 / math.Sqrt2)
		t = recurse(t).Rotate(-math.Pi / 2)
		return recurse(t).Rotate(math.Pi / 4).Scale(math.Sqrt2)
	},
}

// Generators lists the built-in curves.
func Generators() []Generator {
	return []Generator{KochCurve, SqrtThreeKoch, LevyC}
}

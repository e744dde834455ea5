// Package fractal provides 2D affine geometry and self-similar figure
// generation for Go.
//
// # Overview
//
// fractal builds finite approximations of self-similar figures in two ways:
//
//   - An iterated function system (IFS) repeatedly replaces a base shape by
//     transformed copies of itself.
//   - A Turtle walks relative move/turn/scale commands, and recursive curve
//     Generators expand each step into several smaller ones.
//
// Both produce a Sprite: an ordered list of homogeneous points that a
// renderer consumes either as a point cloud or as line segments.
//
// Escape runs the Mandelbrot orbit of a single parameter for escape-time
// pictures, which are shaded per pixel instead of drawn from a Sprite.
//
// # Quick Start
//
//	import "github.com/gogpu/fractal"
//
//	seed, _ := fractal.SpriteXY(0, 0, 1, 0)
//	koch := fractal.TrianglePulse(math.Pi / 3)
//	curve, err := koch.Iterate(5, seed) // 2·4^5 rows
//
//	t, err := fractal.KochCurve.Draw(fractal.NewTurtle(), 5)
//	path, _ := t.Path()
//
// # Coordinates
//
// Values use 2D homogeneous coordinates. A point is (x, y, 1), a free vector
// is (x, y, 0). Items are row vectors multiplied on the left of a 3×3
// Transform, so the translation sits in the third row and A.Times(B) means
// "A, then B". Angles are in radians and increase counter-clockwise.
//
// # Errors
//
// Contract violations are reported through the sentinel errors in this
// package (ErrDimensionMismatch, ErrInvalidOperand, ErrEmptyCollection,
// ErrSingularMatrix, ErrDivideByZero, ErrTooLarge). Nothing returns NaN or
// Inf in place of an error.
//
// # Growth
//
// Iterating an IFS of k operators n times multiplies the row count by k^n,
// and a curve generator of branching b at level n draws b^n segments. Use
// IFS.ExpectedRows and Generator.Segments to bound n before generating.
//
// # Concurrency
//
// All values are immutable and safe to share between goroutines. Iterator
// spreads one IFS application over a worker pool with identical output.
package fractal

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

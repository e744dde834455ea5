package fractal

import "math"

// TrianglePulse returns the four-map system that replaces the unit segment
// [(0,0), (1,0)] by a flat-rise-fall-flat pulse whose peak has interior
// angle theta. TrianglePulse(math.Pi/3) is the Koch curve.
func TrianglePulse(theta float64) IFS {
	seg := 1.0 / (2.0 + 2.0*math.Sin(theta/2.0))
	halfWidth := seg * math.Sin(theta/2.0)
	height := seg * math.Cos(theta/2.0)

	return NewIFS(
		Identity().Scale(seg),
		Identity().Scale(seg).Rotate((math.Pi-theta)/2.0).Shift(seg, 0),
		Identity().Scale(seg).Rotate((theta-math.Pi)/2.0).Shift(seg+halfWidth, height),
		Identity().Scale(seg).Shift(seg+2.0*halfWidth, 0),
	)
}

// TrianglePulseReduced returns a two-map system with the same attractor
// family as TrianglePulse. Each copy is flipped end to end, so the
// intermediate polylines differ while the limit agrees.
func TrianglePulseReduced(theta float64) IFS {
	phi := (math.Pi - theta) / 4.0
	sin, cos := math.Sincos(phi)

	l := 1.0 / (2.0 * cos)
	w := l * cos
	h := l * sin

	return NewIFS(
		Identity().Scale(l).Rotate(math.Pi+phi).Shift(w, h),
		Identity().Scale(l).Rotate(math.Pi-phi).Shift(1.0, 0),
	)
}

// QuadPulse returns the five-map system that replaces the unit segment by a
// flat-up-across-down-flat pulse with base angles pi - theta.
func QuadPulse(theta float64) IFS {
	l := 1.0 / (3.0 + 2*math.Cos(math.Pi-theta))
	w := l * math.Cos(math.Pi-theta)
	h := l * math.Sin(math.Pi-theta)

	return NewIFS(
		Identity().Scale(l),
		Identity().Scale(l).Rotate(math.Pi-theta).Shift(l, 0),
		Identity().Scale(l).Shift(l+w, h),
		Identity().Scale(l).Rotate(theta-math.Pi).Shift(2*l+w, h),
		Identity().Scale(l).Shift(2*(l+w), 0),
	)
}

// Sierpinski returns the three half-scale maps whose attractor is the
// Sierpinski triangle with vertices (0,0), (1,0), (1/2, √3/2).
func Sierpinski() IFS {
	return NewIFS(
		Scale(0.5),
		Scale(0.5).Shift(0.5, 0),
		Scale(0.5).Shift(0.25, math.Sqrt(3)/4),
	)
}

// BarnsleyFern returns Barnsley's four-map fern. The stem map is singular.
func BarnsleyFern() IFS {
	return NewIFS(
		Affine(0, 0, 0, 0.16, 0, 0),
		Affine(0.85, -0.04, 0.04, 0.85, 0, 1.6),
		Affine(0.2, 0.23, -0.26, 0.22, 0, 1.6),
		Affine(-0.15, 0.26, 0.28, 0.24, 0, 0.44),
	)
}

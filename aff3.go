package fractal

import "golang.org/x/image/math/f64"

// Aff3 converts t to the column-vector affine matrix used by
// golang.org/x/image (x' = a0*x + a1*y + a2, y' = a3*x + a4*y + a5).
// The projective column of t is dropped.
func (t Transform) Aff3() f64.Aff3 {
	return f64.Aff3{
		t.m[0][0], t.m[1][0], t.m[2][0],
		t.m[0][1], t.m[1][1], t.m[2][1],
	}
}

// TransformFromAff3 converts an x/image affine matrix to a Transform.
func TransformFromAff3(a f64.Aff3) Transform {
	return Affine(a[0], a[3], a[1], a[4], a[2], a[5])
}

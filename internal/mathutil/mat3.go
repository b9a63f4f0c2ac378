package mathutil

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// Value type for zero heap allocation.
type Mat3 [9]float64

func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Mat3FromRows builds a matrix whose rows are a, b, c.
// A look-at basis (right, up, forward) stored this way maps world offsets to view space.
func Mat3FromRows(a, b, c Vec3) Mat3 {
	return Mat3{
		a[0], a[1], a[2],
		b[0], b[1], b[2],
		c[0], c[1], c[2],
	}
}

// Row returns row i.
func (m Mat3) Row(i int) Vec3 {
	return Vec3{m[i*3], m[i*3+1], m[i*3+2]}
}

// Mat3Mul returns a × b.
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[r*3+0]*b[0*3+c] + a[r*3+1]*b[1*3+c] + a[r*3+2]*b[2*3+c]
		}
	}
	return m
}

// MulVec3 returns M × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// LookBasis returns the orthonormal (right, up, forward) rows for an eye looking at target.
// When forward is parallel to worldUp, +Z stands in for up so the basis never degenerates.
func LookBasis(eye, target, worldUp Vec3) Mat3 {
	fwd := target.Sub(eye).Normalize()
	if fwd == (Vec3{}) {
		return Mat3Identity()
	}
	right := fwd.Cross(worldUp)
	if right.Len() < 1e-9 {
		right = fwd.Cross(Vec3{0, 0, 1})
	}
	right = right.Normalize()
	up := right.Cross(fwd)
	return Mat3FromRows(right, up, fwd)
}

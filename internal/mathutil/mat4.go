package mathutil

// Mat4 is a 4×4 matrix stored row-major. Points are column vectors, so a
// transform is applied as M × p and composed right to left.
type Mat4 [16]float64

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// Mul returns m × b.
func (m Mat4) Mul(b Mat4) Mat4 {
	return Mat4Mul(m, b)
}

func (m Mat4) At(r, c int) float64 {
	return m[r*4+c]
}

// MulVec4 returns M × v.
func (m Mat4) MulVec4(v Vec4[float64]) Vec4[float64] {
	return Vec4[float64]{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// MulPoint transforms a 3D point (w=1) by the affine part of the matrix.
func (m Mat4) MulPoint(v Vec3[float64]) Vec3[float64] {
	return Vec3[float64]{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

// Project transforms p as a homogeneous point and divides by w.
func (m Mat4) Project(p Vec3[float64]) Vec3[float64] {
	h := m.MulVec4(Point4(p))
	return h.XYZ().DivScalar(h.W)
}

// FromMat3Translation builds a 4×4 affine matrix from a 3×3 rotation and translation.
func FromMat3Translation(r Mat3, t Vec3[float64]) Mat4 {
	return Mat4{
		r[0], r[1], r[2], t.X,
		r[3], r[4], r[5], t.Y,
		r[6], r[7], r[8], t.Z,
		0, 0, 0, 1,
	}
}

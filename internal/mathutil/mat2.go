package mathutil

// Mat2 is a 2×2 matrix held as two row vectors.
type Mat2[T Number] struct {
	R0, R1 Vec2[T]
}

func NewMat2Rows[T Number](r0, r1 Vec2[T]) Mat2[T] {
	return Mat2[T]{r0, r1}
}

func NewMat2Cols[T Number](c0, c1 Vec2[T]) Mat2[T] {
	return Mat2[T]{Vec2[T]{c0.X, c1.X}, Vec2[T]{c0.Y, c1.Y}}
}

func (m Mat2[T]) MulVec(v Vec2[T]) Vec2[T] {
	return Vec2[T]{m.R0.Dot(v), m.R1.Dot(v)}
}

func (m Mat2[T]) Det() T {
	return m.R0.X*m.R1.Y - m.R0.Y*m.R1.X
}

// Inverse returns the adjugate divided by the determinant, in float64.
// ok is false only when the determinant is exactly zero.
func (m Mat2[T]) Inverse() (inv Mat2[float64], ok bool) {
	d := float64(m.Det())
	if d == 0 {
		return Mat2[float64]{}, false
	}
	a, b := float64(m.R0.X), float64(m.R0.Y)
	c, e := float64(m.R1.X), float64(m.R1.Y)
	return Mat2[float64]{
		Vec2[float64]{e / d, -b / d},
		Vec2[float64]{-c / d, a / d},
	}, true
}

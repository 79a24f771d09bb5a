package mathutil

import "math"

// Vec4 is a homogeneous coordinate (x, y, z, w).
type Vec4[T Number] struct {
	X, Y, Z, W T
}

// Point4 lifts a 3D point to homogeneous form with w = 1.
func Point4[T Number](v Vec3[T]) Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, 1}
}

// At returns component i (0=X ... 3=W).
func (v Vec4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic("mathutil: Vec4 index out of range")
}

func (v *Vec4[T]) Set(i int, s T) {
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	case 2:
		v.Z = s
	case 3:
		v.W = s
	default:
		panic("mathutil: Vec4 index out of range")
	}
}

func (a Vec4[T]) Add(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

func (a Vec4[T]) Sub(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Mul multiplies component-wise.
func (a Vec4[T]) Mul(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W}
}

func (a Vec4[T]) Div(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X / b.X, a.Y / b.Y, a.Z / b.Z, a.W / b.W}
}

func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vec4[T]) DivScalar(s T) Vec4[T] {
	return Vec4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

func (v *Vec4[T]) AddAssign(b Vec4[T]) {
	v.X += b.X
	v.Y += b.Y
	v.Z += b.Z
	v.W += b.W
}

func (v *Vec4[T]) SubAssign(b Vec4[T]) {
	v.X -= b.X
	v.Y -= b.Y
	v.Z -= b.Z
	v.W -= b.W
}

func (v *Vec4[T]) ScaleAssign(s T) {
	v.X *= s
	v.Y *= s
	v.Z *= s
	v.W *= s
}

func (v *Vec4[T]) DivAssign(s T) {
	v.X /= s
	v.Y /= s
	v.Z /= s
	v.W /= s
}

func (a Vec4[T]) Dot(b Vec4[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

func (v Vec4[T]) Norm() float64 {
	x, y, z, w := float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)
	return math.Sqrt(x*x + y*y + z*z + w*w)
}

func (v Vec4[T]) Normalize() Vec4[float64] {
	return v.Float().DivScalar(v.Norm())
}

func (v Vec4[T]) Float() Vec4[float64] {
	return ConvVec4[float64](v)
}

// XYZ drops W without dividing.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{v.X, v.Y, v.Z}
}

// ConvVec4 converts the element type of v.
func ConvVec4[U, T Number](v Vec4[T]) Vec4[U] {
	return Vec4[U]{U(v.X), U(v.Y), U(v.Z), U(v.W)}
}

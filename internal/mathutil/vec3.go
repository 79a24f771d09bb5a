package mathutil

import "math"

// Number is the element constraint shared by vectors and matrices.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Float restricts interpolation helpers to floating-point elements.
type Float interface {
	~float32 | ~float64
}

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3[T Number] struct {
	X, Y, Z T
}

// V3 is shorthand for Vec3[T]{x, y, z}.
func V3[T Number](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// At returns component i (0=X, 1=Y, 2=Z).
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("mathutil: Vec3 index out of range")
}

// Set assigns component i.
func (v *Vec3[T]) Set(i int, s T) {
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	case 2:
		v.Z = s
	default:
		panic("mathutil: Vec3 index out of range")
	}
}

func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul multiplies component-wise.
func (a Vec3[T]) Mul(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Div divides component-wise. Integer vectors panic on a zero component.
func (a Vec3[T]) Div(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X / b.X, a.Y / b.Y, a.Z / b.Z}
}

func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3[T]) DivScalar(s T) Vec3[T] {
	return Vec3[T]{v.X / s, v.Y / s, v.Z / s}
}

func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

func (v *Vec3[T]) AddAssign(b Vec3[T]) {
	v.X += b.X
	v.Y += b.Y
	v.Z += b.Z
}

func (v *Vec3[T]) SubAssign(b Vec3[T]) {
	v.X -= b.X
	v.Y -= b.Y
	v.Z -= b.Z
}

func (v *Vec3[T]) ScaleAssign(s T) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

func (v *Vec3[T]) DivAssign(s T) {
	v.X /= s
	v.Y /= s
	v.Z /= s
}

func (a Vec3[T]) Dot(b Vec3[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross is evaluated in the element type, so integer inputs stay exact.
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (v Vec3[T]) Norm() float64 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return math.Sqrt(x*x + y*y + z*z)
}

// Normalize returns v / |v| in float64. A zero vector yields NaN components.
func (v Vec3[T]) Normalize() Vec3[float64] {
	return v.Float().DivScalar(v.Norm())
}

func (v Vec3[T]) Float() Vec3[float64] {
	return ConvVec3[float64](v)
}

// XY drops the Z component.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{v.X, v.Y}
}

// ConvVec3 converts the element type of v, e.g. ConvVec3[float64](Vec3[int]{...}).
func ConvVec3[U, T Number](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v.X), U(v.Y), U(v.Z)}
}

// Interpolate blends the attributes a, b, c with barycentric weights w.
func Interpolate[T Float](w Vec3[T], a, b, c Vec2[T]) Vec2[T] {
	return Vec2[T]{
		w.X*a.X + w.Y*b.X + w.Z*c.X,
		w.X*a.Y + w.Y*b.Y + w.Z*c.Y,
	}
}

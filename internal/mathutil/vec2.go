package mathutil

import "math"

// Vec2 is a 2-component vector. Vec2[int] is a pixel coordinate.
type Vec2[T Number] struct {
	X, Y T
}

// V2 is shorthand for Vec2[T]{x, y}.
func V2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// At returns component i (0=X, 1=Y).
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic("mathutil: Vec2 index out of range")
}

// Set assigns component i.
func (v *Vec2[T]) Set(i int, s T) {
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	default:
		panic("mathutil: Vec2 index out of range")
	}
}

func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X + b.X, a.Y + b.Y}
}

func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X - b.X, a.Y - b.Y}
}

// Mul multiplies component-wise.
func (a Vec2[T]) Mul(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X * b.X, a.Y * b.Y}
}

// Div divides component-wise. Integer vectors panic on a zero component.
func (a Vec2[T]) Div(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X / b.X, a.Y / b.Y}
}

func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{v.X * s, v.Y * s}
}

func (v Vec2[T]) DivScalar(s T) Vec2[T] {
	return Vec2[T]{v.X / s, v.Y / s}
}

func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{-v.X, -v.Y}
}

func (v *Vec2[T]) AddAssign(b Vec2[T]) {
	v.X += b.X
	v.Y += b.Y
}

func (v *Vec2[T]) SubAssign(b Vec2[T]) {
	v.X -= b.X
	v.Y -= b.Y
}

func (v *Vec2[T]) ScaleAssign(s T) {
	v.X *= s
	v.Y *= s
}

func (v *Vec2[T]) DivAssign(s T) {
	v.X /= s
	v.Y /= s
}

func (a Vec2[T]) Dot(b Vec2[T]) T {
	return a.X*b.X + a.Y*b.Y
}

func (v Vec2[T]) Norm() float64 {
	x, y := float64(v.X), float64(v.Y)
	return math.Sqrt(x*x + y*y)
}

// Normalize returns v / |v| in float64. A zero vector yields NaN components.
func (v Vec2[T]) Normalize() Vec2[float64] {
	return v.Float().DivScalar(v.Norm())
}

func (v Vec2[T]) Float() Vec2[float64] {
	return ConvVec2[float64](v)
}

// ConvVec2 converts the element type of v.
func ConvVec2[U, T Number](v Vec2[T]) Vec2[U] {
	return Vec2[U]{U(v.X), U(v.Y)}
}

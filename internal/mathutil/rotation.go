package mathutil

import "math"

// Axis names a coordinate axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Rotation returns the right-handed rotation by deg degrees about axis.
func Rotation(axis Axis, deg float64) Mat3 {
	s, c := math.Sincos(Deg2Rad(deg))
	switch axis {
	case AxisX:
		return Mat3{1, 0, 0, 0, c, -s, 0, s, c}
	case AxisY:
		return Mat3{c, 0, s, 0, 1, 0, -s, 0, c}
	case AxisZ:
		return Mat3{c, -s, 0, s, c, 0, 0, 0, 1}
	}
	panic("mathutil: unknown axis")
}

// Orientation builds Rz × Ry × Rx from angles in degrees, so X is applied
// first.
func Orientation(rx, ry, rz float64) Mat3 {
	return Mat3Mul(Mat3Mul(Rotation(AxisZ, rz), Rotation(AxisY, ry)), Rotation(AxisX, rx))
}

// RotatePoints applies m to every point in place.
func RotatePoints(m Mat3, pts []Vec3[float64]) {
	for i, p := range pts {
		pts[i] = m.MulVec3(p)
	}
}

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

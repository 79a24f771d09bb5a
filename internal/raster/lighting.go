package raster

import (
	"image/color"

	"tinyrender/internal/mathutil"
)

// DefaultLight points from the scene towards a viewer on the +Z axis.
var DefaultLight = mathutil.Vec3[float64]{X: 0, Y: 0, Z: 1}

// FaceNormal returns the unit normal of ABC using counter-clockwise winding.
// ok is false for zero-area faces, whose normal is undefined.
func FaceNormal(a, b, c mathutil.Vec3[float64]) (n mathutil.Vec3[float64], ok bool) {
	n = b.Sub(a).Cross(c.Sub(a))
	if n.Norm() < 1e-12 {
		return mathutil.Vec3[float64]{}, false
	}
	return n.Normalize(), true
}

// Lambert is the diffuse term n·l for unit vectors. Negative values mean
// the face points away from the light.
func Lambert(normal, light mathutil.Vec3[float64]) float64 {
	return normal.Dot(light)
}

// Shade scales the color channels of c by intensity, leaving alpha.
func Shade(c color.NRGBA, intensity float64) color.NRGBA {
	return color.NRGBA{
		R: clamp255(float64(c.R) * intensity),
		G: clamp255(float64(c.G) * intensity),
		B: clamp255(float64(c.B) * intensity),
		A: c.A,
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

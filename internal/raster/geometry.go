package raster

import "tinyrender/internal/mathutil"

// Outside is the weight vector returned for degenerate triangles. Every
// component is negative so Inside rejects all pixels.
var Outside = mathutil.Vec3[float64]{X: -1, Y: -1, Z: -1}

// BoundingBox returns the component-wise min/max of pts.
// pts must not be empty.
func BoundingBox[T mathutil.Number](pts ...mathutil.Vec2[T]) mathutil.Rect[T] {
	box := mathutil.Rect[T]{LB: pts[0], RT: pts[0]}
	for _, p := range pts[1:] {
		box.LB.X = min(box.LB.X, p.X)
		box.LB.Y = min(box.LB.Y, p.Y)
		box.RT.X = max(box.RT.X, p.X)
		box.RT.Y = max(box.RT.Y, p.Y)
	}
	return box
}

// Barycentric returns the weights (u, v, w) of P relative to triangle ABC,
// so that P = u*A + v*B + w*C and u+v+w = 1.
//
// The cross product runs in T (exact for integer pixels); only the final
// divisions are floating point. Collinear A, B, C yield Outside.
func Barycentric[T mathutil.Number](a, b, c, p mathutil.Vec2[T]) mathutil.Vec3[float64] {
	ab, ac, ap := b.Sub(a), c.Sub(a), p.Sub(a)
	st := mathutil.Vec3[T]{X: ab.X, Y: ac.X, Z: -ap.X}.Cross(mathutil.Vec3[T]{X: ab.Y, Y: ac.Y, Z: -ap.Y})
	if st.Z == 0 {
		return Outside
	}
	d := float64(st.Z)
	s, t := float64(st.X), float64(st.Y)
	return mathutil.Vec3[float64]{X: 1 - (s+t)/d, Y: s / d, Z: t / d}
}

// Inside reports whether all weights are non-negative. Edge pixels
// (a zero weight) count as inside.
func Inside(w mathutil.Vec3[float64]) bool {
	return w.X >= 0 && w.Y >= 0 && w.Z >= 0
}

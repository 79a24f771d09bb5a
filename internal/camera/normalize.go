package camera

import (
	"tinyrender/internal/mathutil"

	"gonum.org/v1/gonum/spatial/r3"
)

// Normalize recenters pts in place into [-1, 1]³.
//
// Each axis is centered on the midpoint of its extent, and every axis is
// scaled by the same factor 2/maxExtent, so the dominant axis spans exactly
// [-1, 1] and proportions are preserved. Empty input is a no-op; if all
// points coincide they collapse to the origin.
func Normalize(pts []mathutil.Vec3[float64]) {
	if len(pts) == 0 {
		return
	}
	box := Bounds(pts)
	size := r3.Sub(box.Max, box.Min)
	extent := max(size.X, size.Y, size.Z)
	mid := r3.Add(box.Min, box.Max)

	for i, p := range pts {
		if extent == 0 {
			pts[i] = mathutil.Vec3[float64]{}
			continue
		}
		pts[i] = mathutil.Vec3[float64]{
			X: (2*p.X - mid.X) / extent,
			Y: (2*p.Y - mid.Y) / extent,
			Z: (2*p.Z - mid.Z) / extent,
		}
	}
}

// Bounds returns the axis-aligned box of pts. pts must not be empty.
func Bounds(pts []mathutil.Vec3[float64]) r3.Box {
	first := r3.Vec{X: pts[0].X, Y: pts[0].Y, Z: pts[0].Z}
	box := r3.Box{Min: first, Max: first}
	for _, p := range pts[1:] {
		box.Min.X = min(box.Min.X, p.X)
		box.Min.Y = min(box.Min.Y, p.Y)
		box.Min.Z = min(box.Min.Z, p.Z)
		box.Max.X = max(box.Max.X, p.X)
		box.Max.Y = max(box.Max.Y, p.Y)
		box.Max.Z = max(box.Max.Z, p.Z)
	}
	return box
}

// OrthogonalTransform drops z and maps x, y from [-1, 1] to [0, width] and
// [0, height], truncating to whole pixels.
func OrthogonalTransform(v mathutil.Vec3[float64], width, height int) mathutil.Vec2[int] {
	return mathutil.Vec2[int]{
		X: int((v.X + 1) / 2 * float64(width)),
		Y: int((v.Y + 1) / 2 * float64(height)),
	}
}

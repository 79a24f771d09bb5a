package raster

import "tinyrender/internal/mathutil"

// ProjectFunc maps a 3D vertex to integer screen coordinates.
type ProjectFunc func(mathutil.Vec3[float64]) mathutil.Vec2[int]

// ShadeFunc receives a covered pixel together with its barycentric weights
// (for vertices A, B, C in that order).
type ShadeFunc func(x, y int, w mathutil.Vec3[float64])

// FillTriangle plots every pixel of the integer bounding box of ABC whose
// barycentric weights are all non-negative. Pixels on an edge are plotted,
// so triangles sharing an edge both draw it. Degenerate triangles plot
// nothing. Scan order is x-major: for each column, rows bottom to top.
func FillTriangle(a, b, c mathutil.Vec2[int], plot PixelFunc) {
	box := BoundingBox(a, b, c)
	for x := box.LB.X; x <= box.RT.X; x++ {
		for y := box.LB.Y; y <= box.RT.Y; y++ {
			if !Inside(Barycentric(a, b, c, mathutil.Vec2[int]{X: x, Y: y})) {
				continue
			}
			plot(x, y)
		}
	}
}

// FillTriangleDepth fills ABC with a depth test against zbuf.
//
// Vertices are projected with project; coverage and weights are computed in
// screen space. Depth is interpolated from the unprojected z values and
// negated, z = -(u*A.z + v*B.z + w*C.z), which assumes a right-handed view
// space with the camera looking down -Z: smaller is closer. A pixel is
// plotted only when its depth is strictly less than the stored value, and
// the buffer is updated first. Pixels outside zbuf are skipped.
func FillTriangleDepth(a, b, c mathutil.Vec3[float64], zbuf *DepthBuffer, project ProjectFunc, plot PixelFunc) {
	FillTriangleShaded(a, b, c, zbuf, project, func(x, y int, _ mathutil.Vec3[float64]) {
		plot(x, y)
	})
}

// FillTriangleShaded is FillTriangleDepth with the barycentric weights of
// each visible pixel handed to shade, for attribute interpolation.
func FillTriangleShaded(a, b, c mathutil.Vec3[float64], zbuf *DepthBuffer, project ProjectFunc, shade ShadeFunc) {
	sa, sb, sc := project(a), project(b), project(c)
	box := BoundingBox(sa, sb, sc).Intersect(zbuf.Bounds())
	if box.Empty() {
		return
	}

	for x := box.LB.X; x <= box.RT.X; x++ {
		for y := box.LB.Y; y <= box.RT.Y; y++ {
			w := Barycentric(sa, sb, sc, mathutil.Vec2[int]{X: x, Y: y})
			if !Inside(w) {
				continue
			}
			z := -(w.X*a.Z + w.Y*b.Z + w.Z*c.Z)
			if z >= zbuf.At(x, y) {
				continue
			}
			zbuf.Set(x, y, z)
			shade(x, y, w)
		}
	}
}

package raster

import "tinyrender/internal/mathutil"

// PixelFunc receives every pixel a draw call covers.
type PixelFunc func(x, y int)

// DrawLine rasterizes the segment p1–p2 with integer midpoint stepping.
// Both endpoints are plotted and each major-axis coordinate is visited once.
func DrawLine(p1, p2 mathutil.Vec2[int], plot PixelFunc) {
	steep := false
	if abs(p2.Y-p1.Y) > abs(p2.X-p1.X) {
		steep = true
		p1.X, p1.Y = p1.Y, p1.X
		p2.X, p2.Y = p2.Y, p2.X
	}
	if p1.X > p2.X {
		p1, p2 = p2, p1
	}

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	step := 1
	if dy < 0 {
		step = -1
	}
	derr := 2 * abs(dy)

	err := 0
	y := p1.Y
	for x := p1.X; x <= p2.X; x++ {
		if steep {
			plot(y, x)
		} else {
			plot(x, y)
		}
		err += derr
		if err > dx {
			y += step
			err -= 2 * dx
		}
	}
}

// DrawTriangle outlines ABC.
func DrawTriangle(a, b, c mathutil.Vec2[int], plot PixelFunc) {
	DrawLine(a, b, plot)
	DrawLine(b, c, plot)
	DrawLine(c, a, plot)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

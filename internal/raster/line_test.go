package raster

import (
	"testing"

	"tinyrender/internal/mathutil"
)

type pixel struct{ x, y int }

func collect(pts *[]pixel) PixelFunc {
	return func(x, y int) { *pts = append(*pts, pixel{x, y}) }
}

func TestDrawLineShallow(t *testing.T) {
	var got []pixel
	DrawLine(mathutil.V2(0, 0), mathutil.V2(5, 2), collect(&got))
	want := []pixel{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pixel %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDrawLineSinglePoint(t *testing.T) {
	var got []pixel
	DrawLine(mathutil.V2(3, -7), mathutil.V2(3, -7), collect(&got))
	if len(got) != 1 || got[0] != (pixel{3, -7}) {
		t.Errorf("got %v, want [{3 -7}]", got)
	}
}

func TestDrawLineProperties(t *testing.T) {
	coords := []mathutil.Vec2[int]{
		{X: 0, Y: 0}, {X: 7, Y: 3}, {X: -4, Y: 9}, {X: 12, Y: -5},
		{X: 3, Y: 3}, {X: -6, Y: -6}, {X: 0, Y: 10}, {X: 10, Y: 0}, {X: 1, Y: 2},
	}
	for _, p1 := range coords {
		for _, p2 := range coords {
			var fwd, rev []pixel
			DrawLine(p1, p2, collect(&fwd))
			DrawLine(p2, p1, collect(&rev))

			seen := map[pixel]bool{}
			for _, p := range fwd {
				seen[p] = true
			}
			if !seen[pixel{p1.X, p1.Y}] || !seen[pixel{p2.X, p2.Y}] {
				t.Errorf("%v-%v: endpoints missing from %v", p1, p2, fwd)
			}

			// Exactly one pixel per step along the major axis.
			dx, dy := abs(p2.X-p1.X), abs(p2.Y-p1.Y)
			major := func(p pixel) int { return p.x }
			if dy > dx {
				major = func(p pixel) int { return p.y }
			}
			steps := map[int]int{}
			for _, p := range fwd {
				steps[major(p)]++
			}
			if len(fwd) != max(dx, dy)+1 || len(steps) != len(fwd) {
				t.Errorf("%v-%v: %d pixels over %d major steps", p1, p2, len(fwd), len(steps))
			}

			// 8-connected path
			for i := 1; i < len(fwd); i++ {
				if abs(fwd[i].x-fwd[i-1].x) > 1 || abs(fwd[i].y-fwd[i-1].y) > 1 {
					t.Errorf("%v-%v: gap between %v and %v", p1, p2, fwd[i-1], fwd[i])
				}
			}

			if len(rev) != len(fwd) {
				t.Errorf("%v-%v: reversed line has %d pixels, forward %d", p1, p2, len(rev), len(fwd))
				continue
			}
			for _, p := range rev {
				if !seen[p] {
					t.Errorf("%v-%v: reversed line visits %v, forward does not", p1, p2, p)
				}
			}
		}
	}
}

func TestDrawTriangle(t *testing.T) {
	var got []pixel
	DrawTriangle(mathutil.V2(0, 0), mathutil.V2(4, 0), mathutil.V2(0, 4), collect(&got))
	// Three edges of 5 pixels each; corners plotted twice.
	if len(got) != 15 {
		t.Errorf("plotted %d pixels, want 15", len(got))
	}
}

package raster

import (
	"errors"
	"image/color"
	"testing"

	"tinyrender/internal/camera"
	"tinyrender/internal/mathutil"
	"tinyrender/internal/mesh"
	"tinyrender/internal/randutil"
)

var (
	white = color.NRGBA{255, 255, 255, 255}
	black = color.NRGBA{0, 0, 0, 255}
)

// square spans [-1,1]² at height z, facing +Z.
func square(z float64) *mesh.Mesh {
	return &mesh.Mesh{
		Verts: []mathutil.Vec3[float64]{
			{X: -1, Y: -1, Z: z}, {X: 1, Y: -1, Z: z}, {X: 1, Y: 1, Z: z}, {X: -1, Y: 1, Z: z},
		},
		Faces: [][3]int{{0, 1, 2}, {0, 2, 3}},
	}
}

func countColor(fb *FrameBuffer, c color.NRGBA) int {
	n := 0
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"wireframe", "random", "flat", "depth", "textured"} {
		m, err := ParseMode(s)
		if err != nil || string(m) != s {
			t.Errorf("ParseMode(%q) = %q, %v", s, m, err)
		}
	}
	if _, err := ParseMode("phong"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestRenderFlat(t *testing.T) {
	fb := NewFrameBuffer(10, 10, black)
	st, err := Render(square(0), fb, Options{Mode: ModeFlat, Color: white})
	if err != nil {
		t.Fatal(err)
	}
	if st.Faces != 2 || st.Drawn != 2 || st.Culled != 0 {
		t.Errorf("stats = %+v", st)
	}
	if n := countColor(fb, white); n != 100 {
		t.Errorf("%d of 100 pixels lit", n)
	}
	// The diagonal is shared by both faces.
	if st.Pixels <= 100 {
		t.Errorf("Pixels = %d, want shared edge drawn twice", st.Pixels)
	}
}

func TestRenderCullsAndSkips(t *testing.T) {
	m := square(0)
	m.Faces = [][3]int{{0, 2, 1}, {0, 0, 1}, {0, 2, 3}}
	fb := NewFrameBuffer(10, 10, black)
	st, err := Render(m, fb, Options{Mode: ModeDepth, Color: white})
	if err != nil {
		t.Fatal(err)
	}
	if st.Culled != 1 || st.Degenerate != 1 || st.Drawn != 1 {
		t.Errorf("stats = %+v", st)
	}
}

func TestRenderWireframe(t *testing.T) {
	fb := NewFrameBuffer(10, 10, black)
	st, err := Render(square(0), fb, Options{Mode: ModeWireframe, Color: white})
	if err != nil {
		t.Fatal(err)
	}
	if st.Drawn != 2 {
		t.Errorf("Drawn = %d", st.Drawn)
	}
	for _, p := range []pixel{{0, 0}, {9, 0}, {9, 9}, {0, 9}, {5, 5}} {
		if fb.At(p.x, p.y) != white {
			t.Errorf("outline pixel %v not drawn", p)
		}
	}
	if fb.At(2, 7) != black {
		t.Error("interior pixel drawn in wireframe mode")
	}
}

func TestRenderRandom(t *testing.T) {
	if _, err := Render(square(0), NewFrameBuffer(8, 8, black), Options{Mode: ModeRandom}); err == nil {
		t.Fatal("expected error without a random source")
	}

	render := func(seed uint64) *FrameBuffer {
		fb := NewFrameBuffer(16, 16, black)
		if _, err := Render(square(0), fb, Options{Mode: ModeRandom, Rand: randutil.New(seed)}); err != nil {
			t.Fatal(err)
		}
		return fb
	}
	a, b := render(7), render(7)
	for i := range a.Color {
		if a.Color[i] != b.Color[i] {
			t.Fatal("same seed produced different images")
		}
	}
}

func TestRenderDepthSharedBuffer(t *testing.T) {
	red := color.NRGBA{200, 0, 0, 255}
	blue := color.NRGBA{0, 0, 200, 255}
	nearSq, farSq := square(0.5), square(-0.5)

	for _, nearFirst := range []bool{true, false} {
		fb := NewFrameBuffer(12, 12, black)
		zb := NewDepthBuffer(12, 12)
		first, second := Options{Mode: ModeDepth, Color: red, Depth: zb}, Options{Mode: ModeDepth, Color: blue, Depth: zb}
		m1, m2 := nearSq, farSq
		if !nearFirst {
			first.Color, second.Color = blue, red
			m1, m2 = farSq, nearSq
		}
		if _, err := Render(m1, fb, first); err != nil {
			t.Fatal(err)
		}
		if _, err := Render(m2, fb, second); err != nil {
			t.Fatal(err)
		}
		if n := countColor(fb, red); n != 144 {
			t.Errorf("nearFirst=%v: %d of 144 pixels show the near square", nearFirst, n)
		}
	}
}

func TestRenderTextured(t *testing.T) {
	if _, err := Render(square(0), NewFrameBuffer(8, 8, black), Options{Mode: ModeTextured}); err == nil {
		t.Fatal("expected error without a texture")
	}

	m := square(0)
	m.UVs = []mathutil.Vec2[float64]{{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 0.5, Y: 0.5}, {X: 0, Y: 0.5}}
	m.FaceUVs = [][3]int{{0, 1, 2}, mesh.NoUV}

	green := color.NRGBA{0, 255, 0, 255}
	fb := NewFrameBuffer(10, 10, black)
	st, err := Render(m, fb, Options{Mode: ModeTextured, Color: white, Texture: Solid(green)})
	if err != nil {
		t.Fatal(err)
	}
	if st.Drawn != 2 {
		t.Errorf("stats = %+v", st)
	}
	// Face 0 is below the diagonal and sampled; face 1 falls back to Color.
	if got := fb.At(8, 1); got != green {
		t.Errorf("textured face pixel = %v", got)
	}
	if got := fb.At(1, 8); got != white {
		t.Errorf("untextured face pixel = %v", got)
	}
}

func TestRenderIndexError(t *testing.T) {
	m := &mesh.Mesh{
		Verts: []mathutil.Vec3[float64]{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		Faces: [][3]int{{0, 1, 2}, {0, 1, 5}},
	}
	st, err := Render(m, NewFrameBuffer(8, 8, black), Options{Mode: ModeFlat, Color: white})
	if !errors.Is(err, mesh.ErrIndexRange) {
		t.Fatalf("err = %v, want ErrIndexRange", err)
	}
	if st.Drawn != 1 {
		t.Errorf("Drawn = %d before the bad face", st.Drawn)
	}
}

func TestRenderWithCamera(t *testing.T) {
	cam, err := camera.New(camera.DefaultSettings(64, 64))
	if err != nil {
		t.Fatal(err)
	}
	fb := NewFrameBuffer(64, 64, black)
	st, err := Render(square(0), fb, Options{Mode: ModeDepth, Color: white, Camera: cam})
	if err != nil {
		t.Fatal(err)
	}
	if st.Drawn != 2 {
		t.Errorf("stats = %+v", st)
	}
	if fb.At(32, 32) == black {
		t.Error("center of the square not drawn")
	}
	if fb.At(0, 0) != black {
		t.Error("corner pixel drawn; square should sit inside the frame")
	}
}

package raster

import (
	"errors"
	"fmt"
	"image/color"

	"tinyrender/internal/camera"
	"tinyrender/internal/mathutil"
	"tinyrender/internal/mesh"
	"tinyrender/internal/randutil"
)

// Mode selects how faces are drawn.
type Mode string

const (
	ModeWireframe Mode = "wireframe" // triangle outlines
	ModeRandom    Mode = "random"    // flat fill, random color per face
	ModeFlat      Mode = "flat"      // Lambert shading, back faces culled, no depth test
	ModeDepth     Mode = "depth"     // Lambert shading with z-buffer
	ModeTextured  Mode = "textured"  // z-buffer, texture sampled through face UVs
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeWireframe, ModeRandom, ModeFlat, ModeDepth, ModeTextured:
		return m, nil
	}
	return "", fmt.Errorf("raster: unknown mode %q", s)
}

// Options configures one render pass.
type Options struct {
	Mode  Mode
	Color color.NRGBA            // line color, or base color when untextured
	Light mathutil.Vec3[float64] // unit vector towards the light; zero means DefaultLight

	// Camera projects world space to the screen. When nil, vertices are
	// taken to be in [-1,1]³ and mapped orthogonally onto the buffer.
	Camera *camera.Camera

	Texture Sampler          // required by ModeTextured
	Rand    *randutil.Source // required by ModeRandom
	Depth   *DepthBuffer     // reused when non-nil, otherwise allocated
}

// Stats summarizes a render pass.
type Stats struct {
	Faces      int
	Drawn      int
	Culled     int // facing away from the light
	Degenerate int // zero area in view space
	Pixels     int // PixelFunc invocations
}

// Render draws every face of m into fb. A face with an out-of-range index
// aborts the pass.
func Render(m mesh.Provider, fb *FrameBuffer, opts Options) (Stats, error) {
	var st Stats
	if opts.Mode == "" {
		opts.Mode = ModeDepth
	}
	if opts.Light == (mathutil.Vec3[float64]{}) {
		opts.Light = DefaultLight
	}
	switch {
	case opts.Mode == ModeRandom && opts.Rand == nil:
		return st, errors.New("raster: random mode needs a random source")
	case opts.Mode == ModeTextured && opts.Texture == nil:
		return st, errors.New("raster: textured mode needs a texture")
	}

	toView := func(p mathutil.Vec3[float64]) mathutil.Vec3[float64] { return p }
	project := func(p mathutil.Vec3[float64]) mathutil.Vec2[int] {
		return camera.OrthogonalTransform(p, fb.Width-1, fb.Height-1)
	}
	if opts.Camera != nil {
		toView = opts.Camera.ToView
		project = opts.Camera.ToScreen
	}

	zbuf := opts.Depth
	if zbuf == nil && (opts.Mode == ModeDepth || opts.Mode == ModeTextured) {
		zbuf = NewDepthBuffer(fb.Width, fb.Height)
	}

	paint := func(c color.NRGBA) PixelFunc {
		return func(x, y int) {
			st.Pixels++
			fb.Set(x, y, c)
		}
	}

	st.Faces = m.NumFaces()
	for i := 0; i < st.Faces; i++ {
		world, err := m.Face(i)
		if err != nil {
			return st, fmt.Errorf("raster: face %d: %w", i, err)
		}
		a, b, c := toView(world[0]), toView(world[1]), toView(world[2])

		if opts.Mode == ModeWireframe {
			DrawTriangle(project(a), project(b), project(c), paint(opts.Color))
			st.Drawn++
			continue
		}
		if opts.Mode == ModeRandom {
			FillTriangle(project(a), project(b), project(c), paint(opts.Rand.Color()))
			st.Drawn++
			continue
		}

		n, ok := FaceNormal(a, b, c)
		if !ok {
			st.Degenerate++
			continue
		}
		intensity := Lambert(n, opts.Light)
		if intensity <= 0 {
			st.Culled++
			continue
		}
		st.Drawn++

		switch opts.Mode {
		case ModeFlat:
			FillTriangle(project(a), project(b), project(c), paint(Shade(opts.Color, intensity)))
		case ModeDepth:
			FillTriangleDepth(a, b, c, zbuf, project, paint(Shade(opts.Color, intensity)))
		case ModeTextured:
			uv, hasUV, err := m.FaceTexture(i)
			if err != nil {
				return st, fmt.Errorf("raster: face %d: %w", i, err)
			}
			FillTriangleShaded(a, b, c, zbuf, project, func(x, y int, w mathutil.Vec3[float64]) {
				base := opts.Color
				if hasUV {
					t := mathutil.Interpolate(w, uv[0], uv[1], uv[2])
					base = opts.Texture.Sample(t.X, t.Y)
				}
				st.Pixels++
				fb.Set(x, y, Shade(base, intensity))
			})
		}
	}
	return st, nil
}

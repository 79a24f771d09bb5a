package camera

import (
	"fmt"
	"math"

	"tinyrender/internal/mathutil"
)

// Settings describes a camera in world space and the target image.
type Settings struct {
	Eye, Center, Up mathutil.Vec3[float64]
	FovY            float64 // degrees; ignored when Ortho is set
	Near, Far       float64
	Ortho           bool    // orthographic instead of perspective
	OrthoSize       float64 // half-height of the orthographic view volume
	Width, Height   int
}

// DefaultSettings frames the [-1,1]³ cube from +Z.
func DefaultSettings(width, height int) Settings {
	return Settings{
		Eye:       mathutil.V3(1.0, 1, 3),
		Center:    mathutil.V3(0.0, 0, 0),
		Up:        mathutil.V3(0.0, 1, 0),
		FovY:      45,
		Near:      0.1,
		Far:       100,
		OrthoSize: 1.2,
		Width:     width,
		Height:    height,
	}
}

// Camera is the model-view, projection and viewport chain for one render.
type Camera struct {
	ModelView  mathutil.Mat4
	Projection mathutil.Mat4
	Viewport   mathutil.Mat4

	screen mathutil.Mat4 // Viewport × Projection
}

// New builds a Camera, rejecting degenerate bases and view volumes.
func New(s Settings) (*Camera, error) {
	mv, err := LookAt(s.Eye, s.Center, s.Up)
	if err != nil {
		return nil, err
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidBounds, s.Width, s.Height)
	}
	aspect := float64(s.Width) / float64(s.Height)

	// LookAt puts center at the view-space origin, so the eye sits at
	// distance d on +Z. Shift it to the origin before projecting.
	d := s.Eye.Sub(s.Center).Norm()
	var proj mathutil.Mat4
	if s.Ortho {
		h := s.OrthoSize
		proj, err = Orthogonal(-h*aspect, h*aspect, -h, h, s.Near, s.Far)
	} else {
		proj, err = PerspectiveFov(s.FovY, aspect, s.Near, s.Far)
	}
	if err != nil {
		return nil, err
	}
	proj = proj.Mul(Translate(0, 0, -d))

	vp := ViewPort(0, 0, float64(s.Width), float64(s.Height))
	return &Camera{
		ModelView:  mv,
		Projection: proj,
		Viewport:   vp,
		screen:     vp.Mul(proj),
	}, nil
}

// ToView transforms a world-space point into view space.
func (c *Camera) ToView(p mathutil.Vec3[float64]) mathutil.Vec3[float64] {
	return c.ModelView.MulPoint(p)
}

// ToScreen projects a view-space point to pixel coordinates. Points behind
// the camera are not clipped.
func (c *Camera) ToScreen(v mathutil.Vec3[float64]) mathutil.Vec2[int] {
	s := c.screen.Project(v)
	return mathutil.Vec2[int]{X: int(math.Floor(s.X)), Y: int(math.Floor(s.Y))}
}

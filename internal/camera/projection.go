// Package camera builds the 4×4 transforms that take model space to screen
// space. Points are homogeneous column vectors: a transform applies as M × p.
package camera

import (
	"errors"
	"fmt"
	"math"

	"tinyrender/internal/mathutil"
)

var (
	// ErrInvalidBounds is returned when a projection volume has zero or
	// non-finite extent.
	ErrInvalidBounds = errors.New("camera: invalid projection bounds")
	// ErrDegenerate is returned when a camera basis cannot be built.
	ErrDegenerate = errors.New("camera: degenerate camera basis")
)

// Perspective returns the OpenGL frustum matrix for the given clip planes.
// Near and far are positive distances in front of the camera.
func Perspective(l, r, b, t, n, f float64) (mathutil.Mat4, error) {
	if err := checkVolume(l, r, b, t, n, f); err != nil {
		return mathutil.Mat4{}, err
	}
	if n <= 0 || f <= 0 {
		return mathutil.Mat4{}, fmt.Errorf("%w: near=%g far=%g must be positive", ErrInvalidBounds, n, f)
	}
	return mathutil.Mat4{
		2 * n / (r - l), 0, (r + l) / (r - l), 0,
		0, 2 * n / (t - b), (t + b) / (t - b), 0,
		0, 0, -(f + n) / (f - n), -2 * f * n / (f - n),
		0, 0, -1, 0,
	}, nil
}

// PerspectiveFov is Perspective with a symmetric frustum given by the
// vertical field of view in degrees and the width/height aspect ratio.
func PerspectiveFov(fovy, aspect, n, f float64) (mathutil.Mat4, error) {
	if !(fovy > 0 && fovy < 180) {
		return mathutil.Mat4{}, fmt.Errorf("%w: fovy=%g must be in (0, 180)", ErrInvalidBounds, fovy)
	}
	if !(aspect > 0) || math.IsInf(aspect, 0) {
		return mathutil.Mat4{}, fmt.Errorf("%w: aspect=%g must be positive", ErrInvalidBounds, aspect)
	}
	ymax := n * math.Tan(mathutil.Deg2Rad(fovy/2))
	xmax := ymax * aspect
	return Perspective(-xmax, xmax, -ymax, ymax, n, f)
}

// Orthogonal returns the OpenGL orthographic projection.
func Orthogonal(l, r, b, t, n, f float64) (mathutil.Mat4, error) {
	if err := checkVolume(l, r, b, t, n, f); err != nil {
		return mathutil.Mat4{}, err
	}
	return mathutil.Mat4{
		2 / (r - l), 0, 0, -(r + l) / (r - l),
		0, 2 / (t - b), 0, -(t + b) / (t - b),
		0, 0, -2 / (f - n), -(f + n) / (f - n),
		0, 0, 0, 1,
	}, nil
}

func Translate(x, y, z float64) mathutil.Mat4 {
	return mathutil.Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

func Scale(x, y, z float64) mathutil.Mat4 {
	return mathutil.Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// ViewPort maps normalized device coordinates [-1,1]³ to the pixel window
// [x, x+w] × [y, y+h] with depth in [0, 1].
func ViewPort(x, y, w, h float64) mathutil.Mat4 {
	return mathutil.Mat4{
		w / 2, 0, 0, x + w/2,
		0, h / 2, 0, y + h/2,
		0, 0, 0.5, 0.5,
		0, 0, 0, 1,
	}
}

func checkVolume(l, r, b, t, n, f float64) error {
	for _, v := range [...]float64{l, r, b, t, n, f} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound %g", ErrInvalidBounds, v)
		}
	}
	switch {
	case l == r:
		return fmt.Errorf("%w: left == right (%g)", ErrInvalidBounds, l)
	case b == t:
		return fmt.Errorf("%w: bottom == top (%g)", ErrInvalidBounds, b)
	case n == f:
		return fmt.Errorf("%w: near == far (%g)", ErrInvalidBounds, n)
	}
	return nil
}

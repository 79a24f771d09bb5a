package camera

import (
	"fmt"

	"tinyrender/internal/mathutil"
)

// LookAt returns the model-view matrix of a camera at eye looking at center.
//
// The basis is z = normalize(eye-center), x = normalize(up × z), y = z × x.
// The rotation with rows x, y, z is composed with a translation by -center,
// so center lands on the view-space origin and the camera looks down -Z.
func LookAt(eye, center, up mathutil.Vec3[float64]) (mathutil.Mat4, error) {
	fwd := eye.Sub(center)
	if fwd.Norm() == 0 {
		return mathutil.Mat4{}, fmt.Errorf("%w: eye == center %v", ErrDegenerate, eye)
	}
	z := fwd.Normalize()
	side := up.Cross(z)
	if side.Norm() < 1e-12 {
		return mathutil.Mat4{}, fmt.Errorf("%w: up %v is parallel to view direction", ErrDegenerate, up)
	}
	x := side.Normalize()
	y := z.Cross(x)

	rot := mathutil.Mat3{
		x.X, x.Y, x.Z,
		y.X, y.Y, y.Z,
		z.X, z.Y, z.Z,
	}
	return mathutil.FromMat3Translation(rot, rot.MulVec3(center).Neg()), nil
}

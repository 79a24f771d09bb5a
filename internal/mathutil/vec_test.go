package mathutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3[float64]
	}{
		{"x cross y", V3(1.0, 0, 0), V3(0.0, 1, 0)},
		{"arbitrary", V3(1.5, -2, 3), V3(-4.0, 0.25, 7)},
		{"parallel", V3(2.0, 4, 6), V3(1.0, 2, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Cross(tc.b)
			want := r3.Cross(r3.Vec{X: tc.a.X, Y: tc.a.Y, Z: tc.a.Z}, r3.Vec{X: tc.b.X, Y: tc.b.Y, Z: tc.b.Z})
			if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 || math.Abs(got.Z-want.Z) > 1e-12 {
				t.Errorf("Cross(%v, %v) = %v, want %v", tc.a, tc.b, got, want)
			}
		})
	}
}

func TestVec3CrossAntiCommutative(t *testing.T) {
	vs := []Vec3[int]{
		{1, 0, 0}, {0, 1, 0}, {3, -7, 2}, {-5, 11, 13}, {0, 0, 0}, {100, 200, -300},
	}
	for _, u := range vs {
		for _, v := range vs {
			if uv, vu := u.Cross(v), v.Cross(u); uv != vu.Neg() {
				t.Errorf("Cross(%v, %v) = %v, want -(%v)", u, v, uv, vu)
			}
		}
	}
}

func TestVec3IntegerCrossIsExact(t *testing.T) {
	a := Vec3[int]{1 << 20, 3, -(1 << 19)}
	b := Vec3[int]{7, 1 << 21, 5}
	got := a.Cross(b)
	want := Vec3[int]{3*5 - (-(1 << 19))*(1<<21), (-(1 << 19))*7 - (1<<20)*5, (1<<20)*(1<<21) - 3*7}
	if got != want {
		t.Errorf("Cross = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3[int]{3, 4, 12}
	got := v.Normalize()
	want := r3.Unit(r3.Vec{X: 3, Y: 4, Z: 12})
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 || math.Abs(got.Z-want.Z) > 1e-12 {
		t.Errorf("Normalize(%v) = %v, want %v", v, got, want)
	}
	if n := got.Norm(); math.Abs(n-1) > 1e-12 {
		t.Errorf("|Normalize(%v)| = %v, want 1", v, n)
	}

	zero := Vec3[float64]{}.Normalize()
	if !math.IsNaN(zero.X) {
		t.Errorf("Normalize(0) = %v, want NaN components", zero)
	}
}

func TestVecArithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)
	if got := a.Add(b); got != V3(5, 7, 9) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != V3(3, 3, 3) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(b); got != V3(4, 10, 18) {
		t.Errorf("Mul = %v", got)
	}
	if got := b.Div(a); got != V3(4, 2, 2) {
		t.Errorf("Div = %v", got)
	}
	if got := a.Scale(3); got != V3(3, 6, 9) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}

	c := a
	c.AddAssign(b)
	c.ScaleAssign(2)
	c.SubAssign(V3(0, 4, 8))
	c.DivAssign(2)
	if c != V3(5, 5, 5) {
		t.Errorf("in-place ops = %v, want (5,5,5)", c)
	}
	if a != V3(1, 2, 3) {
		t.Errorf("pure ops mutated receiver: %v", a)
	}

	p := V2(7, -3)
	if got := p.Sub(V2(2, 2)).Scale(2); got != V2(10, -10) {
		t.Errorf("Vec2 ops = %v", got)
	}
	if got := V2(1.0, 0).Normalize(); got != V2(1.0, 0) {
		t.Errorf("Vec2 Normalize = %v", got)
	}

	h := Vec4[float64]{2, 4, 6, 2}
	if got := h.DivScalar(h.W).XYZ(); got != V3(1.0, 2, 3) {
		t.Errorf("Vec4 divide = %v", got)
	}
}

func TestVecIndexAccess(t *testing.T) {
	v := Vec4[int]{1, 2, 3, 4}
	for i, want := range []int{1, 2, 3, 4} {
		if got := v.At(i); got != want {
			t.Errorf("At(%d) = %d, want %d", i, got, want)
		}
	}
	v.Set(2, 9)
	if v.Z != 9 {
		t.Errorf("Set(2, 9) left Z = %d", v.Z)
	}

	u := V3(1, 2, 3)
	u.Set(0, -1)
	if u != V3(-1, 2, 3) {
		t.Errorf("Set(0, -1) = %v", u)
	}

	defer func() {
		if recover() == nil {
			t.Error("At(3) on Vec3 did not panic")
		}
	}()
	_ = u.At(3)
}

func TestConvVec(t *testing.T) {
	f := ConvVec2[float64](V2(3, -4))
	if f != V2(3.0, -4) {
		t.Errorf("ConvVec2 = %v", f)
	}
	i := ConvVec3[int](V3(1.9, -1.9, 0.5))
	if i != V3(1, -1, 0) {
		t.Errorf("ConvVec3 truncation = %v, want (1,-1,0)", i)
	}
}

func TestRect(t *testing.T) {
	r := Rect[int]{LB: V2(0, 0), RT: V2(10, 5)}
	if r.Width() != 10 || r.Height() != 5 {
		t.Errorf("size = %dx%d", r.Width(), r.Height())
	}
	if !r.Contains(V2(10, 5)) || r.Contains(V2(11, 5)) {
		t.Error("Contains edge handling wrong")
	}
	clip := r.Intersect(Rect[int]{LB: V2(5, -3), RT: V2(20, 3)})
	if clip != (Rect[int]{LB: V2(5, 0), RT: V2(10, 3)}) {
		t.Errorf("Intersect = %v", clip)
	}
	if !r.Intersect(Rect[int]{LB: V2(11, 0), RT: V2(12, 1)}).Empty() {
		t.Error("disjoint Intersect should be empty")
	}
}

func TestInterpolate(t *testing.T) {
	a, b, c := V2(0.0, 0), V2(1.0, 0), V2(0.0, 1)
	if got := Interpolate(V3(1.0, 0, 0), a, b, c); got != a {
		t.Errorf("weight on A = %v", got)
	}
	got := Interpolate(V3(0.5, 0.25, 0.25), a, b, c)
	if got != V2(0.25, 0.25) {
		t.Errorf("Interpolate = %v, want (0.25, 0.25)", got)
	}
	f32 := Interpolate(V3[float32](0, 0.5, 0.5), V2[float32](0, 0), V2[float32](2, 0), V2[float32](0, 2))
	if f32 != V2[float32](1, 1) {
		t.Errorf("float32 Interpolate = %v", f32)
	}
}

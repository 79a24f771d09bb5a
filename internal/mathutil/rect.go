package mathutil

// Rect is an axis-aligned box with inclusive corners LB (lower bound) and
// RT (upper bound).
type Rect[T Number] struct {
	LB, RT Vec2[T]
}

func (r Rect[T]) Width() T  { return r.RT.X - r.LB.X }
func (r Rect[T]) Height() T { return r.RT.Y - r.LB.Y }

// Empty reports whether the box has no points (RT below LB on any axis).
func (r Rect[T]) Empty() bool {
	return r.RT.X < r.LB.X || r.RT.Y < r.LB.Y
}

// Contains reports whether p lies inside r, edges included.
func (r Rect[T]) Contains(p Vec2[T]) bool {
	return p.X >= r.LB.X && p.X <= r.RT.X && p.Y >= r.LB.Y && p.Y <= r.RT.Y
}

// Intersect returns the overlap of r and s. The result is Empty when they
// do not overlap.
func (r Rect[T]) Intersect(s Rect[T]) Rect[T] {
	return Rect[T]{
		LB: Vec2[T]{max(r.LB.X, s.LB.X), max(r.LB.Y, s.LB.Y)},
		RT: Vec2[T]{min(r.RT.X, s.RT.X), min(r.RT.Y, s.RT.Y)},
	}
}

package vmath

// Rect is an axis-aligned box stored as top-left corner and size
type Rect struct {
	X, Y, W, H float64
}

// RectCentered builds a Rect of size w×h around center c
func RectCentered(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Intersects reports strict overlap, touching edges do not count
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether p lies inside r, edges inclusive
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Penetration returns the separating normal (pointing from o into r) and depth
// Axis of least overlap wins; ok is false when the boxes do not overlap
func (r Rect) Penetration(o Rect) (normal Vec2, depth float64, ok bool) {
	if !r.Intersects(o) {
		return Vec2{}, 0, false
	}

	overlapX := min(r.Right()-o.X, o.Right()-r.X)
	overlapY := min(r.Bottom()-o.Y, o.Bottom()-r.Y)
	rc, oc := r.Center(), o.Center()

	if overlapX < overlapY {
		nx := 1.0
		if rc.X < oc.X {
			nx = -1
		}
		return Vec2{nx, 0}, overlapX, true
	}

	ny := 1.0
	if rc.Y < oc.Y {
		ny = -1
	}
	return Vec2{0, ny}, overlapY, true
}

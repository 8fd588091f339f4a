package gamemath

import "github.com/solarlune/resolv"

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectFromObject copies the bounds of a resolv object.
func RectFromObject(o *resolv.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Point returns a zero-sized rect at (x, y). It overlaps another rect only when
// the point lies strictly inside it.
func Point(x, y float64) Rect {
	return Rect{X: x, Y: y}
}

// Overlaps reports whether a and b share interior area. Touching edges do not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Contains reports whether (x, y) lies strictly inside r.
func (r Rect) Contains(x, y float64) bool {
	return Overlaps(Point(x, y), r)
}

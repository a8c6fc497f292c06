// Package geom holds the value types shared by the layout code: rectangles,
// points and sizes in a single container-relative coordinate frame.
package geom

import "math"

// Point is a placement coordinate.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and o.
func (p Point) Dist(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// NewSize clamps negative and NaN dimensions to zero.
func NewSize(w, h float64) Size {
	return Size{W: nonNegative(w), H: nonNegative(h)}
}

// Rect is an axis-aligned box. Width and Height are never negative when
// built through NewRect.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// NewRect builds a rectangle, clamping negative and NaN dimensions to zero.
func NewRect(left, top, width, height float64) Rect {
	return Rect{
		Left:   finite(left),
		Top:    finite(top),
		Width:  nonNegative(width),
		Height: nonNegative(height),
	}
}

// RectFromEdges builds a rectangle from its four edges.
func RectFromEdges(left, top, right, bottom float64) Rect {
	return NewRect(left, top, right-left, bottom-top)
}

func (r Rect) Right() float64 { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{W: r.Width, H: r.Height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.Left, Y: r.Top}
}

// At returns a rectangle of size s positioned at p.
func At(p Point, s Size) Rect {
	return Rect{Left: p.X, Top: p.Y, Width: s.W, Height: s.H}
}

// Translate shifts the rectangle by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

// Intersects reports whether r and o overlap. Rectangles that only share an
// edge are separated.
func (r Rect) Intersects(o Rect) bool {
	separated := r.Right() <= o.Left ||
		r.Left >= o.Right() ||
		r.Bottom() <= o.Top ||
		r.Top >= o.Bottom()
	return !separated
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}
	return v
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

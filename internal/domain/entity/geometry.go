package entity

// Vec2 is a 2D vector in screen pixels
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned rectangle. X, Y is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether r and o overlap.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width &&
		r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height &&
		r.Y+r.Height > o.Y
}

// Centre returns the centre point of the rectangle
func (r Rect) Centre() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

package sim

// Rect is an axis-aligned box in world units.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether both axis intervals overlap strictly.
// Touching edges do not count, and zero-sized boxes never overlap.
func (a Rect) Intersects(b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Right returns the x coordinate of the right edge.
func (a Rect) Right() float64 { return a.X + a.W }

// offscreen reports whether the box has scrolled fully past the cull line.
func offscreen(r Rect) bool {
	return r.Right() <= CullX
}

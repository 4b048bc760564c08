package scene

import (
	"image"
	"math"
)

// Rect is a filled box in whole world units.
type Rect struct {
	X, Y, W, H int
	Col        RGB
}

// Screen maps the rect to screen pixels at an integer zoom.
func (r Rect) Screen(zoom int) image.Rectangle {
	return image.Rect(r.X*zoom, r.Y*zoom, (r.X+r.W)*zoom, (r.Y+r.H)*zoom)
}

// Text is a HUD string. X/Y is the left baseline point in world units.
type Text struct {
	X, Y float64
	Str  string
	Col  RGB
}

// Frame is the draw list for one rendered frame. Frontends paint, in order:
// Rects, HUD, the overlay (when Ended), then Panel.
type Frame struct {
	Rects []Rect
	HUD   []Text
	Ended bool
	Panel []Text
}

// Reset empties the frame, keeping capacity.
func (f *Frame) Reset() {
	f.Rects = f.Rects[:0]
	f.HUD = f.HUD[:0]
	f.Panel = f.Panel[:0]
	f.Ended = false
}

// roundHalfUp rounds .5 toward +Inf, so edges never jitter when crossing zero.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// rect rounds world coordinates before they are scaled.
func (f *Frame) rect(x, y, w, h float64, col RGB) {
	f.Rects = append(f.Rects, Rect{
		X:   roundHalfUp(x),
		Y:   roundHalfUp(y),
		W:   roundHalfUp(w),
		H:   roundHalfUp(h),
		Col: col,
	})
}

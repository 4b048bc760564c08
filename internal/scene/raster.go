package scene

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Rasterize paints f into dst at an integer zoom. face may be nil, in which
// case text is skipped (the terminal frontend draws text as characters).
func Rasterize(dst draw.Image, f *Frame, zoom int, face font.Face) {
	if zoom < 1 {
		zoom = 1
	}
	for _, r := range f.Rects {
		fill(dst, r.Screen(zoom), r.Col)
	}
	drawTexts(dst, f.HUD, zoom, face)
	if f.Ended {
		c := Palette.Overlay
		draw.Draw(dst, dst.Bounds(), image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: overlayAlpha8()}), image.Point{}, draw.Over)
	}
	drawTexts(dst, f.Panel, zoom, face)
}

// overlayAlpha8 is OverlayAlpha as an 8-bit channel value.
func overlayAlpha8() uint8 {
	return uint8(math.Round(OverlayAlpha * 255))
}

// NewCanvas returns an image sized for the whole world at zoom.
func NewCanvas(worldW, worldH, zoom int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, worldW*zoom, worldH*zoom))
}

func fill(dst draw.Image, r image.Rectangle, col RGB) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(col.RGBA()), image.Point{}, draw.Src)
}

func drawTexts(dst draw.Image, texts []Text, zoom int, face font.Face) {
	if face == nil {
		return
	}
	for _, t := range texts {
		d := font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(t.Col.RGBA()),
			Face: face,
			Dot:  fixed.P(roundHalfUp(t.X*float64(zoom)), roundHalfUp(t.Y*float64(zoom))),
		}
		d.DrawString(t.Str)
	}
}

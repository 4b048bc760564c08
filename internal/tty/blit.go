package tty

import (
	"image"
	"math"

	"github.com/gdamore/tcell/v2"

	"outie/internal/scene"
	"outie/internal/sim"
)

// Each terminal cell shows two world pixels stacked with an upper half block.
const (
	CellsWide = sim.WorldWidth
	CellsHigh = sim.WorldHeight / 2
	halfBlock = '▀'
)

func tcellColor(c scene.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func pixel(img *image.RGBA, x, y int) scene.RGB {
	c := img.RGBAAt(x, y)
	return scene.RGB{R: c.R, G: c.G, B: c.B}
}

// Blit paints a zoom-1 rasterized frame into s, then overlays text as
// terminal characters on top of the pixels they cover.
func Blit(s tcell.Screen, img *image.RGBA, f *scene.Frame) {
	for cy := 0; cy < CellsHigh; cy++ {
		for x := 0; x < CellsWide; x++ {
			top := pixel(img, x, cy*2)
			bot := pixel(img, x, cy*2+1)
			s.SetContent(x, cy, halfBlock, nil, tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bot)))
		}
	}

	for _, t := range f.HUD {
		col := t.Col
		if f.Ended {
			col = dim(col)
		}
		drawText(s, img, t, col)
	}
	for _, t := range f.Panel {
		drawText(s, img, t, t.Col)
	}
}

// drawText places t on the cell row at the middle of its glyph box.
func drawText(s tcell.Screen, img *image.RGBA, t scene.Text, col scene.RGB) {
	x := int(math.Floor(t.X + 0.5))
	cy := int(math.Floor((t.Y - scene.TextSize/2) / 2))
	if cy < 0 || cy >= CellsHigh {
		return
	}
	for i, ch := range []rune(t.Str) {
		cx := x + i
		if cx < 0 || cx >= CellsWide {
			continue
		}
		bg := pixel(img, cx, cy*2)
		s.SetContent(cx, cy, ch, nil, tcell.StyleDefault.Foreground(tcellColor(col)).Background(tcellColor(bg)))
	}
}

// dim applies the end-of-run overlay to a text color.
func dim(c scene.RGB) scene.RGB {
	o := scene.Palette.Overlay
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-scene.OverlayAlpha) + float64(b)*scene.OverlayAlpha + 0.5)
	}
	return scene.RGB{R: mix(c.R, o.R), G: mix(c.G, o.G), B: mix(c.B, o.B)}
}

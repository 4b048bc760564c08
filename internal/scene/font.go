package scene

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Atlas layout: printable ASCII, 16 glyphs per row.
const (
	atlasFirst = 32
	atlasLast  = 126
	atlasCols  = 16
)

// NewFace returns the embedded Go Mono face at px pixels.
func NewFace(px float64) (font.Face, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse gomono: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("gomono face: %w", err)
	}
	return face, nil
}

// Atlas is a fixed-cell glyph sheet rendered white on transparent.
type Atlas struct {
	Image  *image.NRGBA
	CellW  int
	CellH  int
	Ascent int
}

// BuildAtlas rasterizes every printable ASCII glyph of a monospace face.
func BuildAtlas(face font.Face) (*Atlas, error) {
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		return nil, fmt.Errorf("face has no glyph for 'M'")
	}
	m := face.Metrics()
	a := &Atlas{
		CellW:  adv.Ceil(),
		CellH:  (m.Ascent + m.Descent).Ceil(),
		Ascent: m.Ascent.Ceil(),
	}
	if a.CellW <= 0 || a.CellH <= 0 {
		return nil, fmt.Errorf("degenerate glyph cell %dx%d", a.CellW, a.CellH)
	}

	rows := (atlasLast - atlasFirst + atlasCols) / atlasCols
	a.Image = image.NewNRGBA(image.Rect(0, 0, a.CellW*atlasCols, a.CellH*rows))

	d := font.Drawer{Dst: a.Image, Src: image.White, Face: face}
	for ch := rune(atlasFirst); ch <= atlasLast; ch++ {
		cell, _ := a.Cell(ch)
		d.Dot = fixed.P(cell.Min.X, cell.Min.Y+a.Ascent)
		d.DrawString(string(ch))
	}
	return a, nil
}

// Cell returns the atlas region for ch.
func (a *Atlas) Cell(ch rune) (image.Rectangle, bool) {
	if ch < atlasFirst || ch > atlasLast {
		return image.Rectangle{}, false
	}
	i := int(ch - atlasFirst)
	x := (i % atlasCols) * a.CellW
	y := (i / atlasCols) * a.CellH
	return image.Rect(x, y, x+a.CellW, y+a.CellH), true
}

// TextWidth returns the width in pixels of a single-line string.
func (a *Atlas) TextWidth(s string) int {
	return len([]rune(s)) * a.CellW
}

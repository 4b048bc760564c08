package scene

import "image/color"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Hex builds an RGB from 0xRRGGBB.
func Hex(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Floats returns the channels in [0, 1] for GL uploads.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

var Palette = struct {
	Background RGB
	Hallway    RGB
	Floor      RGB
	Trim       RGB
	Wall       RGB
	WallPanel  RGB
	WallLight  RGB
	Speckle    RGB
	Danger     RGB

	Hair  RGB
	Skin  RGB
	Shirt RGB
	Tie   RGB
	Shoes RGB

	CartBody  RGB
	CartRim   RGB
	CartWheel RGB
	PlantPot  RGB
	PlantLeaf RGB

	Pickup     RGB
	PickupCore RGB
	Dust       RGB

	Text    RGB
	Overlay RGB
}{
	Background: Hex(0x1c2633),
	Hallway:    Hex(0x253446),
	Floor:      Hex(0x2f465a),
	Trim:       Hex(0x83d9cf),
	Wall:       Hex(0x1f2f40),
	WallPanel:  Hex(0x182532),
	WallLight:  Hex(0x94fff0),
	Speckle:    Hex(0x41596e),
	Danger:     Hex(0xe26f6f),

	Hair:  Hex(0x694d37),
	Skin:  Hex(0xf0f5f2),
	Shirt: Hex(0xdce4e0),
	Tie:   Hex(0x6cd6c9),
	Shoes: Hex(0x1d2d3d),

	CartBody:  Hex(0x7894a5),
	CartRim:   Hex(0xb2c2ce),
	CartWheel: Hex(0x111111),
	PlantPot:  Hex(0x7b4f3c),
	PlantLeaf: Hex(0x5acb95),

	Pickup:     Hex(0xb8ff9f),
	PickupCore: Hex(0x193b2f),
	Dust:       Hex(0xb9fff6),

	Text:    Hex(0xd9fff8),
	Overlay: Hex(0x060a12),
}

// OverlayAlpha is the end-of-run panel opacity.
const OverlayAlpha = 0.75

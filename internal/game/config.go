package game

import "outie/internal/sim"

// Logical framebuffer size is the world size times the configured zoom.
const (
	WorldWidth  = sim.WorldWidth
	WorldHeight = sim.WorldHeight
	WindowTitle = "Outie"
)

// Per-frame GPU buffer capacities.
const (
	MaxRectRender  = 1024 // quads
	MaxGlyphRender = 256
)

// Audio.
const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
	MaxVoices    = 8
)

package scene

import (
	"fmt"
	"math"

	"outie/internal/sim"
)

// Parallax layout (world units).
const (
	HallwayTop    = 10
	HallwayHeight = 48

	WallTile     = 24.0
	WallParallax = 0.3
	WallTop      = 16

	SpeckleStep     = 10.0
	SpeckleParallax = 0.7
	SpeckleCount    = 20

	TextSize = 4.0 // HUD glyph height in world units
)

// Build produces the draw list for w. It never mutates the world.
func Build(w *sim.World) Frame {
	var f Frame
	BuildInto(&f, w)
	return f
}

// BuildInto reuses f's buffers.
func BuildInto(f *Frame, w *sim.World) {
	f.Reset()

	drawBackground(f, w.Distance)
	for _, p := range w.Pickups {
		drawPickup(f, p)
	}
	for _, o := range w.Obstacles {
		drawObstacle(f, o)
	}
	drawPlayer(f, w.Player)
	for _, p := range w.Particles.P {
		f.rect(p.X, p.Y, 1, 1, Palette.Dust)
	}

	drawHUD(f, w)
}

func drawBackground(f *Frame, distance float64) {
	const ww, wh = float64(sim.WorldWidth), float64(sim.WorldHeight)
	const ground = float64(sim.GroundY)

	f.rect(0, 0, ww, wh, Palette.Background)
	f.rect(0, HallwayTop, ww, HallwayHeight, Palette.Hallway)
	f.rect(0, ground, ww, wh-ground, Palette.Floor)

	offset := math.Mod(distance*WallParallax, WallTile)
	for i := -1; i < 11; i++ {
		x := float64(i)*WallTile - offset
		f.rect(x, WallTop, 20, 14, Palette.Wall)
		f.rect(x+1, WallTop+1, 18, 1, Palette.Trim)
		f.rect(x+3, WallTop+7, 14, 5, Palette.WallPanel)
		f.rect(x+6, WallTop+3, 8, 2, Palette.WallLight)
	}

	speck := math.Mod(distance*SpeckleParallax, SpeckleStep)
	for i := range SpeckleCount {
		x := float64(i)*SpeckleStep - speck
		f.rect(x, ground+2, 1, 1, Palette.Speckle)
	}
}

func drawPlayer(f *Frame, p sim.Player) {
	x, y := p.X, p.Y
	f.rect(x+2, y, 2, 2, Palette.Hair)
	f.rect(x+1, y+2, 4, 4, Palette.Skin)
	f.rect(x, y+6, 6, 5, Palette.Shirt)
	f.rect(x+2, y+6, 1, 5, Palette.Tie)
	f.rect(x, y+11, 2, 2, Palette.Shoes)
	f.rect(x+4, y+11, 2, 2, Palette.Shoes)
}

func drawObstacle(f *Frame, o sim.Obstacle) {
	w, _ := o.Kind.Size()
	switch o.Kind {
	case sim.KindCart:
		f.rect(o.X, o.Y+2, w, 6, Palette.CartBody)
		f.rect(o.X+1, o.Y+1, w-2, 1, Palette.CartRim)
		f.rect(o.X+1, o.Y+7, 2, 1, Palette.CartWheel)
		f.rect(o.X+w-3, o.Y+7, 2, 1, Palette.CartWheel)
	case sim.KindPlant:
		f.rect(o.X+1, o.Y+6, 5, 4, Palette.PlantPot)
		f.rect(o.X, o.Y, 7, 7, Palette.PlantLeaf)
	}
}

func drawPickup(f *Frame, p sim.Pickup) {
	f.rect(p.X, p.Y, sim.PickupSize, sim.PickupSize, Palette.Pickup)
	f.rect(p.X+1, p.Y+1, 2, 2, Palette.PickupCore)
}

func drawHUD(f *Frame, w *sim.World) {
	f.HUD = append(f.HUD,
		Text{X: 4, Y: 7, Str: fmt.Sprintf("DIST %dm", w.DistanceMeters()), Col: Palette.Text},
		Text{X: 52, Y: 7, Str: fmt.Sprintf("MORALE %d", w.Score), Col: Palette.Text},
	)

	if w.Running() {
		return
	}
	f.Ended = true
	f.Panel = append(f.Panel,
		Text{X: 23, Y: 30, Str: "OUTIE FATIGUE DETECTED", Col: Palette.Text},
		Text{X: 30, Y: 38, Str: fmt.Sprintf("BEST DIST %dm", w.Best), Col: Palette.Text},
		Text{X: 29, Y: 46, Str: "PRESS R TO RESTART", Col: Palette.Text},
	)
}

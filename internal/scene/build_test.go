package scene

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outie/internal/sim"
)

func indexOfColor(rects []Rect, col RGB) int {
	for i, r := range rects {
		if r.Col == col {
			return i
		}
	}
	return -1
}

func TestBuildBackgroundFirst(t *testing.T) {
	w := sim.NewWorld(1)
	f := Build(&w)

	require.NotEmpty(t, f.Rects)
	assert.Equal(t, Rect{X: 0, Y: 0, W: sim.WorldWidth, H: sim.WorldHeight, Col: Palette.Background}, f.Rects[0])
	assert.Equal(t, Rect{X: 0, Y: HallwayTop, W: sim.WorldWidth, H: HallwayHeight, Col: Palette.Hallway}, f.Rects[1])
	assert.Equal(t, Rect{X: 0, Y: sim.GroundY, W: sim.WorldWidth, H: sim.WorldHeight - sim.GroundY, Col: Palette.Floor}, f.Rects[2])
}

func TestBuildDrawOrder(t *testing.T) {
	w := sim.NewWorld(1)
	w.Pickups = append(w.Pickups, sim.Pickup{X: 60, Y: 41})
	w.Obstacles = append(w.Obstacles, sim.NewObstacle(sim.KindPlant, 70))
	w.Particles.Add(sim.Particle{X: 5, Y: 5, Life: 1})

	f := Build(&w)

	pickup := indexOfColor(f.Rects, Palette.Pickup)
	plant := indexOfColor(f.Rects, Palette.PlantPot)
	player := indexOfColor(f.Rects, Palette.Hair)
	dust := indexOfColor(f.Rects, Palette.Dust)

	require.True(t, pickup > 0 && plant > 0 && player > 0 && dust > 0)
	assert.Less(t, pickup, plant)
	assert.Less(t, plant, player)
	assert.Less(t, player, dust)
	assert.Equal(t, len(f.Rects)-1, dust)
}

func TestBuildRoundsBeforeScaling(t *testing.T) {
	w := sim.NewWorld(1)
	w.Pickups = append(w.Pickups,
		sim.Pickup{X: 10.5, Y: 20.4},
		sim.Pickup{X: -2.5, Y: 20.6},
	)

	f := Build(&w)

	var got []Rect
	for _, r := range f.Rects {
		if r.Col == Palette.Pickup {
			got = append(got, r)
		}
	}
	require.Len(t, got, 2)
	assert.Equal(t, Rect{X: 11, Y: 20, W: 4, H: 4, Col: Palette.Pickup}, got[0])
	assert.Equal(t, Rect{X: -2, Y: 21, W: 4, H: 4, Col: Palette.Pickup}, got[1])
	assert.Equal(t, image.Rect(44, 80, 60, 96), got[0].Screen(4))
}

func TestBuildWallTilesWrap(t *testing.T) {
	a := sim.NewWorld(1)
	b := sim.NewWorld(1)
	b.Distance = 240 // 240*0.3 = 72, three whole tiles

	fa := Build(&a)
	fb := Build(&b)

	wallsA := filter(fa.Rects, Palette.Wall)
	wallsB := filter(fb.Rects, Palette.Wall)
	assert.Equal(t, wallsA, wallsB)
	assert.Len(t, wallsA, 12)
}

func filter(rects []Rect, col RGB) []Rect {
	var out []Rect
	for _, r := range rects {
		if r.Col == col {
			out = append(out, r)
		}
	}
	return out
}

func TestBuildCartAndPlantArt(t *testing.T) {
	w := sim.NewWorld(1)
	w.Obstacles = append(w.Obstacles, sim.NewObstacle(sim.KindCart, 60))

	f := Build(&w)

	body := filter(f.Rects, Palette.CartBody)
	require.Len(t, body, 1)
	assert.Equal(t, Rect{X: 60, Y: sim.GroundY - 8 + 2, W: 9, H: 6, Col: Palette.CartBody}, body[0])
	assert.Len(t, filter(f.Rects, Palette.CartWheel), 2)
	assert.Empty(t, filter(f.Rects, Palette.PlantLeaf))
}

func TestBuildHUD(t *testing.T) {
	w := sim.NewWorld(1)
	w.Distance = 44.9
	w.Score = 30

	f := Build(&w)

	require.Len(t, f.HUD, 2)
	assert.Equal(t, "DIST 44m", f.HUD[0].Str)
	assert.Equal(t, "MORALE 30", f.HUD[1].Str)
	assert.False(t, f.Ended)
	assert.Empty(t, f.Panel)
}

func TestBuildEndPanel(t *testing.T) {
	w := sim.NewWorld(1)
	w.State = sim.StateEnded
	w.Best = 321

	f := Build(&w)

	assert.True(t, f.Ended)
	require.Len(t, f.Panel, 3)
	assert.Equal(t, "OUTIE FATIGUE DETECTED", f.Panel[0].Str)
	assert.Equal(t, "BEST DIST 321m", f.Panel[1].Str)
	assert.Equal(t, "PRESS R TO RESTART", f.Panel[2].Str)
}

func TestBuildIntoReusesFrame(t *testing.T) {
	w := sim.NewWorld(1)
	w.State = sim.StateEnded
	var f Frame
	BuildInto(&f, &w)
	n := len(f.Rects)

	w.Restart()
	BuildInto(&f, &w)

	assert.Len(t, f.Rects, n)
	assert.False(t, f.Ended)
	assert.Empty(t, f.Panel)
}

package tty

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outie/internal/scene"
	"outie/internal/sfx"
	"outie/internal/sim"
)

func newTestGame(t *testing.T) (*Game, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(CellsWide, CellsHigh)
	return NewGame(screen, 1), screen
}

func TestKeyName(t *testing.T) {
	name, ok := keyName(tcell.KeyRune, ' ')
	assert.True(t, ok)
	assert.Equal(t, sim.KeySpace, name)

	name, ok = keyName(tcell.KeyUp, 0)
	assert.True(t, ok)
	assert.Equal(t, sim.KeyArrowUp, name)

	name, ok = keyName(tcell.KeyRune, 'R')
	assert.True(t, ok)
	assert.Equal(t, sim.KeyRestart, name)

	_, ok = keyName(tcell.KeyF1, 0)
	assert.False(t, ok)
}

func TestHandleKeyQuit(t *testing.T) {
	g, _ := newTestGame(t)

	assert.False(t, g.handleKey(tcell.KeyEscape, 0))
	assert.False(t, g.handleKey(tcell.KeyCtrlC, 0))
	assert.False(t, g.handleKey(tcell.KeyRune, 'q'))
	assert.True(t, g.handleKey(tcell.KeyF1, 0))
}

func TestHandleKeyJumpIsATap(t *testing.T) {
	g, _ := newTestGame(t)

	assert.True(t, g.handleKey(tcell.KeyRune, ' '))
	assert.False(t, g.world.Player.OnGround)
	assert.False(t, g.controls.Held(sim.KeySpace), "no release events, so keys never stay held")
}

func TestTickPublishesEvents(t *testing.T) {
	g, _ := newTestGame(t)
	var got []sim.EventType
	g.bus.SubscribeAll(func(e sim.Event) { got = append(got, e.Type) })

	g.tick(0)
	g.handleKey(tcell.KeyUp, 0)
	g.tick(0.016)

	assert.Equal(t, []sim.EventType{sim.EventJump}, got)
	assert.InDelta(t, 0.016, g.world.Time, 1e-12)
}

func TestTickClampsLongFrames(t *testing.T) {
	g, _ := newTestGame(t)
	g.tick(0)
	g.tick(5)
	assert.InDelta(t, sim.MaxFrameDT, g.world.Time, 1e-12)
}

func TestDrawHalfBlocks(t *testing.T) {
	g, screen := newTestGame(t)
	g.draw()

	// Top-left cell: background above, background below.
	ch, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, halfBlock, ch)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcellColor(scene.Palette.Background), fg)
	assert.Equal(t, tcellColor(scene.Palette.Background), bg)

	// Bottom row sits on the floor band.
	_, _, style, _ = screen.GetContent(0, CellsHigh-1)
	fg, _, _ = style.Decompose()
	assert.NotEqual(t, tcellColor(scene.Palette.Background), fg)
}

func TestDrawHUDText(t *testing.T) {
	g, screen := newTestGame(t)
	g.draw()

	// "DIST 0m" at x=4, baseline 7.
	for i, want := range "DIST 0m" {
		ch, _, style, _ := screen.GetContent(4+i, 2)
		assert.Equal(t, want, ch)
		fg, _, _ := style.Decompose()
		assert.Equal(t, tcellColor(scene.Palette.Text), fg)
	}
}

func TestDrawEndPanel(t *testing.T) {
	g, screen := newTestGame(t)
	g.world.State = sim.StateEnded
	g.draw()

	for i, want := range "OUTIE" {
		ch, _, _, _ := screen.GetContent(23+i, 14)
		assert.Equal(t, want, ch)
	}
	_, _, style, _ := screen.GetContent(4, 2)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcellColor(dim(scene.Palette.Text)), fg, "HUD sits under the overlay")
}

func TestDim(t *testing.T) {
	o := scene.Palette.Overlay
	assert.Equal(t, o, dim(o))
	d := dim(scene.RGB{R: 255, G: 255, B: 255})
	assert.Less(t, d.R, uint8(80))
}

func TestBufferStreamer(t *testing.T) {
	b := newBufferStreamer([]float64{0.5, -0.5, 1}, 0.5)
	out := make([][2]float64, 2)

	n, ok := b.Stream(out)
	assert.True(t, ok)
	assert.Equal(t, 2, n)
	assert.Equal(t, [2]float64{0.25, 0.25}, out[0])
	assert.Equal(t, [2]float64{-0.25, -0.25}, out[1])

	n, ok = b.Stream(out)
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	n, ok = b.Stream(out)
	assert.False(t, ok)
	assert.Zero(t, n)
	assert.NoError(t, b.Err())
}

func TestBufferStreamerPlaysBankedSound(t *testing.T) {
	samples := sfx.NewBank(int(sampleRate)).Samples(sfx.SoundJump)
	b := newBufferStreamer(samples, 1)
	out := make([][2]float64, 512)
	total := 0
	for {
		n, ok := b.Stream(out)
		if !ok {
			break
		}
		total += n
	}
	assert.Equal(t, len(samples), total)
}

func TestPollEventsForwards(t *testing.T) {
	g, screen := newTestGame(t)
	events := make(chan tcell.Event, 1)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(events, done)

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	select {
	case ev := <-events:
		key, ok := ev.(*tcell.EventKey)
		require.True(t, ok)
		assert.Equal(t, 'x', key.Rune())
	case <-time.After(time.Second):
		t.Fatal("event not forwarded")
	}
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	g, screen := newTestGame(t)
	events := make(chan tcell.Event) // nobody reads
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		g.pollEvents(events, done)
		close(finished)
	}()

	close(done)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("poller blocked on a send after the loop exited")
	}
}

package sim

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlsHeldSet(t *testing.T) {
	w := NewWorld(1)
	c := NewControls()

	c.KeyDown(&w, "Shift")
	assert.True(t, c.Held("shift"))
	assert.True(t, c.Held("SHIFT"))

	c.KeyUp("SHIFT")
	assert.False(t, c.Held("shift"))

	c.KeyDown(&w, "x")
	c.KeyDown(&w, "y")
	c.Release()
	assert.False(t, c.Held("x"))
	assert.False(t, c.Held("y"))
}

func TestControlsJumpKeys(t *testing.T) {
	for _, key := range []string{" ", "space", "Space", "SPACE", "ArrowUp", "ARROWUP", "arrowup"} {
		t.Run(key, func(t *testing.T) {
			w := NewWorld(1)
			c := NewControls()

			c.KeyDown(&w, key)

			assert.False(t, w.Player.OnGround)
			assert.Equal(t, JumpVelocity, w.Player.VY)
		})
	}
}

func TestControlsJumpNeedsGroundAndRun(t *testing.T) {
	w := NewWorld(1)
	c := NewControls()

	w.Player.OnGround = false
	c.KeyDown(&w, " ")
	assert.Zero(t, w.Player.VY)

	w.Player.OnGround = true
	w.State = StateEnded
	c.KeyDown(&w, " ")
	assert.Zero(t, w.Player.VY)
	assert.True(t, w.Player.OnGround)
	assert.Empty(t, w.DrainEvents())
}

func TestControlsRestartOnlyWhenEnded(t *testing.T) {
	w := NewWorld(1)
	c := NewControls()
	w.Distance = 99

	c.KeyDown(&w, "r")
	assert.Equal(t, 99.0, w.Distance, "restart ignored while running")

	w.State = StateEnded
	c.KeyDown(&w, "R")
	require.True(t, w.Running())
	assert.Zero(t, w.Distance)

	events := w.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventRestart, events[0].Type)
}

func TestControlsIgnoreUnknownKeys(t *testing.T) {
	w := NewWorld(1)
	before := w.Clone()
	c := NewControls()

	c.KeyDown(&w, "q")
	c.KeyDown(&w, "arrowdown")

	assert.Equal(t, before.Player, w.Player)
	assert.Equal(t, before.State, w.State)
}

func TestFrameClock(t *testing.T) {
	c := NewFrameClock()

	assert.Zero(t, c.Tick(10.0))
	assert.InDelta(t, 0.016, c.Tick(10.016), 1e-9)
	assert.Equal(t, MaxFrameDT, c.Tick(25.0), "stalls are clamped")
	assert.Zero(t, c.Tick(24.0), "backwards clocks yield zero")
}

func TestEventBus(t *testing.T) {
	bus := NewEventBus()
	var jumps, all int
	bus.Subscribe(EventJump, func(Event) { jumps++ })
	bus.SubscribeAll(func(Event) { all++ })

	bus.Publish([]Event{{Type: EventJump}, {Type: EventLand}, {Type: EventCrash}})

	assert.Equal(t, 1, jumps)
	assert.Equal(t, 3, all)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "crash", EventCrash.String())
	assert.Equal(t, "cart", KindCart.String())
	assert.Equal(t, "ended", StateEnded.String())
}

func TestLogRuns(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	w := NewWorld(1)
	w.Score = 30
	w.Best = 88
	bus := NewEventBus()
	LogRuns(bus, &w)

	bus.Publish([]Event{{Type: EventCrash, Data: 88}, {Type: EventJump}, {Type: EventRestart}})
	assert.Contains(t, buf.String(), "run ended: dist 88m morale 30 best 88m")
	assert.Contains(t, buf.String(), "restart (best 88m)")
}

func TestControlsSpaceAliasIsCaseInsensitive(t *testing.T) {
	w := NewWorld(1)
	c := NewControls()

	c.KeyDown(&w, "SPACE")
	assert.True(t, c.Held(KeySpace))
	c.KeyUp("Space")
	assert.False(t, c.Held(KeySpace))
}

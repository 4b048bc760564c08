// Package tty runs the game inside a terminal using tcell half-block cells.
package tty

import (
	"fmt"
	"image"
	"log"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"outie/internal/config"
	"outie/internal/scene"
	"outie/internal/sim"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Game owns the world and everything the terminal loop touches.
type Game struct {
	screen   tcell.Screen
	world    sim.World
	controls *sim.Controls
	bus      *sim.EventBus
	clock    *sim.FrameClock
	frame    scene.Frame
	canvas   *image.RGBA
	start    time.Time
}

func NewGame(screen tcell.Screen, seed uint64) *Game {
	g := &Game{
		screen:   screen,
		world:    sim.NewWorld(seed),
		controls: sim.NewControls(),
		bus:      sim.NewEventBus(),
		clock:    sim.NewFrameClock(),
		canvas:   scene.NewCanvas(sim.WorldWidth, sim.WorldHeight, 1),
		start:    time.Now(),
	}
	sim.LogRuns(g.bus, &g.world)
	return g
}

// Run opens the terminal and plays until the user quits.
func Run(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("tty: seed %d", seed)
	g := NewGame(screen, seed)

	if cfg.Audio.Enabled {
		sm, err := NewSoundManager(cfg.Audio.Volume)
		if err != nil {
			// Non-fatal, game can run without sound
			log.Printf("audio: %v", err)
		} else {
			defer sm.Close()
			sm.Subscribe(g.bus)
			log.Printf("audio: beep %d Hz, volume %.2f", int(sampleRate), cfg.Audio.Volume)
		}
	} else {
		log.Printf("audio: disabled")
	}

	g.run()
	return nil
}

func (g *Game) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.tick(time.Since(g.start).Seconds())
			g.draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// closes.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleInput applies one terminal event and reports whether to keep running.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// handleKey reports whether to keep running. Terminals report no key
// releases, so every press is a tap.
func (g *Game) handleKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC || (key == tcell.KeyRune && r == 'q') {
		return false
	}
	name, ok := keyName(key, r)
	if !ok {
		return true
	}
	g.controls.KeyDown(&g.world, name)
	g.controls.KeyUp(name)
	return true
}

func keyName(key tcell.Key, r rune) (string, bool) {
	switch key {
	case tcell.KeyUp:
		return sim.KeyArrowUp, true
	case tcell.KeyDown:
		return "arrowdown", true
	case tcell.KeyLeft:
		return "arrowleft", true
	case tcell.KeyRight:
		return "arrowright", true
	case tcell.KeyRune:
		return strings.ToLower(string(r)), true
	}
	return "", false
}

// tick advances the world to now (seconds since start) and flushes events.
func (g *Game) tick(now float64) {
	sim.Step(&g.world, g.clock.Tick(now))
	g.bus.Publish(g.world.DrainEvents())
}

func (g *Game) draw() {
	scene.BuildInto(&g.frame, &g.world)
	scene.Rasterize(g.canvas, &g.frame, 1, nil)
	g.screen.Clear()
	Blit(g.screen, g.canvas, &g.frame)
	g.screen.Show()
}

package game

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"outie/internal/config"
	"outie/internal/scene"
	"outie/internal/sim"
)

// RunDesktop opens the GLFW window and drives the game until it is closed.
func RunDesktop(cfg config.Config) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Zoom)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Seed from config or clock.
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("desktop: zoom %d seed %d", cfg.Zoom, seed)

	world := sim.NewWorld(seed)
	controls := sim.NewControls()
	bus := sim.NewEventBus()
	sim.LogRuns(bus, &world)

	if cfg.Audio.Enabled {
		audio, err := NewAudio(cfg.Audio.Volume)
		if err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
			log.Printf("audio: %v", err)
		} else {
			audio.Subscribe(bus)
			log.Printf("audio: oto %d Hz, volume %.2f", SampleRate, cfg.Audio.Volume)
		}
	} else {
		log.Printf("audio: disabled")
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer(cfg.Zoom)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	input := NewInput(controls, &world)
	input.Attach(window)

	clock := sim.NewFrameClock()
	var frame scene.Frame
	for !window.ShouldClose() {
		dt := clock.Tick(glfw.GetTime())
		glfw.PollEvents()

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		sim.Step(&world, dt)
		bus.Publish(world.DrainEvents())

		scene.BuildInto(&frame, &world)
		rend.BeginFrame(fbW, fbH)
		rend.DrawFrame(&frame)

		if input.TakeScreenshot() {
			path, err := SaveScreenshot(".", &frame, cfg.Zoom, rend.Face(), time.Now())
			if err != nil {
				fmt.Fprintf(os.Stderr, "screenshot: %v\n", err)
			} else {
				log.Printf("screenshot: %s", path)
			}
		}

		window.SwapBuffers()
	}
	return nil
}

package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"outie/internal/sim"
)

// Input routes GLFW key callbacks into the world's Controls. Callbacks fire
// from glfw.PollEvents on the main thread, so touching the world is safe.
type Input struct {
	controls   *sim.Controls
	world      *sim.World
	screenshot bool
}

func NewInput(controls *sim.Controls, world *sim.World) *Input {
	return &Input{controls: controls, world: world}
}

// Attach installs the key and focus callbacks on window.
func (in *Input) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if in.handleKey(key, action) {
			w.SetShouldClose(true)
		}
	})
	window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			in.controls.Release()
		}
	})
}

// handleKey applies one key transition and reports whether to quit.
// Auto-repeat is ignored so a held key jumps once.
func (in *Input) handleKey(key glfw.Key, action glfw.Action) bool {
	if action == glfw.Press {
		switch key {
		case glfw.KeyEscape:
			return true
		case glfw.KeyF12:
			in.screenshot = true
			return false
		}
	}
	name, ok := keyName(key)
	if !ok {
		return false
	}
	switch action {
	case glfw.Press:
		in.controls.KeyDown(in.world, name)
	case glfw.Release:
		in.controls.KeyUp(name)
	}
	return false
}

// TakeScreenshot reports and clears a pending F12 request.
func (in *Input) TakeScreenshot() bool {
	s := in.screenshot
	in.screenshot = false
	return s
}

func keyName(key glfw.Key) (string, bool) {
	switch {
	case key == glfw.KeySpace:
		return sim.KeySpace, true
	case key == glfw.KeyUp:
		return sim.KeyArrowUp, true
	case key == glfw.KeyDown:
		return "arrowdown", true
	case key == glfw.KeyLeft:
		return "arrowleft", true
	case key == glfw.KeyRight:
		return "arrowright", true
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return string(rune('a' + (key - glfw.KeyA))), true
	case key >= glfw.Key0 && key <= glfw.Key9:
		return string(rune('0' + (key - glfw.Key0))), true
	}
	return "", false
}

package sim

import "strings"

// Key names, lowercase. Frontends translate their native key codes to these.
const (
	KeySpace   = " "
	KeyArrowUp = "arrowup"
	KeyRestart = "r"
)

// Controls tracks held keys and turns presses into world actions.
type Controls struct {
	held map[string]bool
}

func NewControls() *Controls {
	return &Controls{held: make(map[string]bool)}
}

func normalizeKey(key string) string {
	k := strings.ToLower(key)
	if k == "space" {
		return KeySpace
	}
	return k
}

// KeyDown records the key and fires its edge action, if any.
func (c *Controls) KeyDown(w *World, key string) {
	k := normalizeKey(key)
	c.held[k] = true

	switch k {
	case KeySpace, KeyArrowUp:
		w.Jump()
	case KeyRestart:
		w.Restart()
	}
}

func (c *Controls) KeyUp(key string) {
	delete(c.held, normalizeKey(key))
}

// Held reports whether key is currently down.
func (c *Controls) Held(key string) bool {
	return c.held[normalizeKey(key)]
}

// Release drops every held key (window focus loss).
func (c *Controls) Release() {
	clear(c.held)
}

package sim

// FrameClock converts host timestamps (seconds) into bounded frame deltas.
type FrameClock struct {
	Max     float64
	last    float64
	started bool
}

func NewFrameClock() *FrameClock {
	return &FrameClock{Max: MaxFrameDT}
}

// Tick returns the elapsed time since the previous call, clamped to [0, Max].
// The first call returns 0.
func (c *FrameClock) Tick(now float64) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now - c.last
	c.last = now
	return clampF(dt, 0, c.Max)
}

package sim

type RunState int

const (
	StateRunning RunState = iota
	StateEnded            // player hit an obstacle
)

func (s RunState) String() string {
	if s == StateEnded {
		return "ended"
	}
	return "running"
}

// World is the whole game state. The frame driver owns one World value and
// threads it through Step, Controls and the scene builder.
type World struct {
	Time       float64
	Distance   float64
	Score      int
	Best       int
	Speed      float64
	State      RunState
	SpawnTimer float64

	Player    Player
	Obstacles []Obstacle
	Pickups   []Pickup
	Particles ParticleSystem

	rng    Rand
	events []Event
}

// NewWorld returns a world at the start of a run.
func NewWorld(seed uint64) World {
	w := World{
		rng:       NewRand(seed),
		Particles: NewParticleSystem(MaxParticles),
	}
	w.Reset()
	return w
}

// Reset restores every start-of-run value. Best survives.
func (w *World) Reset() {
	w.Time = 0
	w.Distance = 0
	w.Score = 0
	w.Speed = StartSpeed
	w.State = StateRunning
	w.SpawnTimer = StartSpawnTimer
	w.Obstacles = w.Obstacles[:0]
	w.Pickups = w.Pickups[:0]
	w.Particles.Clear()
	w.Player = newPlayer()
}

func (w *World) Running() bool { return w.State == StateRunning }

// Restart resets an ended run. It is a no-op while running.
func (w *World) Restart() bool {
	if w.Running() {
		return false
	}
	w.Reset()
	w.emit(Event{Type: EventRestart, Data: w.Best})
	return true
}

// Jump applies the jump impulse if the player is grounded and the run is live.
func (w *World) Jump() bool {
	if !w.Running() || !w.Player.OnGround {
		return false
	}
	p := &w.Player
	p.VY = JumpVelocity
	p.OnGround = false
	w.Particles.SpawnDust(&w.rng, p.X+DustJumpDX, p.Y+PlayerH)
	w.emit(Event{Type: EventJump, X: p.X, Y: p.Y})
	return true
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

// DrainEvents returns the events raised since the last drain.
func (w *World) DrainEvents() []Event {
	if len(w.events) == 0 {
		return nil
	}
	out := w.events
	w.events = nil
	return out
}

// Clone returns a deep copy, including the random stream.
func (w World) Clone() World {
	c := w
	c.Obstacles = append([]Obstacle(nil), w.Obstacles...)
	c.Pickups = append([]Pickup(nil), w.Pickups...)
	c.Particles = w.Particles.clone()
	c.events = append([]Event(nil), w.events...)
	return c
}

// DistanceMeters is the whole-number distance shown on the HUD.
func (w *World) DistanceMeters() int {
	return floorInt(w.Distance)
}

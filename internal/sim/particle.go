package sim

type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // seconds remaining
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int) ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, 32),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Len() int { return len(ps.P) }

func (ps *ParticleSystem) Add(p Particle) {
	if ps.Max <= 0 {
		ps.Max = MaxParticles
	}
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// SpawnDust emits a small burst of dust at (x, y).
func (ps *ParticleSystem) SpawnDust(r *Rand, x, y float64) {
	for range DustCount {
		ps.Add(Particle{
			X:    x,
			Y:    y,
			VX:   (r.Float64() - 0.5) * DustSpreadX,
			VY:   -r.Float64() * DustLiftY,
			Life: DustLifeMin + r.Float64()*DustLifeJitter,
		})
	}
}

// Update ages and moves every particle, dropping expired ones in place.
func (ps *ParticleSystem) Update(dt float64) {
	n := 0
	for i := range ps.P {
		p := ps.P[i]
		p.Life -= dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY += ParticleGravity * dt
		if p.Life <= 0 {
			continue
		}
		ps.P[n] = p
		n++
	}
	ps.P = ps.P[:n]
	if ps.ovrIdx > n {
		ps.ovrIdx = 0
	}
}

func (ps ParticleSystem) clone() ParticleSystem {
	c := ps
	c.P = append([]Particle(nil), ps.P...)
	return c
}

package sim

// Step advances the world by dt seconds. dt is not clamped here; the frame
// driver bounds it.
func Step(w *World, dt float64) {
	if !w.Running() {
		return
	}

	w.Time += dt
	w.Distance += w.Speed * dt
	w.Speed = min(MaxSpeed, w.Speed+dt*SpeedRamp)

	w.SpawnTimer -= dt
	if w.SpawnTimer <= 0 {
		w.spawnObstacle()
		w.SpawnTimer = SpawnBase + w.rng.Float64()*SpawnJitter - w.Speed*SpawnSpeedFactor
	}

	w.updatePlayer(dt)
	w.updateObstacles(dt)
	w.updatePickups(dt)
	w.Particles.Update(dt)
}

// Next is the pure form of Step: it returns the stepped copy and leaves w untouched.
func Next(w World, dt float64) World {
	c := w.Clone()
	Step(&c, dt)
	return c
}

func (w *World) spawnObstacle() {
	kind := KindCart
	if !w.rng.Chance(0.5) {
		kind = KindPlant
	}
	o := NewObstacle(kind, WorldWidth+SpawnMargin)
	w.Obstacles = append(w.Obstacles, o)

	if w.rng.Chance(PickupChance) {
		w.Pickups = append(w.Pickups, Pickup{X: o.X + PickupDX, Y: GroundY - PickupAbove})
	}
}

func (w *World) updatePlayer(dt float64) {
	p := &w.Player
	p.VY += Gravity * dt
	p.Y += p.VY * dt

	floor := GroundY - PlayerH
	if p.Y >= floor {
		if !p.OnGround {
			w.Particles.SpawnDust(&w.rng, p.X+DustLandDX, GroundY-DustLandAbove)
			w.emit(Event{Type: EventLand, X: p.X, Y: floor})
		}
		p.Y = floor
		p.VY = 0
		p.OnGround = true
	}
}

func (w *World) updateObstacles(dt float64) {
	player := w.Player.Bounds()
	n := 0
	for i := range w.Obstacles {
		o := w.Obstacles[i]
		o.X -= w.Speed * dt
		// Later overlaps in the same pass find the run already ended.
		if w.Running() && player.Intersects(o.Bounds()) {
			w.endRun(o)
		}
		if offscreen(o.Bounds()) {
			continue
		}
		w.Obstacles[n] = o
		n++
	}
	w.Obstacles = w.Obstacles[:n]
}

func (w *World) endRun(hit Obstacle) {
	w.State = StateEnded
	w.Best = max(w.Best, w.DistanceMeters())
	w.emit(Event{Type: EventCrash, X: hit.X, Y: hit.Y, Data: w.DistanceMeters()})
}

func (w *World) updatePickups(dt float64) {
	player := w.Player.Bounds()
	n := 0
	for i := range w.Pickups {
		p := w.Pickups[i]
		p.X -= w.Speed * dt
		if !p.Taken && player.Intersects(p.Bounds()) {
			p.Taken = true
			w.Score += PickupScore
			w.Particles.SpawnDust(&w.rng, p.X+PickupDX, p.Y+PickupSize/2)
			w.emit(Event{Type: EventPickup, X: p.X, Y: p.Y, Data: w.Score})
		}
		if p.Taken || offscreen(p.Bounds()) {
			continue
		}
		w.Pickups[n] = p
		n++
	}
	w.Pickups = w.Pickups[:n]
}

package sim

// Update advances the simulation by deltaMs milliseconds.
//
// Wells spin, every well pulls on every particle, then each particle moves
// by its velocity, is damped, and is reflected off the canvas edges when
// borders are active.
func (s *Simulation) Update(deltaMs float64) {
	dt := deltaMs / 1000.0

	for i := range s.wells {
		s.wells[i].Rotate()
	}

	s.backend.ApplyField(s.particles, s.wells, s.field())

	w := float64(s.width)
	h := float64(s.height)

	for i := range s.particles {
		p := &s.particles[i]

		p.Pos.X += p.Vel.X * dt
		p.Pos.Y += p.Vel.Y * dt

		p.Vel.X *= s.damping
		p.Vel.Y *= s.damping

		if !s.bordersActive {
			continue
		}
		if p.Pos.X < 0 || p.Pos.X >= w {
			p.Vel.X = -p.Vel.X
			p.Pos.X = clamp(p.Pos.X, 0, w-1)
		}
		if p.Pos.Y < 0 || p.Pos.Y >= h {
			p.Vel.Y = -p.Vel.Y
			p.Pos.Y = clamp(p.Pos.Y, 0, h-1)
		}
	}

	s.steps++

	for _, m := range s.metrics {
		m.Observe(s.particles, s.wells, s.steps)
	}
	for _, o := range s.observers {
		o.OnStep(s.particles, s.wells, s.steps)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

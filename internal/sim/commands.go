package sim

import "github.com/san-kum/gravwell/internal/dynamo"

// SpawnParticle appends a particle with a fresh opaque color from the palette.
func (s *Simulation) SpawnParticle(x, y, vx, vy float64) {
	color := s.palette(s.rng).Opaque()
	s.particles = append(s.particles, dynamo.NewParticle(x, y, vx, vy, color))
}

// InitializeParticles spawns n particles uniformly over the canvas with
// velocities uniform in [InitialMinVelocity, InitialMaxVelocity).
func (s *Simulation) InitializeParticles(n int) {
	if n <= 0 {
		return
	}
	s.particles = growParticles(s.particles, n)

	span := InitialMaxVelocity - InitialMinVelocity
	for i := 0; i < n; i++ {
		x := s.rng.Float64() * float64(s.width)
		y := s.rng.Float64() * float64(s.height)
		vx := s.rng.Float64()*span + InitialMinVelocity
		vy := s.rng.Float64()*span + InitialMinVelocity
		s.SpawnParticle(x, y, vx, vy)
	}
}

func growParticles(ps []dynamo.Particle, n int) []dynamo.Particle {
	if cap(ps)-len(ps) >= n {
		return ps
	}
	grown := make([]dynamo.Particle, len(ps), len(ps)+n)
	copy(grown, ps)
	return grown
}

// SpawnGravityWell appends an unselected well at (x, y) carrying the
// configured spawn mass.
func (s *Simulation) SpawnGravityWell(x, y float64) {
	s.wells = append(s.wells, dynamo.NewGravityWell(dynamo.Vec2{X: x, Y: y}, s.wellSpawnMass))
}

// TrySelecting marks the first well, in insertion order, that contains
// (x, y) as selected. Selection is additive: wells selected by earlier calls
// stay selected until ReleaseSelection.
func (s *Simulation) TrySelecting(x, y float64) bool {
	for i := range s.wells {
		if s.wells[i].IsPointInside(x, y) {
			s.wells[i].IsSelected = true
			return true
		}
	}
	return false
}

func (s *Simulation) ReleaseSelection() {
	for i := range s.wells {
		s.wells[i].IsSelected = false
	}
}

func (s *Simulation) SelectedCount() int {
	n := 0
	for i := range s.wells {
		if s.wells[i].IsSelected {
			n++
		}
	}
	return n
}

// MoveSelectionTo places every selected well at (x, y).
func (s *Simulation) MoveSelectionTo(x, y float64) {
	for i := range s.wells {
		if s.wells[i].IsSelected {
			s.wells[i].MoveTo(x, y)
		}
	}
}

// DragSelection offsets every selected well by (dx, dy).
func (s *Simulation) DragSelection(dx, dy float64) {
	for i := range s.wells {
		if s.wells[i].IsSelected {
			s.wells[i].MoveBy(dx, dy)
		}
	}
}

// TryRemoving deletes the first well, in insertion order, that contains
// (x, y). It reports whether a well was removed.
func (s *Simulation) TryRemoving(x, y float64) bool {
	for i := range s.wells {
		if s.wells[i].IsPointInside(x, y) {
			s.wells = append(s.wells[:i], s.wells[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Simulation) RemoveAllWells() {
	s.wells = s.wells[:0]
}

func (s *Simulation) ClearParticles() {
	s.particles = s.particles[:0]
	s.resetRendererParticles()
}

// RemoveParticles drops the oldest min(n, count) particles.
func (s *Simulation) RemoveParticles(n int) {
	if n <= 0 {
		return
	}
	if n >= len(s.particles) {
		s.ClearParticles()
		return
	}

	remaining := copy(s.particles, s.particles[n:])
	s.particles = s.particles[:remaining]
	s.resetRendererParticles()
}

// Package spawn streams particles into a simulation around a point, the way
// the host does while the pointer is held down.
package spawn

import (
	"math/rand/v2"
)

const (
	DefaultRate           = 5
	DefaultPositionJitter = 8.0
	DefaultVelocityRange  = 150.0
)

// Target receives spawned particles.
type Target interface {
	SpawnParticle(x, y, vx, vy float64)
}

// Emitter spawns Rate particles per call around a point. Positions are
// jittered uniformly within PositionJitter (centered), velocities within
// VelocityRange (centered), plus the flow field velocity when one is set.
type Emitter struct {
	Rate           int
	PositionJitter float64
	VelocityRange  float64

	rng  *rand.Rand
	flow *FlowField
}

func NewEmitter(rate int, jitter, velocityRange float64, rng *rand.Rand) *Emitter {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Emitter{
		Rate:           rate,
		PositionJitter: jitter,
		VelocityRange:  velocityRange,
		rng:            rng,
	}
}

func NewDefaultEmitter(rng *rand.Rand) *Emitter {
	return NewEmitter(DefaultRate, DefaultPositionJitter, DefaultVelocityRange, rng)
}

func (e *Emitter) SetFlow(f *FlowField) { e.flow = f }
func (e *Emitter) Flow() *FlowField     { return e.flow }

// Emit spawns one batch at (x, y) and returns how many were spawned.
func (e *Emitter) Emit(dst Target, x, y float64) int {
	for i := 0; i < e.Rate; i++ {
		px := x + e.centered(e.PositionJitter)
		py := y + e.centered(e.PositionJitter)
		vx := e.centered(e.VelocityRange)
		vy := e.centered(e.VelocityRange)
		if e.flow != nil {
			fx, fy := e.flow.Velocity(px, py)
			vx += fx
			vy += fy
		}
		dst.SpawnParticle(px, py, vx, vy)
	}
	return max(e.Rate, 0)
}

func (e *Emitter) centered(span float64) float64 {
	return e.rng.Float64()*span - span/2
}

package config

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/san-kum/gravwell/internal/loop"
	"github.com/san-kum/gravwell/internal/metrics"
	"github.com/san-kum/gravwell/internal/sim"
	"github.com/san-kum/gravwell/internal/spawn"
)

// Random streams, so the simulation and the emitter draw independent
// sequences from one seed.
const (
	simStream  = 1
	emitStream = 2
)

// NewSimulation builds a simulation from c, populates it with the configured
// initial wells and particles, and attaches the mean speed, energy drift and
// containment metrics.
func (c *Config) NewSimulation() (*sim.Simulation, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	law, _ := c.Law()
	palette, _ := sim.PaletteByName(c.Simulation.Palette)

	s := sim.New(c.Params(), c.rng(simStream))
	s.SetForceLaw(law)
	s.SetPalette(palette)
	s.SetBackend(c.Backend())
	log.Printf("config: backend %s, force law %s", s.Backend().Name(), law.Name)

	for _, p := range WellLayout(c.Canvas.Width, c.Canvas.Height, c.Simulation.InitialWells) {
		s.SpawnGravityWell(p[0], p[1])
	}
	s.InitializeParticles(c.Simulation.InitialParticles)

	s.AddMetric(metrics.NewMeanSpeed())
	s.AddMetric(metrics.NewEnergyDrift())
	s.AddMetric(metrics.NewContainment(c.Canvas.Width, c.Canvas.Height))
	return s, nil
}

// NewEmitter builds the pointer emitter, with a flow field when
// Spawn.FlowStrength is non-zero.
func (c *Config) NewEmitter() *spawn.Emitter {
	e := spawn.NewEmitter(c.Spawn.Rate, c.Spawn.PositionJitter, c.Spawn.VelocityRange, c.rng(emitStream))
	if c.Spawn.FlowStrength != 0 {
		e.SetFlow(spawn.NewFlowField(c.Spawn.FlowStrength, c.Spawn.FlowScale, c.Simulation.Seed))
	}
	return e
}

func (c *Config) NewSession() (*loop.Session, error) {
	s, err := c.NewSimulation()
	if err != nil {
		return nil, err
	}
	return loop.NewSession(s, c.Ticker(), c.NewEmitter()), nil
}

// rng returns a generator for the given stream, or nil for a random seed
// when Seed is zero.
func (c *Config) rng(stream uint64) *rand.Rand {
	if c.Simulation.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(uint64(c.Simulation.Seed), stream))
}

// WellLayout places n wells: one at the canvas center, or n evenly around a
// circle of a quarter of the smaller canvas side.
func WellLayout(width, height uint32, n int) [][2]float64 {
	cx, cy := float64(width)/2, float64(height)/2
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return [][2]float64{{cx, cy}}
	}

	r := math.Min(float64(width), float64(height)) / 4
	out := make([][2]float64, n)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return out
}

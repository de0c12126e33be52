package sim

import (
	"log"
	"math/rand/v2"

	"github.com/san-kum/gravwell/internal/compute"
	"github.com/san-kum/gravwell/internal/dynamo"
	"github.com/san-kum/gravwell/internal/physics"
)

type Simulation struct {
	width, height uint32

	particles []dynamo.Particle
	wells     []dynamo.GravityWell

	gravityWellMass float64
	useWellMass     bool
	wellSpawnMass   float64
	trailScale      float64
	damping         float64
	law             physics.ForceLaw

	bordersActive     bool
	shouldClearScreen bool

	rng     *rand.Rand
	palette Palette
	backend compute.Backend

	renderer       FrameRenderer
	warnedNoRender bool

	metrics   []Metric
	observers []Observer
	steps     int
}

// New creates a simulation with empty collections. A nil rng is replaced by
// a randomly seeded generator.
func New(params Params, rng *rand.Rand) *Simulation {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Simulation{
		width:             params.Width,
		height:            params.Height,
		particles:         make([]dynamo.Particle, 0),
		wells:             make([]dynamo.GravityWell, 0),
		gravityWellMass:   params.GravityWellMass,
		useWellMass:       params.UseWellMass,
		wellSpawnMass:     params.WellSpawnMass,
		trailScale:        params.TrailScale,
		damping:           params.Damping,
		law:               physics.DefaultForceLaw(),
		bordersActive:     params.BordersActive,
		shouldClearScreen: params.ShouldClearScreen,
		rng:               rng,
		palette:           RandomPalette,
		backend:           compute.NewSerialBackend(),
		metrics:           make([]Metric, 0),
		observers:         make([]Observer, 0),
	}
}

func (s *Simulation) SetRenderer(r FrameRenderer)    { s.renderer = r }
func (s *Simulation) SetBackend(b compute.Backend)   { s.backend = b }
func (s *Simulation) SetForceLaw(l physics.ForceLaw) { s.law = l }
func (s *Simulation) SetPalette(p Palette)           { s.palette = p }

func (s *Simulation) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulation) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulation) Backend() compute.Backend   { return s.backend }
func (s *Simulation) ForceLaw() physics.ForceLaw { return s.law }

// Metrics returns the current value of every registered metric.
func (s *Simulation) Metrics() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func (s *Simulation) Width() uint32  { return s.width }
func (s *Simulation) Height() uint32 { return s.height }
func (s *Simulation) Step() int      { return s.steps }

// Particles returns the live particle slice, oldest first. It is a borrowed
// view valid until the next mutating call.
func (s *Simulation) Particles() []dynamo.Particle { return s.particles }

// Wells returns the live well slice in insertion order.
func (s *Simulation) Wells() []dynamo.GravityWell { return s.wells }

func (s *Simulation) ParticleCount() int { return len(s.particles) }
func (s *Simulation) WellCount() int     { return len(s.wells) }

func (s *Simulation) GravityWellMass() float64        { return s.gravityWellMass }
func (s *Simulation) SetGravityWellMass(mass float64) { s.gravityWellMass = mass }

func (s *Simulation) UseWellMass() bool       { return s.useWellMass }
func (s *Simulation) SetUseWellMass(use bool) { s.useWellMass = use }

func (s *Simulation) ParticleTrailScale() float64         { return s.trailScale }
func (s *Simulation) SetParticleTrailScale(scale float64) { s.trailScale = scale }

func (s *Simulation) ShouldClearScreen() bool      { return s.shouldClearScreen }
func (s *Simulation) SetShouldClearScreen(on bool) { s.shouldClearScreen = on }

func (s *Simulation) BordersActive() bool { return s.bordersActive }

// SetBordersActive toggles border reflection. Turning it on immediately
// drops every particle outside [0, width-1) x [0, height-1); survivors may
// be reordered.
func (s *Simulation) SetBordersActive(active bool) {
	if active {
		s.purgeOutOfBounds()
	}
	s.bordersActive = active
}

func (s *Simulation) purgeOutOfBounds() {
	maxX := float64(s.width) - 1
	maxY := float64(s.height) - 1
	before := len(s.particles)

	for i := len(s.particles) - 1; i >= 0; i-- {
		p := &s.particles[i]
		if p.Pos.X < 0 || p.Pos.X >= maxX || p.Pos.Y < 0 || p.Pos.Y >= maxY {
			last := len(s.particles) - 1
			s.particles[i] = s.particles[last]
			s.particles = s.particles[:last]
		}
	}

	if len(s.particles) != before {
		s.resetRendererParticles()
	}
}

func (s *Simulation) field() physics.Field {
	return physics.Field{
		Law:         s.law,
		Mass:        s.gravityWellMass,
		UseWellMass: s.useWellMass,
	}
}

// Render hands the current state to the attached renderer.
func (s *Simulation) Render() {
	if s.renderer == nil {
		if !s.warnedNoRender {
			log.Printf("sim: render called with no renderer attached")
			s.warnedNoRender = true
		}
		return
	}

	if s.shouldClearScreen {
		s.renderer.ClearScreen()
	}
	s.renderer.RenderParticles(s.particles, s.trailScale)
	s.renderer.RenderGravityWells(s.wells)
}

func (s *Simulation) resetRendererParticles() {
	if s.renderer != nil {
		s.renderer.ResetParticles()
	}
}

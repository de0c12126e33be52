package sim

import (
	"github.com/san-kum/gravwell/internal/dynamo"
)

const (
	DefaultGravityWellMass = 90.0
	DefaultWellSpawnMass   = 200.0
	DefaultTrailScale      = 0.1
	DefaultDamping         = 0.99

	InitialMinVelocity = -80.0
	InitialMaxVelocity = 80.0
)

// FrameRenderer draws one frame of simulation state. The slices passed in
// are borrowed for the duration of the call and must not be retained.
type FrameRenderer interface {
	ClearScreen()
	RenderParticles(particles []dynamo.Particle, trailScale float64)
	RenderGravityWells(wells []dynamo.GravityWell)
	// ResetParticles drops any per-particle buffers after a bulk removal.
	ResetParticles()
}

type Metric interface {
	Name() string
	Observe(particles []dynamo.Particle, wells []dynamo.GravityWell, step int)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(particles []dynamo.Particle, wells []dynamo.GravityWell, step int)
}

// Params are the global simulation parameters.
type Params struct {
	Width, Height uint32

	// GravityWellMass drives the force of every well unless UseWellMass is
	// set, in which case each well's own mass is used.
	GravityWellMass float64
	UseWellMass     bool
	// WellSpawnMass is stored on newly spawned wells.
	WellSpawnMass float64

	TrailScale float64
	// Damping multiplies every velocity once per step.
	Damping float64

	BordersActive     bool
	ShouldClearScreen bool
}

func DefaultParams(width, height uint32) Params {
	return Params{
		Width:             width,
		Height:            height,
		GravityWellMass:   DefaultGravityWellMass,
		WellSpawnMass:     DefaultWellSpawnMass,
		TrailScale:        DefaultTrailScale,
		Damping:           DefaultDamping,
		ShouldClearScreen: true,
	}
}

package metrics

import (
	"math"

	"github.com/san-kum/gravwell/internal/dynamo"
)

// KineticEnergy is the total 0.5*|v|^2 of all particles at the last step,
// treating every particle as unit mass.
type KineticEnergy struct {
	name  string
	total float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (k *KineticEnergy) Name() string { return k.name }

func (k *KineticEnergy) Observe(particles []dynamo.Particle, wells []dynamo.GravityWell, step int) {
	total := 0.0
	for i := range particles {
		v := particles[i].Vel
		total += 0.5 * (v.X*v.X + v.Y*v.Y)
	}
	k.total = total
}

func (k *KineticEnergy) Value() float64 { return k.total }
func (k *KineticEnergy) Reset()         { k.total = 0 }

// MeanSpeed is the average particle speed at the last step.
type MeanSpeed struct {
	name string
	mean float64
}

func NewMeanSpeed() *MeanSpeed {
	return &MeanSpeed{name: "mean_speed"}
}

func (m *MeanSpeed) Name() string { return m.name }

func (m *MeanSpeed) Observe(particles []dynamo.Particle, wells []dynamo.GravityWell, step int) {
	if len(particles) == 0 {
		m.mean = 0
		return
	}
	sum := 0.0
	for i := range particles {
		sum += particles[i].Vel.Len()
	}
	m.mean = sum / float64(len(particles))
}

func (m *MeanSpeed) Value() float64 { return m.mean }
func (m *MeanSpeed) Reset()         { m.mean = 0 }

// EnergyDrift tracks the largest relative change in kinetic energy since
// the first observation.
type EnergyDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(particles []dynamo.Particle, wells []dynamo.GravityWell, step int) {
	energy := 0.0
	for i := range particles {
		v := particles[i].Vel
		energy += 0.5 * (v.X*v.X + v.Y*v.Y)
	}

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/gravwell/internal/dynamo"
	"github.com/san-kum/gravwell/internal/sim"
)

func particlesWithVel(vs ...dynamo.Vec2) []dynamo.Particle {
	ps := make([]dynamo.Particle, len(vs))
	for i, v := range vs {
		ps[i] = dynamo.NewParticle(10, 10, v.X, v.Y, dynamo.White)
	}
	return ps
}

func TestKineticEnergy(t *testing.T) {
	m := NewKineticEnergy()
	m.Observe(particlesWithVel(dynamo.Vec2{X: 3, Y: 4}, dynamo.Vec2{X: 0, Y: 2}), nil, 1)

	if math.Abs(m.Value()-14.5) > 1e-9 {
		t.Errorf("expected 14.5, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestMeanSpeed(t *testing.T) {
	m := NewMeanSpeed()
	m.Observe(particlesWithVel(dynamo.Vec2{X: 3, Y: 4}, dynamo.Vec2{X: 0, Y: 1}), nil, 1)
	if math.Abs(m.Value()-3) > 1e-9 {
		t.Errorf("expected 3, got %f", m.Value())
	}

	m.Observe(nil, nil, 2)
	if m.Value() != 0 {
		t.Errorf("expected 0 for no particles, got %f", m.Value())
	}
}

func TestEnergyDrift(t *testing.T) {
	m := NewEnergyDrift()
	m.Observe(particlesWithVel(dynamo.Vec2{X: 2}), nil, 1)
	m.Observe(particlesWithVel(dynamo.Vec2{X: 1}), nil, 2)
	m.Observe(particlesWithVel(dynamo.Vec2{X: 2}), nil, 3)

	if math.Abs(m.Value()-0.75) > 1e-9 {
		t.Errorf("expected max drift 0.75, got %f", m.Value())
	}
}

func TestContainment(t *testing.T) {
	m := NewContainment(100, 100)
	if m.Value() != 1 {
		t.Errorf("expected 1 before any observation, got %f", m.Value())
	}

	ps := []dynamo.Particle{
		dynamo.NewParticle(10, 10, 0, 0, dynamo.White),
		dynamo.NewParticle(-1, 10, 0, 0, dynamo.White),
		dynamo.NewParticle(50, 100, 0, 0, dynamo.White),
		dynamo.NewParticle(99, 99, 0, 0, dynamo.White),
	}
	m.Observe(ps, nil, 1)

	if m.Value() != 0.5 || m.Escaped() != 2 {
		t.Errorf("expected 0.5 with 2 escaped, got %f/%d", m.Value(), m.Escaped())
	}
}

func TestFrameRate(t *testing.T) {
	f := NewFrameRate(3)
	if mean, _, _ := f.Stats(); mean != 0 {
		t.Errorf("expected 0 for empty window, got %f", mean)
	}

	f.Frame(10)
	f.Frame(20)
	f.Frame(0)
	mean, lo, hi := f.Stats()
	if f.Len() != 2 || mean != 75 || lo != 50 || hi != 100 {
		t.Errorf("unexpected stats: len %d mean %f min %f max %f", f.Len(), mean, lo, hi)
	}

	f.Frame(40)
	f.Frame(40)
	f.Frame(40)
	mean, lo, _ = f.Stats()
	if f.Len() != 3 || mean != 25 || lo != 25 {
		t.Errorf("window should have rolled over: len %d mean %f min %f", f.Len(), mean, lo)
	}
}

func TestSeries(t *testing.T) {
	ke := NewKineticEnergy()
	s := NewSeries(ke, 3)

	for i := 1; i <= 5; i++ {
		s.Push(float64(i))
	}
	got := s.Values()
	if len(got) != 3 || got[0] != 3 || got[2] != 5 {
		t.Errorf("expected [3 4 5], got %v", got)
	}
	if s.Last() != 5 || s.Name() != "kinetic_energy" {
		t.Errorf("unexpected last/name: %v %s", s.Last(), s.Name())
	}
}

func TestMetricsInSimulation(t *testing.T) {
	s := sim.New(sim.DefaultParams(200, 200), nil)
	ke := NewKineticEnergy()
	series := NewSeries(ke, 10)
	s.AddMetric(ke)
	s.AddMetric(NewContainment(200, 200))
	s.AddObserver(series)

	s.SpawnParticle(100, 100, 10, 0)
	s.Update(16.7)
	s.Update(16.7)

	if len(series.Values()) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(series.Values()))
	}
	values := s.Metrics()
	if values["containment"] != 1 {
		t.Errorf("expected full containment, got %v", values["containment"])
	}
	want := 0.5 * math.Pow(10*sim.DefaultDamping*sim.DefaultDamping, 2)
	if math.Abs(values["kinetic_energy"]-want) > 1e-9 {
		t.Errorf("expected energy %v, got %v", want, values["kinetic_energy"])
	}
}

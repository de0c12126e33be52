package compute

import (
	"math/rand/v2"
	"testing"

	"github.com/san-kum/gravwell/internal/dynamo"
	"github.com/san-kum/gravwell/internal/physics"
)

func randomScene(n, m int) ([]dynamo.Particle, []dynamo.GravityWell) {
	rng := rand.New(rand.NewPCG(7, 11))
	particles := make([]dynamo.Particle, n)
	for i := range particles {
		particles[i] = dynamo.NewParticle(rng.Float64()*800, rng.Float64()*600,
			rng.Float64()*160-80, rng.Float64()*160-80, dynamo.White)
	}
	wells := make([]dynamo.GravityWell, m)
	for i := range wells {
		wells[i] = dynamo.NewGravityWell(dynamo.Vec2{X: rng.Float64() * 800, Y: rng.Float64() * 600}, 200)
	}
	return particles, wells
}

func TestCPUMatchesSerial(t *testing.T) {
	a, wells := randomScene(5000, 4)
	b := make([]dynamo.Particle, len(a))
	copy(b, a)

	field := physics.Field{Law: physics.DefaultForceLaw(), Mass: 90}

	NewSerialBackend().ApplyField(a, wells, field)
	NewCPUBackend(4, 64).ApplyField(b, wells, field)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("particle %d differs: serial %v, parallel %v", i, a[i], b[i])
		}
	}
}

func TestNoWellsNoChange(t *testing.T) {
	particles, _ := randomScene(10, 0)
	before := make([]dynamo.Particle, len(particles))
	copy(before, particles)

	NewCPUBackend(2, 1).ApplyField(particles, nil, physics.Field{Law: physics.DefaultForceLaw(), Mass: 90})

	for i := range particles {
		if particles[i] != before[i] {
			t.Fatalf("particle %d changed without wells", i)
		}
	}
}

func TestAutoSelectBackend(t *testing.T) {
	if b := AutoSelectBackend(1, 0); b.Name() != "serial" {
		t.Errorf("single worker should select serial, got %s", b.Name())
	}
	if b := AutoSelectBackend(4, 0); !b.Available() {
		t.Errorf("expected available backend, got %s", b.Name())
	}
}

func BenchmarkSerialApplyField(b *testing.B) {
	particles, wells := randomScene(20000, 3)
	field := physics.Field{Law: physics.DefaultForceLaw(), Mass: 90}
	backend := NewSerialBackend()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		backend.ApplyField(particles, wells, field)
	}
}

func BenchmarkCPUApplyField(b *testing.B) {
	particles, wells := randomScene(20000, 3)
	field := physics.Field{Law: physics.DefaultForceLaw(), Mass: 90}
	backend := NewCPUBackend(0, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		backend.ApplyField(particles, wells, field)
	}
}

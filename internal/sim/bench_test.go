package sim

import (
	"math/rand/v2"
	"testing"

	"github.com/san-kum/gravwell/internal/compute"
)

func benchmarkUpdate(b *testing.B, particles int, backend compute.Backend) {
	s := New(DefaultParams(1280, 720), rand.New(rand.NewPCG(1, 1)))
	s.SetBackend(backend)
	s.SpawnGravityWell(320, 360)
	s.SpawnGravityWell(960, 360)
	s.SpawnGravityWell(640, 200)
	s.InitializeParticles(particles)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Update(16.7)
	}
}

func BenchmarkUpdate1kSerial(b *testing.B) {
	benchmarkUpdate(b, 1000, compute.NewSerialBackend())
}

func BenchmarkUpdate50kSerial(b *testing.B) {
	benchmarkUpdate(b, 50000, compute.NewSerialBackend())
}

func BenchmarkUpdate50kParallel(b *testing.B) {
	benchmarkUpdate(b, 50000, compute.NewCPUBackend(0, compute.DefaultParallelThreshold))
}

package compute

import (
	"github.com/san-kum/gravwell/internal/dynamo"
	"github.com/san-kum/gravwell/internal/physics"
)

type Backend interface {
	Name() string
	Available() bool
	ApplyField(particles []dynamo.Particle, wells []dynamo.GravityWell, field physics.Field)
	Cleanup()
}

// AutoSelectBackend returns the parallel CPU backend when more than one
// worker is available, else the serial one.
func AutoSelectBackend(workers, threshold int) Backend {
	cpu := NewCPUBackend(workers, threshold)
	if cpu.Available() {
		return cpu
	}
	return NewSerialBackend()
}

type SerialBackend struct{}

func NewSerialBackend() *SerialBackend { return &SerialBackend{} }

func (s *SerialBackend) Name() string    { return "serial" }
func (s *SerialBackend) Available() bool { return true }
func (s *SerialBackend) Cleanup()        {}

func (s *SerialBackend) ApplyField(particles []dynamo.Particle, wells []dynamo.GravityWell, field physics.Field) {
	if len(wells) == 0 {
		return
	}
	for i := range particles {
		field.Apply(&particles[i], wells)
	}
}

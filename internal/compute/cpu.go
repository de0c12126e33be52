package compute

import (
	"fmt"
	"runtime"

	"github.com/san-kum/gravwell/internal/dynamo"
	"github.com/san-kum/gravwell/internal/physics"
)

const DefaultParallelThreshold = 2048

type CPUBackend struct {
	workers   int
	threshold int
}

// NewCPUBackend returns a chunked backend. workers <= 0 means one per CPU.
// Batches smaller than threshold run on the calling goroutine.
func NewCPUBackend(workers, threshold int) *CPUBackend {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if threshold <= 0 {
		threshold = DefaultParallelThreshold
	}
	return &CPUBackend{
		workers:   workers,
		threshold: threshold,
	}
}

func (c *CPUBackend) Name() string    { return fmt.Sprintf("cpu (%d workers)", c.workers) }
func (c *CPUBackend) Available() bool { return c.workers > 1 }
func (c *CPUBackend) Cleanup()        {}

func (c *CPUBackend) ApplyField(particles []dynamo.Particle, wells []dynamo.GravityWell, field physics.Field) {
	if len(wells) == 0 {
		return
	}

	dynamo.ParallelFor(len(particles), c.threshold, c.workers, func(start, end int) {
		for i := start; i < end; i++ {
			field.Apply(&particles[i], wells)
		}
	})
}

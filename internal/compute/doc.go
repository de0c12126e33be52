// Package compute provides the backends that accumulate well forces into
// particle velocities each step.
//
// Two CPU backends are available:
//
//   - serial: one goroutine, particles in order
//   - cpu: particles split into contiguous chunks across workers
//
// Each particle's velocity depends only on its own state and the well list,
// summed in well order, so both backends produce bit-identical results.
//
//	backend := compute.NewCPUBackend(0, 2048)
//	backend.ApplyField(particles, wells, field)
package compute

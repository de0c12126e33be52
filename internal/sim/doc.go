// Package sim owns the live particle and gravity-well state and advances it
// one frame at a time.
//
// A [Simulation] is driven by a host frame loop:
//
//	s := sim.New(sim.DefaultParams(800, 600), nil)
//	s.SetRenderer(renderer)
//	s.SpawnGravityWell(400, 300)
//	s.SpawnParticle(100, 100, 0, 40)
//	for running {
//	    s.Update(16.7)
//	    s.Render()
//	}
//
// # Thread Safety
//
// Simulation is NOT thread-safe. The host must not call into the same
// instance from more than one goroutine; Update and Render are expected to
// run back to back on the frame loop. The force backend may fan out work
// internally, but it joins before Update returns.
//
// # Randomness
//
// Each Simulation owns its random generator. It is consumed only by spawn
// calls, never by Update, so a sequence of Update calls is a pure function of
// the state it starts from.
package sim

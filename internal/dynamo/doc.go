// Package dynamo provides the value types shared by the simulation and its
// renderers.
//
// The package defines the data the gravity-well simulation is made of:
//
//   - [Vec2]: 2D float64 vector used for positions and velocities
//   - [Color]: 4-channel byte color, packed as 0xRRGGBBAA
//   - [Particle]: point mass with position, velocity and color
//   - [GravityWell]: fixed-radius attractor with spin and selection state
//
// # Example
//
//	w := dynamo.NewGravityWell(dynamo.Vec2{X: 400, Y: 300}, 200)
//	if w.IsPointInside(410, 305) {
//	    w.IsSelected = true
//	}
//
// # Thread Safety
//
// Values in this package carry no synchronization. They are owned by a single
// simulation and read by renderers between steps.
package dynamo

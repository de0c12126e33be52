// Package physics provides the stylized gravity model used by the simulation.
//
// The pull of a well on a particle is not Newtonian. The raw distance is first
// passed through a [DistanceModifier], clamped below by a minimum, and the
// force is the mass divided by that effective distance:
//
//	D = max(MinDistance, Modifier(|d|))
//	F = ForceScale * mass / D
//
// The resulting force is applied directly to the particle's velocity along
// the unit vector towards the well. Several modifiers are registered by name
// so configuration can choose between them:
//
//   - "linear": D = |d|
//   - "scaled": D = |d| / Divisor (the default, Divisor 30)
//   - "sqrt":   D = sqrt(|d|)
//   - "floor":  D = max(|d|, Divisor), with Divisor 15 or 30
//
// # Example
//
//	law, _ := physics.NewForceLaw("scaled", 30, 1, 1)
//	field := physics.Field{Law: law, Mass: 90}
//	field.Apply(&particle, wells)
package physics

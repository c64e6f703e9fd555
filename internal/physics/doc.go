// Package physics provides the rigid-body model of the gravity toy.
//
//   - [Body]: a rectangle with velocity, rotation and a lifetime budget
//   - [Thruster]: heading-aligned impulse plus rotation control
//   - [Gravity]: one-sided inverse-square attraction between two bodies
//
// # Integration
//
// Every operation is one explicit Euler step of one tick. There is no
// delta-time: simulated speed follows the rate at which ticks are run.
//
//	th := physics.NewThruster(physics.DefaultThrustScale, physics.DefaultTurnRate)
//	g := physics.NewGravity(physics.StandardG)
//	th.Fire(rocket)
//	rocket.Update()
//	g.Apply(rocket, planet)
//
// # Preconditions
//
// Bodies must have positive width and height, and the two bodies handed to
// [Gravity.Apply] must not share a center. Violations panic.
package physics

package physics

import (
	"math"

	"github.com/san-kum/gravtoy/internal/dynamo"
)

// StandardG is the gravitational constant of the toy universe.
const StandardG = 9.806

// Gravity pulls one body toward another with F = G(m1+m2)/r².
// Only the attracted body is moved.
type Gravity struct {
	G float64
}

func NewGravity(g float64) *Gravity {
	return &Gravity{G: g}
}

// Force returns the scalar force between the two bodies and the polar angle
// (radians) from attracted's center to attractor's center.
func (g *Gravity) Force(attracted, attractor *Body) (force, angle float64) {
	d := attractor.Center().Sub(attracted.Center())
	mag := d.Len()
	if mag == 0 {
		panic("physics: gravity between coincident centers")
	}
	angle = d.Angle()
	force = g.G * (attracted.Mass() + attractor.Mass()) / (mag * mag)
	return force, angle
}

// Apply accelerates attracted toward attractor, adds the acceleration to
// its velocity and moves it by the new velocity, all in one step.
func (g *Gravity) Apply(attracted, attractor *Body) {
	force, angle := g.Force(attracted, attractor)
	attracted.Acceleration = dynamo.Vec2{
		X: math.Cos(angle) * force / attracted.Mass(),
		Y: math.Sin(angle) * force / attracted.Mass(),
	}
	attracted.Velocity = attracted.Velocity.Add(attracted.Acceleration)
	attracted.Update()
}

// Distance is the center-to-center separation of two bodies.
func Distance(a, b *Body) float64 {
	return b.Center().Sub(a.Center()).Len()
}

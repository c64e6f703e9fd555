package physics

const (
	DefaultThrustScale = 1.0 / 100
	DefaultTurnRate    = 0.02
)

// Thruster turns and pushes the player body.
type Thruster struct {
	Scale    float64 // velocity gained per firing
	TurnRate float64 // change of RotationRate per steering tick
}

func NewThruster(scale, turnRate float64) *Thruster {
	return &Thruster{Scale: scale, TurnRate: turnRate}
}

// Fire overwrites b's acceleration with an impulse along its heading and
// accumulates it into the velocity.
func (t *Thruster) Fire(b *Body) {
	b.Acceleration = b.Heading().Scale(t.Scale)
	b.Velocity = b.Velocity.Add(b.Acceleration)
}

// Steer spins b up to the left or right, then advances its angle by the
// current rotation rate. Left wins when both are held.
func (t *Thruster) Steer(b *Body, left, right bool) {
	if left {
		b.RotationRate -= t.TurnRate
	} else if right {
		b.RotationRate += t.TurnRate
	}
	b.Angle += b.RotationRate
}

package physics

import (
	"math"
	"testing"

	"github.com/san-kum/gravtoy/internal/dynamo"
)

const eps = 1e-12

func TestThrusterFireThenUpdate(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		v0    dynamo.Vec2
	}{
		{"up", 0, dynamo.Vec2{}},
		{"right", 90, dynamo.Vec2{X: 0.5}},
		{"down", 180, dynamo.Vec2{X: -0.3, Y: 0.1}},
		{"oblique", 30, dynamo.Vec2{X: 0.5, Y: -0.2}},
		{"negative angle", -135, dynamo.Vec2{X: 2, Y: 2}},
	}

	th := NewThruster(DefaultThrustScale, DefaultTurnRate)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(dynamo.Rect{X: 200, Y: 100, W: 16, H: 32}, 0, Unbounded)
			b.Angle = tt.angle
			b.Velocity = tt.v0
			p0 := b.Rect.Pos()

			th.Fire(b)

			rad := (tt.angle - 90) * math.Pi / 180
			v1 := dynamo.Vec2{
				X: tt.v0.X + math.Cos(rad)/100,
				Y: tt.v0.Y + math.Sin(rad)/100,
			}
			if math.Abs(b.Velocity.X-v1.X) > eps || math.Abs(b.Velocity.Y-v1.Y) > eps {
				t.Errorf("expected velocity %+v, got %+v", v1, b.Velocity)
			}

			b.Update()

			p1 := b.Rect.Pos()
			if math.Abs(p1.X-(p0.X+b.Velocity.X)) > eps || math.Abs(p1.Y-(p0.Y+b.Velocity.Y)) > eps {
				t.Errorf("expected position %+v + %+v, got %+v", p0, b.Velocity, p1)
			}
		})
	}
}

func TestThrusterAccelerationIsOneShot(t *testing.T) {
	th := NewThruster(DefaultThrustScale, DefaultTurnRate)
	b := NewBody(dynamo.Rect{W: 16, H: 32}, 0, Unbounded)

	th.Fire(b)
	first := b.Acceleration
	th.Fire(b)

	if b.Acceleration != first {
		t.Errorf("acceleration should be overwritten, got %+v then %+v", first, b.Acceleration)
	}
	if math.Abs(b.Velocity.Y-2*first.Y) > eps {
		t.Errorf("velocity should accumulate two impulses, got %+v", b.Velocity)
	}
	if math.Abs(first.Len()-DefaultThrustScale) > eps {
		t.Errorf("impulse magnitude should be %f, got %f", DefaultThrustScale, first.Len())
	}
}

func TestThrusterSteer(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		wantRate    float64
	}{
		{"left", true, false, -0.02},
		{"right", false, true, 0.02},
		{"both prefers left", true, true, -0.02},
		{"none", false, false, 0},
	}

	th := NewThruster(DefaultThrustScale, DefaultTurnRate)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(dynamo.Rect{W: 16, H: 32}, 0, Unbounded)
			th.Steer(b, tt.left, tt.right)

			if math.Abs(b.RotationRate-tt.wantRate) > eps {
				t.Errorf("expected rate %f, got %f", tt.wantRate, b.RotationRate)
			}
			if math.Abs(b.Angle-tt.wantRate) > eps {
				t.Errorf("expected angle %f, got %f", tt.wantRate, b.Angle)
			}
		})
	}
}

func TestThrusterSteerKeepsSpinning(t *testing.T) {
	th := NewThruster(DefaultThrustScale, DefaultTurnRate)
	b := NewBody(dynamo.Rect{W: 16, H: 32}, 0, Unbounded)

	for i := 0; i < 3; i++ {
		th.Steer(b, false, true)
	}
	for i := 0; i < 2; i++ {
		th.Steer(b, false, false)
	}

	// rates 0.02, 0.04, 0.06, 0.06, 0.06
	if math.Abs(b.Angle-0.24) > 1e-9 {
		t.Errorf("expected angle 0.24, got %f", b.Angle)
	}
}

package sim

import (
	"math/rand"
	"time"

	"github.com/san-kum/gravtoy/internal/config"
	"github.com/san-kum/gravtoy/internal/dynamo"
	"github.com/san-kum/gravtoy/internal/particles"
	"github.com/san-kum/gravtoy/internal/physics"
	"github.com/san-kum/gravtoy/internal/trail"
)

// Textures are the handles a shell loaded for the world's drawables. Zero
// handles are fine for headless use.
type Textures struct {
	Rocket dynamo.TextureID
	Planet dynamo.TextureID
	Fire   dynamo.TextureID
}

// World owns every body of the toy and advances them one tick at a time.
type World struct {
	Rocket   *physics.Body
	Planet   *physics.Body
	Thruster *physics.Thruster
	Gravity  *physics.Gravity
	Exhaust  *particles.Pool
	Trail    *trail.Buffer

	clock         dynamo.Clock
	burst         int
	exhaustOffset float64
	headingLength float64
	tick          int
	last          dynamo.Controls
}

// NewWorld builds a world from cfg, which must have passed Validate.
func NewWorld(cfg *config.Config, clock dynamo.Clock, rng *rand.Rand, tex Textures) *World {
	now := clock.Now()

	rocket := physics.NewBody(cfg.Rocket.Rect(), now, physics.Unbounded)
	rocket.Velocity = cfg.Rocket.Velocity()
	rocket.Angle = cfg.Rocket.Angle
	rocket.Texture = tex.Rocket

	planet := physics.NewBody(cfg.Planet.Rect(), now, physics.Unbounded)
	planet.Velocity = cfg.Planet.Velocity()
	planet.Angle = cfg.Planet.Angle
	planet.Texture = tex.Planet

	opts := particles.Options{
		Size:        cfg.Exhaust.Size,
		Source:      particles.DefaultSource,
		SpeedMin:    cfg.Exhaust.SpeedMin,
		SpeedMax:    cfg.Exhaust.SpeedMax,
		LifetimeMin: time.Duration(cfg.Exhaust.LifetimeMinMS) * time.Millisecond,
		LifetimeMax: time.Duration(cfg.Exhaust.LifetimeMaxMS) * time.Millisecond,
	}

	return &World{
		Rocket:        rocket,
		Planet:        planet,
		Thruster:      physics.NewThruster(cfg.Physics.ThrustScale, cfg.Physics.TurnRate),
		Gravity:       physics.NewGravity(cfg.Physics.G),
		Exhaust:       particles.New(tex.Fire, opts, rng, clock),
		Trail:         trail.New(cfg.Trail.Capacity),
		clock:         clock,
		burst:         cfg.Exhaust.Burst,
		exhaustOffset: cfg.Exhaust.Offset,
		headingLength: cfg.HeadingLength,
	}
}

// Step advances the world one tick: steer, fire and spawn exhaust, move the
// rocket, apply gravity, age the exhaust, record the trail.
func (w *World) Step(u dynamo.Controls) {
	w.Thruster.Steer(w.Rocket, u.RotateLeft, u.RotateRight)
	if u.Thrust {
		w.Thruster.Fire(w.Rocket)
		w.Exhaust.Spawn(w.burst, w.ExhaustOrigin(), w.Rocket.Angle)
	}

	w.Rocket.Update()
	w.Gravity.Apply(w.Rocket, w.Planet)
	w.Exhaust.Update()
	w.Trail.Append(w.Rocket.Center())

	w.last = u
	w.tick++
}

// ExhaustOrigin is the point behind the rocket where particles spawn.
func (w *World) ExhaustOrigin() dynamo.Vec2 {
	return w.Rocket.Center().Sub(w.Rocket.Heading().Scale(w.exhaustOffset))
}

// HeadingTip is the far end of the heading indicator.
func (w *World) HeadingTip() dynamo.Vec2 {
	return w.Rocket.Center().Add(w.Rocket.Heading().Scale(w.headingLength))
}

func (w *World) Render(r dynamo.Renderer) {
	w.Rocket.Render(r)
	w.Planet.Render(r)
	w.Exhaust.Render(r)
	w.Trail.Render(r)
	r.DrawLine(w.Rocket.Center(), w.HeadingTip())
}

func (w *World) Tick() int { return w.tick }

func (w *World) Sample() Sample {
	return Sample{
		Tick:      w.tick,
		Elapsed:   w.clock.Now(),
		Controls:  w.last,
		Rocket:    *w.Rocket,
		Planet:    *w.Planet,
		Distance:  physics.Distance(w.Rocket, w.Planet),
		Speed:     w.Rocket.Velocity.Len(),
		Particles: w.Exhaust.Len(),
		TrailLen:  w.Trail.Len(),
	}
}

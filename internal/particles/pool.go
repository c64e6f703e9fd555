package particles

import (
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/gravtoy/internal/dynamo"
	"github.com/san-kum/gravtoy/internal/physics"
)

const (
	DefaultSize        = 16
	DefaultSpeedMin    = 2
	DefaultSpeedMax    = 11
	DefaultLifetimeMin = 250 * time.Millisecond
	DefaultLifetimeMax = 1249 * time.Millisecond
)

// DefaultSource is the sub-rectangle of the fire texture drawn per particle.
var DefaultSource = dynamo.Rect{W: 8, H: 8}

// Options shapes spawned particles. Speeds and lifetimes are drawn as
// uniform integers in the closed ranges [SpeedMin, SpeedMax] and
// [LifetimeMin, LifetimeMax] (millisecond resolution).
type Options struct {
	Size        float64
	Source      dynamo.Rect
	SpeedMin    int
	SpeedMax    int
	LifetimeMin time.Duration
	LifetimeMax time.Duration
}

func DefaultOptions() Options {
	return Options{
		Size:        DefaultSize,
		Source:      DefaultSource,
		SpeedMin:    DefaultSpeedMin,
		SpeedMax:    DefaultSpeedMax,
		LifetimeMin: DefaultLifetimeMin,
		LifetimeMax: DefaultLifetimeMax,
	}
}

// Pool owns a growing set of short-lived exhaust particles. All particles
// share one texture handle owned by the caller.
type Pool struct {
	particles []*physics.Body
	texture   dynamo.TextureID
	source    dynamo.Rect
	opts      Options
	rng       *rand.Rand
	clock     dynamo.Clock
}

func New(texture dynamo.TextureID, opts Options, rng *rand.Rand, clock dynamo.Clock) *Pool {
	return &Pool{
		particles: make([]*physics.Body, 0, 64),
		texture:   texture,
		source:    opts.Source,
		opts:      opts,
		rng:       rng,
		clock:     clock,
	}
}

// Spawn appends count particles at origin, sprayed opposite to a body
// facing angle degrees. Each axis gets its own random speed.
func (p *Pool) Spawn(count int, origin dynamo.Vec2, angle float64) {
	dir := dynamo.Radians(angle + 90)
	now := p.clock.Now()
	size := p.opts.Size
	for i := 0; i < count; i++ {
		b := physics.NewBody(dynamo.Rect{X: origin.X, Y: origin.Y, W: size, H: size}, now, p.lifetime())
		b.Texture = p.texture
		b.Source = &p.source
		b.Velocity = dynamo.Vec2{
			X: math.Cos(dir) * p.speed(),
			Y: math.Sin(dir) * p.speed(),
		}
		p.particles = append(p.particles, b)
	}
}

// Update moves every particle one tick, then drops the expired ones in the
// same pass. Survivors keep their relative order.
func (p *Pool) Update() {
	now := p.clock.Now()
	live := p.particles[:0]
	for _, b := range p.particles {
		b.Update()
		if !b.Expired(now) {
			live = append(live, b)
		}
	}
	for i := len(live); i < len(p.particles); i++ {
		p.particles[i] = nil
	}
	p.particles = live
}

func (p *Pool) Render(r dynamo.Renderer) {
	for _, b := range p.particles {
		b.Render(r)
	}
}

func (p *Pool) Len() int { return len(p.particles) }

// Snapshot returns copies of the live particles, oldest first.
func (p *Pool) Snapshot() []physics.Body {
	out := make([]physics.Body, len(p.particles))
	for i, b := range p.particles {
		out[i] = *b
	}
	return out
}

func (p *Pool) Reset() {
	for i := range p.particles {
		p.particles[i] = nil
	}
	p.particles = p.particles[:0]
}

func (p *Pool) speed() float64 {
	return float64(p.opts.SpeedMin + p.rng.Intn(p.opts.SpeedMax-p.opts.SpeedMin+1))
}

func (p *Pool) lifetime() time.Duration {
	lo := p.opts.LifetimeMin.Milliseconds()
	hi := p.opts.LifetimeMax.Milliseconds()
	return time.Duration(lo+p.rng.Int63n(hi-lo+1)) * time.Millisecond
}

package physics

import (
	"fmt"
	"math"
	"time"

	"github.com/san-kum/gravtoy/internal/dynamo"
)

// Unbounded is the lifetime given to bodies that are never culled.
const Unbounded = time.Duration(math.MaxInt64)

// Body is a rigid rectangle moved by explicit Euler steps, one per tick.
type Body struct {
	Rect         dynamo.Rect
	Velocity     dynamo.Vec2
	Acceleration dynamo.Vec2

	Angle        float64 // degrees, 0 = up
	RotationRate float64 // degrees per tick

	SpawnedAt time.Duration
	Lifetime  time.Duration

	Texture dynamo.TextureID
	Source  *dynamo.Rect
}

// NewBody creates a body occupying rect, born at spawnedAt.
// Both dimensions must be positive so that Mass stays a valid divisor.
func NewBody(rect dynamo.Rect, spawnedAt, lifetime time.Duration) *Body {
	if rect.W <= 0 || rect.H <= 0 {
		panic(fmt.Sprintf("physics: body needs positive size, got %vx%v", rect.W, rect.H))
	}
	return &Body{
		Rect:      rect,
		SpawnedAt: spawnedAt,
		Lifetime:  lifetime,
	}
}

// Mass is the proxy mass width*height.
func (b *Body) Mass() float64 {
	return b.Rect.Area()
}

func (b *Body) Center() dynamo.Vec2 {
	return b.Rect.Center()
}

// Pivot is the rotation origin relative to the top-left corner.
func (b *Body) Pivot() dynamo.Vec2 {
	return dynamo.Vec2{X: b.Rect.W / 2, Y: b.Rect.H / 2}
}

func (b *Body) Heading() dynamo.Vec2 {
	return dynamo.Heading(b.Angle)
}

// Update commits one tick of motion: position += velocity.
func (b *Body) Update() {
	b.Rect.X += b.Velocity.X
	b.Rect.Y += b.Velocity.Y
}

func (b *Body) Age(now time.Duration) time.Duration {
	return now - b.SpawnedAt
}

// Expired reports whether the body has outlived its lifetime budget.
func (b *Body) Expired(now time.Duration) bool {
	return b.Age(now) > b.Lifetime
}

func (b *Body) Render(r dynamo.Renderer) {
	r.DrawTexture(b.Texture, b.Source, b.Rect, b.Angle, b.Pivot())
}

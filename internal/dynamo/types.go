package dynamo

import (
	"math"
	"time"
)

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{v.X * factor, v.Y * factor}
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Angle returns the polar angle of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// FromAngle builds a vector of the given magnitude along rad.
func FromAngle(rad, magnitude float64) Vec2 {
	return Vec2{magnitude * math.Cos(rad), magnitude * math.Sin(rad)}
}

func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Heading returns the unit forward vector of a body rotated deg degrees.
// Zero degrees points up the screen (negative Y).
func Heading(deg float64) Vec2 {
	return FromAngle(Radians(deg-90), 1)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Pos() Vec2 { return Vec2{r.X, r.Y} }

func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

func (r Rect) Area() float64 { return r.W * r.H }

// Controls is the logical input state read once per tick.
type Controls struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
}

// TextureID is a non-owning handle to a drawable loaded by the shell.
// The zero value means no texture.
type TextureID uint32

const NoTexture TextureID = 0

// Clock reports elapsed time since the simulation started.
type Clock interface {
	Now() time.Duration
}

type Controller interface {
	Compute(tick int) Controls
}

// Renderer is the drawing surface a presentation shell hands to the core.
type Renderer interface {
	// DrawTexture draws tex (or the src sub-rectangle of it when src is
	// non-nil) into dst, rotated angleDeg degrees about pivot, which is
	// relative to dst's top-left corner.
	DrawTexture(tex TextureID, src *Rect, dst Rect, angleDeg float64, pivot Vec2)
	DrawLine(a, b Vec2)
}

package physics

import (
	"math"
	"testing"
	"time"

	"github.com/san-kum/gravtoy/internal/dynamo"
)

func TestBodyMass(t *testing.T) {
	tests := []struct {
		name string
		rect dynamo.Rect
		want float64
	}{
		{"rocket", dynamo.Rect{X: 200, Y: 100, W: 16, H: 32}, 512},
		{"planet", dynamo.Rect{X: 250, Y: 250, W: 100, H: 100}, 10000},
		{"particle", dynamo.Rect{W: 16, H: 16}, 256},
		{"sliver", dynamo.Rect{W: 0.5, H: 0.25}, 0.125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(tt.rect, 0, Unbounded)
			if b.Mass() != tt.want {
				t.Errorf("expected mass %f, got %f", tt.want, b.Mass())
			}
			if b.Mass() <= 0 {
				t.Error("mass should be positive")
			}
		})
	}
}

func TestNewBodyRejectsDegenerateSize(t *testing.T) {
	tests := []struct {
		name string
		rect dynamo.Rect
	}{
		{"zero width", dynamo.Rect{W: 0, H: 10}},
		{"zero height", dynamo.Rect{W: 10, H: 0}},
		{"negative", dynamo.Rect{W: -4, H: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic for degenerate body")
				}
			}()
			NewBody(tt.rect, 0, Unbounded)
		})
	}
}

func TestBodyUpdate(t *testing.T) {
	b := NewBody(dynamo.Rect{X: 10, Y: 20, W: 4, H: 4}, 0, Unbounded)
	b.Velocity = dynamo.Vec2{X: 1.5, Y: -2}

	b.Update()
	b.Update()

	if b.Rect.X != 13 || b.Rect.Y != 16 {
		t.Errorf("expected position (13, 16), got (%f, %f)", b.Rect.X, b.Rect.Y)
	}
	if b.Rect.W != 4 || b.Rect.H != 4 {
		t.Error("update must not resize the body")
	}
}

func TestBodyCenterAndPivot(t *testing.T) {
	b := NewBody(dynamo.Rect{X: 200, Y: 100, W: 16, H: 32}, 0, Unbounded)

	c := b.Center()
	if c.X != 208 || c.Y != 116 {
		t.Errorf("expected center (208, 116), got (%f, %f)", c.X, c.Y)
	}

	p := b.Pivot()
	if p.X != 8 || p.Y != 16 {
		t.Errorf("expected pivot (8, 16), got (%f, %f)", p.X, p.Y)
	}
}

func TestBodyExpired(t *testing.T) {
	b := NewBody(dynamo.Rect{W: 16, H: 16}, 100*time.Millisecond, 250*time.Millisecond)

	tests := []struct {
		now  time.Duration
		want bool
	}{
		{100 * time.Millisecond, false},
		{349 * time.Millisecond, false},
		{350 * time.Millisecond, false},
		{351 * time.Millisecond, true},
		{2 * time.Second, true},
	}

	for _, tt := range tests {
		if got := b.Expired(tt.now); got != tt.want {
			t.Errorf("now=%v: expected expired=%v, got %v", tt.now, tt.want, got)
		}
	}
}

func TestUnboundedNeverExpires(t *testing.T) {
	b := NewBody(dynamo.Rect{W: 1, H: 1}, 0, Unbounded)
	if b.Expired(time.Duration(math.MaxInt64)) {
		t.Error("unbounded body should not expire")
	}
}

type recordedDraw struct {
	tex   dynamo.TextureID
	src   *dynamo.Rect
	dst   dynamo.Rect
	angle float64
	pivot dynamo.Vec2
}

type recorder struct {
	draws []recordedDraw
	lines int
}

func (r *recorder) DrawTexture(tex dynamo.TextureID, src *dynamo.Rect, dst dynamo.Rect, angle float64, pivot dynamo.Vec2) {
	r.draws = append(r.draws, recordedDraw{tex, src, dst, angle, pivot})
}

func (r *recorder) DrawLine(a, b dynamo.Vec2) { r.lines++ }

func TestBodyRender(t *testing.T) {
	src := &dynamo.Rect{W: 8, H: 8}
	b := NewBody(dynamo.Rect{X: 1, Y: 2, W: 16, H: 32}, 0, Unbounded)
	b.Texture = 7
	b.Source = src
	b.Angle = 45

	r := &recorder{}
	b.Render(r)

	if len(r.draws) != 1 {
		t.Fatalf("expected 1 draw, got %d", len(r.draws))
	}
	d := r.draws[0]
	if d.tex != 7 || d.src != src || d.dst != b.Rect || d.angle != 45 {
		t.Errorf("unexpected draw call %+v", d)
	}
	if d.pivot != (dynamo.Vec2{X: 8, Y: 16}) {
		t.Errorf("expected pivot at body center, got %+v", d.pivot)
	}
}

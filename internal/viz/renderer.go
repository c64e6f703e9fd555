package viz

import (
	"math"

	"github.com/san-kum/gravtoy/internal/dynamo"
)

// canvasRenderer draws world coordinates onto a braille canvas. Textured
// bodies become rotated outlines; bodies drawn from a sub-rectangle
// (exhaust particles) become single dots.
type canvasRenderer struct {
	canvas *Canvas
	sx, sy float64
}

func newCanvasRenderer(c *Canvas, worldW, worldH float64) *canvasRenderer {
	return &canvasRenderer{
		canvas: c,
		sx:     float64(c.Width*2) / worldW,
		sy:     float64(c.Height*4) / worldH,
	}
}

func (r *canvasRenderer) point(v dynamo.Vec2) (int, int) {
	return int(math.Floor(v.X * r.sx)), int(math.Floor(v.Y * r.sy))
}

func (r *canvasRenderer) DrawLine(a, b dynamo.Vec2) {
	x0, y0 := r.point(a)
	x1, y1 := r.point(b)
	r.canvas.DrawLine(x0, y0, x1, y1)
}

func (r *canvasRenderer) DrawTexture(tex dynamo.TextureID, src *dynamo.Rect, dst dynamo.Rect, angleDeg float64, pivot dynamo.Vec2) {
	if src != nil {
		r.canvas.Set(r.point(dst.Center()))
		return
	}

	corners := rotatedCorners(dst, angleDeg, pivot)
	for i := range corners {
		r.DrawLine(corners[i], corners[(i+1)%len(corners)])
	}
}

// rotatedCorners returns dst's corners turned angleDeg clockwise on screen
// about dst's top-left plus pivot.
func rotatedCorners(dst dynamo.Rect, angleDeg float64, pivot dynamo.Vec2) [4]dynamo.Vec2 {
	origin := dst.Pos().Add(pivot)
	sin, cos := dynamo.FastSinCosDeg(angleDeg)

	local := [4]dynamo.Vec2{
		{X: 0, Y: 0},
		{X: dst.W, Y: 0},
		{X: dst.W, Y: dst.H},
		{X: 0, Y: dst.H},
	}
	var out [4]dynamo.Vec2
	for i, p := range local {
		d := p.Sub(pivot)
		out[i] = origin.Add(dynamo.Vec2{
			X: d.X*cos - d.Y*sin,
			Y: d.X*sin + d.Y*cos,
		})
	}
	return out
}

package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/gravtoy/internal/dynamo"
)

// renderer draws core bodies through raylib.
type renderer struct {
	assets *Assets
	line   rl.Color
}

func newRenderer(assets *Assets) *renderer {
	return &renderer{assets: assets, line: ColLine}
}

func (r *renderer) DrawTexture(id dynamo.TextureID, src *dynamo.Rect, dst dynamo.Rect, angleDeg float64, pivot dynamo.Vec2) {
	tex, ok := r.assets.Texture(id)
	if !ok {
		return
	}

	source := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	if src != nil {
		source = toRectangle(*src)
	}

	// raylib places the origin at dest.X/Y and rotates about it, so shift
	// the destination by the pivot to keep dst as the top-left corner.
	dest := toRectangle(dst)
	dest.X += float32(pivot.X)
	dest.Y += float32(pivot.Y)

	rl.DrawTexturePro(tex, source, dest, toVector(pivot), float32(angleDeg), rl.White)
}

func (r *renderer) DrawLine(a, b dynamo.Vec2) {
	rl.DrawLineV(toVector(a), toVector(b), r.line)
}

func toRectangle(r dynamo.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}

func toVector(v dynamo.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

package gui

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/gravtoy/internal/dynamo"
)

// Assets owns every texture the window loaded. Bodies only hold the
// TextureID handles it hands out.
type Assets struct {
	textures map[dynamo.TextureID]rl.Texture2D
	next     dynamo.TextureID
	load     func(path string) rl.Texture2D
	unload   func(tex rl.Texture2D)
}

func NewAssets() *Assets {
	return &Assets{
		textures: make(map[dynamo.TextureID]rl.Texture2D),
		next:     1,
		load:     rl.LoadTexture,
		unload:   rl.UnloadTexture,
	}
}

// Load reads an image file into a texture. The window must be open.
func (a *Assets) Load(path string) (dynamo.TextureID, error) {
	if _, err := os.Stat(path); err != nil {
		return dynamo.NoTexture, fmt.Errorf("%w: %s: %v", dynamo.ErrAssetLoad, path, err)
	}
	tex := a.load(path)
	if tex.ID == 0 {
		return dynamo.NoTexture, fmt.Errorf("%w: %s: not a loadable image", dynamo.ErrAssetLoad, path)
	}

	id := a.next
	a.next++
	a.textures[id] = tex
	return id, nil
}

func (a *Assets) Texture(id dynamo.TextureID) (rl.Texture2D, bool) {
	tex, ok := a.textures[id]
	return tex, ok
}

func (a *Assets) Len() int { return len(a.textures) }

// Unload frees every texture. Handles become invalid.
func (a *Assets) Unload() {
	for id, tex := range a.textures {
		a.unload(tex)
		delete(a.textures, id)
	}
}

package gui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/gravtoy/internal/dynamo"
)

func fakeAssets(loaded *[]string, unloaded *[]uint32) *Assets {
	a := NewAssets()
	id := uint32(100)
	a.load = func(path string) rl.Texture2D {
		*loaded = append(*loaded, path)
		if filepath.Ext(path) != ".png" {
			return rl.Texture2D{}
		}
		id++
		return rl.Texture2D{ID: id, Width: 16, Height: 32}
	}
	a.unload = func(tex rl.Texture2D) {
		*unloaded = append(*unloaded, tex.ID)
	}
	return a
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("img"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAssetsLoad(t *testing.T) {
	var loaded []string
	var unloaded []uint32
	a := fakeAssets(&loaded, &unloaded)
	dir := t.TempDir()

	rocket, err := a.Load(touch(t, dir, "rocket.png"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	fire, err := a.Load(touch(t, dir, "fire.png"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if rocket == dynamo.NoTexture || rocket == fire {
		t.Errorf("expected distinct non-zero handles, got %d and %d", rocket, fire)
	}
	if tex, ok := a.Texture(rocket); !ok || tex.Height != 32 {
		t.Error("texture lookup failed")
	}

	a.Unload()
	if a.Len() != 0 || len(unloaded) != 2 {
		t.Errorf("expected 2 unloads, got %d (len %d)", len(unloaded), a.Len())
	}
}

func TestAssetsLoadErrors(t *testing.T) {
	var loaded []string
	var unloaded []uint32
	a := fakeAssets(&loaded, &unloaded)
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.png")},
		{"undecodable", touch(t, dir, "notes.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := a.Load(tt.path)
			if !errors.Is(err, dynamo.ErrAssetLoad) {
				t.Errorf("expected ErrAssetLoad, got %v", err)
			}
			if id != dynamo.NoTexture {
				t.Errorf("expected NoTexture, got %d", id)
			}
		})
	}

	if len(loaded) != 1 {
		t.Errorf("missing files should not reach the loader, got %v", loaded)
	}
}

func TestConversions(t *testing.T) {
	r := toRectangle(dynamo.Rect{X: 1, Y: 2, W: 3, H: 4})
	if r.X != 1 || r.Y != 2 || r.Width != 3 || r.Height != 4 {
		t.Errorf("unexpected rectangle %+v", r)
	}
	v := toVector(dynamo.Vec2{X: 5, Y: 6})
	if v.X != 5 || v.Y != 6 {
		t.Errorf("unexpected vector %+v", v)
	}
}

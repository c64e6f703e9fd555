package gui

import (
	"fmt"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/gravtoy/internal/config"
	"github.com/san-kum/gravtoy/internal/control"
	"github.com/san-kum/gravtoy/internal/logging"
	"github.com/san-kum/gravtoy/internal/sim"
)

var (
	ColBg      = rl.NewColor(0, 0, 0, 255)
	ColLine    = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
)

const telemetryLen = 300

// keyBindings maps window keys to logical controls.
var keyBindings = map[int32]control.Key{
	rl.KeyA:     control.KeyRotateLeft,
	rl.KeyD:     control.KeyRotateRight,
	rl.KeySpace: control.KeyThrust,
}

type App struct {
	cfg      *config.Config
	log      *logging.Logger
	assets   *Assets
	render   *renderer
	textures sim.Textures
	seed     int64

	World     *sim.World
	Input     *control.Manual
	ShowHUD   bool
	Telemetry []float64
}

func initWindow(w config.WindowConfig) {
	if w.VSync {
		rl.SetConfigFlags(rl.FlagVsyncHint)
	}
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	if w.TargetFPS > 0 {
		rl.SetTargetFPS(int32(w.TargetFPS))
	}
	rl.SetExitKey(rl.KeyEscape)
}

// loadTextures loads the rocket, planet and fire images. Any failure aborts
// startup.
func loadTextures(assets *Assets, paths config.AssetsConfig) (sim.Textures, error) {
	var tex sim.Textures
	var err error
	if tex.Rocket, err = assets.Load(paths.Rocket); err != nil {
		return tex, err
	}
	if tex.Planet, err = assets.Load(paths.Planet); err != nil {
		return tex, err
	}
	if tex.Fire, err = assets.Load(paths.Fire); err != nil {
		return tex, err
	}
	return tex, nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, log *logging.Logger) error {
	initWindow(cfg.Window)
	defer rl.CloseWindow()

	assets := NewAssets()
	defer assets.Unload()

	tex, err := loadTextures(assets, cfg.Assets)
	if err != nil {
		return err
	}
	log.Info("textures loaded", "count", assets.Len())

	app := NewApp(cfg, log, assets, tex)
	app.RunLoop()

	log.Info("window closed", "ticks", app.World.Tick())
	return nil
}

func NewApp(cfg *config.Config, log *logging.Logger, assets *Assets, tex sim.Textures) *App {
	app := &App{
		cfg:      cfg,
		log:      log,
		assets:   assets,
		render:   newRenderer(assets),
		textures: tex,
		seed:     cfg.Sim.Seed,
		Input:    control.NewManual(),
		ShowHUD:  true,
	}
	app.reset()
	return app
}

func (a *App) reset() {
	a.World = sim.NewWorld(a.cfg, sim.NewWallClock(), rand.New(rand.NewSource(a.seed)), a.textures)
	a.Telemetry = make([]float64, 0, telemetryLen)
	a.Input.ReleaseAll()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	for key, k := range keyBindings {
		if rl.IsKeyPressed(key) {
			a.Input.Press(k)
		}
		if rl.IsKeyReleased(key) {
			a.Input.Release(k)
		}
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHUD = !a.ShowHUD
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.log.Debug("world reset", "tick", a.World.Tick())
		a.reset()
		return
	}

	a.World.Step(a.Input.Compute(a.World.Tick()))

	s := a.World.Sample()
	if len(a.Telemetry) == telemetryLen {
		copy(a.Telemetry, a.Telemetry[1:])
		a.Telemetry = a.Telemetry[:telemetryLen-1]
	}
	a.Telemetry = append(a.Telemetry, s.Distance)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.World.Render(a.render)
	if a.ShowHUD {
		a.DrawHUD()
	}

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	s := a.World.Sample()
	h := int32(a.cfg.Window.Height)

	a.drawText(fmt.Sprintf("tick %d", s.Tick), 10, 10, 14, ColText)
	a.drawText(fmt.Sprintf("dist %.1f  speed %.2f", s.Distance, s.Speed), 10, 28, 14, ColText)
	a.drawText(fmt.Sprintf("angle %.1f  exhaust %d", s.Rocket.Angle, s.Particles), 10, 46, 14, ColText)

	a.DrawTelemetry()

	a.drawText("[A/D] ROTATE  [SPACE] THRUST  [R] RESET  [H] HUD", 10, h-20, 10, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), int32(a.cfg.Window.Width)-60, 10, 10, ColTextDim)
}

func (a *App) drawText(text string, x, y, size int32, color rl.Color) {
	rl.DrawText(text, x, y, size, color)
}

// DrawTelemetry plots recent rocket distance as a strip in the bottom-left.
func (a *App) DrawTelemetry() {
	if len(a.Telemetry) < 2 {
		return
	}

	rectX, rectY := float32(10), float32(a.cfg.Window.Height-90)
	width, height := float32(200), float32(50)

	minVal, maxVal := a.Telemetry[0], a.Telemetry[0]
	for _, v := range a.Telemetry {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := rectX + float32(i)/float32(telemetryLen)*width
		norm := (val - minVal) / (maxVal - minVal)
		py := rectY + height - float32(norm)*height
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColAccent)
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravtoy/internal/dynamo"
)

const (
	DefaultWidth         = 600
	DefaultHeight        = 600
	DefaultTargetFPS     = 60
	DefaultG             = 9.806
	DefaultThrustScale   = 1.0 / 100
	DefaultTurnRate      = 0.02
	DefaultBurst         = 10
	DefaultExhaustOffset = 20.0
	DefaultTrailCapacity = 100
	DefaultHeadingLength = 50.0
	DefaultTicks         = 2000
	DefaultTickRate      = 60
)

type Config struct {
	Window        WindowConfig  `yaml:"window"`
	Assets        AssetsConfig  `yaml:"assets"`
	Physics       PhysicsConfig `yaml:"physics"`
	Rocket        BodyConfig    `yaml:"rocket"`
	Planet        BodyConfig    `yaml:"planet"`
	Exhaust       ExhaustConfig `yaml:"exhaust"`
	Trail         TrailConfig   `yaml:"trail"`
	HeadingLength float64       `yaml:"heading_length"`
	Sim           SimConfig     `yaml:"sim"`
	Burns         []Burn        `yaml:"burns,omitempty"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
	VSync     bool   `yaml:"vsync"`
}

// AssetsConfig holds texture file paths, resolved relative to the working
// directory.
type AssetsConfig struct {
	Rocket string `yaml:"rocket"`
	Planet string `yaml:"planet"`
	Fire   string `yaml:"fire"`
}

type PhysicsConfig struct {
	G           float64 `yaml:"g"`
	ThrustScale float64 `yaml:"thrust_scale"`
	TurnRate    float64 `yaml:"turn_rate"`
}

type BodyConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	VX    float64 `yaml:"vx"`
	VY    float64 `yaml:"vy"`
	Angle float64 `yaml:"angle"`
}

func (b BodyConfig) Rect() dynamo.Rect {
	return dynamo.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

func (b BodyConfig) Velocity() dynamo.Vec2 {
	return dynamo.Vec2{X: b.VX, Y: b.VY}
}

type ExhaustConfig struct {
	Burst         int     `yaml:"burst"`
	Offset        float64 `yaml:"offset"`
	Size          float64 `yaml:"size"`
	SpeedMin      int     `yaml:"speed_min"`
	SpeedMax      int     `yaml:"speed_max"`
	LifetimeMinMS int     `yaml:"lifetime_min_ms"`
	LifetimeMaxMS int     `yaml:"lifetime_max_ms"`
}

type TrailConfig struct {
	Capacity int `yaml:"capacity"`
}

// SimConfig drives headless runs. TickRate maps ticks to simulated time for
// particle expiry.
type SimConfig struct {
	Ticks    int   `yaml:"ticks"`
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"`
}

// Burn holds a set of controls over the half-open tick range [Start, End).
type Burn struct {
	Start  int  `yaml:"start"`
	End    int  `yaml:"end"`
	Left   bool `yaml:"left,omitempty"`
	Right  bool `yaml:"right,omitempty"`
	Thrust bool `yaml:"thrust,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			Title:     "gravtoy",
			TargetFPS: DefaultTargetFPS,
			VSync:     true,
		},
		Assets: AssetsConfig{
			Rocket: "assets/rocket.png",
			Planet: "assets/planet.png",
			Fire:   "assets/fire.png",
		},
		Physics: PhysicsConfig{
			G:           DefaultG,
			ThrustScale: DefaultThrustScale,
			TurnRate:    DefaultTurnRate,
		},
		Rocket: BodyConfig{X: 200, Y: 100, W: 16, H: 32, VX: 0.5},
		Planet: BodyConfig{X: 250, Y: 250, W: 100, H: 100},
		Exhaust: ExhaustConfig{
			Burst:         DefaultBurst,
			Offset:        DefaultExhaustOffset,
			Size:          16,
			SpeedMin:      2,
			SpeedMax:      11,
			LifetimeMinMS: 250,
			LifetimeMaxMS: 1249,
		},
		Trail:         TrailConfig{Capacity: DefaultTrailCapacity},
		HeadingLength: DefaultHeadingLength,
		Sim: SimConfig{
			Ticks:    DefaultTicks,
			TickRate: DefaultTickRate,
		},
	}
}

// Load reads a YAML file over the defaults, so a file only needs the keys it
// changes.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over a copy of base.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func (c *Config) Clone() *Config {
	cp := *c
	if c.Burns != nil {
		cp.Burns = make([]Burn, len(c.Burns))
		copy(cp.Burns, c.Burns)
	}
	return &cp
}

// Validate reports the first out-of-range field as a *dynamo.ParamError.
func (c *Config) Validate() error {
	checks := []struct {
		ok    bool
		param string
		value any
		want  string
	}{
		{c.Window.Width > 0, "window.width", c.Window.Width, "> 0"},
		{c.Window.Height > 0, "window.height", c.Window.Height, "> 0"},
		{c.Window.TargetFPS >= 0, "window.target_fps", c.Window.TargetFPS, ">= 0"},
		{c.Physics.G > 0, "physics.g", c.Physics.G, "> 0"},
		{c.Physics.ThrustScale >= 0, "physics.thrust_scale", c.Physics.ThrustScale, ">= 0"},
		{c.Physics.TurnRate >= 0, "physics.turn_rate", c.Physics.TurnRate, ">= 0"},
		{c.Rocket.W > 0, "rocket.w", c.Rocket.W, "> 0"},
		{c.Rocket.H > 0, "rocket.h", c.Rocket.H, "> 0"},
		{c.Planet.W > 0, "planet.w", c.Planet.W, "> 0"},
		{c.Planet.H > 0, "planet.h", c.Planet.H, "> 0"},
		{c.Exhaust.Burst >= 0, "exhaust.burst", c.Exhaust.Burst, ">= 0"},
		{c.Exhaust.Size > 0, "exhaust.size", c.Exhaust.Size, "> 0"},
		{c.Exhaust.SpeedMin >= 0, "exhaust.speed_min", c.Exhaust.SpeedMin, ">= 0"},
		{c.Exhaust.SpeedMax >= c.Exhaust.SpeedMin, "exhaust.speed_max", c.Exhaust.SpeedMax, ">= exhaust.speed_min"},
		{c.Exhaust.LifetimeMinMS > 0, "exhaust.lifetime_min_ms", c.Exhaust.LifetimeMinMS, "> 0"},
		{c.Exhaust.LifetimeMaxMS >= c.Exhaust.LifetimeMinMS, "exhaust.lifetime_max_ms", c.Exhaust.LifetimeMaxMS, ">= exhaust.lifetime_min_ms"},
		{c.Trail.Capacity > 0, "trail.capacity", c.Trail.Capacity, "> 0"},
		{c.HeadingLength >= 0, "heading_length", c.HeadingLength, ">= 0"},
		{c.Sim.Ticks > 0, "sim.ticks", c.Sim.Ticks, "> 0"},
		{c.Sim.TickRate > 0, "sim.tick_rate", c.Sim.TickRate, "> 0"},
		{c.Rocket.Rect().Center() != c.Planet.Rect().Center(), "rocket", c.Rocket.Rect().Center(), "center distinct from planet"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return &dynamo.ParamError{Param: chk.param, Value: chk.value, Want: chk.want}
		}
	}

	for i, b := range c.Burns {
		if b.Start < 0 || b.End <= b.Start {
			return &dynamo.ParamError{
				Param: fmt.Sprintf("burns[%d]", i),
				Value: fmt.Sprintf("[%d, %d)", b.Start, b.End),
				Want:  "0 <= start < end",
			}
		}
	}
	return nil
}

package config

import "sort"

// Orbit geometry shared by the presets: the rocket sits 200 units above the
// planet center. Rocket and gravity both move the body each tick, so the
// circular speed there is sqrt(a*r/2), about 0.71.
const (
	orbitX = 292
	orbitY = 84
)

var Presets = map[string]*Config{
	"orbit": preset(func(c *Config) {
		c.Rocket.X, c.Rocket.Y = orbitX, orbitY
		c.Rocket.VX = 0.71
		c.Sim.Ticks = 3000
	}),
	"escape": preset(func(c *Config) {
		c.Rocket.X, c.Rocket.Y = orbitX, orbitY
		c.Rocket.VX = 0.71
		c.Rocket.Angle = 90
		c.Sim.Ticks = 2000
		c.Burns = []Burn{{Start: 0, End: 60, Thrust: true}}
	}),
	"plunge": preset(func(c *Config) {
		c.Rocket.X, c.Rocket.Y = orbitX, orbitY
		c.Rocket.VX = 0.2
		c.Sim.Ticks = 1500
	}),
	"spin": preset(func(c *Config) {
		c.Physics.TurnRate = 0.05
		c.Sim.Ticks = 1200
		c.Burns = []Burn{
			{Start: 0, End: 20, Right: true},
			{Start: 100, End: 160, Thrust: true},
			{Start: 400, End: 440, Left: true, Thrust: true},
		}
	}),
}

var Descriptions = map[string]string{
	"orbit":  "near-circular orbit, no burns",
	"escape": "orbit start with a prograde burn past escape speed",
	"plunge": "slow start that falls into a tight periapsis pass",
	"spin":   "default start with scripted spins and burns",
}

func preset(apply func(*Config)) *Config {
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

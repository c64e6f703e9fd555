package config

import (
	"fmt"
	"sort"
)

// params maps the dotted names accepted by sweeps and searches to the
// numeric fields they set.
var params = map[string]func(*Config) *float64{
	"rocket.x":             func(c *Config) *float64 { return &c.Rocket.X },
	"rocket.y":             func(c *Config) *float64 { return &c.Rocket.Y },
	"rocket.vx":            func(c *Config) *float64 { return &c.Rocket.VX },
	"rocket.vy":            func(c *Config) *float64 { return &c.Rocket.VY },
	"rocket.angle":         func(c *Config) *float64 { return &c.Rocket.Angle },
	"planet.w":             func(c *Config) *float64 { return &c.Planet.W },
	"planet.h":             func(c *Config) *float64 { return &c.Planet.H },
	"physics.g":            func(c *Config) *float64 { return &c.Physics.G },
	"physics.thrust_scale": func(c *Config) *float64 { return &c.Physics.ThrustScale },
	"physics.turn_rate":    func(c *Config) *float64 { return &c.Physics.TurnRate },
}

func (c *Config) SetParam(name string, v float64) error {
	field, ok := params[name]
	if !ok {
		return fmt.Errorf("unknown parameter: %s", name)
	}
	*field(c) = v
	return nil
}

func (c *Config) Param(name string) (float64, error) {
	field, ok := params[name]
	if !ok {
		return 0, fmt.Errorf("unknown parameter: %s", name)
	}
	return *field(c), nil
}

func ParamNames() []string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

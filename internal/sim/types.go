package sim

import (
	"fmt"
	"time"

	"github.com/san-kum/gravtoy/internal/dynamo"
	"github.com/san-kum/gravtoy/internal/physics"
)

// Sample is the observable state of the world after a tick.
type Sample struct {
	Tick      int
	Elapsed   time.Duration
	Controls  dynamo.Controls
	Rocket    physics.Body
	Planet    physics.Body
	Distance  float64
	Speed     float64
	Particles int
	TrailLen  int
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s Sample)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(s Sample)

func (f ObserverFunc) OnStep(s Sample) { f(s) }

// RunConfig sizes a headless run. TickDuration is how far the clock moves per
// tick.
type RunConfig struct {
	Ticks        int
	TickDuration time.Duration
}

func DefaultRunConfig() RunConfig {
	return RunConfig{
		Ticks:        2000,
		TickDuration: time.Second / 60,
	}
}

// TickDuration converts a tick rate in Hz to a per-tick duration.
func TickDuration(rate int) time.Duration {
	return time.Second / time.Duration(rate)
}

type Result struct {
	Positions  []dynamo.Vec2
	Distances  []float64
	Speeds     []float64
	Particles  []int
	Metrics    map[string]float64
	Final      Sample
	TicksTaken int
}

type SimError struct {
	Tick    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("tick %d: %s", e.Tick, e.Message)
}

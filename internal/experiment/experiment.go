package experiment

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/gravtoy/internal/config"
	"github.com/san-kum/gravtoy/internal/control"
	"github.com/san-kum/gravtoy/internal/logging"
	"github.com/san-kum/gravtoy/internal/sim"
)

// Experiment is one headless run built from a validated config.
type Experiment struct {
	cfg       *config.Config
	clock     *sim.ManualClock
	simulator *sim.Simulator
}

// New wires a world, controller and metric set for cfg. The config is
// copied, so the caller may keep mutating its own.
func New(cfg *config.Config, registry *Registry, controller string) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()

	ctrl, err := registry.GetController(controller, cfg)
	if err != nil {
		return nil, err
	}

	clock := sim.NewManualClock()
	world := sim.NewWorld(cfg, clock, rand.New(rand.NewSource(cfg.Sim.Seed)), sim.Textures{})
	s := sim.New(world, clock, ctrl)
	for _, m := range registry.DefaultMetrics(cfg) {
		s.AddMetric(m)
	}

	return &Experiment{cfg: cfg, clock: clock, simulator: s}, nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run(ctx, sim.RunConfig{
		Ticks:        e.cfg.Sim.Ticks,
		TickDuration: sim.TickDuration(e.cfg.Sim.TickRate),
	})
}

func (e *Experiment) Config() *config.Config { return e.cfg }

// Simulator returns the underlying simulator for adding observers.
func (e *Experiment) Simulator() *sim.Simulator {
	return e.simulator
}

// ScheduledBurnTicks is how many ticks the config's burn table asks for
// thrust within the run length, whichever controller drives the run.
func (e *Experiment) ScheduledBurnTicks() int {
	return control.NewSchedule(e.cfg.Burns).BurnTicks(e.cfg.Sim.Ticks)
}

// ProgressObserver logs the rocket's state every n ticks.
func ProgressObserver(log *logging.Logger, every int) sim.Observer {
	return sim.ObserverFunc(func(s sim.Sample) {
		if every <= 0 || s.Tick%every != 0 {
			return
		}
		log.Info("progress", "tick", s.Tick, "distance", s.Distance, "speed", s.Speed, "exhaust", s.Particles)
	})
}

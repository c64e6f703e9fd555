package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/gravtoy/internal/dynamo"
)

// Simulator drives a World headlessly, stepping its clock by a fixed tick
// duration and feeding samples to metrics and observers.
type Simulator struct {
	world      *World
	clock      *ManualClock
	controller dynamo.Controller
	metrics    []Metric
	observers  []Observer
}

// New expects world to have been built on clock.
func New(world *World, clock *ManualClock, controller dynamo.Controller) *Simulator {
	return &Simulator{
		world:      world,
		clock:      clock,
		controller: controller,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) World() *World { return s.world }

func (s *Simulator) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Positions: make([]dynamo.Vec2, 0, cfg.Ticks),
		Distances: make([]float64, 0, cfg.Ticks),
		Speeds:    make([]float64, 0, cfg.Ticks),
		Particles: make([]int, 0, cfg.Ticks),
		Metrics:   make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			result.Final = s.world.Sample()
			return result, ctx.Err()
		default:
		}

		s.step(cfg)
		smp := s.world.Sample()

		if !smp.Rocket.Rect.Pos().IsValid() || !smp.Rocket.Velocity.IsValid() {
			result.Final = smp
			return result, SimError{Tick: smp.Tick, Message: "invalid rocket state (NaN/Inf)"}
		}

		for _, m := range s.metrics {
			m.Observe(smp)
		}
		for _, obs := range s.observers {
			obs.OnStep(smp)
		}

		result.Positions = append(result.Positions, smp.Rocket.Center())
		result.Distances = append(result.Distances, smp.Distance)
		result.Speeds = append(result.Speeds, smp.Speed)
		result.Particles = append(result.Particles, smp.Particles)
		result.TicksTaken++
	}

	result.Final = s.world.Sample()
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback steps until the callback returns false, the context ends,
// or cfg.Ticks ticks have run. Zero Ticks means no limit.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg RunConfig, callback func(Sample) bool) error {
	if cfg.TickDuration <= 0 {
		return fmt.Errorf("%w: tick duration must be positive, got %s", dynamo.ErrInvalidRun, cfg.TickDuration)
	}

	for i := 0; cfg.Ticks == 0 || i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.step(cfg)
		if !callback(s.world.Sample()) {
			return nil
		}
	}
	return nil
}

func (s *Simulator) step(cfg RunConfig) {
	u := s.controller.Compute(s.world.Tick())
	s.clock.Advance(cfg.TickDuration)
	s.world.Step(u)
}

func (s *Simulator) validateConfig(cfg RunConfig) error {
	if cfg.Ticks <= 0 {
		return fmt.Errorf("%w: ticks must be positive, got %d", dynamo.ErrInvalidRun, cfg.Ticks)
	}
	if cfg.TickDuration <= 0 {
		return fmt.Errorf("%w: tick duration must be positive, got %s", dynamo.ErrInvalidRun, cfg.TickDuration)
	}
	return nil
}

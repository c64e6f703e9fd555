package automation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravtoy/internal/config"
	"github.com/san-kum/gravtoy/internal/dynamo"
	"github.com/san-kum/gravtoy/internal/experiment"
	"github.com/san-kum/gravtoy/internal/logging"
	"github.com/san-kum/gravtoy/internal/metrics"
	"github.com/san-kum/gravtoy/internal/sim"
)

const defaultController = "schedule"

// Scenario is a scripted sequence of headless runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep describes one run as changes to a base config. Preset, when
// set, replaces the base before Params and Burns apply.
type ScenarioStep struct {
	Name       string             `yaml:"name"`
	Preset     string             `yaml:"preset"`
	Controller string             `yaml:"controller"`
	Ticks      int                `yaml:"ticks"`
	Seed       int64              `yaml:"seed"`
	Params     map[string]float64 `yaml:"params"`
	Burns      []config.Burn      `yaml:"burns"`
}

type StepResult struct {
	Name   string
	Result *sim.Result
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}

	return &scenario, nil
}

// Config resolves the step against base without modifying it.
func (s ScenarioStep) Config(base *config.Config) (*config.Config, error) {
	cfg := base.Clone()
	if s.Preset != "" {
		cfg = config.GetPreset(s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
		cfg.Sim.Seed = base.Sim.Seed
	}
	for name, v := range s.Params {
		if err := cfg.SetParam(name, v); err != nil {
			return nil, err
		}
	}
	if s.Burns != nil {
		cfg.Burns = append([]config.Burn(nil), s.Burns...)
	}
	if s.Ticks > 0 {
		cfg.Sim.Ticks = s.Ticks
	}
	if s.Seed != 0 {
		cfg.Sim.Seed = s.Seed
	}
	return cfg, nil
}

func controllerOr(name string) string {
	if name == "" {
		return defaultController
	}
	return name
}

// RunScenario executes the steps in order and stops at the first failure.
func RunScenario(ctx context.Context, scenario *Scenario, base *config.Config, registry *experiment.Registry, log *logging.Logger) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step-%d", i+1)
		}
		log.Info("scenario step", "scenario", scenario.Name, "step", name, "index", i+1, "of", len(scenario.Steps))

		cfg, err := step.Config(base)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		exp, err := experiment.New(cfg, registry, controllerOr(step.Controller))
		if err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{Name: name, Result: result})
	}

	return results, nil
}

// ParameterSweep runs one experiment per evenly spaced value of Param.
type ParameterSweep struct {
	Param      string
	Min        float64
	Max        float64
	Steps      int
	Controller string
}

// SweepResult holds the metrics of one sweep point. Err is set when that
// point failed to build or diverged.
type SweepResult struct {
	ParamValue float64
	Metrics    map[string]float64
	Final      sim.Sample
	Err        error
}

func (p *ParameterSweep) values() []float64 {
	if p.Steps <= 1 {
		return []float64{p.Min}
	}
	out := make([]float64, p.Steps)
	step := (p.Max - p.Min) / float64(p.Steps-1)
	for i := range out {
		out[i] = p.Min + float64(i)*step
	}
	return out
}

// RunSweep evaluates the sweep points concurrently. Results keep the order
// of the parameter values.
func RunSweep(ctx context.Context, base *config.Config, sweep *ParameterSweep, registry *experiment.Registry) ([]SweepResult, error) {
	if _, err := base.Param(sweep.Param); err != nil {
		return nil, err
	}

	values := sweep.values()
	results := make([]SweepResult, len(values))
	controller := controllerOr(sweep.Controller)

	dynamo.ParallelFor(len(values), 1, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = runPoint(ctx, base, sweep.Param, values[i], registry, controller)
		}
	})

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func runPoint(ctx context.Context, base *config.Config, param string, value float64, registry *experiment.Registry, controller string) SweepResult {
	out := SweepResult{ParamValue: value}

	cfg := base.Clone()
	if err := cfg.SetParam(param, value); err != nil {
		out.Err = err
		return out
	}
	exp, err := experiment.New(cfg, registry, controller)
	if err != nil {
		out.Err = err
		return out
	}
	result, err := exp.Run(ctx)
	if err != nil {
		out.Err = err
		return out
	}

	out.Metrics = result.Metrics
	out.Final = result.Final
	return out
}

// MonteCarloConfig jitters the rocket's initial velocity by up to
// Perturbation on each axis.
type MonteCarloConfig struct {
	Trials       int
	Perturbation float64
	Seed         int64
	Controller   string
}

type MonteCarloResult struct {
	TrialID  int
	Velocity dynamo.Vec2
	Final    sim.Sample
	Bound    bool
	Err      error
}

// RunMonteCarlo runs the trials concurrently. Perturbations are drawn up
// front from Seed, so results do not depend on scheduling.
func RunMonteCarlo(ctx context.Context, base *config.Config, mc *MonteCarloConfig, registry *experiment.Registry) ([]MonteCarloResult, error) {
	if mc.Trials <= 0 {
		return nil, errors.New("monte carlo needs at least one trial")
	}

	rng := rand.New(rand.NewSource(mc.Seed))
	velocities := make([]dynamo.Vec2, mc.Trials)
	for i := range velocities {
		velocities[i] = dynamo.Vec2{
			X: base.Rocket.VX + (rng.Float64()-0.5)*2*mc.Perturbation,
			Y: base.Rocket.VY + (rng.Float64()-0.5)*2*mc.Perturbation,
		}
	}

	results := make([]MonteCarloResult, mc.Trials)
	controller := controllerOr(mc.Controller)

	dynamo.ParallelFor(mc.Trials, 1, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = runTrial(ctx, base, i, velocities[i], mc.Seed, registry, controller)
		}
	})

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func runTrial(ctx context.Context, base *config.Config, id int, v dynamo.Vec2, seed int64, registry *experiment.Registry, controller string) MonteCarloResult {
	out := MonteCarloResult{TrialID: id, Velocity: v}

	cfg := base.Clone()
	cfg.Rocket.VX, cfg.Rocket.VY = v.X, v.Y
	cfg.Sim.Seed = seed + int64(id)

	exp, err := experiment.New(cfg, registry, controller)
	if err != nil {
		out.Err = err
		return out
	}
	result, err := exp.Run(ctx)
	if err != nil {
		out.Err = err
		return out
	}

	out.Final = result.Final
	out.Bound = metrics.SpecificEnergy(result.Final, cfg.Physics.G) < 0
	return out
}

// MonteCarloStats counts bound and unbound trials. Failed trials count as
// unbound.
func MonteCarloStats(results []MonteCarloResult) (bound int, unbound int) {
	for _, r := range results {
		if r.Bound && r.Err == nil {
			bound++
		} else {
			unbound++
		}
	}
	return
}

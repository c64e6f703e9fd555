package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/gravtoy/internal/config"
	"github.com/san-kum/gravtoy/internal/control"
	"github.com/san-kum/gravtoy/internal/dynamo"
	"github.com/san-kum/gravtoy/internal/metrics"
	"github.com/san-kum/gravtoy/internal/sim"
)

// Registry names the controllers a headless run can be driven by.
type Registry struct {
	controllers map[string]func(*config.Config) dynamo.Controller
}

func NewRegistry() *Registry {
	r := &Registry{
		controllers: make(map[string]func(*config.Config) dynamo.Controller),
	}

	r.controllers["none"] = func(*config.Config) dynamo.Controller { return control.NewNone() }
	r.controllers["schedule"] = func(cfg *config.Config) dynamo.Controller {
		return control.NewSchedule(cfg.Burns)
	}

	return r
}

func (r *Registry) GetController(name string, cfg *config.Config) (dynamo.Controller, error) {
	fn, ok := r.controllers[name]
	if !ok {
		return nil, fmt.Errorf("unknown controller: %s", name)
	}
	return fn(cfg), nil
}

func (r *Registry) ListControllers() []string {
	names := make([]string, 0, len(r.controllers))
	for name := range r.controllers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics(cfg *config.Config) []sim.Metric {
	return metrics.Standard(cfg.Physics.G)
}

package metrics

import "github.com/san-kum/gravtoy/internal/sim"

// BurnTicks counts ticks with the thruster firing.
type BurnTicks struct {
	name  string
	ticks int
}

func NewBurnTicks() *BurnTicks {
	return &BurnTicks{
		name: "burn_ticks",
	}
}

func (b *BurnTicks) Name() string {
	return b.name
}

func (b *BurnTicks) Observe(s sim.Sample) {
	if s.Controls.Thrust {
		b.ticks++
	}
}

func (b *BurnTicks) Value() float64 {
	return float64(b.ticks)
}

func (b *BurnTicks) Reset() {
	b.ticks = 0
}

// PeakExhaust is the largest live particle count seen.
type PeakExhaust struct {
	peak int
}

func NewPeakExhaust() *PeakExhaust {
	return &PeakExhaust{}
}

func (p *PeakExhaust) Name() string { return "peak_exhaust" }

func (p *PeakExhaust) Observe(s sim.Sample) {
	if s.Particles > p.peak {
		p.peak = s.Particles
	}
}

func (p *PeakExhaust) Value() float64 { return float64(p.peak) }

func (p *PeakExhaust) Reset() { p.peak = 0 }

// Standard returns the metrics the run command reports.
func Standard(g float64) []sim.Metric {
	return []sim.Metric{
		NewPeriapsis(),
		NewApoapsis(),
		NewEccentricity(),
		NewMeanSpeed(),
		NewEnergy(g),
		NewEnergyDrift(g),
		NewBound(g),
		NewBurnTicks(),
		NewPeakExhaust(),
	}
}

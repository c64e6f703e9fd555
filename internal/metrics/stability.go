package metrics

import "github.com/san-kum/gravtoy/internal/sim"

// Bound is the fraction of ticks the rocket spent on a closed orbit
// (negative specific energy).
type Bound struct {
	name    string
	g       float64
	bound   int
	samples int
}

func NewBound(g float64) *Bound {
	return &Bound{
		name: "bound",
		g:    g,
	}
}

func (b *Bound) Name() string {
	return b.name
}

func (b *Bound) Observe(s sim.Sample) {
	b.samples++
	if SpecificEnergy(s, b.g) < 0 {
		b.bound++
	}
}

func (b *Bound) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return float64(b.bound) / float64(b.samples)
}

func (b *Bound) Reset() {
	b.bound = 0
	b.samples = 0
}

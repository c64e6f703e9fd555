package metrics

import (
	"math"

	"github.com/san-kum/gravtoy/internal/sim"
)

// Periapsis is the closest center-to-center approach seen.
type Periapsis struct {
	min float64
}

func NewPeriapsis() *Periapsis {
	return &Periapsis{min: math.Inf(1)}
}

func (p *Periapsis) Name() string { return "periapsis" }

func (p *Periapsis) Observe(s sim.Sample) {
	p.min = math.Min(p.min, s.Distance)
}

func (p *Periapsis) Value() float64 {
	if math.IsInf(p.min, 1) {
		return 0
	}
	return p.min
}

func (p *Periapsis) Reset() { p.min = math.Inf(1) }

// Apoapsis is the farthest center-to-center distance seen.
type Apoapsis struct {
	max float64
}

func NewApoapsis() *Apoapsis {
	return &Apoapsis{}
}

func (a *Apoapsis) Name() string { return "apoapsis" }

func (a *Apoapsis) Observe(s sim.Sample) {
	a.max = math.Max(a.max, s.Distance)
}

func (a *Apoapsis) Value() float64 { return a.max }

func (a *Apoapsis) Reset() { a.max = 0 }

type MeanSpeed struct {
	sum     float64
	samples int
}

func NewMeanSpeed() *MeanSpeed {
	return &MeanSpeed{}
}

func (m *MeanSpeed) Name() string { return "mean_speed" }

func (m *MeanSpeed) Observe(s sim.Sample) {
	m.sum += s.Speed
	m.samples++
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.sum = 0
	m.samples = 0
}

// Eccentricity estimates orbit shape from the distance extremes:
// (apo - peri) / (apo + peri). Zero for a circle.
type Eccentricity struct {
	peri Periapsis
	apo  Apoapsis
}

func NewEccentricity() *Eccentricity {
	return &Eccentricity{peri: Periapsis{min: math.Inf(1)}}
}

func (e *Eccentricity) Name() string { return "eccentricity" }

func (e *Eccentricity) Observe(s sim.Sample) {
	e.peri.Observe(s)
	e.apo.Observe(s)
}

func (e *Eccentricity) Value() float64 {
	peri, apo := e.peri.Value(), e.apo.Value()
	if apo+peri == 0 {
		return 0
	}
	return (apo - peri) / (apo + peri)
}

func (e *Eccentricity) Reset() {
	e.peri.Reset()
	e.apo.Reset()
}

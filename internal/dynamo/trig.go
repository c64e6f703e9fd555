package dynamo

import "math"

// TrigTable holds sin/cos samples over a full turn, indexed in degrees,
// and linearly interpolates between them.
type TrigTable struct {
	sin  []float64
	cos  []float64
	step float64
}

// DefaultTrigTable samples every tenth of a degree, so right angles and
// whole degrees land exactly on an entry.
var DefaultTrigTable = NewTrigTable(3600)

func NewTrigTable(n int) *TrigTable {
	t := &TrigTable{
		sin:  make([]float64, n),
		cos:  make([]float64, n),
		step: 360 / float64(n),
	}
	for i := 0; i < n; i++ {
		t.sin[i], t.cos[i] = math.Sincos(float64(i) * 2 * math.Pi / float64(n))
	}
	return t
}

// SinCosDeg returns sin and cos of deg degrees.
func (t *TrigTable) SinCosDeg(deg float64) (sin, cos float64) {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}

	idx := deg / t.step
	i := int(idx)
	frac := idx - float64(i)

	n := len(t.sin)
	i0 := i % n
	i1 := (i + 1) % n

	sin = t.sin[i0]*(1-frac) + t.sin[i1]*frac
	cos = t.cos[i0]*(1-frac) + t.cos[i1]*frac
	return
}

// FastSinCosDeg uses the default table.
func FastSinCosDeg(deg float64) (float64, float64) {
	return DefaultTrigTable.SinCosDeg(deg)
}

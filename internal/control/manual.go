package control

import "github.com/san-kum/gravtoy/internal/dynamo"

type Key int

const (
	KeyRotateLeft Key = iota
	KeyRotateRight
	KeyThrust
)

// Manual tracks which keys are held. Shells call Press on key-down and
// Release on key-up; the state is sampled once per tick.
type Manual struct {
	held dynamo.Controls
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Press(k Key)   { m.Set(k, true) }
func (m *Manual) Release(k Key) { m.Set(k, false) }

// Toggle flips a key, for shells that only see key presses.
func (m *Manual) Toggle(k Key) { m.Set(k, !m.Held(k)) }

func (m *Manual) Set(k Key, down bool) {
	switch k {
	case KeyRotateLeft:
		m.held.RotateLeft = down
	case KeyRotateRight:
		m.held.RotateRight = down
	case KeyThrust:
		m.held.Thrust = down
	}
}

func (m *Manual) Held(k Key) bool {
	switch k {
	case KeyRotateLeft:
		return m.held.RotateLeft
	case KeyRotateRight:
		return m.held.RotateRight
	case KeyThrust:
		return m.held.Thrust
	}
	return false
}

func (m *Manual) ReleaseAll() {
	m.held = dynamo.Controls{}
}

func (m *Manual) Compute(tick int) dynamo.Controls {
	return m.held
}

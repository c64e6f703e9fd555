package control

import (
	"github.com/san-kum/gravtoy/internal/config"
	"github.com/san-kum/gravtoy/internal/dynamo"
)

// Schedule replays scripted burns. Overlapping burns are OR-ed together.
type Schedule struct {
	burns []config.Burn
}

func NewSchedule(burns []config.Burn) *Schedule {
	cp := make([]config.Burn, len(burns))
	copy(cp, burns)
	return &Schedule{burns: cp}
}

func (s *Schedule) Compute(tick int) dynamo.Controls {
	var u dynamo.Controls
	for _, b := range s.burns {
		if tick < b.Start || tick >= b.End {
			continue
		}
		u.RotateLeft = u.RotateLeft || b.Left
		u.RotateRight = u.RotateRight || b.Right
		u.Thrust = u.Thrust || b.Thrust
	}
	return u
}

// BurnTicks counts the ticks in [0, ticks) with the thruster on.
func (s *Schedule) BurnTicks(ticks int) int {
	n := 0
	for t := 0; t < ticks; t++ {
		if s.Compute(t).Thrust {
			n++
		}
	}
	return n
}

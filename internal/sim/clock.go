package sim

import "time"

// WallClock reads real elapsed time. The window shell uses it.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when advanced. Headless runs and the terminal shell
// step it by one tick duration per tick.
type ManualClock struct {
	now time.Duration
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) Now() time.Duration { return c.now }

func (c *ManualClock) Advance(d time.Duration) { c.now += d }

func (c *ManualClock) Reset() { c.now = 0 }

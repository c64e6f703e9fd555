package control

import (
	"testing"

	"github.com/san-kum/gravtoy/internal/config"
	"github.com/san-kum/gravtoy/internal/dynamo"
)

func TestNone(t *testing.T) {
	ctrl := NewNone()
	for tick := 0; tick < 5; tick++ {
		if u := ctrl.Compute(tick); u != (dynamo.Controls{}) {
			t.Errorf("tick %d: expected no input, got %+v", tick, u)
		}
	}
}

func TestManual(t *testing.T) {
	m := NewManual()

	m.Press(KeyThrust)
	m.Press(KeyRotateLeft)
	if u := m.Compute(0); !u.Thrust || !u.RotateLeft || u.RotateRight {
		t.Errorf("unexpected controls %+v", u)
	}

	m.Release(KeyThrust)
	if u := m.Compute(1); u.Thrust {
		t.Error("thrust should be released")
	}

	m.Toggle(KeyRotateRight)
	m.Toggle(KeyRotateLeft)
	if u := m.Compute(2); !u.RotateRight || u.RotateLeft {
		t.Errorf("toggle failed: %+v", u)
	}

	m.ReleaseAll()
	if u := m.Compute(3); u != (dynamo.Controls{}) {
		t.Errorf("expected all released, got %+v", u)
	}
}

func TestSchedule(t *testing.T) {
	s := NewSchedule([]config.Burn{
		{Start: 0, End: 3, Right: true},
		{Start: 2, End: 5, Thrust: true},
	})

	tests := []struct {
		tick int
		want dynamo.Controls
	}{
		{0, dynamo.Controls{RotateRight: true}},
		{2, dynamo.Controls{RotateRight: true, Thrust: true}},
		{3, dynamo.Controls{Thrust: true}},
		{5, dynamo.Controls{}},
	}

	for _, tt := range tests {
		if got := s.Compute(tt.tick); got != tt.want {
			t.Errorf("tick %d: got %+v, want %+v", tt.tick, got, tt.want)
		}
	}

	if got := s.BurnTicks(100); got != 3 {
		t.Errorf("expected 3 burn ticks, got %d", got)
	}
}

func TestScheduleCopiesBurns(t *testing.T) {
	burns := []config.Burn{{Start: 0, End: 10, Thrust: true}}
	s := NewSchedule(burns)
	burns[0].Thrust = false

	if !s.Compute(0).Thrust {
		t.Error("schedule should not alias the caller's slice")
	}
}

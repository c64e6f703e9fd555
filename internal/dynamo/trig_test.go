package dynamo

import (
	"math"
	"testing"
)

func TestSinCosDegExactOnEntries(t *testing.T) {
	tests := []struct {
		deg      float64
		sin, cos float64
	}{
		{0, 0, 1},
		{90, 1, 0},
		{180, 0, -1},
		{270, -1, 0},
		{-90, -1, 0},
		{450, 1, 0},
	}
	for _, tt := range tests {
		s, c := FastSinCosDeg(tt.deg)
		if math.Abs(s-tt.sin) > 1e-12 || math.Abs(c-tt.cos) > 1e-12 {
			t.Errorf("deg %v: got (%f, %f), want (%f, %f)", tt.deg, s, c, tt.sin, tt.cos)
		}
	}
}

func TestSinCosDegInterpolates(t *testing.T) {
	for deg := -720.0; deg < 720; deg += 7.37 {
		s, c := FastSinCosDeg(deg)
		ws, wc := math.Sincos(Radians(deg))
		if math.Abs(s-ws) > 1e-5 || math.Abs(c-wc) > 1e-5 {
			t.Fatalf("deg %v: got (%f, %f), want (%f, %f)", deg, s, c, ws, wc)
		}
	}
}

package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/gravtoy/internal/sim"
)

// Trace is the JSON form of a headless run.
type Trace struct {
	Preset    string             `json:"preset,omitempty"`
	Seed      int64              `json:"seed"`
	Ticks     int                `json:"ticks"`
	TickRate  int                `json:"tick_rate"`
	X         []float64          `json:"x"`
	Y         []float64          `json:"y"`
	Distances []float64          `json:"distances"`
	Speeds    []float64          `json:"speeds"`
	Particles []int              `json:"particles"`
	Metrics   map[string]float64 `json:"metrics"`
}

func NewTrace(preset string, seed int64, tickRate int, result *sim.Result) Trace {
	t := Trace{
		Preset:    preset,
		Seed:      seed,
		Ticks:     result.TicksTaken,
		TickRate:  tickRate,
		X:         make([]float64, len(result.Positions)),
		Y:         make([]float64, len(result.Positions)),
		Distances: result.Distances,
		Speeds:    result.Speeds,
		Particles: result.Particles,
		Metrics:   result.Metrics,
	}
	for i, p := range result.Positions {
		t.X[i], t.Y[i] = p.X, p.Y
	}
	return t
}

func WriteJSON(w io.Writer, t Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(t)
}

// WriteCSV writes one row per tick: tick, x, y, distance, speed, particles.
func WriteCSV(w io.Writer, result *sim.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"tick", "x", "y", "distance", "speed", "particles"}); err != nil {
		return err
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	for i := 0; i < result.TicksTaken; i++ {
		p := result.Positions[i]
		row := []string{
			strconv.Itoa(i + 1),
			f(p.X),
			f(p.Y),
			f(result.Distances[i]),
			f(result.Speeds[i]),
			strconv.Itoa(result.Particles[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

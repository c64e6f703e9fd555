package viz

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravtoy/internal/config"
	"github.com/san-kum/gravtoy/internal/control"
	"github.com/san-kum/gravtoy/internal/logging"
	"github.com/san-kum/gravtoy/internal/sim"
)

const (
	canvasWidth     = 60
	canvasHeight    = 30
	historyCapacity = 600
)

type TickMsg time.Time

// Model is the terminal shell. Terminals report key presses but no
// releases, so A, D and Space toggle their control instead of being held.
type Model struct {
	cfg      *config.Config
	tickDur  time.Duration
	world    *sim.World
	runner   *sim.Simulator
	input    *control.Manual
	canvas   *Canvas
	renderer *canvasRenderer
	theme    Theme
	styles   styles
	running  bool
	showHelp bool
	history  []float64
}

// NewModel builds a terminal session from a validated config.
func NewModel(cfg *config.Config) Model {
	canvas := NewCanvas(canvasWidth, canvasHeight)
	m := Model{
		cfg:      cfg,
		tickDur:  sim.TickDuration(cfg.Sim.TickRate),
		input:    control.NewManual(),
		canvas:   canvas,
		renderer: newCanvasRenderer(canvas, float64(cfg.Window.Width), float64(cfg.Window.Height)),
		theme:    Themes[0],
		styles:   newStyles(Themes[0]),
		running:  true,
	}
	m.reset()
	return m
}

// Run blocks until the user quits.
func Run(cfg *config.Config, log *logging.Logger) error {
	log.Info("terminal session started", "seed", cfg.Sim.Seed, "tick_rate", cfg.Sim.TickRate)
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		log.Error("terminal session failed", err)
		return err
	}
	if m, ok := final.(Model); ok {
		log.Info("terminal session ended", "ticks", m.World().Tick())
	}
	return nil
}

func (m *Model) reset() {
	clock := sim.NewManualClock()
	m.world = sim.NewWorld(m.cfg, clock, rand.New(rand.NewSource(m.cfg.Sim.Seed)), sim.Textures{})
	m.runner = sim.New(m.world, clock, m.input)
	m.input.ReleaseAll()
	m.history = make([]float64, 0, historyCapacity)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.tickDur, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "a":
			m.input.Toggle(control.KeyRotateLeft)
		case "d":
			m.input.Toggle(control.KeyRotateRight)
		case " ":
			m.input.Toggle(control.KeyThrust)
		case "p":
			m.running = !m.running
		case "r":
			m.reset()
		case "t":
			m.theme = m.theme.next()
			m.styles = newStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

// step advances one tick through the simulator so the clock and controls
// follow the same path as headless runs.
func (m *Model) step() {
	one := sim.RunConfig{Ticks: 1, TickDuration: m.tickDur}
	_ = m.runner.RunWithCallback(context.Background(), one, func(s sim.Sample) bool {
		m.history = append(m.history, s.Distance)
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}
		return true
	})
}

func (m Model) World() *sim.World { return m.world }

func (m *Model) draw() {
	m.canvas.Clear()
	m.world.Render(m.renderer)
}

func (m Model) View() string {
	m.draw()
	st := m.styles
	smp := m.world.Sample()

	var s strings.Builder
	s.WriteString(st.header.Render("GRAVTOY") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Tick", fmt.Sprintf("%d", smp.Tick))
	row("Time", fmt.Sprintf("%.2fs", smp.Elapsed.Seconds()))
	row("Distance", fmt.Sprintf("%.1f", smp.Distance))
	row("Speed", fmt.Sprintf("%.3f", smp.Speed))
	row("Angle", fmt.Sprintf("%.1f°", smp.Rocket.Angle))
	row("Exhaust", fmt.Sprintf("%d", smp.Particles))
	s.WriteString("\n")

	s.WriteString(st.indicator("left", smp.Controls.RotateLeft) + " ")
	s.WriteString(st.indicator("right", smp.Controls.RotateRight) + " ")
	s.WriteString(st.indicator("thrust", smp.Controls.Thrust) + "\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(6), asciigraph.Width(30), asciigraph.Caption("distance"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	s.WriteString(st.help.Render("A/D:Rotate SP:Thrust P:Pause\nR:Reset T:Theme ?:Help Q:Quit"))

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		st.canvas.Render(m.canvas.String()),
		st.stats.Render(s.String()),
	)
	if m.showHelp {
		return helpText + "\n" + main
	}
	return main
}

const helpText = `
  A      toggle rotate left
  D      toggle rotate right
  Space  toggle thrust
  P      pause / resume
  R      reset the world
  T      cycle themes
  Q      quit
`

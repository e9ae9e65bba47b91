// Package viz renders a live terminal view of a running simulation.
package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/selmank/peribar/internal/solver"
)

const stepsPerFrame = 20

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model drives an externally paced solver from bubbletea ticks.
type Model struct {
	sim     *solver.Integrator
	cfg     solver.Config
	running bool
	done    bool
	err     error
}

func NewModel(sim *solver.Integrator, cfg solver.Config) (Model, error) {
	if err := sim.Setup(cfg); err != nil {
		return Model{}, err
	}
	return Model{sim: sim, cfg: cfg, running: true}, nil
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.err = m.sim.Setup(m.cfg)
			m.done = false
			m.running = m.err == nil
		}
	case TickMsg:
		if m.running && m.err == nil && !m.done {
			for i := 0; i < stepsPerFrame; i++ {
				if m.sim.StepIndex() >= m.cfg.Steps {
					m.done = true
					m.running = false
					break
				}
				if err := m.sim.Step(); err != nil {
					m.err = err
					m.running = false
					break
				}
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	s := headerStyle.Render("peribar live") + "\n"

	if m.err != nil {
		s += errorStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
	} else {
		disp := m.sim.Displacement()
		graph := asciigraph.Plot(disp,
			asciigraph.Height(12),
			asciigraph.Width(78),
			asciigraph.Caption("displacement along the bar"),
		)
		s += graphStyle.Render(graph) + "\n"
	}

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
	}
	s += row("step", fmt.Sprintf("%d / %d", m.sim.StepIndex(), m.cfg.Steps))
	s += row("time", fmt.Sprintf("%.6g s", m.sim.Time()))
	s += row("dt", fmt.Sprintf("%.6g s", m.sim.Dt()))
	s += row("bonds", fmt.Sprintf("%d", m.sim.BondTotal()))
	if m.done {
		s += valueStyle.Render("run complete") + "\n"
	}

	s += helpStyle.Render("space pause · r reset · q quit")
	return s
}

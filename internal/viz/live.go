package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dynsys/internal/ode"
)

const historyCapacity = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Live drives an ode stepping handle at a fixed frame rate and renders
// the state trace as it evolves.
type Live struct {
	it      *ode.Integrator
	name    string
	fps     int
	running bool
	history []float64
}

// NewLive wraps a prepared integrator for the named system.
func NewLive(it *ode.Integrator, name string, fps int) Live {
	if fps <= 0 {
		fps = 30
	}
	return Live{
		it:      it,
		name:    name,
		fps:     fps,
		running: true,
		history: make([]float64, 0, historyCapacity),
	}
}

func (m Live) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Live) Init() tea.Cmd {
	return m.tick()
}

func (m Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
	case TickMsg:
		if m.running && !m.it.Done() {
			if err := m.it.Step(); err != nil {
				return m, tea.Quit
			}
			m.history = append(m.history, m.it.Y()[0])
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Live) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.name))
	b.WriteString("\n")

	y := m.it.Y()
	stats := m.it.Stats()
	rows := []struct{ label, value string }{
		{"t", fmt.Sprintf("%.4f", m.it.T())},
		{"state", formatState(y)},
		{"steps", fmt.Sprintf("%d (%d rejected)", stats.Steps, stats.Rejected)},
		{"last step", fmt.Sprintf("%.2e", stats.LastStep)},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history, asciigraph.Width(70), asciigraph.Height(12))
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	if m.it.Done() {
		b.WriteString(helpStyle.Render("finished · q quit"))
	} else {
		b.WriteString(helpStyle.Render("space pause · q quit"))
	}
	return b.String()
}

func formatState(y []float64) string {
	parts := make([]string, len(y))
	for i, v := range y {
		parts[i] = fmt.Sprintf("%.4f", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/world2/internal/chart"
	"github.com/san-kum/world2/internal/world"
)

const (
	graphWidth  = 64
	graphHeight = 9
	barWidth    = 24
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// graphFields are the variables the sparkline cycles through on tab.
var graphFields = []string{"P", "POLR", "CI", "QL", "NR", "MSL", "FR", "CIAF"}

var readouts = []struct{ label, field string }{
	{"Population", "P"},
	{"Capital", "CI"},
	{"Resources", "NR"},
	{"Pollution", "POLR"},
	{"Quality", "QL"},
}

type TickMsg time.Time

// Model plays a world run frame by frame in the terminal.
type Model struct {
	constants world.Constants
	model     *world.Model
	history   []world.Vars
	running   bool
	selected  int
	speed     int // model ticks advanced per frame
	err       error
}

func NewModel(c world.Constants) Model {
	return Model{
		constants: c,
		model:     world.New(c),
		history:   make([]world.Vars, 0, 1024),
		running:   true,
		speed:     2,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
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
			m.model = world.New(m.constants)
			m.history = m.history[:0]
			m.err = nil
			m.running = true
		case "tab":
			m.selected = (m.selected + 1) % len(graphFields)
		case "+", "=":
			if m.speed < 16 {
				m.speed *= 2
			}
		case "-", "_":
			if m.speed > 1 {
				m.speed /= 2
			}
		}
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// advance steps the model a few ticks per frame so two centuries play out
// in seconds rather than minutes.
func (m *Model) advance() {
	for i := 0; i < m.speed; i++ {
		if m.model.Done() {
			m.running = false
			return
		}
		v, err := m.model.Advance()
		if err != nil {
			m.err = err
			m.running = false
			return
		}
		m.history = append(m.history, v)
	}
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("WORLD DYNAMICS") + "\n")
	s.WriteString(m.status() + "\n\n")

	if len(m.history) == 0 {
		s.WriteString(dimStyle.Render("starting...") + "\n")
		s.WriteString(helpStyle.Render(helpLine))
		return s.String()
	}
	last := m.history[len(m.history)-1]

	s.WriteString(labelStyle.Render("Year") + valueStyle.Render(fmt.Sprintf("%.1f", last.Time)) + "\n")
	s.WriteString(labelStyle.Render("Progress") + valueStyle.Render(m.progressBar(last.Time)) + "\n\n")
	for _, r := range readouts {
		v, _ := last.Value(r.field)
		s.WriteString(labelStyle.Render(r.label) + valueStyle.Render(chart.FormatNumber(v)) + "\n")
	}

	field := graphFields[m.selected]
	if len(m.history) > 1 {
		series := make([]float64, len(m.history))
		for i, v := range m.history {
			series[i], _ = v.Value(field)
		}
		plot := asciigraph.Plot(series,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption(field))
		s.WriteString(graphStyle.Render(plot) + "\n")
	}

	tabs := make([]string, len(graphFields))
	for i, f := range graphFields {
		if i == m.selected {
			tabs[i] = activeStyle.Render(f)
		} else {
			tabs[i] = dimStyle.Render(f)
		}
	}
	s.WriteString(strings.Join(tabs, " ") + "\n")

	s.WriteString(helpStyle.Render(helpLine))
	return s.String()
}

const helpLine = "SP:Pause R:Restart TAB:Variable +/-:Speed Q:Quit"

func (m Model) status() string {
	switch {
	case m.err != nil:
		return errorStyle.Render("FAILED: " + m.err.Error())
	case m.model.Done():
		return "DONE"
	case m.running:
		return fmt.Sprintf("RUNNING %dx", m.speed)
	default:
		return "PAUSED"
	}
}

func (m Model) progressBar(t float64) string {
	ratio := (t - m.constants.Time) / (m.constants.EndTime - m.constants.Time)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * barWidth)
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

// Run plays the model under c until the user quits.
func Run(c world.Constants) error {
	_, err := tea.NewProgram(NewModel(c)).Run()
	return err
}

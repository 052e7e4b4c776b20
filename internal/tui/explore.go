package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gwpop/internal/compute"
	"github.com/san-kum/gwpop/internal/config"
	"github.com/san-kum/gwpop/internal/models"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type state int

const (
	stateMenu state = iota
	stateExplore
)

const curvePoints = 200

type model struct {
	state    state
	registry *models.Registry
	names    []string
	cursor   int

	selected    string
	active      models.PopulationModel
	params      models.Params
	paramNames  []string
	paramCursor int
	zMax        float64

	density []float64
	evalErr error

	width, height int
}

func NewExplorer() *model {
	registry := models.NewRegistry()
	return &model{
		state:    stateMenu,
		registry: registry,
		names:    registry.Names(),
		width:    80,
		height:   24,
	}
}

// Run starts the interactive explorer.
func Run() error {
	_, err := tea.NewProgram(NewExplorer(), tea.WithAltScreen()).Run()
	return err
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateExplore:
			return m.updateExplore(msg)
		}
	}
	return m, nil
}

func (m *model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter":
		m.selectModel(m.names[m.cursor])
	}
	return m, nil
}

func (m *model) updateExplore(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "left", "h":
		m.adjustParam(-1)
	case "right", "l":
		m.adjustParam(1)
	}
	return m, nil
}

func (m *model) selectModel(name string) {
	cfg := defaultPreset(name)
	m.zMax = cfg.ZMax
	if m.zMax <= 0 {
		m.zMax = config.DefaultZMax
	}

	active, err := m.registry.Get(name, m.zMax)
	if err != nil {
		m.evalErr = err
		return
	}

	m.selected = name
	m.active = active
	m.params = models.Params{}
	m.paramNames = m.paramNames[:0]
	for k, v := range cfg.Params {
		m.params[k] = v
		m.paramNames = append(m.paramNames, k)
	}
	sort.Strings(m.paramNames)
	m.paramCursor = 0
	m.state = stateExplore
	m.evaluate()
}

// defaultPreset picks the model's first preset alphabetically so the
// explorer always opens with sensible parameters.
func defaultPreset(name string) *config.Config {
	presets := config.ListPresets(name)
	if len(presets) == 0 {
		return config.DefaultConfig()
	}
	sort.Strings(presets)
	return config.GetPreset(name, presets[0])
}

func (m *model) adjustParam(direction float64) {
	if len(m.paramNames) == 0 {
		return
	}
	key := m.paramNames[m.paramCursor]
	step := 0.1
	if v := m.params[key]; v != 0 {
		step = 0.05 * abs(v)
		if step < 0.05 {
			step = 0.05
		}
	}
	m.params[key] += direction * step
	m.evaluate()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (m *model) evaluate() {
	_, density, err := models.Curve(m.active, m.selected, m.params, m.zMax, curvePoints)
	m.density = density
	m.evalErr = err
}

func (m *model) View() string {
	switch m.state {
	case stateExplore:
		return m.viewExplore()
	default:
		return m.viewMenu()
	}
}

func (m *model) viewMenu() string {
	var b strings.Builder
	b.WriteString(cyan.Render("gwpop") + dim.Render("  population model explorer") + "\n\n")
	for i, name := range m.names {
		cursor := "  "
		style := dim
		if i == m.cursor {
			cursor = white.Render("> ")
			style = white
		}
		b.WriteString(cursor + style.Render(name) + "\n")
	}
	b.WriteString("\n" + dim.Render("↑/↓ select · enter open · q quit"))
	return b.String()
}

func (m *model) viewExplore() string {
	var b strings.Builder
	b.WriteString(cyan.Render(m.selected) +
		dim.Render(fmt.Sprintf("  backend %s", compute.ActiveName())) + "\n\n")

	if m.evalErr != nil {
		b.WriteString(red.Render("error: "+m.evalErr.Error()) + "\n")
	} else if len(m.density) > 0 {
		graphWidth := m.width - 20
		if graphWidth < 40 {
			graphWidth = 40
		}
		b.WriteString(green.Render(asciigraph.Plot(m.density,
			asciigraph.Height(12),
			asciigraph.Width(graphWidth),
		)) + "\n")
	}

	b.WriteString("\n")
	for i, key := range m.paramNames {
		line := fmt.Sprintf("%-12s %8.3f", key, m.params[key])
		if i == m.paramCursor {
			b.WriteString(yellow.Render("> " + line))
		} else {
			b.WriteString(dim.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + dim.Render("↑/↓ param · ←/→ adjust · esc back · ctrl+c quit"))
	return b.String()
}

// meshroute-tui steps the routing solvers interactively and renders
// their debug snapshots, which is the easiest way to watch the
// assignment phases and section extraction at work.
package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/copperline/meshroute/pkg/config"
	"github.com/copperline/meshroute/pkg/mesh"
	"github.com/copperline/meshroute/pkg/portassign"
	"github.com/copperline/meshroute/pkg/section"
	"github.com/copperline/meshroute/pkg/solver"
	"github.com/copperline/meshroute/pkg/viz"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			MarginLeft(2).
			MarginTop(1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF00FF")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Padding(0, 2)

	statusStyle = lipgloss.NewStyle().
			MarginLeft(2)

	solvedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	failedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	canvasStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FFFF00")).
			MarginLeft(2).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			MarginLeft(2)
)

type keyMap struct {
	Step     key.Binding
	Autoplay key.Binding
	Tab      key.Binding
	Reset    key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Autoplay, k.Tab, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Step: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "step"),
	),
	Autoplay: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "autoplay"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch solver"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type tickMsg time.Time

const autoplayInterval = 300 * time.Millisecond

// demoSubSolver stands in for the per-section pathing engine, which is
// injected by the pipeline in production.
type demoSubSolver struct {
	budget int
	steps  int
	solved bool
	failed bool
	err    error
}

func (d *demoSubSolver) Step() {
	if d.solved || d.failed {
		return
	}
	d.steps++
	if d.steps >= d.budget {
		d.solved = true
	}
}

func (d *demoSubSolver) Solved() bool { return d.solved }
func (d *demoSubSolver) Failed() bool { return d.failed }
func (d *demoSubSolver) Err() error   { return d.err }

type steppable interface {
	solver.Solver
	solver.Visualizer
}

type model struct {
	cfg      config.Config
	tabs     []string
	active   int
	solvers  []steppable
	steps    []int
	autoplay bool
	help     help.Model
}

func newModel(cfg config.Config) model {
	m := model{
		cfg:  cfg,
		tabs: []string{"port assignment", "section extraction"},
		help: help.New(),
	}
	m.solvers = []steppable{newDemoEngine(cfg), newDemoExtractor(cfg)}
	m.steps = make([]int, len(m.solvers))
	return m
}

func newDemoEngine(cfg config.Config) *portassign.Engine {
	nodes := []mesh.Node{
		{ID: "u1", Center: mesh.Point{X: 10, Y: 10}, Width: 16, Height: 12},
		{ID: "u2", Center: mesh.Point{X: 40, Y: 10}, Width: 16, Height: 12},
	}
	lookup, err := mesh.NewLookup(nodes)
	if err != nil {
		log.Fatalf("demo mesh: %v", err)
	}
	engine, err := portassign.NewEngine([]portassign.PortSegment{
		{ID: "u1-e", NodeID: "u1", Start: mesh.Point{X: 18, Y: 4}, End: mesh.Point{X: 18, Y: 16},
			AvailableZ: []int{0}, Connections: []string{"clk"}},
		{ID: "u1-n", NodeID: "u1", Start: mesh.Point{X: 2, Y: 16}, End: mesh.Point{X: 18, Y: 16},
			AvailableZ: []int{0, 1}, Connections: []string{"data1", "data0", "rst"}},
		{ID: "u2-w", NodeID: "u2", Start: mesh.Point{X: 32, Y: 4}, End: mesh.Point{X: 32, Y: 16},
			AvailableZ: []int{1}, Connections: []string{"clk", "rst"}},
		{ID: "u2-s", NodeID: "u2", Start: mesh.Point{X: 32, Y: 4}, End: mesh.Point{X: 48, Y: 4},
			AvailableZ: []int{0}, Connections: []string{"data0"}},
	}, lookup, portassign.EngineOptions{Colors: cfg.Colors})
	if err != nil {
		log.Fatalf("demo engine: %v", err)
	}
	return engine
}

func newDemoExtractor(cfg config.Config) *section.Extractor {
	// 4x3 grid mesh.
	var nodes []mesh.Node
	var edges []mesh.Edge
	id := func(col, row int) mesh.NodeID {
		return mesh.NodeID(fmt.Sprintf("g%d_%d", col, row))
	}
	for col := 0; col < 4; col++ {
		for row := 0; row < 3; row++ {
			nodes = append(nodes, mesh.Node{
				ID:     id(col, row),
				Center: mesh.Point{X: float64(col * 12), Y: float64(row * 10)},
				Width:  10,
				Height: 8,
			})
			if col > 0 {
				edges = append(edges, mesh.Edge{A: id(col-1, row), B: id(col, row)})
			}
			if row > 0 {
				edges = append(edges, mesh.Edge{A: id(col, row-1), B: id(col, row)})
			}
		}
	}
	paths := []mesh.ConnectionPath{
		{Name: "clk", Nodes: []mesh.NodeID{id(0, 0), id(1, 0), id(2, 0), id(3, 0)}},
		{Name: "rst", Nodes: []mesh.NodeID{id(0, 2), id(1, 2), id(1, 1), id(2, 1)}},
	}

	hyper := cfg.Hyper()
	hyper.HopRadius = 1
	extractor, err := section.NewExtractor(id(1, 1), paths, nodes, edges,
		func(input section.SubSolverInput) section.SubSolver {
			return &demoSubSolver{budget: 2 * len(input.Terminals) * hyper.HopRadius * 3}
		},
		section.ExtractorOptions{Hyper: &hyper, Colors: cfg.Colors})
	if err != nil {
		log.Fatalf("demo extractor: %v", err)
	}
	return extractor
}

func (m model) Init() tea.Cmd {
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(autoplayInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Step):
			m.step()
		case key.Matches(msg, keys.Autoplay):
			m.autoplay = !m.autoplay
			if m.autoplay {
				return m, tick()
			}
		case key.Matches(msg, keys.Tab):
			m.active = (m.active + 1) % len(m.tabs)
		case key.Matches(msg, keys.Reset):
			fresh := newModel(m.cfg)
			fresh.active = m.active
			return fresh, nil
		}
	case tickMsg:
		if m.autoplay {
			m.step()
			return m, tick()
		}
	}
	return m, nil
}

func (m *model) step() {
	s := m.solvers[m.active]
	if s.Solved() || s.Failed() {
		return
	}
	if m.steps[m.active] >= m.cfg.MaxIterations {
		return
	}
	s.Step()
	m.steps[m.active]++
}

func (m model) View() string {
	tabs := ""
	for i, name := range m.tabs {
		if i == m.active {
			tabs += activeTabStyle.Render(name)
		} else {
			tabs += inactiveTabStyle.Render(name)
		}
	}

	s := m.solvers[m.active]
	status := fmt.Sprintf("state: unsolved  steps: %d", m.steps[m.active])
	switch {
	case s.Solved():
		status = solvedStyle.Render(fmt.Sprintf("state: solved  steps: %d", m.steps[m.active]))
	case s.Failed():
		status = failedStyle.Render(fmt.Sprintf("state: failed  steps: %d  error: %v",
			m.steps[m.active], s.Err()))
	}
	if m.autoplay {
		status += "  [autoplay]"
	}

	canvas := viz.RenderASCII(s.Visualize(), 72, 20)

	return titleStyle.Render("meshroute solver debugger") + "\n" +
		tabs + "\n" +
		statusStyle.Render(status) + "\n" +
		canvasStyle.Render(canvas) + "\n" +
		helpStyle.Render(m.help.View(keys)) + "\n"
}

func main() {
	cfg := config.Default()
	cfg.Colors = map[string]string{
		"clk":   "#FF5F87",
		"rst":   "#5FAFFF",
		"data0": "#AFFF5F",
		"data1": "#FFAF5F",
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	if _, err := tea.NewProgram(newModel(cfg), tea.WithAltScreen()).Run(); err != nil {
		if !errors.Is(err, tea.ErrProgramKilled) {
			log.Fatalf("tui: %v", err)
		}
	}
}

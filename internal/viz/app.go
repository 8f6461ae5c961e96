// Package viz is the interactive terminal front end: a bubbletea
// program that renders the working array as colored bars and drives the
// playback controller from the keyboard. The controller pushes rendered
// steps and lifecycle events into a channel; the program consumes them
// as messages, so all UI state changes flow through Update.
package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/avolodin/sortlab/internal/algorithms"
	"github.com/avolodin/sortlab/internal/config"
	"github.com/avolodin/sortlab/internal/dataset"
	"github.com/avolodin/sortlab/internal/playback"
	"github.com/avolodin/sortlab/internal/step"
)

type (
	stepMsg     step.Step
	stateMsg    playback.State
	completeMsg playback.Metrics
	resetMsg    struct{}
)

type Model struct {
	reg  *algorithms.Registry
	ctrl *playback.Controller
	gen  *dataset.Generator
	cfg  *config.Config

	algoIDs  []string
	algoIdx  int
	speeds   []string
	speedIdx int
	patterns []dataset.Pattern
	patIdx   int

	current  step.Step
	history  []float64
	width    int
	height   int
	showHelp bool
	errMsg   string

	msgs chan tea.Msg
}

// New wires a controller for the configured algorithm and input and
// returns a ready-to-run model.
func New(reg *algorithms.Registry, gen *dataset.Generator, cfg *config.Config) (*Model, error) {
	cfg = cfg.Normalized()

	algo, err := reg.Get(cfg.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("viz: %w: %s", err, cfg.Algorithm)
	}
	source, err := gen.Source(dataset.Pattern(cfg.Pattern), cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("viz: %w: %s", err, cfg.Pattern)
	}

	m := &Model{
		reg:      reg,
		gen:      gen,
		cfg:      cfg,
		algoIDs:  reg.IDs(),
		speeds:   config.ListSpeeds(),
		patterns: dataset.Patterns(),
		width:    100,
		height:   30,
		msgs:     make(chan tea.Msg, 256),
	}
	for i, id := range m.algoIDs {
		if id == algo.ID {
			m.algoIdx = i
		}
	}
	for i, name := range m.speeds {
		if name == cfg.Speed {
			m.speedIdx = i
		}
	}
	for i, p := range m.patterns {
		if string(p) == cfg.Pattern {
			m.patIdx = i
		}
	}

	m.ctrl = playback.NewController(playback.Producer(algo.Sort), source, playback.RenderFunc(func(s step.Step) {
		m.send(stepMsg(s))
	}))
	m.ctrl.SetDelay(cfg.Delay())

	m.ctrl.Subscribe(playback.EventStateChanged, func(n playback.Notification) {
		m.send(stateMsg(n.State))
	})
	m.ctrl.Subscribe(playback.EventPlaybackComplete, func(n playback.Notification) {
		m.send(completeMsg(n.Metrics))
	})
	m.ctrl.Subscribe(playback.EventReset, func(n playback.Notification) {
		m.send(resetMsg{})
	})

	return m, nil
}

// send never blocks the controller's scheduling path: when the UI falls
// behind, intermediate frames are dropped and the view catches up from
// the next one.
func (m *Model) send(msg tea.Msg) {
	select {
	case m.msgs <- msg:
	default:
	}
}

func (m *Model) listen() tea.Cmd {
	return func() tea.Msg { return <-m.msgs }
}

func (m *Model) Init() tea.Cmd { return m.listen() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case stepMsg:
		m.current = step.Step(msg)
		if m.ctrl.State() != playback.Idle {
			met := m.ctrl.Metrics()
			m.history = append(m.history, float64(met.Comparisons))
		}
		return m, m.listen()
	case stateMsg, completeMsg:
		return m, m.listen()
	case resetMsg:
		m.history = nil
		return m, m.listen()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.ctrl.Reset()
		return m, tea.Quit
	case " ":
		m.errMsg = ""
		if m.ctrl.State() == playback.Playing {
			m.ctrl.Pause()
		} else if err := m.ctrl.Start(); err != nil {
			m.errMsg = err.Error()
		}
	case "n":
		m.errMsg = ""
		if err := m.ctrl.StepOnce(); err != nil {
			m.errMsg = err.Error()
		}
	case "r":
		m.errMsg = ""
		m.ctrl.Reset()
	case "+", "=":
		m.cycleSpeed(1)
	case "-", "_":
		m.cycleSpeed(-1)
	case "tab":
		m.cycleAlgorithm(1)
	case "shift+tab":
		m.cycleAlgorithm(-1)
	case "p":
		m.cyclePattern()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) cycleSpeed(dir int) {
	m.speedIdx = (m.speedIdx + dir + len(m.speeds)) % len(m.speeds)
	if d, ok := config.SpeedDelay(m.speeds[m.speedIdx]); ok {
		m.ctrl.SetDelay(d)
	}
}

func (m *Model) cycleAlgorithm(dir int) {
	m.algoIdx = (m.algoIdx + dir + len(m.algoIDs)) % len(m.algoIDs)
	algo, err := m.reg.Get(m.algoIDs[m.algoIdx])
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.history = nil
	m.ctrl.SetProducer(playback.Producer(algo.Sort))
}

func (m *Model) cyclePattern() {
	m.patIdx = (m.patIdx + 1) % len(m.patterns)
	source, err := m.gen.Source(m.patterns[m.patIdx], m.cfg.Size)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.history = nil
	m.ctrl.SetSource(source)
}

func (m *Model) View() string {
	algo, _ := m.reg.Get(m.algoIDs[m.algoIdx])
	state := m.ctrl.State()
	met := m.ctrl.Metrics()

	status := statusStyles[state.String()].Render(strings.ToUpper(state.String()))
	header := headerStyle.Render(fmt.Sprintf("sortlab — %s  %s", algo.Name, status))

	barHeight := m.height - 12
	if barHeight < 5 {
		barHeight = 5
	}
	bars := canvasStyle.Render(RenderBars(m.currentOrInitial(), m.width-4, barHeight))

	stats := m.statsView(algo, state, met)

	var sections []string
	sections = append(sections, header, bars, stats)

	if len(m.history) > 2 && m.height > 24 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(4),
			asciigraph.Width(minInt(m.width-10, 70)),
			asciigraph.Caption("comparisons"),
		)
		sections = append(sections, canvasStyle.Render(graph))
	}

	if m.errMsg != "" {
		sections = append(sections, errStyle.Render("error: "+m.errMsg))
	}
	if desc := m.current.Description; desc != "" && state != playback.Idle {
		sections = append(sections, descStyle.Render(desc))
	}
	sections = append(sections, helpStyle.Render(m.helpView()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) currentOrInitial() step.Step {
	if m.current.Data.Array != nil {
		return m.current
	}
	return step.Step{Action: step.ClearMarks, Data: step.StepData{Array: m.ctrl.Input(), Pivot: -1}}
}

func (m *Model) statsView(algo algorithms.Algorithm, state playback.State, met playback.Metrics) string {
	line := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}
	rows := []string{
		line("comparisons", fmt.Sprintf("%d", met.Comparisons)),
		line("swaps", fmt.Sprintf("%d", met.Swaps)),
		line("accesses", fmt.Sprintf("%d", met.ArrayAccesses)),
		line("steps", fmt.Sprintf("%d / %d", met.StepsExecuted, m.ctrl.StepCount())),
		line("speed", fmt.Sprintf("%s (%s)", m.speeds[m.speedIdx], m.ctrl.Delay())),
		line("pattern", string(m.patterns[m.patIdx])),
		line("complexity", fmt.Sprintf("%s avg, %s space", algo.Time.Average, algo.Space)),
	}
	if state == playback.Completed {
		rows = append(rows, line("elapsed", met.Elapsed().String()))
	}
	return statsStyle.Render(strings.Join(rows, "\n"))
}

func (m *Model) helpView() string {
	if !m.showHelp {
		return "space play/pause · n step · r reset · +/- speed · tab algorithm · ? help · q quit"
	}
	return strings.Join([]string{
		"space  start, pause or resume playback",
		"n      execute a single step (always pauses)",
		"r      reset to a fresh array",
		"+/-    cycle speed presets",
		"tab    next algorithm    shift+tab previous",
		"p      cycle input pattern",
		"q      quit",
	}, "\n")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Run starts the interactive visualizer.
func Run(reg *algorithms.Registry, gen *dataset.Generator, cfg *config.Config) error {
	m, err := New(reg, gen, cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

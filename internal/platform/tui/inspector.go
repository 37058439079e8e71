package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gearlogo/internal/config"
	"github.com/vovakirdan/gearlogo/internal/core"
	"github.com/vovakirdan/gearlogo/internal/layout"
	"github.com/vovakirdan/gearlogo/internal/timeline"
)

// Inspector layout constants
const (
	minWidthForSketch = 100 // Minimum width to show the sketch beside the table
	tableWidth        = 44  // Quantity + value columns
	chromeHeight      = 12  // Title, warnings, playhead, help and borders
)

// Edit steps
const (
	angleStep      = math.Pi / 36 // 5°
	correctionStep = 0.5
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// InspectorModel is the Bubble Tea model for inspecting a logo layout.
// Every edit is recomposed from scratch; an edit that fails validation is
// reported and the last valid layout stays on screen.
type InspectorModel struct {
	base     config.LogoConfig // Restored by reset
	cfg      config.LogoConfig // Last valid configuration
	scene    layout.Scene
	timeline timeline.Timeline
	warnings []layout.Warning
	err      error // Last rejected edit
	playhead time.Duration
	playing  bool
	tickID   int // Current playback run
	table    table.Model
	help     help.Model
	keys     InspectorKeyMap
	width    int
	height   int
	quitting bool
}

// NewInspectorModel creates an inspector for cfg. It fails when cfg itself
// does not compose.
func NewInspectorModel(cfg config.LogoConfig, rt core.RuntimeConfig) (InspectorModel, error) {
	h := help.New()
	h.ShowAll = false
	h.Width = rt.ScreenW

	m := InspectorModel{
		base:   cfg,
		keys:   DefaultInspectorKeyMap(),
		help:   h,
		width:  rt.ScreenW,
		height: rt.ScreenH,
	}
	m.table = m.createTable()

	if err := m.compose(cfg); err != nil {
		return InspectorModel{}, err
	}
	return m, nil
}

// createTable creates the measurement table sized to the window.
func (m *InspectorModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Quantity", Width: 26},
		{Title: "Value", Width: tableWidth - 26},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-chromeHeight, 5)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// compose recomputes the scene for cfg and adopts it when it is valid.
func (m *InspectorModel) compose(cfg config.LogoConfig) error {
	scene, err := layout.Compose(cfg)
	if err != nil {
		return err
	}
	tl, err := timeline.Build(cfg, scene)
	if err != nil {
		return err
	}

	m.cfg = cfg
	m.scene = scene
	m.timeline = tl
	m.warnings = scene.Warnings()
	if m.playhead > tl.End() {
		m.playhead = 0
	}
	m.updateTableRows()
	return nil
}

// edit applies fn to a copy of the current configuration.
func (m InspectorModel) edit(fn func(*config.LogoConfig)) InspectorModel {
	next := m.cfg
	fn(&next)
	m.err = m.compose(next)
	return m
}

// updateTableRows fills the table with measurements and placements.
func (m *InspectorModel) updateTableRows() {
	ms := m.scene.Geometry.Measurements()
	rows := make([]table.Row, 0, len(ms)+len(m.scene.Elements))
	for _, q := range ms {
		rows = append(rows, table.Row{q.Name, q.FormatValue()})
	}
	if m.cfg.Epicyclic.Enabled {
		rows = append(rows,
			table.Row{"epicyclic.angle", fmt.Sprintf("%.2f°", m.cfg.Epicyclic.Angle*180/math.Pi)},
			table.Row{"epicyclic.correction", fmt.Sprintf("%.2f", m.cfg.Epicyclic.Correction)},
		)
	}
	for _, p := range m.scene.Elements {
		rows = append(rows, table.Row{
			"at " + string(p.ID),
			fmt.Sprintf("(%.1f, %.1f)", p.Position.X, p.Position.Y),
		})
	}
	m.table.SetRows(rows)
}

// Init initializes the inspector model.
func (m InspectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the inspector.
func (m InspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.GearMore):
			return m.edit(func(c *config.LogoConfig) { c.Gear.Teeth++ }), nil
		case key.Matches(msg, m.keys.GearLess):
			return m.edit(func(c *config.LogoConfig) { c.Gear.Teeth-- }), nil
		case key.Matches(msg, m.keys.RackMore):
			return m.edit(func(c *config.LogoConfig) { c.Rack.Teeth++ }), nil
		case key.Matches(msg, m.keys.RackLess):
			return m.edit(func(c *config.LogoConfig) { c.Rack.Teeth-- }), nil
		case key.Matches(msg, m.keys.AngleMore):
			return m.edit(func(c *config.LogoConfig) { c.Epicyclic.Angle += angleStep }), nil
		case key.Matches(msg, m.keys.AngleLess):
			return m.edit(func(c *config.LogoConfig) { c.Epicyclic.Angle -= angleStep }), nil
		case key.Matches(msg, m.keys.CorrectionMore):
			return m.edit(func(c *config.LogoConfig) { c.Epicyclic.Correction += correctionStep }), nil
		case key.Matches(msg, m.keys.CorrectionLess):
			return m.edit(func(c *config.LogoConfig) { c.Epicyclic.Correction -= correctionStep }), nil
		case key.Matches(msg, m.keys.Epicyclic):
			return m.edit(func(c *config.LogoConfig) { c.Epicyclic.Enabled = !c.Epicyclic.Enabled }), nil

		case key.Matches(msg, m.keys.Reset):
			m.playhead = 0
			m.playing = false
			m.tickID++
			m.err = m.compose(m.base)
			return m, nil

		case key.Matches(msg, m.keys.Play):
			m.playing = !m.playing
			m.tickID++
			if m.playing {
				return m, tickCmd(m.tickID, playbackInterval)
			}
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case TickMsg:
		if !m.playing || msg.ID != m.tickID {
			return m, nil
		}
		m.playhead += playbackInterval
		if m.playhead > m.timeline.End() {
			m.playhead = 0
		}
		return m, tickCmd(m.tickID, playbackInterval)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the inspector.
func (m InspectorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("%s  %dx%d", m.cfg.Canvas.Title, m.cfg.Canvas.Width, m.cfg.Canvas.Height)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	tablePanel := panelStyle.Render(m.table.View())
	if sketchW := m.width - tableWidth - 8; m.width >= minWidthForSketch && sketchW > 0 {
		sketchH := max(m.height-chromeHeight, 5)
		sk := core.NewSketch(sketchW, sketchH, m.scene.Bounds())
		DrawScene(sk, m.scene, m.warnings)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tablePanel, " ", panelStyle.Render(RenderSketch(sk))))
	} else {
		b.WriteString(tablePanel)
	}
	b.WriteString("\n")

	for _, w := range m.warnings {
		b.WriteString(warningStyle.Render("! " + w.String()))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("✗ " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(m.playheadLine()))
	b.WriteString("\n")

	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// playheadLine summarises the cues active at the playhead.
func (m InspectorModel) playheadLine() string {
	state := "paused"
	if m.playing {
		state = "playing"
	}
	active := m.timeline.ActiveAt(m.playhead)
	names := make([]string, len(active))
	for i, c := range active {
		names[i] = fmt.Sprintf("%s %s", c.Element, c.Property)
	}
	if len(names) == 0 {
		names = append(names, "idle")
	}
	return fmt.Sprintf("t=%v/%v %s: %s", m.playhead, m.timeline.End(), state, strings.Join(names, ", "))
}

// Config returns the last valid configuration.
func (m InspectorModel) Config() config.LogoConfig {
	return m.cfg
}

// Scene returns the last valid scene.
func (m InspectorModel) Scene() layout.Scene {
	return m.scene
}

// Err returns the validation error of the last rejected edit, if any.
func (m InspectorModel) Err() error {
	return m.err
}

// Playhead returns the current timeline position.
func (m InspectorModel) Playhead() time.Duration {
	return m.playhead
}

// IsQuitting returns true if user wants to quit.
func (m InspectorModel) IsQuitting() bool {
	return m.quitting
}

// Run runs the inspector in the alternate screen.
func Run(cfg config.LogoConfig, rt core.RuntimeConfig) error {
	model, err := NewInspectorModel(cfg, rt)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}

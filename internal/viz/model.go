package viz

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gravwell/internal/control"
	"github.com/san-kum/gravwell/internal/loop"
	"github.com/san-kum/gravwell/internal/metrics"
)

const (
	DefaultCanvasWidth  = 80
	DefaultCanvasHeight = 24

	historyCapacity = 300
	frameInterval   = time.Second / 60
	// headerRows is the number of terminal rows above the canvas.
	headerRows = 1
)

var keyActions = map[string]loop.Action{
	"b":     loop.ActionToggleBorders,
	"k":     loop.ActionToggleClearScreen,
	"m":     loop.ActionToggleWellMass,
	"c":     loop.ActionClearParticles,
	"r":     loop.ActionRemoveSome,
	"w":     loop.ActionRemoveWells,
	"up":    loop.ActionMassUp,
	"down":  loop.ActionMassDown,
	"right": loop.ActionTrailUp,
	"left":  loop.ActionTrailDown,
	"+":     loop.ActionSpeedUp,
	"=":     loop.ActionSpeedUp,
	"-":     loop.ActionSpeedDown,
}

const hintText = "LMB:spawn/drag ctrl/alt+LMB:well RMB:remove\n" +
	"b:borders k:screen clear c:clear r:remove 250\n" +
	"w:wells m:well mass ↑↓:mass ←→:trail +-:speed\n" +
	"space:pause t:theme ?:help q:quit"

type TickMsg time.Time

// Model is the bubbletea model of the terminal host. It drives a session
// from terminal ticks and draws the simulation onto a braille canvas next to
// a status panel with a kinetic energy plot.
type Model struct {
	sess     *loop.Session
	renderer *CanvasRenderer
	energy   *metrics.Series
	theme    Theme
	styles   styles

	last     time.Time
	paused   bool
	showHelp bool
}

// NewModel attaches a canvas renderer and a kinetic energy series to the
// session's simulation.
func NewModel(sess *loop.Session, theme string) Model {
	r := NewCanvasRenderer(NewCanvas(DefaultCanvasWidth, DefaultCanvasHeight), sess.Sim.Width(), sess.Sim.Height())
	sess.Sim.SetRenderer(r)

	ke := metrics.NewKineticEnergy()
	energy := metrics.NewSeries(ke, historyCapacity)
	sess.Sim.AddMetric(ke)
	sess.Sim.AddObserver(energy)

	t := GetTheme(theme)
	return Model{
		sess:     sess,
		renderer: r,
		energy:   energy,
		theme:    t,
		styles:   newStyles(t),
	}
}

// Run starts the terminal host in the alternate screen with mouse support
// and blocks until the user quits.
func Run(sess *loop.Session, theme string) error {
	p := tea.NewProgram(NewModel(sess, theme), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		m.advance(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = newStyles(m.theme)
	case "?":
		m.showHelp = !m.showHelp
	default:
		if a, ok := keyActions[key]; ok {
			m.sess.Do(a)
		}
	}
	return m, nil
}

// handleMouse converts terminal cells to simulation coordinates. Ctrl+click
// is swallowed by many terminals, so alt+click also spawns a well.
func (m Model) handleMouse(msg tea.MouseMsg) {
	p := m.sess.Pointer
	c := m.renderer.Canvas()
	col, row := msg.X, msg.Y-headerRows

	if msg.Action == tea.MouseActionRelease {
		if msg.Button != tea.MouseButtonRight {
			p.Up(control.ButtonLeft)
		}
		return
	}
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return
	}

	x, y := m.renderer.Unproject(col, row)
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			p.Down(control.ButtonLeft, x, y, msg.Ctrl || msg.Alt)
		case tea.MouseButtonRight:
			p.Down(control.ButtonRight, x, y, false)
		}
	case tea.MouseActionMotion:
		p.Move(x, y)
	}
}

// resize fits the canvas to the terminal, leaving room for the header and
// the bordered status panel.
func (m Model) resize(width, height int) {
	w := max(width-panelWidth-3, 10)
	h := max(height-headerRows-1, 4)
	m.renderer.Canvas().Resize(w, h)
}

// advance runs the simulation for the wall time since the previous tick and
// renders the result. A paused model still renders, so toggles show.
func (m *Model) advance(now time.Time) {
	if !m.last.IsZero() && !m.paused {
		m.sess.Frame(float64(now.Sub(m.last).Microseconds()) / 1000)
	}
	m.last = now
	m.sess.Sim.Render()
}

func (m Model) View() string {
	title := GradientText("gravwell", m.theme.TitleStart, m.theme.TitleEnd)
	status := "running"
	if m.paused {
		status = "paused"
	}
	header := title + " " + m.styles.muted.Render(status)

	canvas := m.styles.canvas.Render(strings.TrimSuffix(m.renderer.Canvas().String(), "\n"))
	side := m.panel()
	if m.showHelp {
		side = m.help()
	}
	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, canvas, side)
}

func (m Model) panel() string {
	var s strings.Builder
	for _, line := range m.sess.Status() {
		label, value, _ := strings.Cut(line, ": ")
		s.WriteString(m.styles.label.Render(label) + m.styles.value.Render(value) + "\n")
	}

	if vals := m.energy.Values(); len(vals) > 1 {
		chart := asciigraph.Plot(vals,
			asciigraph.Height(5),
			asciigraph.Width(panelWidth-12),
			asciigraph.Caption("kinetic energy"))
		s.WriteString("\n" + m.styles.graph.Render(chart) + "\n")
	}

	s.WriteString("\n" + Separator(panelWidth-2, m.styles.muted) + "\n")
	s.WriteString(m.styles.hint.Render("?:help q:quit"))
	return m.styles.panel.Render(s.String())
}

func (m Model) help() string {
	var s strings.Builder
	s.WriteString(m.styles.active.Render("keys") + "\n\n")
	s.WriteString(m.styles.value.Render(hintText) + "\n\n")
	s.WriteString(m.styles.label.Render("themes") + m.styles.value.Render(strings.Join(ThemeNames(), " ")))
	return m.styles.panel.Render(s.String())
}

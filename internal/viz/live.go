package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gaugekit/internal/config"
	"github.com/san-kum/gaugekit/internal/gauge"
	"github.com/san-kum/gaugekit/internal/render"
)

const (
	canvasCols      = 46
	canvasRows      = 13
	historyCapacity = 120
	stepsPerRange   = 40
	barWidth        = 24
)

// DialView frames the arc, ticks and hub of the canonical gauge.
var DialView = Rect{X: 4, Y: 4, W: 192, H: 112}

// ConfigChangedMsg tells the model to re-read its surface.
type ConfigChangedMsg struct{}

// Model is the interactive gauge. ↑/↓ move the value, t cycles themes.
type Model struct {
	surface  *config.Surface
	widget   *config.Widget
	renderer *render.Renderer
	canvas   *Canvas
	value    float64
	history  []float64
	theme    Theme
	styles   Styles
	showHelp bool
}

// NewModel starts at value with the surface's current widget.
func NewModel(surface *config.Surface, value float64, theme string) Model {
	t := GetTheme(theme)
	m := Model{
		surface:  surface,
		widget:   surface.Snapshot(),
		renderer: render.New(render.WithMemo(0)),
		canvas:   NewCanvas(canvasCols, canvasRows),
		theme:    t,
		styles:   NewStyles(t),
		history:  make([]float64, 0, historyCapacity),
	}
	m.setValue(value)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Value() float64 { return m.value }

func (m Model) Theme() Theme { return m.theme }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		step := m.step()
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k", "right", "l":
			m.setValue(m.value + step)
		case "down", "j", "left", "h":
			m.setValue(m.value - step)
		case "pgup":
			m.setValue(m.value + 5*step)
		case "pgdown":
			m.setValue(m.value - 5*step)
		case "home":
			m.setValue(m.widget.Speedometer.Min)
		case "end":
			m.setValue(m.widget.Speedometer.Max)
		case "t", "T":
			m.theme = NextTheme(m.theme.Name)
			m.styles = NewStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case ConfigChangedMsg:
		m.widget = m.surface.Snapshot()
		m.setValue(m.value)
	}
	return m, nil
}

func (m *Model) step() float64 {
	span := m.widget.Speedometer.Range().Span()
	if span <= 0 {
		return 1
	}
	return span / stepsPerRange
}

// setValue clamps to the configured range and records history.
func (m *Model) setValue(v float64) {
	rng := m.widget.Speedometer.Range()
	if rng.Valid() {
		v = gauge.Clamp(v, rng.Min, rng.Max)
	}
	m.value = v
	m.history = append(m.history, v)
	if len(m.history) > historyCapacity {
		m.history = m.history[len(m.history)-historyCapacity:]
	}
}

func (m Model) View() string {
	sp := m.widget.Speedometer
	in := render.GaugeInput(m.widget, m.value)
	sc := m.renderer.Gauge(in)
	color := gauge.ThresholdColor(m.value, sp.Thresholds, sp.GaugeColor)
	if len(sp.Thresholds) == 0 {
		color = sp.NeedleColor
	}

	m.canvas.Clear()
	m.canvas.DrawScene(sc, DialView)
	dial := Swatch(strings.TrimRight(m.canvas.String(), "\n"), color, m.theme.Primary)

	var s strings.Builder
	title := m.widget.DisplayText()
	if title == "" {
		title = "gauge"
	}
	s.WriteString(m.styles.Header.Render(GradientText(strings.ToUpper(title), m.theme.Primary, m.theme.Secondary)) + "\n")
	s.WriteString(m.styles.Label.Render("Value") + m.styles.Value.Render(render.ValueLabel(m.value, in.Range)) + "\n")
	s.WriteString(m.styles.Label.Render("Angle") + m.styles.Value.Render(fmt.Sprintf("%+.1f°", gauge.NeedleAngle(m.value, sp.Min, sp.Max))) + "\n")
	s.WriteString(m.styles.Label.Render("Band") + Swatch("■ "+color, color, m.theme.Primary) + "\n")
	s.WriteString(m.styles.Label.Render("Range") + m.styles.Value.Render(fmt.Sprintf("%g .. %g", sp.Min, sp.Max)) + "\n")
	s.WriteString(GaugeBar(gauge.Ratio(m.value, sp.Min, sp.Max), barWidth, color, m.theme) + "\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(5),
			asciigraph.Width(barWidth+8),
			asciigraph.Caption("history"))
		s.WriteString("\n" + m.styles.Graph.Render(chart) + "\n")
	}
	s.WriteString("\n" + Separator(barWidth+8, m.theme))
	s.WriteString(m.styles.Help.Render("\n↑↓:Value  PgUp/PgDn:Fast\nT:Theme(" + m.theme.Name + ")  ?:Help  Q:Quit"))

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Panel.Render(dial),
		m.styles.Panel.Render(s.String()))
	if m.showHelp {
		return helpText + "\n" + main
	}
	return main
}

const helpText = `
  ↑/k →/l    increase value by 1/40 of the range
  ↓/j ←/h    decrease value
  PgUp/PgDn  move five steps
  Home/End   jump to min / max
  T          cycle themes
  ?          toggle this help
  Q          quit
`

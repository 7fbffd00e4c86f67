package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/gaugekit/internal/config"
	"github.com/san-kum/gaugekit/internal/gauge"
	"github.com/san-kum/gaugekit/internal/render"
	"github.com/san-kum/gaugekit/internal/scene"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	if !c.IsSet(0, 0) || !c.IsSet(3, 3) {
		t.Fatal("dots not set")
	}
	if got := c.Grid[0][0]; got != 0x2801 {
		t.Errorf("cell 0 = %U, want U+2801", got)
	}
	if got := c.Grid[0][1]; got != 0x2880 {
		t.Errorf("cell 1 = %U, want U+2880", got)
	}

	c.Unset(0, 0)
	if c.IsSet(0, 0) || c.Grid[0][0] != blank {
		t.Error("unset left dot on")
	}

	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)
	c.Clear()
	if c.String() != string([]rune{blank, blank})+"\n" {
		t.Errorf("clear: %q", c.String())
	}
}

func TestCanvasDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(1, 1, 15, 17)
	if !c.IsSet(1, 1) || !c.IsSet(15, 17) {
		t.Error("line endpoints missing")
	}
}

func TestCanvasArc(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawArc(20, 20, 10, 180, 0)
	for _, p := range [][2]int{{10, 20}, {20, 10}, {30, 20}} {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("arc misses %v", p)
		}
	}
	if c.IsSet(20, 30) {
		t.Error("upper arc reached the bottom")
	}
}

func TestDrawSceneNeedle(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		tip   [2]float64
	}{
		{"min", 0, [2]float64{30, 100}},
		{"mid", 20, [2]float64{100, 30}},
		{"max", 40, [2]float64{170, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scene.New(200, 200)
			s.Add(&scene.Group{
				Rotate: gauge.NeedleAngle(tt.value, 0, 40), RotateX: 100, RotateY: 100,
				Children: []scene.Node{&scene.Line{X1: 100, Y1: 100, X2: 100, Y2: 30}},
			})
			c := NewCanvas(100, 50)
			c.DrawScene(s, SceneRect(s))
			if !c.IsSet(int(tt.tip[0]), int(tt.tip[1])) {
				t.Errorf("needle tip %v not plotted", tt.tip)
			}
		})
	}
}

func TestDrawSceneGauge(t *testing.T) {
	s := render.New().Gauge(render.GaugeInput(config.DefaultWidget(), 10))
	c := NewCanvas(canvasCols, canvasRows)
	c.DrawScene(s, DialView)
	if !strings.ContainsFunc(c.String(), func(r rune) bool { return r > blank }) {
		t.Error("nothing plotted")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "minimal" {
		t.Error("unknown theme should fall back to minimal")
	}
	if NextTheme("sunset").Name != Themes[0].Name {
		t.Error("theme cycle should wrap")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names incomplete")
	}
}

func TestSweep(t *testing.T) {
	pts := Sweep(gauge.DefaultRange(), gauge.DefaultThresholds(), "#ccc", 5)
	if len(pts) != 5 {
		t.Fatalf("got %d points", len(pts))
	}
	if pts[0].Angle != -90 || pts[4].Angle != 90 || pts[2].Angle != 0 {
		t.Errorf("angles: %v %v %v", pts[0].Angle, pts[2].Angle, pts[4].Angle)
	}
	if pts[0].Color != "#ff0000" || pts[4].Color != "#00ff00" {
		t.Errorf("colors: %s %s", pts[0].Color, pts[4].Color)
	}

	out := RenderSweep(gauge.DefaultRange(), gauge.DefaultThresholds(), "#ccc", 40)
	if !strings.Contains(out, "needle angle") || !strings.Contains(out, "#ffff00") {
		t.Errorf("sweep output incomplete:\n%s", out)
	}
	if !strings.Contains(BandTable(nil, "#ccc"), "#ccc") {
		t.Error("empty band table should show fallback")
	}
}

func press(m Model, key string) Model {
	var msg tea.KeyMsg
	switch key {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "end":
		msg = tea.KeyMsg{Type: tea.KeyEnd}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelKeys(t *testing.T) {
	m := NewModel(config.NewSurface(nil), 20, "minimal")

	m = press(m, "up")
	if m.Value() != 21 {
		t.Errorf("up: got %v, want 21", m.Value())
	}
	m = press(m, "down")
	m = press(m, "down")
	if m.Value() != 19 {
		t.Errorf("down: got %v, want 19", m.Value())
	}
	m = press(m, "end")
	m = press(m, "up")
	if m.Value() != 40 {
		t.Errorf("value should clamp at max, got %v", m.Value())
	}
	m = press(m, "t")
	if m.Theme().Name != "cyberpunk" {
		t.Errorf("theme: got %s", m.Theme().Name)
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelConfigChanged(t *testing.T) {
	surface := config.NewSurface(nil)
	m := NewModel(surface, 30, "minimal")

	max := 20.0
	surface.Apply(config.Patch{Max: &max})
	next, _ := m.Update(ConfigChangedMsg{})
	m = next.(Model)
	if m.Value() != 20 {
		t.Errorf("value should clamp to new max, got %v", m.Value())
	}
	if !strings.Contains(m.View(), "20 knt") {
		t.Error("view missing value label")
	}
}

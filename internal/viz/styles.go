package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/gaugekit/internal/gauge"
	"github.com/san-kum/gaugekit/internal/palette"
)

// Styles are built per theme so a theme switch restyles everything.
type Styles struct {
	Panel  lipgloss.Style
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Graph  lipgloss.Style
	Help   lipgloss.Style
	Error  lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Header: lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).MarginBottom(1),
		Label:  lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		Value:  lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Graph:  lipgloss.NewStyle().Foreground(t.Accent),
		Help:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true).MarginTop(1),
		Error:  lipgloss.NewStyle().Foreground(t.Error),
	}
}

// Swatch paints text in a CSS color string, falling back to fallback when
// the color is not understood.
func Swatch(text, css string, fallback lipgloss.Color) string {
	hex := palette.Hex(css, string(fallback))
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(text)
}

// GaugeBar renders the value's position along the range as a bar in the
// threshold color.
func GaugeBar(ratio float64, width int, css string, t Theme) string {
	if width <= 0 {
		return ""
	}
	filled := int(gauge.Clamp(ratio, 0, 1)*float64(width) + 0.5)
	return Swatch(strings.Repeat("█", filled), css, t.Primary) +
		lipgloss.NewStyle().Foreground(t.Muted).Render(strings.Repeat("░", width-filled))
}

// GradientText blends each rune from start to end in Lab space.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	a, errA := colorful.Hex(palette.Hex(string(start), "#ffffff"))
	b, errB := colorful.Hex(palette.Hex(string(end), "#ffffff"))
	if errA != nil || errB != nil {
		return text
	}

	var sb strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := a.BlendLab(b, t).Clamped()
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return sb.String()
}

func Separator(width int, t Theme) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(t.Muted).Render(left + " ◆ " + right)
}

package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/san-kum/gaugekit/internal/config"
	"github.com/san-kum/gaugekit/internal/gauge"
	"github.com/san-kum/gaugekit/internal/scene"
)

const (
	WidgetTextSize  = 14.0
	widgetWrapChars = 28
	widgetMargin    = 4.0
)

// GaugeInput builds the gauge input described by a widget for value.
func GaugeInput(w *config.Widget, value float64) Input {
	s := w.Speedometer
	return Input{
		Value:      value,
		Range:      s.Range(),
		Thresholds: s.Thresholds,
		Style:      StyleFromConfig(s),
		TickCount:  gauge.DefaultTickCount,
		Binding:    w.Style.DynamicStyle,
	}
}

// Widget renders the widget's text block with the gauge stacked below it
// when the speedometer is shown.
func (r *Renderer) Widget(w *config.Widget, value float64) *scene.Scene {
	lines := WrapText(w.DisplayText(), w.Style.Wrap)
	lineHeight := WidgetTextSize * 1.25

	textHeight := 0.0
	if len(lines) > 0 {
		textHeight = float64(len(lines))*lineHeight + 2*widgetMargin
	}

	height := textHeight
	if w.Speedometer.Show {
		height += gauge.CanvasHeight
	}
	if height == 0 {
		height = lineHeight
	}

	s := scene.New(gauge.CanvasWidth, height)
	s.Title = w.Tooltip

	for i, line := range lines {
		s.Add(&scene.Text{
			X:       widgetMargin,
			Y:       widgetMargin + (float64(i)+0.5)*lineHeight,
			Content: line,
			Color:   w.Style.TextColor,
			Size:    WidgetTextSize,
			Anchor:  scene.AnchorStart,
			Class:   "widget-text",
		})
	}

	if w.Speedometer.Show {
		in := GaugeInput(w, value)
		style := in.Style
		if r.resolve != nil {
			style = r.resolve(in.Binding, style)
		}
		s.Padding = style.Padding
		s.Add(&scene.Group{
			TranslateY: textHeight,
			Class:      "speedometer",
			Children:   r.gaugeNodes(in, style),
		})
	}
	return s
}

// WrapText splits text into display lines, word wrapping when wrap is set.
func WrapText(text string, wrap bool) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	if wrap {
		text = ansi.Wordwrap(text, widgetWrapChars, "-")
	}
	return strings.Split(text, "\n")
}

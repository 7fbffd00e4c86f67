package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gaugekit/internal/gauge"
	"github.com/san-kum/gaugekit/internal/logger"
)

const (
	DefaultGaugeColor  = "#ccc"
	DefaultNeedleColor = gauge.DefaultNeedleColor
	DefaultTickColor   = "#000"
	DefaultTickFont    = "Arial"
	DefaultTickSize    = 10.0
	DefaultTextColor   = "#000"
	DefaultTextFont    = "Arial"
	DefaultTextSize    = 12.0
	DefaultPadding     = 0.0
)

// Widget is the full configuration of a text widget with an optional gauge.
type Widget struct {
	Text        string      `yaml:"text"`
	Placeholder string      `yaml:"placeholder,omitempty"`
	Style       TextStyle   `yaml:"style"`
	Tooltip     string      `yaml:"tooltip,omitempty"`
	Speedometer Speedometer `yaml:"speedometer"`
}

// TextStyle styles the widget's text block. DynamicStyle is an opaque
// binding expression resolved by the host.
type TextStyle struct {
	Wrap         bool   `yaml:"wrap"`
	TextColor    string `yaml:"text_color"`
	DynamicStyle string `yaml:"dynamic_style,omitempty"`
}

// Speedometer holds every gauge option.
type Speedometer struct {
	Show        bool              `yaml:"show"`
	Min         float64           `yaml:"min"`
	Max         float64           `yaml:"max"`
	GaugeColor  string            `yaml:"gauge_color"`
	NeedleColor string            `yaml:"needle_color"`
	TickColor   string            `yaml:"tick_color"`
	TickFont    string            `yaml:"tick_font"`
	TickSize    float64           `yaml:"tick_size"`
	TextColor   string            `yaml:"text_color"`
	TextFont    string            `yaml:"text_font"`
	TextSize    float64           `yaml:"text_size"`
	TextBold    bool              `yaml:"text_bold"`
	Padding     float64           `yaml:"padding"`
	Thresholds  []gauge.Threshold `yaml:"thresholds"`
}

// Range returns the configured value range.
func (s Speedometer) Range() gauge.Range {
	return gauge.Range{Min: s.Min, Max: s.Max}
}

func DefaultSpeedometer() Speedometer {
	return Speedometer{
		Show:        true,
		Min:         gauge.DefaultMin,
		Max:         gauge.DefaultMax,
		GaugeColor:  DefaultGaugeColor,
		NeedleColor: DefaultNeedleColor,
		TickColor:   DefaultTickColor,
		TickFont:    DefaultTickFont,
		TickSize:    DefaultTickSize,
		TextColor:   DefaultTextColor,
		TextFont:    DefaultTextFont,
		TextSize:    DefaultTextSize,
		Padding:     DefaultPadding,
		Thresholds:  gauge.DefaultThresholds(),
	}
}

func DefaultWidget() *Widget {
	return &Widget{
		Style: TextStyle{
			Wrap:      true,
			TextColor: DefaultTextColor,
		},
		Speedometer: DefaultSpeedometer(),
	}
}

// Load reads a YAML widget file over the defaults.
func Load(path string) (*Widget, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	w, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug().Str("path", path).Int("thresholds", len(w.Speedometer.Thresholds)).Msg("widget config loaded")
	return w, nil
}

// Parse decodes YAML over the defaults and normalizes the result.
func Parse(data []byte) (*Widget, error) {
	w := DefaultWidget()
	if err := yaml.Unmarshal(data, w); err != nil {
		return nil, err
	}
	w.Normalize()
	return w, nil
}

func Save(path string, w *Widget) error {
	data, err := yaml.Marshal(w)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Normalize replaces values the renderer cannot use with defaults. A
// degenerate range is left alone; the geometry guards it.
func (w *Widget) Normalize() {
	s := &w.Speedometer
	s.GaugeColor = orDefault(s.GaugeColor, DefaultGaugeColor)
	s.NeedleColor = orDefault(s.NeedleColor, DefaultNeedleColor)
	s.TickColor = orDefault(s.TickColor, DefaultTickColor)
	s.TickFont = orDefault(s.TickFont, DefaultTickFont)
	s.TextColor = orDefault(s.TextColor, DefaultTextColor)
	s.TextFont = orDefault(s.TextFont, DefaultTextFont)
	s.TickSize = nonNegative(s.TickSize)
	s.TextSize = nonNegative(s.TextSize)
	s.Padding = nonNegative(s.Padding)
	w.Style.TextColor = orDefault(w.Style.TextColor, DefaultTextColor)
}

// Clone returns a deep copy.
func (w *Widget) Clone() *Widget {
	c := *w
	if w.Speedometer.Thresholds != nil {
		c.Speedometer.Thresholds = append([]gauge.Threshold(nil), w.Speedometer.Thresholds...)
	}
	return &c
}

// DisplayText returns the text, or the placeholder when the text is empty.
func (w *Widget) DisplayText() string {
	if w.Text != "" {
		return w.Text
	}
	return w.Placeholder
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func nonNegative(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	return v
}

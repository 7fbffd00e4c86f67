package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/gaugekit/internal/gauge"
)

var Presets = map[string]func() *Widget{
	"speed": func() *Widget {
		w := DefaultWidget()
		w.Text = "Speed"
		return w
	},
	"temperature": func() *Widget {
		w := DefaultWidget()
		w.Text = "Coolant"
		w.Tooltip = "engine coolant temperature"
		s := &w.Speedometer
		s.Min, s.Max = 40, 120
		s.GaugeColor = "#999"
		s.Thresholds = []gauge.Threshold{
			{Value: 70, Color: "#3b82f6"},
			{Value: 100, Color: "#22c55e"},
			{Value: 120, Color: "#ef4444"},
		}
		return w
	},
	"battery": func() *Widget {
		w := DefaultWidget()
		w.Text = "Battery"
		s := &w.Speedometer
		s.Min, s.Max = 0, 100
		s.TextBold = true
		s.Thresholds = []gauge.Threshold{
			{Value: 20, Color: "#ff0000"},
			{Value: 50, Color: "#ffa500"},
			{Value: 100, Color: "#00aa00"},
		}
		return w
	},
	"rpm": func() *Widget {
		w := DefaultWidget()
		w.Text = "RPM x1000"
		s := &w.Speedometer
		s.Min, s.Max = 0, 8
		s.NeedleColor = "#ff6600"
		s.Thresholds = nil
		return w
	},
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Widget {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

// Resolve picks the widget for a render: the named preset, else the file
// at path, else the defaults.
func Resolve(preset, path string) (*Widget, error) {
	switch {
	case preset != "":
		w := GetPreset(preset)
		if w == nil {
			return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownPreset, preset, strings.Join(ListPresets(), ", "))
		}
		return w, nil
	case path != "":
		return Load(path)
	}
	return DefaultWidget(), nil
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

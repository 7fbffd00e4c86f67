package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/gaugekit/internal/gauge"
)

// ParseNumericInput validates text from a numeric settings field. Only
// finite numbers are accepted.
func ParseNumericInput(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return v, nil
}

// ParseThresholds reads "value:color" pairs separated by commas, for
// example "1:#ff0000,2:#ffff00". An empty string yields no thresholds.
func ParseThresholds(raw string) ([]gauge.Threshold, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []gauge.Threshold{}, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]gauge.Threshold, 0, len(parts))
	for _, part := range parts {
		value, color, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok || strings.TrimSpace(color) == "" {
			return nil, fmt.Errorf("%w: threshold %q is not value:color", ErrInvalidNumber, part)
		}
		v, err := ParseNumericInput(value)
		if err != nil {
			return nil, err
		}
		out = append(out, gauge.Threshold{Value: v, Color: strings.TrimSpace(color)})
	}
	return out, nil
}

// FieldKeys lists the keys SetField understands.
var FieldKeys = []string{
	"text", "placeholder", "tooltip",
	"style.wrap", "style.text_color", "style.dynamic_style",
	"speedometer.show", "speedometer.min", "speedometer.max",
	"speedometer.gauge_color", "speedometer.needle_color",
	"speedometer.tick_color", "speedometer.tick_font", "speedometer.tick_size",
	"speedometer.text_color", "speedometer.text_font", "speedometer.text_size", "speedometer.text_bold",
	"speedometer.padding", "speedometer.thresholds",
}

// SetField turns a committed settings edit into a Patch. Invalid input is
// rejected and never reaches the widget.
func SetField(key, raw string) (Patch, error) {
	var p Patch
	str := func(dst **string) error { v := raw; *dst = &v; return nil }
	num := func(dst **float64) error {
		v, err := ParseNumericInput(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = &v
		return nil
	}
	boolean := func(dst **bool) error {
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%s: invalid boolean %q", key, raw)
		}
		*dst = &v
		return nil
	}

	var err error
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "text":
		err = str(&p.Text)
	case "placeholder":
		err = str(&p.Placeholder)
	case "tooltip":
		err = str(&p.Tooltip)
	case "style.wrap":
		err = boolean(&p.Wrap)
	case "style.text_color":
		err = str(&p.TextColor)
	case "style.dynamic_style":
		err = str(&p.DynamicStyle)
	case "speedometer.show":
		err = boolean(&p.Show)
	case "speedometer.min":
		err = num(&p.Min)
	case "speedometer.max":
		err = num(&p.Max)
	case "speedometer.gauge_color":
		err = str(&p.GaugeColor)
	case "speedometer.needle_color":
		err = str(&p.NeedleColor)
	case "speedometer.tick_color":
		err = str(&p.TickColor)
	case "speedometer.tick_font":
		err = str(&p.TickFont)
	case "speedometer.tick_size":
		err = num(&p.TickSize)
	case "speedometer.text_color":
		err = str(&p.ValueColor)
	case "speedometer.text_font":
		err = str(&p.ValueFont)
	case "speedometer.text_size":
		err = num(&p.ValueSize)
	case "speedometer.text_bold":
		err = boolean(&p.ValueBold)
	case "speedometer.padding":
		err = num(&p.Padding)
	case "speedometer.thresholds":
		ts, terr := ParseThresholds(raw)
		if terr != nil {
			return Patch{}, fmt.Errorf("%s: %w", key, terr)
		}
		p.Thresholds = &ts
	default:
		return Patch{}, fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	if err != nil {
		return Patch{}, err
	}
	return p, nil
}

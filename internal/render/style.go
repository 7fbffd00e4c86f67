package render

import "github.com/san-kum/gaugekit/internal/config"

// Unit is appended to the value label.
const Unit = "knt"

// Style is the paint applied to a gauge. Strings are passed through to the
// output backend as-is.
type Style struct {
	GaugeColor  string
	NeedleColor string
	TickColor   string
	TickFont    string
	TickSize    float64
	TextColor   string
	TextFont    string
	TextSize    float64
	TextBold    bool
	Padding     float64
}

func DefaultStyle() Style {
	return StyleFromConfig(config.DefaultSpeedometer())
}

// StyleFromConfig extracts the paint fields of a speedometer block.
func StyleFromConfig(s config.Speedometer) Style {
	return Style{
		GaugeColor:  s.GaugeColor,
		NeedleColor: s.NeedleColor,
		TickColor:   s.TickColor,
		TickFont:    s.TickFont,
		TickSize:    s.TickSize,
		TextColor:   s.TextColor,
		TextFont:    s.TextFont,
		TextSize:    s.TextSize,
		TextBold:    s.TextBold,
		Padding:     s.Padding,
	}
}

// StyleResolver evaluates a dynamic style binding against the base style.
// binding is the widget's opaque expression and may be empty.
type StyleResolver func(binding string, base Style) Style


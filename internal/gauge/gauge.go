package gauge

import "math"

// Layout constants of the canonical canvas.
const (
	CanvasWidth  = 200.0
	CanvasHeight = 200.0

	CenterX = 100.0
	CenterY = 100.0

	ArcRadius       = 90.0
	TickOuterRadius = 90.0
	TickInnerRadius = 82.0
	LabelRadius     = 65.0

	HubRadius        = 12.0
	MinorInnerRadius = 12.0
	MinorOuterRadius = 18.0
	NeedleTipY       = 50.0

	ValueLabelY = 170.0
)

const (
	DefaultMin       = 0.0
	DefaultMax       = 40.0
	DefaultTickCount = 4

	// DefaultGaugeColor is used when a gauge is built without any styling.
	// The widget renderer overrides it with its own lighter default.
	DefaultGaugeColor  = "#000"
	DefaultNeedleColor = "red"

	minAngle = -90.0
)

// Range is the domain mapped onto the 180° arc.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// DefaultRange returns the 0..40 range used when none is configured.
func DefaultRange() Range {
	return Range{Min: DefaultMin, Max: DefaultMax}
}

// Valid reports whether the range has a positive span.
func (r Range) Valid() bool {
	return r.Max > r.Min && !math.IsInf(r.Max-r.Min, 0)
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Clamp restricts v to [lo, hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Ratio returns the position of value within [min, max] as a fraction in
// [0, 1]. A degenerate range yields 0.
func Ratio(value, min, max float64) float64 {
	span := max - min
	if !(span > 0) || math.IsInf(span, 0) {
		return 0
	}
	return Clamp((value-min)/span, 0, 1)
}

// NeedleAngle maps value onto a rotation in degrees: min -> -90, max -> 90.
func NeedleAngle(value, min, max float64) float64 {
	return Ratio(value, min, max)*180 + minAngle
}

// PointOnArc returns canvas coordinates of the point at angleDeg on a
// circle of radius r around the gauge center.
func PointOnArc(angleDeg, r float64) Point {
	rad := angleDeg * math.Pi / 180
	return Point{
		X: CenterX + r*math.Cos(rad),
		Y: CenterY - r*math.Sin(rad),
	}
}

// Point is a canvas coordinate.
type Point struct {
	X, Y float64
}

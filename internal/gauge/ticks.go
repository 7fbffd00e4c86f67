package gauge

import "math"

// Tick is one labelled graduation on the arc.
type Tick struct {
	Fraction float64
	Angle    float64 // degrees, 180 at the left end, 0 at the right
	Inner    Point
	Outer    Point
	Anchor   Point
	Label    float64
}

// Ticks lays out count+1 evenly spaced ticks from min to max, ordered left
// to right. A non-positive count uses DefaultTickCount.
func Ticks(min, max float64, count int) []Tick {
	if count <= 0 {
		count = DefaultTickCount
	}
	ticks := make([]Tick, 0, count+1)
	for i := 0; i <= count; i++ {
		f := float64(i) / float64(count)
		angle := 180 * (1 - f)
		ticks = append(ticks, Tick{
			Fraction: f,
			Angle:    angle,
			Inner:    PointOnArc(angle, TickInnerRadius),
			Outer:    PointOnArc(angle, TickOuterRadius),
			Anchor:   PointOnArc(angle, LabelRadius),
			Label:    roundHalfUp(min + (max-min)*f),
		})
	}
	return ticks
}

// MinorTickAngles returns the eight fixed hub marks, every 45°.
func MinorTickAngles() []float64 {
	angles := make([]float64, 8)
	for i := range angles {
		angles[i] = float64(i) * 45
	}
	return angles
}

// roundHalfUp rounds to the nearest integer with .5 going toward +Inf, so
// -2.5 labels as -2.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// Package gauge provides the geometry of a semicircular speedometer gauge.
//
// Everything here is a pure function of its arguments:
//
//   - [NeedleAngle]: maps a value within a [Range] onto a rotation in [-90, 90]
//   - [ThresholdColor]: picks the band color for a value from a set of [Threshold]s
//   - [Ticks]: lays out labelled graduations along the arc, left to right
//
// # Coordinate Space
//
// Geometry is expressed in a fixed 200x200 logical canvas with the arc
// centered at (100, 100). Angles on the arc follow the usual math
// convention (0° is right, 180° is left, y grows upward) and are converted
// into canvas coordinates where y grows downward. Needle rotation uses the
// SVG convention instead: 0° points straight up and positive angles turn
// clockwise.
//
// # Example
//
//	r := gauge.Range{Min: 0, Max: 40}
//	angle := gauge.NeedleAngle(20, r.Min, r.Max)            // 0
//	col := gauge.ThresholdColor(20, gauge.DefaultThresholds(), "#ccc")
//	ticks := gauge.Ticks(r.Min, r.Max, gauge.DefaultTickCount)
package gauge

package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gaugekit/internal/gauge"
)

// SweepPoint is one sample of a range sweep.
type SweepPoint struct {
	Value float64
	Angle float64
	Color string
}

// Sweep samples the range evenly, endpoints included.
func Sweep(rng gauge.Range, ts []gauge.Threshold, fallback string, samples int) []SweepPoint {
	if samples < 2 {
		samples = 2
	}
	pts := make([]SweepPoint, samples)
	for i := range pts {
		v := rng.Min + rng.Span()*float64(i)/float64(samples-1)
		pts[i] = SweepPoint{
			Value: v,
			Angle: gauge.NeedleAngle(v, rng.Min, rng.Max),
			Color: gauge.ThresholdColor(v, ts, fallback),
		}
	}
	return pts
}

// RenderSweep plots needle angle against value and lists the color bands.
func RenderSweep(rng gauge.Range, ts []gauge.Threshold, fallback string, width int) string {
	if width < 10 {
		width = 60
	}
	pts := Sweep(rng, ts, fallback, width)
	angles := make([]float64, len(pts))
	for i, p := range pts {
		angles[i] = p.Angle
	}

	var sb strings.Builder
	sb.WriteString(asciigraph.Plot(angles,
		asciigraph.Height(10),
		asciigraph.Width(width),
		asciigraph.LowerBound(-90),
		asciigraph.UpperBound(90),
		asciigraph.Caption(fmt.Sprintf("needle angle, %g to %g", rng.Min, rng.Max))))
	sb.WriteString("\n\n")
	sb.WriteString(BandTable(ts, fallback))
	return sb.String()
}

// BandTable lists which color each value band selects.
func BandTable(ts []gauge.Threshold, fallback string) string {
	sorted := gauge.SortThresholds(ts)
	if len(sorted) == 0 {
		return fmt.Sprintf("all values      %s\n", fallback)
	}
	var sb strings.Builder
	for _, t := range sorted {
		sb.WriteString(fmt.Sprintf("<= %-12g %s\n", t.Value, t.Color))
	}
	top := sorted[len(sorted)-1]
	sb.WriteString(fmt.Sprintf(">  %-12g %s\n", top.Value, top.Color))
	return sb.String()
}

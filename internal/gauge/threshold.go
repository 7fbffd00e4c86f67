package gauge

import "sort"

// Threshold is a color-change boundary along the value range.
type Threshold struct {
	Value float64 `yaml:"value" json:"value"`
	Color string  `yaml:"color" json:"color"`
}

// DefaultThresholds returns the three-tier red/yellow/green set.
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Value: 1, Color: "#ff0000"},
		{Value: 2, Color: "#ffff00"},
		{Value: 3, Color: "#00ff00"},
	}
}

// SortThresholds returns a copy of ts sorted ascending by Value. Entries
// with equal values keep their input order.
func SortThresholds(ts []Threshold) []Threshold {
	sorted := make([]Threshold, len(ts))
	copy(sorted, ts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value < sorted[j].Value
	})
	return sorted
}

// ThresholdColor returns the color of the first threshold (ascending) whose
// value is >= value. A value above every threshold takes the top band's
// color. With no thresholds, fallback is returned.
func ThresholdColor(value float64, thresholds []Threshold, fallback string) string {
	if len(thresholds) == 0 {
		return fallback
	}
	sorted := SortThresholds(thresholds)
	for _, t := range sorted {
		if t.Value >= value {
			return t.Color
		}
	}
	return sorted[len(sorted)-1].Color
}

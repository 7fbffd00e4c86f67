package gauge_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gaugekit/internal/gauge"
)

var _ = Describe("NeedleAngle", func() {
	It("maps the range ends onto -90 and 90", func() {
		Expect(gauge.NeedleAngle(0, 0, 40)).To(Equal(-90.0))
		Expect(gauge.NeedleAngle(40, 0, 40)).To(Equal(90.0))
	})

	It("points straight up at the midpoint", func() {
		Expect(gauge.NeedleAngle(20, 0, 40)).To(BeNumerically("~", 0, 1e-12))
	})

	It("is monotonic and bounded inside the range", func() {
		prev := math.Inf(-1)
		for v := -5.0; v <= 15.0; v += 0.25 {
			a := gauge.NeedleAngle(v, -5, 15)
			Expect(a).To(BeNumerically(">=", prev))
			Expect(a).To(And(BeNumerically(">=", -90), BeNumerically("<=", 90)))
			prev = a
		}
	})

	DescribeTable("clamps values outside the range",
		func(value, want float64) {
			Expect(gauge.NeedleAngle(value, 0, 40)).To(Equal(want))
		},
		Entry("below min", -10.0, -90.0),
		Entry("far below min", -1e9, -90.0),
		Entry("above max", 41.0, 90.0),
		Entry("far above max", 1e12, 90.0),
		Entry("positive infinity", math.Inf(1), 90.0),
		Entry("NaN parks at min", math.NaN(), -90.0),
	)

	It("parks at the minimum for a degenerate range", func() {
		Expect(func() { gauge.NeedleAngle(10, 10, 10) }).NotTo(Panic())
		Expect(gauge.NeedleAngle(10, 10, 10)).To(Equal(-90.0))
		Expect(gauge.NeedleAngle(50, 10, 10)).To(Equal(-90.0))
		Expect(gauge.NeedleAngle(5, 10, 0)).To(Equal(-90.0))
	})

	It("returns identical results for identical inputs", func() {
		a := gauge.NeedleAngle(13.37, 1, 99)
		b := gauge.NeedleAngle(13.37, 1, 99)
		Expect(math.Float64bits(a)).To(Equal(math.Float64bits(b)))
	})
})

var _ = Describe("ThresholdColor", func() {
	thresholds := []gauge.Threshold{
		{Value: 1, Color: "red"},
		{Value: 2, Color: "yellow"},
		{Value: 3, Color: "green"},
	}

	DescribeTable("selects the first band at or above the value",
		func(value float64, want string) {
			Expect(gauge.ThresholdColor(value, thresholds, "#ccc")).To(Equal(want))
		},
		Entry("below the first band", 0.5, "red"),
		Entry("on the first boundary", 1.0, "red"),
		Entry("between bands", 1.5, "yellow"),
		Entry("on the last boundary", 3.0, "green"),
		Entry("above every band", 10.0, "green"),
	)

	It("sorts unsorted input without mutating it", func() {
		shuffled := []gauge.Threshold{
			{Value: 3, Color: "green"},
			{Value: 1, Color: "red"},
			{Value: 2, Color: "yellow"},
		}
		Expect(gauge.ThresholdColor(1.5, shuffled, "#ccc")).To(Equal("yellow"))
		Expect(gauge.ThresholdColor(99, shuffled, "#ccc")).To(Equal("green"))
		Expect(shuffled[0].Color).To(Equal("green"))
	})

	It("returns the fallback when there are no thresholds", func() {
		for _, v := range []float64{-1, 0, 1, 1e9} {
			Expect(gauge.ThresholdColor(v, nil, "#abc")).To(Equal("#abc"))
			Expect(gauge.ThresholdColor(v, []gauge.Threshold{}, "#abc")).To(Equal("#abc"))
		}
	})

	It("resolves ties to one of the tied colors", func() {
		tied := []gauge.Threshold{
			{Value: 5, Color: "blue"},
			{Value: 5, Color: "purple"},
		}
		Expect(gauge.ThresholdColor(4, tied, "#ccc")).To(BeElementOf("blue", "purple"))
		Expect(gauge.ThresholdColor(6, tied, "#ccc")).To(BeElementOf("blue", "purple"))
	})
})

var _ = Describe("Ticks", func() {
	It("produces five ticks with rounded labels", func() {
		ticks := gauge.Ticks(0, 40, 4)
		Expect(ticks).To(HaveLen(5))

		labels := make([]float64, len(ticks))
		for i, t := range ticks {
			labels[i] = t.Label
		}
		Expect(labels).To(Equal([]float64{0, 10, 20, 30, 40}))
	})

	It("rounds fractional labels to the nearest integer", func() {
		ticks := gauge.Ticks(0, 10, 4)
		labels := []float64{}
		for _, t := range ticks {
			labels = append(labels, t.Label)
		}
		Expect(labels).To(Equal([]float64{0, 3, 5, 8, 10}))
	})

	It("runs left to right along the arc", func() {
		ticks := gauge.Ticks(0, 40, 4)
		Expect(ticks[0].Angle).To(Equal(180.0))
		Expect(ticks[4].Angle).To(Equal(0.0))
		for i := 1; i < len(ticks); i++ {
			Expect(ticks[i].Outer.X).To(BeNumerically(">", ticks[i-1].Outer.X))
			Expect(ticks[i].Fraction).To(BeNumerically(">", ticks[i-1].Fraction))
		}
	})

	It("places endpoints on the fixed radii", func() {
		for _, t := range gauge.Ticks(0, 40, 4) {
			Expect(math.Hypot(t.Outer.X-gauge.CenterX, t.Outer.Y-gauge.CenterY)).To(BeNumerically("~", gauge.TickOuterRadius, 1e-9))
			Expect(math.Hypot(t.Inner.X-gauge.CenterX, t.Inner.Y-gauge.CenterY)).To(BeNumerically("~", gauge.TickInnerRadius, 1e-9))
			Expect(math.Hypot(t.Anchor.X-gauge.CenterX, t.Anchor.Y-gauge.CenterY)).To(BeNumerically("~", gauge.LabelRadius, 1e-9))
			Expect(t.Outer.Y).To(BeNumerically("<=", gauge.CenterY+1e-9))
		}
	})

	It("spans the rim from (10, 100) to (190, 100)", func() {
		ticks := gauge.Ticks(0, 40, 4)
		Expect(ticks[0].Outer.X).To(BeNumerically("~", 10, 1e-9))
		Expect(ticks[0].Inner.X).To(BeNumerically("~", 18, 1e-9))
		Expect(ticks[0].Anchor.X).To(BeNumerically("~", 35, 1e-9))
		Expect(ticks[4].Outer.X).To(BeNumerically("~", 190, 1e-9))
		Expect(ticks[2].Outer.Y).To(BeNumerically("~", 10, 1e-9))
	})

	It("falls back to the default count", func() {
		Expect(gauge.Ticks(0, 40, 0)).To(HaveLen(gauge.DefaultTickCount + 1))
	})

	It("returns a fresh slice on every call", func() {
		a := gauge.Ticks(0, 40, 4)
		a[0].Label = 999
		b := gauge.Ticks(0, 40, 4)
		Expect(b[0].Label).To(Equal(0.0))
		Expect(gauge.Ticks(3, 7, 4)).To(Equal(gauge.Ticks(3, 7, 4)))
	})
})

var _ = Describe("MinorTickAngles", func() {
	It("returns eight marks every 45 degrees", func() {
		Expect(gauge.MinorTickAngles()).To(Equal([]float64{0, 45, 90, 135, 180, 225, 270, 315}))
	})
})

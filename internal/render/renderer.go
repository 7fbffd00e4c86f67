package render

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/san-kum/gaugekit/internal/gauge"
	"github.com/san-kum/gaugekit/internal/logger"
	"github.com/san-kum/gaugekit/internal/scene"
)

const (
	arcWidth    = 4.0
	tickWidth   = 4.0
	minorWidth  = 2.0
	needleWidth = 3.0
)

// Input is everything a single gauge render reads.
type Input struct {
	Value      float64
	Range      gauge.Range
	Thresholds []gauge.Threshold
	Style      Style
	TickCount  int
	Binding    string
}

// Renderer builds scenes. A zero Renderer is not usable; call New.
type Renderer struct {
	resolve StyleResolver
	memo    *memo
	log     zerolog.Logger
}

type Option func(*Renderer)

// WithStyleResolver installs the dynamic style hook.
func WithStyleResolver(fn StyleResolver) Option {
	return func(r *Renderer) { r.resolve = fn }
}

// WithMemo caches ticks and threshold colors. capacity is per shard; <= 0
// picks the cache default.
func WithMemo(capacity int) Option {
	return func(r *Renderer) { r.memo = newMemo(capacity) }
}

func New(opts ...Option) *Renderer {
	r := &Renderer{log: logger.With("render")}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) ticks(min, max float64, count int) []gauge.Tick {
	if r.memo != nil {
		return r.memo.Ticks(min, max, count)
	}
	return gauge.Ticks(min, max, count)
}

func (r *Renderer) thresholdColor(value float64, ts []gauge.Threshold, fallback string) string {
	if r.memo != nil {
		return r.memo.ThresholdColor(value, ts, fallback)
	}
	return gauge.ThresholdColor(value, ts, fallback)
}

// Gauge renders a standalone gauge scene.
func (r *Renderer) Gauge(in Input) *scene.Scene {
	style := in.Style
	if r.resolve != nil {
		style = r.resolve(in.Binding, style)
	}

	s := scene.New(gauge.CanvasWidth, gauge.CanvasHeight)
	s.Padding = style.Padding
	s.Add(r.gaugeNodes(in, style)...)
	return s
}

func (r *Renderer) gaugeNodes(in Input, style Style) []scene.Node {
	min, max := in.Range.Min, in.Range.Max
	if !in.Range.Valid() {
		r.log.Debug().Float64("min", min).Float64("max", max).Msg("degenerate range, needle parked at minimum")
	}

	arcColor, needleColor := style.GaugeColor, style.NeedleColor
	if len(in.Thresholds) > 0 {
		c := r.thresholdColor(in.Value, in.Thresholds, style.GaugeColor)
		arcColor, needleColor = c, c
	}

	ticks := r.ticks(min, max, in.TickCount)
	nodes := make([]scene.Node, 0, 2*len(ticks)+12)

	nodes = append(nodes, &scene.Arc{
		CX: gauge.CenterX, CY: gauge.CenterY, R: gauge.ArcRadius,
		Start: 180, End: 0,
		Stroke: scene.Stroke{Color: arcColor, Width: arcWidth},
		Class:  "gauge-arc",
	})

	for _, t := range ticks {
		nodes = append(nodes, &scene.Line{
			X1: t.Inner.X, Y1: t.Inner.Y, X2: t.Outer.X, Y2: t.Outer.Y,
			Stroke: scene.Stroke{Color: arcColor, Width: tickWidth},
			Class:  "tick-major",
		})
	}

	for _, a := range gauge.MinorTickAngles() {
		p1 := gauge.PointOnArc(a, gauge.MinorInnerRadius)
		p2 := gauge.PointOnArc(a, gauge.MinorOuterRadius)
		nodes = append(nodes, &scene.Line{
			X1: p1.X, Y1: p1.Y, X2: p2.X, Y2: p2.Y,
			Stroke: scene.Stroke{Color: arcColor, Width: minorWidth},
			Class:  "tick-minor",
		})
	}

	for _, t := range ticks {
		nodes = append(nodes, &scene.Text{
			X: t.Anchor.X, Y: t.Anchor.Y,
			Content: fmt.Sprintf("%.0f", t.Label),
			Color:   style.TickColor,
			Font:    style.TickFont,
			Size:    style.TickSize,
			Anchor:  scene.AnchorMiddle,
			Class:   "tick-label",
		})
	}

	nodes = append(nodes, &scene.Group{
		Rotate:  gauge.NeedleAngle(in.Value, min, max),
		RotateX: gauge.CenterX,
		RotateY: gauge.CenterY,
		Class:   "needle",
		Children: []scene.Node{
			&scene.Line{
				X1: gauge.CenterX, Y1: gauge.CenterY, X2: gauge.CenterX, Y2: gauge.NeedleTipY,
				Stroke: scene.Stroke{Color: needleColor, Width: needleWidth},
			},
			&scene.Circle{
				CX: gauge.CenterX, CY: gauge.CenterY, R: gauge.HubRadius,
				Fill:   "none",
				Stroke: scene.Stroke{Color: needleColor, Width: needleWidth},
			},
		},
	})

	nodes = append(nodes, &scene.Text{
		X: gauge.CenterX, Y: gauge.ValueLabelY,
		Content: ValueLabel(in.Value, in.Range),
		Color:   style.TextColor,
		Font:    style.TextFont,
		Size:    style.TextSize,
		Bold:    style.TextBold,
		Anchor:  scene.AnchorMiddle,
		Class:   "value-label",
	})
	return nodes
}

// ValueLabel formats value rounded half away from zero with the unit
// suffix. Values that are not finite show the position the needle was
// clamped to.
func ValueLabel(value float64, rng gauge.Range) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = rng.Min + gauge.Ratio(value, rng.Min, rng.Max)*rng.Span()
		if math.IsInf(value, 0) || math.IsNaN(value) {
			value = rng.Min
		}
	}
	v := math.Round(value)
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return fmt.Sprintf("%.0f %s", v, Unit)
}

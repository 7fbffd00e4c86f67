package config

import (
	"sync"

	"github.com/san-kum/gaugekit/internal/gauge"
)

// Patch is a partial widget update. Nil fields are left untouched.
type Patch struct {
	Text         *string
	Placeholder  *string
	Tooltip      *string
	Wrap         *bool
	TextColor    *string
	DynamicStyle *string

	Show        *bool
	Min         *float64
	Max         *float64
	GaugeColor  *string
	NeedleColor *string
	TickColor   *string
	TickFont    *string
	TickSize    *float64
	ValueColor  *string
	ValueFont   *string
	ValueSize   *float64
	ValueBold   *bool
	Padding     *float64
	Thresholds  *[]gauge.Threshold
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// Merge returns p with every field set in o overriding p.
func (p Patch) Merge(o Patch) Patch {
	set(&p.Text, o.Text)
	set(&p.Placeholder, o.Placeholder)
	set(&p.Tooltip, o.Tooltip)
	set(&p.Wrap, o.Wrap)
	set(&p.TextColor, o.TextColor)
	set(&p.DynamicStyle, o.DynamicStyle)
	set(&p.Show, o.Show)
	set(&p.Min, o.Min)
	set(&p.Max, o.Max)
	set(&p.GaugeColor, o.GaugeColor)
	set(&p.NeedleColor, o.NeedleColor)
	set(&p.TickColor, o.TickColor)
	set(&p.TickFont, o.TickFont)
	set(&p.TickSize, o.TickSize)
	set(&p.ValueColor, o.ValueColor)
	set(&p.ValueFont, o.ValueFont)
	set(&p.ValueSize, o.ValueSize)
	set(&p.ValueBold, o.ValueBold)
	set(&p.Padding, o.Padding)
	set(&p.Thresholds, o.Thresholds)
	return p
}

// ApplyTo writes the set fields into w.
func (p Patch) ApplyTo(w *Widget) {
	s := &w.Speedometer
	assign(&w.Text, p.Text)
	assign(&w.Placeholder, p.Placeholder)
	assign(&w.Tooltip, p.Tooltip)
	assign(&w.Style.Wrap, p.Wrap)
	assign(&w.Style.TextColor, p.TextColor)
	assign(&w.Style.DynamicStyle, p.DynamicStyle)
	assign(&s.Show, p.Show)
	assign(&s.Min, p.Min)
	assign(&s.Max, p.Max)
	assign(&s.GaugeColor, p.GaugeColor)
	assign(&s.NeedleColor, p.NeedleColor)
	assign(&s.TickColor, p.TickColor)
	assign(&s.TickFont, p.TickFont)
	assign(&s.TickSize, p.TickSize)
	assign(&s.TextColor, p.ValueColor)
	assign(&s.TextFont, p.ValueFont)
	assign(&s.TextSize, p.ValueSize)
	assign(&s.TextBold, p.ValueBold)
	assign(&s.Padding, p.Padding)
	if p.Thresholds != nil {
		s.Thresholds = append([]gauge.Threshold(nil), (*p.Thresholds)...)
	}
}

// PatchFrom returns a patch that sets every field of w.
func PatchFrom(w *Widget) Patch {
	c := w.Clone()
	s := c.Speedometer
	return Patch{
		Text: &c.Text, Placeholder: &c.Placeholder, Tooltip: &c.Tooltip,
		Wrap: &c.Style.Wrap, TextColor: &c.Style.TextColor, DynamicStyle: &c.Style.DynamicStyle,
		Show: &s.Show, Min: &s.Min, Max: &s.Max,
		GaugeColor: &s.GaugeColor, NeedleColor: &s.NeedleColor,
		TickColor: &s.TickColor, TickFont: &s.TickFont, TickSize: &s.TickSize,
		ValueColor: &s.TextColor, ValueFont: &s.TextFont, ValueSize: &s.TextSize, ValueBold: &s.TextBold,
		Padding: &s.Padding, Thresholds: &s.Thresholds,
	}
}

func set[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Listener receives every patch applied to a Surface.
type Listener func(Patch)

// Surface owns the widget configuration edited by a settings UI. Renders
// read it through Snapshot.
type Surface struct {
	mu        sync.Mutex
	widget    *Widget
	listeners []listenerEntry
	nextID    int
}

type listenerEntry struct {
	id int
	fn Listener
}

// NewSurface wraps w; a nil widget starts from the defaults.
func NewSurface(w *Widget) *Surface {
	if w == nil {
		w = DefaultWidget()
	}
	return &Surface{widget: w.Clone()}
}

// Snapshot returns a copy that is safe to read while the surface changes.
func (s *Surface) Snapshot() *Widget {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.widget.Clone()
}

// Subscribe registers an OnConfigChange listener. The returned function
// removes it.
func (s *Surface) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Apply merges p into the widget and notifies listeners. Empty patches are
// ignored.
func (s *Surface) Apply(p Patch) {
	if p.IsEmpty() {
		return
	}
	s.mu.Lock()
	p.ApplyTo(s.widget)
	s.widget.Normalize()
	listeners := make([]Listener, len(s.listeners))
	for i, l := range s.listeners {
		listeners[i] = l.fn
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(p)
	}
}

// Replace swaps the whole widget, as after a file reload.
func (s *Surface) Replace(w *Widget) {
	s.Apply(PatchFrom(w))
}

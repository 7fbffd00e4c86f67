package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg/cache"

	"github.com/san-kum/gaugekit/internal/gauge"
)

type tickKey struct {
	min, max float64
	count    int
}

func hashTickKey(k tickKey) uint64 {
	h := math.Float64bits(k.min)
	h = h*1099511628211 ^ math.Float64bits(k.max)
	return h*1099511628211 ^ uint64(k.count)
}

// memo caches derived values keyed by their direct inputs.
type memo struct {
	ticks  *cache.ShardedCache[tickKey, []gauge.Tick]
	colors *cache.ShardedCache[string, string]
}

func newMemo(capacity int) *memo {
	return &memo{
		ticks:  cache.NewSharded[tickKey, []gauge.Tick](capacity, hashTickKey),
		colors: cache.NewSharded[string, string](capacity, cache.StringHasher),
	}
}

func (m *memo) Ticks(min, max float64, count int) []gauge.Tick {
	return m.ticks.GetOrCreate(tickKey{min, max, count}, func() []gauge.Tick {
		return gauge.Ticks(min, max, count)
	})
}

func (m *memo) ThresholdColor(value float64, ts []gauge.Threshold, fallback string) string {
	return m.colors.GetOrCreate(colorKey(value, ts, fallback), func() string {
		return gauge.ThresholdColor(value, ts, fallback)
	})
}

func (m *memo) Len() int {
	return m.ticks.Len() + m.colors.Len()
}

func colorKey(value float64, ts []gauge.Threshold, fallback string) string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(math.Float64bits(value), 16))
	b.WriteByte('|')
	b.WriteString(strconv.Quote(fallback))
	for _, t := range ts {
		b.WriteByte('|')
		b.WriteString(strconv.FormatUint(math.Float64bits(t.Value), 16))
		b.WriteByte('=')
		b.WriteString(strconv.Quote(t.Color))
	}
	return b.String()
}

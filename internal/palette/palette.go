// Package palette resolves CSS-style color strings for backends that draw
// pixels or terminal cells. SVG output never goes through here; it writes
// color strings verbatim.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/gaugekit/internal/logger"
)

var ErrUnknownColor = errors.New("palette: unrecognized color")

// Named covers the CSS names a settings color picker commonly emits.
var Named = map[string]color.RGBA{
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"red":         {255, 0, 0, 255},
	"green":       {0, 128, 0, 255},
	"lime":        {0, 255, 0, 255},
	"blue":        {0, 0, 255, 255},
	"yellow":      {255, 255, 0, 255},
	"orange":      {255, 165, 0, 255},
	"purple":      {128, 0, 128, 255},
	"cyan":        {0, 255, 255, 255},
	"magenta":     {255, 0, 255, 255},
	"gray":        {128, 128, 128, 255},
	"grey":        {128, 128, 128, 255},
	"silver":      {192, 192, 192, 255},
	"lightgray":   {211, 211, 211, 255},
	"darkgray":    {169, 169, 169, 255},
	"navy":        {0, 0, 128, 255},
	"teal":        {0, 128, 128, 255},
	"maroon":      {128, 0, 0, 255},
	"gold":        {255, 215, 0, 255},
	"transparent": {0, 0, 0, 0},
}

// Parse accepts named colors, #rgb, #rgba, #rrggbb, #rrggbbaa, rgb() and
// rgba().
func Parse(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	if c, ok := Named[lower]; ok {
		return c, nil
	}
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[5:len(s)-1], 4)
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[4:len(s)-1], 3)
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// Resolve parses s, falling back to fallback when s is not understood.
func Resolve(s string, fallback color.RGBA) color.RGBA {
	c, err := Parse(s)
	if err != nil {
		logger.Debug().Str("color", s).Msg("unparsable color, using fallback")
		return fallback
	}
	return c
}

// Hex normalizes s to #rrggbb, or returns fallback.
func Hex(s, fallback string) string {
	c, err := Parse(s)
	if err != nil {
		return fallback
	}
	cf, _ := colorful.MakeColor(color.RGBA{c.R, c.G, c.B, 255})
	return cf.Hex()
}

func parseHex(h string) (color.RGBA, error) {
	alpha := uint8(255)
	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("%w: #%s", ErrUnknownColor, h)
	}
	if len(h) == 8 {
		a, err := strconv.ParseUint(h[6:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: #%s", ErrUnknownColor, h)
		}
		alpha = uint8(a)
		h = h[:6]
	}
	cf, err := colorful.Hex("#" + h)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: #%s", ErrUnknownColor, h)
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}, nil
}

func parseFunc(args string, n int) (color.RGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return color.RGBA{}, fmt.Errorf("%w: expected %d components", ErrUnknownColor, n)
	}
	var ch [4]uint8
	ch[3] = 255
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if i == 3 {
			a, err := strconv.ParseFloat(p, 64)
			if err != nil || a < 0 || a > 1 {
				return color.RGBA{}, fmt.Errorf("%w: alpha %q", ErrUnknownColor, p)
			}
			ch[3] = uint8(a*255 + 0.5)
			continue
		}
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: component %q", ErrUnknownColor, p)
		}
		ch[i] = uint8(v)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

package export

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/san-kum/gaugekit/internal/logger"
	"github.com/san-kum/gaugekit/internal/palette"
	"github.com/san-kum/gaugekit/internal/scene"
)

// DefaultPNGWidth is used when PNG is asked for a non-positive width.
const DefaultPNGWidth = 400

var black = color.RGBA{A: 255}

type fonts struct {
	regular *text.FontSource
	bold    *text.FontSource
}

var loadFonts = sync.OnceValues(func() (fonts, error) {
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return fonts{}, fmt.Errorf("export: load regular font: %w", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		return fonts{}, fmt.Errorf("export: load bold font: %w", err)
	}
	return fonts{regular: regular, bold: bold}, nil
})

// PNG rasterizes s at widthPx pixels wide on a white background. Height
// follows the view box aspect ratio. Font families are not honored; labels
// use the Go fonts.
func PNG(w io.Writer, s *scene.Scene, widthPx int) error {
	if s == nil {
		return fmt.Errorf("export: nil scene")
	}
	if widthPx <= 0 {
		widthPx = DefaultPNGWidth
	}
	f, err := loadFonts()
	if err != nil {
		return err
	}

	vx, vy, vw, vh := s.ViewBox()
	if vw <= 0 || vh <= 0 {
		return fmt.Errorf("export: empty view box %gx%g", vw, vh)
	}
	scale := float64(widthPx) / vw
	heightPx := int(math.Round(vh * scale))
	if heightPx < 1 {
		heightPx = 1
	}

	dc := gg.NewContext(widthPx, heightPx)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	r := &raster{dc: dc, fonts: f, scale: scale}
	base := gg.Scale(scale, scale).Multiply(gg.Translate(-vx, -vy))
	for _, n := range s.Nodes {
		if err := r.draw(n, base); err != nil {
			return err
		}
	}

	logger.Debug().Int("width", widthPx).Int("height", heightPx).Msg("png rasterized")
	return dc.EncodePNG(w)
}

// raster draws in device space. The context matrix stays at identity
// because arcs and glyphs would not pick up its scale.
type raster struct {
	dc    *gg.Context
	fonts fonts
	scale float64
}

func (r *raster) draw(n scene.Node, m gg.Matrix) error {
	switch n := n.(type) {
	case *scene.Arc:
		if !r.setStroke(n.Stroke) {
			return nil
		}
		c := m.TransformPoint(gg.Pt(n.CX, n.CY))
		rot := math.Atan2(m.D, m.A)
		a1, a2 := radians(-n.Start)+rot, radians(-n.End)+rot
		if n.Start < n.End {
			a1, a2 = a2, a1
		}
		r.dc.DrawArc(c.X, c.Y, n.R*r.scale, a1, a2)
		return r.dc.Stroke()

	case *scene.Line:
		if !r.setStroke(n.Stroke) {
			return nil
		}
		p1 := m.TransformPoint(gg.Pt(n.X1, n.Y1))
		p2 := m.TransformPoint(gg.Pt(n.X2, n.Y2))
		r.dc.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
		return r.dc.Stroke()

	case *scene.Circle:
		c := m.TransformPoint(gg.Pt(n.CX, n.CY))
		rad := n.R * r.scale
		if n.Fill != "" && n.Fill != "none" {
			r.dc.SetColor(palette.Resolve(n.Fill, black))
			r.dc.DrawCircle(c.X, c.Y, rad)
			if err := r.dc.Fill(); err != nil {
				return err
			}
		}
		if r.setStroke(n.Stroke) {
			r.dc.DrawCircle(c.X, c.Y, rad)
			return r.dc.Stroke()
		}
		return nil

	case *scene.Text:
		if n.Content == "" || n.Size <= 0 {
			return nil
		}
		src := r.fonts.regular
		if n.Bold {
			src = r.fonts.bold
		}
		r.dc.SetFont(src.Face(n.Size * r.scale))
		r.dc.SetColor(palette.Resolve(n.Color, black))
		p := m.TransformPoint(gg.Pt(n.X, n.Y))
		r.dc.DrawStringAnchored(n.Content, p.X, p.Y, anchorX(n.Anchor), 0.5)
		return nil

	case *scene.Group:
		child := m.
			Multiply(gg.Translate(n.TranslateX, n.TranslateY)).
			Multiply(gg.Translate(n.RotateX, n.RotateY)).
			Multiply(gg.Rotate(radians(n.Rotate))).
			Multiply(gg.Translate(-n.RotateX, -n.RotateY))
		for _, c := range n.Children {
			if err := r.draw(c, child); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *raster) setStroke(s scene.Stroke) bool {
	if s.Color == "" || s.Color == "none" || s.Width <= 0 {
		return false
	}
	r.dc.SetColor(palette.Resolve(s.Color, black))
	r.dc.SetLineWidth(s.Width * r.scale)
	return true
}

func anchorX(a scene.Anchor) float64 {
	switch a {
	case scene.AnchorMiddle:
		return 0.5
	case scene.AnchorEnd:
		return 1
	}
	return 0
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

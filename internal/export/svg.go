package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/gaugekit/internal/scene"
)

// SVG serializes a scene. The document fills its container and keeps the
// scene's aspect ratio.
func SVG(s *scene.Scene) string {
	if s == nil {
		return ""
	}

	var sb strings.Builder
	x, y, w, h := s.ViewBox()

	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="100%%" height="100%%" viewBox="%s %s %s %s" preserveAspectRatio="xMidYMid meet">
`, num(x), num(y), num(w), num(h)))

	if s.Title != "" {
		sb.WriteString("<title>")
		writeEscaped(&sb, s.Title)
		sb.WriteString("</title>\n")
	}

	for _, n := range s.Nodes {
		writeNode(&sb, n, 0)
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSVG writes the serialized scene to w.
func WriteSVG(w io.Writer, s *scene.Scene) error {
	_, err := io.WriteString(w, SVG(s))
	return err
}

func writeNode(sb *strings.Builder, n scene.Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth+1))

	switch n := n.(type) {
	case *scene.Arc:
		sb.WriteString(fmt.Sprintf(`<path%s d="%s" fill="none"%s/>`,
			class(n.Class), ArcPath(n), stroke(n.Stroke)))

	case *scene.Line:
		sb.WriteString(fmt.Sprintf(`<line%s x1="%s" y1="%s" x2="%s" y2="%s"%s/>`,
			class(n.Class), num(n.X1), num(n.Y1), num(n.X2), num(n.Y2), stroke(n.Stroke)))

	case *scene.Circle:
		fill := n.Fill
		if fill == "" {
			fill = "none"
		}
		sb.WriteString(fmt.Sprintf(`<circle%s cx="%s" cy="%s" r="%s" fill="%s"%s/>`,
			class(n.Class), num(n.CX), num(n.CY), num(n.R), attr(fill), stroke(n.Stroke)))

	case *scene.Text:
		anchor := n.Anchor
		if anchor == "" {
			anchor = scene.AnchorStart
		}
		sb.WriteString(fmt.Sprintf(`<text%s x="%s" y="%s" text-anchor="%s" dominant-baseline="central" fill="%s" font-family="%s" font-size="%s" font-weight="%s">`,
			class(n.Class), num(n.X), num(n.Y), anchor, attr(n.Color), attr(n.Font), num(n.Size), fontWeight(n.Bold)))
		writeEscaped(sb, n.Content)
		sb.WriteString("</text>")

	case *scene.Group:
		sb.WriteString(fmt.Sprintf("<g%s%s>\n", class(n.Class), transform(n)))
		for _, c := range n.Children {
			writeNode(sb, c, depth+1)
		}
		sb.WriteString(strings.Repeat("  ", depth+1))
		sb.WriteString("</g>")
	}

	sb.WriteString("\n")
}

// ArcPath returns the SVG path data for an arc. Scene angles run
// counter-clockwise with y up, so a decreasing sweep is clockwise on screen.
func ArcPath(a *scene.Arc) string {
	x1, y1 := a.CX+a.R*cosDeg(a.Start), a.CY-a.R*sinDeg(a.Start)
	x2, y2 := a.CX+a.R*cosDeg(a.End), a.CY-a.R*sinDeg(a.End)

	large := 0
	if math.Abs(a.Start-a.End) > 180 {
		large = 1
	}
	sweep := 0
	if a.End < a.Start {
		sweep = 1
	}

	return fmt.Sprintf("M %s %s A %s %s 0 %d %d %s %s",
		num(x1), num(y1), num(a.R), num(a.R), large, sweep, num(x2), num(y2))
}

func transform(g *scene.Group) string {
	var parts []string
	if g.TranslateX != 0 || g.TranslateY != 0 {
		parts = append(parts, fmt.Sprintf("translate(%s %s)", num(g.TranslateX), num(g.TranslateY)))
	}
	if g.Rotate != 0 || g.RotateX != 0 || g.RotateY != 0 {
		parts = append(parts, fmt.Sprintf("rotate(%s %s %s)", num(g.Rotate), num(g.RotateX), num(g.RotateY)))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf(` transform="%s"`, strings.Join(parts, " "))
}

func stroke(s scene.Stroke) string {
	if s.Color == "" || s.Width <= 0 {
		return ""
	}
	return fmt.Sprintf(` stroke="%s" stroke-width="%s"`, attr(s.Color), num(s.Width))
}

func class(c string) string {
	if c == "" {
		return ""
	}
	return fmt.Sprintf(` class="%s"`, attr(c))
}

func fontWeight(bold bool) string {
	if bold {
		return "bold"
	}
	return "normal"
}

func attr(s string) string {
	var sb strings.Builder
	writeEscaped(&sb, s)
	return sb.String()
}

func writeEscaped(sb *strings.Builder, s string) {
	// strings.Builder never fails a write.
	_ = xml.EscapeText(sb, []byte(s))
}

// num prints at most two decimals and never "-0".
func num(f float64) string {
	r := math.Round(f*100) / 100
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func cosDeg(d float64) float64 { return math.Cos(d * math.Pi / 180) }
func sinDeg(d float64) float64 { return math.Sin(d * math.Pi / 180) }

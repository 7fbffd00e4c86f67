package viz

import (
	"math"
	"strings"

	"github.com/gogpu/gg"

	"github.com/san-kum/gaugekit/internal/scene"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a grid of braille cells, each holding 2x4 dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Dots returns the canvas size in dots.
func (c *Canvas) Dots() (w, h int) {
	return c.Width * 2, c.Height * 4
}

func (c *Canvas) cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return row, col, true
}

// Set turns on the dot at (x, y). Out of range dots are ignored.
func (c *Canvas) Set(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Unset(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	c.Grid[row][col] |= blank
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	row, col, ok := c.cell(x, y)
	if !ok {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawArc traces a circular arc in dot space. Angles are degrees,
// counter-clockwise with y up, matching scene arcs.
func (c *Canvas) DrawArc(cx, cy, r, start, end float64) {
	if r <= 0 {
		c.Set(round(cx), round(cy))
		return
	}
	steps := int(math.Ceil(math.Abs(end-start) * math.Pi / 180 * r))
	if steps < 1 {
		steps = 1
	}
	px, py := arcPoint(cx, cy, r, start)
	for i := 1; i <= steps; i++ {
		a := start + (end-start)*float64(i)/float64(steps)
		x, y := arcPoint(cx, cy, r, a)
		c.DrawLine(px, py, x, y)
		px, py = x, y
	}
}

func (c *Canvas) DrawCircle(cx, cy, r float64) {
	c.DrawArc(cx, cy, r, 0, 360)
}

// FillCircle sets every dot whose center lies inside the circle.
func (c *Canvas) FillCircle(cx, cy, r float64) {
	for y := int(math.Floor(cy - r)); y <= int(math.Ceil(cy+r)); y++ {
		for x := int(math.Floor(cx - r)); x <= int(math.Ceil(cx+r)); x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r*r {
				c.Set(x, y)
			}
		}
	}
	c.Set(round(cx), round(cy))
}

// Rect is a region of scene space.
type Rect struct {
	X, Y, W, H float64
}

// SceneRect is the whole padded view box of s.
func SceneRect(s *scene.Scene) Rect {
	x, y, w, h := s.ViewBox()
	return Rect{X: x, Y: y, W: w, H: h}
}

// DrawScene fits view into the canvas, keeping the aspect ratio, and
// plots the outline of every arc, line and circle. Text is not drawn;
// braille cells cannot hold glyphs.
func (c *Canvas) DrawScene(s *scene.Scene, view Rect) {
	if s == nil || view.W <= 0 || view.H <= 0 {
		return
	}
	dw, dh := c.Dots()
	scale := math.Min(float64(dw)/view.W, float64(dh)/view.H)
	offX := (float64(dw) - view.W*scale) / 2
	offY := (float64(dh) - view.H*scale) / 2

	m := gg.Translate(offX, offY).
		Multiply(gg.Scale(scale, scale)).
		Multiply(gg.Translate(-view.X, -view.Y))
	for _, n := range s.Nodes {
		c.plot(n, m, scale)
	}
}

func (c *Canvas) plot(n scene.Node, m gg.Matrix, scale float64) {
	switch n := n.(type) {
	case *scene.Arc:
		p := m.TransformPoint(gg.Pt(n.CX, n.CY))
		rot := math.Atan2(m.D, m.A) * 180 / math.Pi
		c.DrawArc(p.X, p.Y, n.R*scale, n.Start-rot, n.End-rot)
	case *scene.Line:
		p1 := m.TransformPoint(gg.Pt(n.X1, n.Y1))
		p2 := m.TransformPoint(gg.Pt(n.X2, n.Y2))
		c.DrawLine(round(p1.X), round(p1.Y), round(p2.X), round(p2.Y))
	case *scene.Circle:
		p := m.TransformPoint(gg.Pt(n.CX, n.CY))
		if n.Fill != "" && n.Fill != "none" {
			c.FillCircle(p.X, p.Y, n.R*scale)
		} else {
			c.DrawCircle(p.X, p.Y, n.R*scale)
		}
	case *scene.Group:
		child := m.
			Multiply(gg.Translate(n.TranslateX, n.TranslateY)).
			Multiply(gg.Translate(n.RotateX, n.RotateY)).
			Multiply(gg.Rotate(n.Rotate * math.Pi / 180)).
			Multiply(gg.Translate(-n.RotateX, -n.RotateY))
		for _, ch := range n.Children {
			c.plot(ch, child, scale)
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func arcPoint(cx, cy, r, deg float64) (int, int) {
	rad := deg * math.Pi / 180
	return round(cx + r*math.Cos(rad)), round(cy - r*math.Sin(rad))
}

func round(f float64) int {
	return int(math.Round(f))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

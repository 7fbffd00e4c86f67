package scene

// Node is one drawable element.
type Node interface {
	isNode()
}

// Scene is a drawable vector picture in logical units.
type Scene struct {
	Width   float64
	Height  float64
	Padding float64
	Title   string
	Nodes   []Node
}

// New returns an empty scene of the given logical size.
func New(w, h float64) *Scene {
	return &Scene{Width: w, Height: h}
}

// Add appends nodes to the scene.
func (s *Scene) Add(nodes ...Node) {
	s.Nodes = append(s.Nodes, nodes...)
}

// ViewBox returns the padded view box as (x, y, w, h).
func (s *Scene) ViewBox() (x, y, w, h float64) {
	p := s.Padding
	if p < 0 {
		p = 0
	}
	return -p, -p, s.Width + 2*p, s.Height + 2*p
}

// Walk visits every node depth first. Groups are visited before their
// children.
func (s *Scene) Walk(fn func(Node)) {
	walk(s.Nodes, fn)
}

func walk(nodes []Node, fn func(Node)) {
	for _, n := range nodes {
		fn(n)
		if g, ok := n.(*Group); ok {
			walk(g.Children, fn)
		}
	}
}

// Count returns how many nodes satisfy match.
func (s *Scene) Count(match func(Node) bool) int {
	n := 0
	s.Walk(func(node Node) {
		if match(node) {
			n++
		}
	})
	return n
}

// Stroke describes an outline.
type Stroke struct {
	Color string
	Width float64
}

// Arc is a circular arc from Start to End degrees, measured
// counter-clockwise from the positive x axis with y pointing up.
type Arc struct {
	CX, CY, R  float64
	Start, End float64
	Stroke     Stroke
	Class      string
}

// Line is a straight segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         Stroke
	Class          string
}

// Circle is a filled and optionally stroked circle.
type Circle struct {
	CX, CY, R float64
	Fill      string
	Stroke    Stroke
	Class     string
}

// Anchor is horizontal text alignment.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Text is a single line of text. Y is the vertical center of the line.
type Text struct {
	X, Y    float64
	Content string
	Color   string
	Font    string
	Size    float64
	Bold    bool
	Anchor  Anchor
	Class   string
}

// Group applies a translation, then a rotation of Rotate degrees
// (clockwise) about (RotateX, RotateY), to its children.
type Group struct {
	TranslateX, TranslateY float64
	Rotate                 float64
	RotateX, RotateY       float64
	Class                  string
	Children               []Node
}

func (*Arc) isNode()    {}
func (*Line) isNode()   {}
func (*Circle) isNode() {}
func (*Text) isNode()   {}
func (*Group) isNode()  {}

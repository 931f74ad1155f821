package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"graphpad/diagram"
	"graphpad/editor"
	"graphpad/hittest"
)

var (
	styleEdge     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleNode     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleLabel    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleOutlined = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleStatus   = tcell.StyleDefault.Reverse(true)
)

// glyph is the handle the view keeps in an element's Data slot.
type glyph struct {
	outlined bool
}

// View draws the graph onto a tcell screen. It implements editor.View and
// editor.Outliner.
type View struct {
	nodeRadius float64 // Drawn radius in render-target units
}

// NewView creates a view drawing nodes with the given radius.
func NewView(nodeRadius float64) *View {
	return &View{nodeRadius: nodeRadius}
}

// SetNodeRadius changes the drawn node radius.
func (v *View) SetNodeRadius(r float64) {
	v.nodeRadius = r
}

func (v *View) AddNode(n *diagram.Node) {
	n.Data = &glyph{}
}

func (v *View) AddEdge(e *diagram.Edge) {
	e.Data = &glyph{}
}

func (v *View) RemoveNode(n *diagram.Node) {
	if _, ok := n.Data.(*glyph); ok {
		n.Data = nil
	}
}

func (v *View) RemoveEdge(e *diagram.Edge) {
	if _, ok := e.Data.(*glyph); ok {
		e.Data = nil
	}
}

func (v *View) AddOutline(h hittest.Hit) {
	if g := glyphOf(h); g != nil {
		g.outlined = true
	}
}

func (v *View) RemoveOutline(h hittest.Hit) {
	if g := glyphOf(h); g != nil {
		g.outlined = false
	}
}

func glyphOf(h hittest.Hit) *glyph {
	var data any
	switch h.Kind() {
	case hittest.Node:
		data = h.Node().Data
	case hittest.Edge:
		data = h.Edge().Data
	}
	g, _ := data.(*glyph)
	return g
}

// Draw renders the editor's graph and a status line.
func (v *View) Draw(s tcell.Screen, ed *editor.Editor, grid Grid, status string) {
	s.Clear()
	g := ed.Graph()
	sel := ed.GetSelection()

	// Edges go underneath nodes
	for _, e := range g.Edges() {
		style := v.styleFor(hittest.EdgeHit(e), sel, styleEdge)
		x1, y1 := grid.ToCell(e.U.Position.X, e.U.Position.Y)
		x2, y2 := grid.ToCell(e.V.Position.X, e.V.Position.Y)
		drawLine(s, x1, y1, x2, y2, '·', style)
		if e.Label != "" {
			drawTextCentered(s, (x1+x2)/2, (y1+y2)/2, e.Label, style)
		}
	}

	for _, n := range g.Nodes() {
		style := v.styleFor(hittest.NodeHit(n), sel, styleNode)
		cx, cy := grid.ToCell(n.Position.X, n.Position.Y)
		v.drawDisc(s, grid, cx, cy, style)
		labelStyle := styleLabel
		if sel.Is(hittest.NodeHit(n)) {
			labelStyle = styleSelected.Reverse(true)
		}
		drawTextCentered(s, cx, cy, n.Label, labelStyle)
	}

	v.drawStatus(s, ed, status)
}

// drawDisc fills the cells whose centers lie within the node radius.
func (v *View) drawDisc(s tcell.Screen, grid Grid, cx, cy int, style tcell.Style) {
	rx := int(v.nodeRadius / grid.CellWidth)
	ry := int(v.nodeRadius / grid.CellHeight)
	r2 := v.nodeRadius * v.nodeRadius
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			px := float64(dx) * grid.CellWidth
			py := float64(dy) * grid.CellHeight
			if px*px+py*py <= r2 {
				setClipped(s, cx+dx, cy+dy, '░', style)
			}
		}
	}
	setClipped(s, cx, cy, '●', style)
}

func (v *View) styleFor(h hittest.Hit, sel editor.Selection, base tcell.Style) tcell.Style {
	switch {
	case sel.Is(h):
		return styleSelected
	case glyphOf(h) != nil && glyphOf(h).outlined:
		return styleOutlined
	default:
		return base
	}
}

func (v *View) drawStatus(s tcell.Screen, ed *editor.Editor, status string) {
	w, h := s.Size()
	if h == 0 {
		return
	}
	y := h - 1
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, styleStatus)
	}

	g := ed.Graph()
	line := fmt.Sprintf(" %s | %d nodes %d edges %d components",
		ed.GetSelection().State, g.NodeCount(), g.EdgeCount(), len(diagram.Components(g)))
	if hovered := ed.Hovered(); !hovered.IsNone() {
		line += " | " + hovered.String()
	}
	if status != "" {
		line += " | " + status
	}
	drawText(s, 0, y, line, styleStatus)
}

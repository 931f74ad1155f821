package editor

import "graphpad/diagram"

// DragHandler receives the lifecycle of a node drag
type DragHandler interface {
	DragStart(n *diagram.Node, x, y float64)
	Dragging(n *diagram.Node, x, y float64)
	DragEnd(n *diagram.Node, x, y float64)
}

// moveHandler moves the node, keeping the grabbed point under the pointer
type moveHandler struct {
	dx, dy float64
}

func (m *moveHandler) DragStart(n *diagram.Node, x, y float64) {
	m.dx = n.Position.X - x
	m.dy = n.Position.Y - y
}

func (m *moveHandler) Dragging(n *diagram.Node, x, y float64) {
	n.Position = diagram.Point{X: x + m.dx, Y: y + m.dy}
}

func (m *moveHandler) DragEnd(n *diagram.Node, x, y float64) {
	m.Dragging(n, x, y)
	m.dx, m.dy = 0, 0
}

// StartDrag grabs the node under (x, y). It reports false, and starts
// nothing, when the point is not over a node.
func (e *Editor) StartDrag(x, y float64) bool {
	hit := e.Resolve(x, y)
	if hit.Node() == nil {
		return false
	}
	e.dragging = hit.Node()
	e.drag.DragStart(e.dragging, x, y)
	return true
}

// Drag moves the grabbed node to (x, y)
func (e *Editor) Drag(x, y float64) {
	if e.dragging == nil {
		return
	}
	e.drag.Dragging(e.dragging, x, y)
}

// EndDrag releases the grabbed node at (x, y)
func (e *Editor) EndDrag(x, y float64) {
	if e.dragging == nil {
		return
	}
	e.drag.DragEnd(e.dragging, x, y)
	e.dragging = nil
}

// IsDragging reports whether a node is grabbed
func (e *Editor) IsDragging() bool {
	return e.dragging != nil
}

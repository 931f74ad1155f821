package editor

import (
	"graphpad/diagram"
	"graphpad/hittest"
)

// State represents what is currently selected
type State int

const (
	Idle         State = iota // Nothing selected
	NodeSelected              // A node is selected
	EdgeSelected              // An edge is selected
)

// String returns the state name for display
func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case NodeSelected:
		return "NODE"
	case EdgeSelected:
		return "EDGE"
	default:
		return "UNKNOWN"
	}
}

// Selection is the single selected element, if any
type Selection struct {
	State State
	Node  *diagram.Node // Set in NodeSelected
	Edge  *diagram.Edge // Set in EdgeSelected
}

// Target returns the selection as a hit
func (s Selection) Target() hittest.Hit {
	switch s.State {
	case NodeSelected:
		return hittest.NodeHit(s.Node)
	case EdgeSelected:
		return hittest.EdgeHit(s.Edge)
	default:
		return hittest.Miss
	}
}

// Is reports whether h refers to the selected element
func (s Selection) Is(h hittest.Hit) bool {
	return !h.IsNone() && s.Target() == h
}

// GetSelection returns the current selection
func (e *Editor) GetSelection() Selection {
	return e.selection
}

// ClearSelection returns to Idle
func (e *Editor) ClearSelection() {
	e.selection = Selection{}
}

func (e *Editor) selectNode(n *diagram.Node) {
	e.selection = Selection{State: NodeSelected, Node: n}
}

func (e *Editor) selectEdge(edge *diagram.Edge) {
	e.selection = Selection{State: EdgeSelected, Edge: edge}
}

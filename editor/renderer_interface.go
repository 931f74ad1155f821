package editor

import "graphpad/diagram"

// View is the rendering collaborator the editor keeps informed. A view may
// store a handle in an element's Data slot when it is added and should
// release it when the element is removed.
type View interface {
	AddNode(n *diagram.Node)
	AddEdge(e *diagram.Edge)
	RemoveNode(n *diagram.Node)
	RemoveEdge(e *diagram.Edge)
}

type nopView struct{}

func (nopView) AddNode(*diagram.Node)    {}
func (nopView) AddEdge(*diagram.Edge)    {}
func (nopView) RemoveNode(*diagram.Node) {}
func (nopView) RemoveEdge(*diagram.Edge) {}

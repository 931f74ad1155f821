// Package diagram contains the graph model edited by graphpad: positioned nodes,
// undirected edges between them, and the Graph that owns both.
package diagram

import (
	"fmt"

	"github.com/google/uuid"
)

// Point represents a position in render-target coordinates.
type Point struct {
	X, Y float64
}

// Node represents a positioned, labeled vertex in the diagram.
type Node struct {
	ID       uuid.UUID
	Label    string // Display only
	Position Point  // Mutated by drag handlers

	// Data is an opaque slot for the renderer's handle. The model never reads it.
	Data any
}

// NewNode creates a node at the given position.
func NewNode(label string, x, y float64) *Node {
	return &Node{
		ID:       uuid.New(),
		Label:    label,
		Position: Point{X: x, Y: y},
	}
}

// String returns a short description for logs and diagnostics.
func (n *Node) String() string {
	if n == nil {
		return "<nil node>"
	}
	return fmt.Sprintf("node %q (%g,%g)", n.Label, n.Position.X, n.Position.Y)
}

// Edge represents an undirected connection between two distinct nodes.
// An edge holds its endpoints without owning them.
type Edge struct {
	ID    uuid.UUID
	U, V  *Node
	Label string

	Data any
}

// NewEdge creates an edge between u and v. It is not validated until it is
// added to a Graph.
func NewEdge(u, v *Node, label string) *Edge {
	return &Edge{
		ID:    uuid.New(),
		U:     u,
		V:     v,
		Label: label,
	}
}

// Equals reports whether both edges join the same unordered pair of nodes.
func (e *Edge) Equals(other *Edge) bool {
	if e == nil || other == nil {
		return e == other
	}
	return (e.U == other.U && e.V == other.V) || (e.U == other.V && e.V == other.U)
}

// IsAdjacent reports whether n is one of the edge's endpoints.
func (e *Edge) IsAdjacent(n *Node) bool {
	return e.U == n || e.V == n
}

// String returns a short description for logs and diagnostics.
func (e *Edge) String() string {
	if e == nil {
		return "<nil edge>"
	}
	return fmt.Sprintf("edge %q [%s -- %s]", e.Label, labelOf(e.U), labelOf(e.V))
}

func labelOf(n *Node) string {
	if n == nil {
		return "?"
	}
	return n.Label
}

// Package hittest resolves a cursor position to the node or edge it points at.
//
// Nodes and edges have independent tolerances, so candidates are compared by
// their distance divided by their own tolerance rather than by raw distance.
// A node with a generous radius can win over an edge that is closer in pixels
// but tight in tolerance.
package hittest

import (
	"math"

	"graphpad/diagram"
	"graphpad/geometry"
)

// Kind identifies what a Hit refers to.
type Kind int

const (
	None Kind = iota // Empty space
	Node             // A node
	Edge             // An edge
)

// String returns the kind name for display.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Node:
		return "node"
	case Edge:
		return "edge"
	default:
		return "unknown"
	}
}

// Hit is the result of a resolution: a node, an edge, or nothing.
// The zero value is a miss. Hits are comparable with ==.
type Hit struct {
	kind Kind
	node *diagram.Node
	edge *diagram.Edge
}

// Miss is the empty result.
var Miss = Hit{}

// NodeHit returns a hit on n.
func NodeHit(n *diagram.Node) Hit {
	return Hit{kind: Node, node: n}
}

// EdgeHit returns a hit on e.
func EdgeHit(e *diagram.Edge) Hit {
	return Hit{kind: Edge, edge: e}
}

// Kind returns what the hit refers to.
func (h Hit) Kind() Kind { return h.kind }

// IsNone reports whether nothing was hit.
func (h Hit) IsNone() bool { return h.kind == None }

// Node returns the node, or nil unless Kind is Node.
func (h Hit) Node() *diagram.Node { return h.node }

// Edge returns the edge, or nil unless Kind is Edge.
func (h Hit) Edge() *diagram.Edge { return h.edge }

// String describes the hit for logs.
func (h Hit) String() string {
	switch h.kind {
	case Node:
		return h.node.String()
	case Edge:
		return h.edge.String()
	default:
		return "none"
	}
}

// Tolerance holds the clickable distances in render-target units.
// Both values must be positive; a non-positive value disables that kind.
type Tolerance struct {
	NodeRadius   float64 // Max distance from a node's center
	EdgeDistance float64 // Max distance from an edge's segment
}

// DefaultTolerance matches the editor's default configuration.
var DefaultTolerance = Tolerance{NodeRadius: 25, EdgeDistance: 10}

// Resolve returns the element nearest to (x, y) within tolerance.
//
// The nearest node and the nearest edge are found separately, ties going to
// the first in insertion order. Each distance is divided by its tolerance;
// if both ratios exceed 1 the result is a miss, otherwise the edge is chosen
// only when its ratio is strictly smaller.
func Resolve(x, y float64, g *diagram.Graph, tol Tolerance) Hit {
	node, edge, nodeRatio, edgeRatio := nearest(x, y, g, tol)

	if !(nodeRatio <= 1 || edgeRatio <= 1) {
		return Miss
	}
	if edgeRatio < nodeRatio {
		return EdgeHit(edge)
	}
	return NodeHit(node)
}

// Ratios returns the normalized distances Resolve compares, for diagnostics.
func Ratios(x, y float64, g *diagram.Graph, tol Tolerance) (node, edge float64) {
	_, _, node, edge = nearest(x, y, g, tol)
	return node, edge
}

// nearest finds the closest node and edge and their ratios. A kind with no
// elements has ratio +Inf whatever its tolerance.
func nearest(x, y float64, g *diagram.Graph, tol Tolerance) (*diagram.Node, *diagram.Edge, float64, float64) {
	node, nodeDist := closestNode(x, y, g)
	edge, edgeDist := closestEdge(x, y, g)

	nodeRatio := math.Inf(1)
	if node != nil {
		nodeRatio = ratio(nodeDist, tol.NodeRadius)
	}
	edgeRatio := math.Inf(1)
	if edge != nil {
		edgeRatio = ratio(edgeDist, tol.EdgeDistance)
	}
	return node, edge, nodeRatio, edgeRatio
}

func closestNode(x, y float64, g *diagram.Graph) (*diagram.Node, float64) {
	var best *diagram.Node
	bestD2 := math.Inf(1)
	for _, n := range g.Nodes() {
		d2 := geometry.SquaredDistance(x, y, n.Position.X, n.Position.Y)
		if d2 < bestD2 {
			best, bestD2 = n, d2
		}
	}
	return best, math.Sqrt(bestD2)
}

func closestEdge(x, y float64, g *diagram.Graph) (*diagram.Edge, float64) {
	var best *diagram.Edge
	bestD2 := math.Inf(1)
	for _, e := range g.Edges() {
		d2 := geometry.SquaredDistanceToSegment(x, y,
			e.U.Position.X, e.U.Position.Y, e.V.Position.X, e.V.Position.Y)
		if d2 < bestD2 {
			best, bestD2 = e, d2
		}
	}
	return best, math.Sqrt(bestD2)
}

// ratio is +Inf for a bound that is not a positive number.
func ratio(dist, bound float64) float64 {
	if !(bound > 0) {
		return math.Inf(1)
	}
	return dist / bound
}

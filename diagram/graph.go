package diagram

import (
	"fmt"
	"slices"
)

// Graph owns a set of nodes and a set of edges, kept in insertion order.
//
// Membership is by pointer identity. Adjacency is recomputed by a linear scan
// on every query; diagrams drawn by hand stay small enough that an index would
// only add bookkeeping.
//
// Graph is not safe for concurrent use. Callers that share it across
// goroutines must hold one lock around each logical operation, since a node
// removal passes through states where edges still reference the removed node.
type Graph struct {
	nodes []*Node
	edges []*Edge
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode inserts n. Inserting a node that is already a member fails with
// ErrDuplicate.
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return fmt.Errorf("add node: %w", ErrNilElement)
	}
	if g.HasNode(n) {
		return fmt.Errorf("add %s: %w", n, ErrDuplicate)
	}
	g.nodes = append(g.nodes, n)
	return nil
}

// RemoveNode removes n together with every edge adjacent to it and returns
// the removed edges in insertion order.
func (g *Graph) RemoveNode(n *Node) ([]*Edge, error) {
	if n == nil {
		return nil, fmt.Errorf("remove node: %w", ErrNilElement)
	}
	i := slices.Index(g.nodes, n)
	if i < 0 {
		return nil, &NotFoundError{Kind: "node", ID: n.ID}
	}

	var removed []*Edge
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.IsAdjacent(n) {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	clear(g.edges[len(kept):])
	g.edges = kept
	g.nodes = slices.Delete(g.nodes, i, i+1)

	return removed, nil
}

// AddEdge inserts e after checking that both endpoints are distinct members.
// Parallel edges are allowed; inserting the same edge twice is not.
func (g *Graph) AddEdge(e *Edge) error {
	if e == nil {
		return fmt.Errorf("add edge: %w", ErrNilElement)
	}
	switch {
	case e.U == nil || e.V == nil:
		return &InvalidEdgeError{ID: e.ID, Reason: "missing endpoint"}
	case e.U == e.V:
		return &InvalidEdgeError{ID: e.ID, Reason: "endpoints are the same node"}
	case !g.HasNode(e.U):
		return &InvalidEdgeError{ID: e.ID, Reason: fmt.Sprintf("%s is not in the graph", e.U)}
	case !g.HasNode(e.V):
		return &InvalidEdgeError{ID: e.ID, Reason: fmt.Sprintf("%s is not in the graph", e.V)}
	}
	if g.HasEdge(e) {
		return fmt.Errorf("add %s: %w", e, ErrDuplicate)
	}
	g.edges = append(g.edges, e)
	return nil
}

// RemoveEdge removes e by identity. An equal edge between the same nodes is
// not a substitute.
func (g *Graph) RemoveEdge(e *Edge) error {
	if e == nil {
		return fmt.Errorf("remove edge: %w", ErrNilElement)
	}
	i := slices.Index(g.edges, e)
	if i < 0 {
		return &NotFoundError{Kind: "edge", ID: e.ID}
	}
	g.edges = slices.Delete(g.edges, i, i+1)
	return nil
}

// AdjacentEdges returns the edges with n as an endpoint.
func (g *Graph) AdjacentEdges(n *Node) []*Edge {
	var adjacent []*Edge
	for _, e := range g.edges {
		if e.IsAdjacent(n) {
			adjacent = append(adjacent, e)
		}
	}
	return adjacent
}

// Nodes returns the nodes in insertion order. The slice is a copy.
func (g *Graph) Nodes() []*Node {
	return slices.Clone(g.nodes)
}

// Edges returns the edges in insertion order. The slice is a copy.
func (g *Graph) Edges() []*Edge {
	return slices.Clone(g.edges)
}

// HasNode reports whether n is a member.
func (g *Graph) HasNode(n *Node) bool {
	return n != nil && slices.Contains(g.nodes, n)
}

// HasEdge reports whether e itself is a member.
func (g *Graph) HasEdge(e *Edge) bool {
	return e != nil && slices.Contains(g.edges, e)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

package diagram

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Components groups the nodes of g into connected components. Components are
// ordered by their first node in insertion order, and nodes within a
// component keep insertion order.
func Components(g *Graph) [][]*Node {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil
	}

	index := make(map[*Node]int64, len(nodes))
	ug := simple.NewUndirectedGraph()
	for i, n := range nodes {
		index[n] = int64(i)
		ug.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		// Parallel edges collapse into one; connectivity is unchanged.
		ug.SetEdge(ug.NewEdge(simple.Node(index[e.U]), simple.Node(index[e.V])))
	}

	// Order by smallest member index rather than trusting gonum's order.
	componentOf := make([]int, len(nodes))
	for c, members := range topo.ConnectedComponents(ug) {
		for _, m := range members {
			componentOf[m.ID()] = c
		}
	}
	var out [][]*Node
	slot := make(map[int]int)
	for i, n := range nodes {
		c := componentOf[i]
		j, ok := slot[c]
		if !ok {
			j = len(out)
			slot[c] = j
			out = append(out, nil)
		}
		out[j] = append(out[j], n)
	}
	return out
}

package hittest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphpad/diagram"
)

func addNode(t *testing.T, g *diagram.Graph, label string, x, y float64) *diagram.Node {
	t.Helper()
	n := diagram.NewNode(label, x, y)
	require.NoError(t, g.AddNode(n))
	return n
}

func addEdge(t *testing.T, g *diagram.Graph, u, v *diagram.Node) *diagram.Edge {
	t.Helper()
	e := diagram.NewEdge(u, v, "")
	require.NoError(t, g.AddEdge(e))
	return e
}

func TestResolve_EmptyGraph(t *testing.T) {
	g := diagram.NewGraph()
	for _, p := range [][2]float64{{0, 0}, {100, 100}, {-5, 1e9}} {
		hit := Resolve(p[0], p[1], g, DefaultTolerance)
		assert.True(t, hit.IsNone())
		assert.Equal(t, Miss, hit)
	}
}

func TestResolve_SingleNode(t *testing.T) {
	g := diagram.NewGraph()
	n := addNode(t, g, "a", 100, 100)
	tol := Tolerance{NodeRadius: 25, EdgeDistance: 10}

	tests := []struct {
		name string
		x, y float64
		want Hit
	}{
		{"center", 100, 100, NodeHit(n)},
		{"ratio 0.4", 110, 100, NodeHit(n)},
		{"on the boundary", 125, 100, NodeHit(n)},
		{"just outside", 125.5, 100, Miss},
		{"ratio 4", 200, 100, Miss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.x, tt.y, g, tol))
		})
	}
}

func TestResolve_SingleEdge(t *testing.T) {
	g := diagram.NewGraph()
	u := addNode(t, g, "u", 0, 0)
	v := addNode(t, g, "v", 100, 0)
	e := addEdge(t, g, u, v)
	// Shrink the node tolerance so the endpoints do not compete.
	tol := Tolerance{NodeRadius: 1, EdgeDistance: 10}

	tests := []struct {
		name string
		x, y float64
		want Hit
	}{
		{"perpendicular 5", 50, 5, EdgeHit(e)},
		{"perpendicular 50", 50, -50, Miss},
		{"past end within tolerance", 105, 3, EdgeHit(e)},
		{"past end outside tolerance", 112, 0, Miss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.x, tt.y, g, tol))
		})
	}

	nodeRatio, edgeRatio := Ratios(50, 5, g, tol)
	assert.InDelta(t, 0.5, edgeRatio, 1e-9)
	assert.Greater(t, nodeRatio, 1.0)

	_, edgeRatio = Ratios(50, -50, g, tol)
	assert.InDelta(t, 5.0, edgeRatio, 1e-9)
}

func TestResolve_RatioBeatsRawDistance(t *testing.T) {
	g := diagram.NewGraph()
	u := addNode(t, g, "u", 0, 0)
	v := addNode(t, g, "v", 100, 0)
	e := addEdge(t, g, u, v)
	n := addNode(t, g, "n", 50, 20)

	// Edge is 4 away with tolerance 5 (0.8); node is 16 away with radius 40 (0.4).
	tol := Tolerance{NodeRadius: 40, EdgeDistance: 5}
	assert.Equal(t, NodeHit(n), Resolve(50, 4, g, tol))

	// With equal tolerances the raw distance decides and the edge wins.
	assert.Equal(t, EdgeHit(e), Resolve(50, 4, g, Tolerance{NodeRadius: 40, EdgeDistance: 40}))
}

func TestResolve_EqualRatiosPreferNode(t *testing.T) {
	g := diagram.NewGraph()
	u := addNode(t, g, "u", 0, 0)
	v := addNode(t, g, "v", 0, 100)
	addEdge(t, g, u, v)
	n := addNode(t, g, "n", 20, 50)

	// (10,50) is 10 from the edge and 10 from n.
	assert.Equal(t, NodeHit(n), Resolve(10, 50, g, Tolerance{NodeRadius: 20, EdgeDistance: 20}))
}

func TestResolve_TiesGoToFirstInserted(t *testing.T) {
	g := diagram.NewGraph()
	left := addNode(t, g, "left", 90, 100)
	addNode(t, g, "right", 110, 100)

	assert.Equal(t, NodeHit(left), Resolve(100, 100, g, DefaultTolerance))

	g2 := diagram.NewGraph()
	a := addNode(t, g2, "a", 0, 0)
	b := addNode(t, g2, "b", 100, 0)
	c := addNode(t, g2, "c", 0, 20)
	d := addNode(t, g2, "d", 100, 20)
	top := addEdge(t, g2, a, b)
	addEdge(t, g2, c, d)
	tol := Tolerance{NodeRadius: 1, EdgeDistance: 15}
	assert.Equal(t, EdgeHit(top), Resolve(50, 10, g2, tol))
}

func TestResolve_NonPositiveToleranceDisablesKind(t *testing.T) {
	g := diagram.NewGraph()
	u := addNode(t, g, "u", 0, 0)
	v := addNode(t, g, "v", 100, 0)
	e := addEdge(t, g, u, v)

	assert.Equal(t, EdgeHit(e), Resolve(0, 0, g, Tolerance{NodeRadius: 0, EdgeDistance: 10}))
	assert.Equal(t, NodeHit(u), Resolve(0, 0, g, Tolerance{NodeRadius: 10, EdgeDistance: 0}))
	assert.Equal(t, Miss, Resolve(0, 0, g, Tolerance{}))
}

func TestResolve_UnboundedTolerance(t *testing.T) {
	inf := math.Inf(1)
	empty := diagram.NewGraph()

	tests := []struct {
		name string
		tol  Tolerance
	}{
		{"infinite node radius", Tolerance{NodeRadius: inf, EdgeDistance: 10}},
		{"infinite edge distance", Tolerance{NodeRadius: 25, EdgeDistance: inf}},
		{"both infinite", Tolerance{NodeRadius: inf, EdgeDistance: inf}},
		{"NaN", Tolerance{NodeRadius: math.NaN(), EdgeDistance: math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := Resolve(0, 0, empty, tt.tol)
			assert.Equal(t, Miss, hit)
			assert.Nil(t, hit.Node())
		})
	}

	g := diagram.NewGraph()
	n := addNode(t, g, "a", 100, 100)
	assert.Equal(t, NodeHit(n), Resolve(1e6, 1e6, g, Tolerance{NodeRadius: inf, EdgeDistance: 10}))
	assert.Equal(t, Miss, Resolve(1e6, 1e6, g, Tolerance{NodeRadius: 25, EdgeDistance: inf}))
	assert.Equal(t, Miss, Resolve(100, 100, g, Tolerance{NodeRadius: math.NaN(), EdgeDistance: 10}))
}

func TestHit_Accessors(t *testing.T) {
	n := diagram.NewNode("a", 0, 0)
	assert.Equal(t, Node, NodeHit(n).Kind())
	assert.Same(t, n, NodeHit(n).Node())
	assert.Nil(t, NodeHit(n).Edge())
	assert.Equal(t, "none", Miss.String())
	assert.Equal(t, "edge", Edge.String())
}

package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphpad/hittest"
)

func TestTyping_LastAddedNode(t *testing.T) {
	ed, _ := newTestEditor(t)
	ed.PrimaryClick(100, 100)
	n := ed.Graph().Nodes()[0]
	require.Equal(t, "0", n.Label)

	ed.TypeText("-start")
	assert.Equal(t, "0-start", n.Label)

	assert.True(t, ed.DeleteRune())
	assert.Equal(t, "0-star", n.Label)
}

func TestTyping_SelectionWinsOverLastAdded(t *testing.T) {
	ed, _ := newTestEditor(t)
	a, _ := ed.CreateNode(0, 0)
	b, _ := ed.CreateNode(100, 0)
	edge, _ := ed.CreateEdge(a, b)
	require.Equal(t, hittest.EdgeHit(edge), ed.LabelTarget())

	ed.PrimaryClick(0, 0)
	ed.TypeText("x")
	assert.Equal(t, "0x", a.Label)
	assert.Empty(t, edge.Label)

	ed.ClearSelection()
	ed.TypeText("calls")
	assert.Equal(t, "calls", edge.Label)
}

func TestTyping_EdgeCases(t *testing.T) {
	ed, _ := newTestEditor(t)

	// Nothing to edit yet.
	assert.False(t, ed.TypeRune('a'))
	assert.False(t, ed.DeleteRune())

	n, _ := ed.CreateNode(0, 0)
	assert.False(t, ed.TypeRune('\x1b'))
	assert.Equal(t, "0", n.Label)

	n.Label = "héllo wörld  "
	assert.True(t, ed.DeleteWordBackward())
	assert.Equal(t, "héllo ", n.Label)
	assert.True(t, ed.DeleteRune())
	assert.True(t, ed.DeleteRune())
	assert.Equal(t, "héll", n.Label)

	// Once the last added element is gone there is no target.
	require.NoError(t, ed.DeleteNode(n))
	assert.True(t, ed.LabelTarget().IsNone())
	assert.False(t, ed.TypeRune('z'))
}

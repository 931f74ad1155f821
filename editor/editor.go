package editor

import (
	"strconv"
	"time"

	"go.uber.org/zap"

	"graphpad/diagram"
	"graphpad/hittest"
)

// Editor turns pointer and keyboard input into graph mutations. It owns the
// selection and is driven from a single goroutine.
type Editor struct {
	graph *diagram.Graph
	view  View
	log   *zap.Logger

	tolerance hittest.Tolerance
	selection Selection
	lastAdded hittest.Hit // Most recently created element still in the graph
	nextLabel int         // Default labels count up from 0

	// Hover state
	outliner        Outliner
	hoverResolution time.Duration
	lastHoverAt     time.Time
	hovered         hittest.Hit
	now             func() time.Time

	// Drag state
	drag     DragHandler
	dragging *diagram.Node
}

// Option configures an Editor
type Option func(*Editor)

// WithView sets the view notified of added and removed elements
func WithView(v View) Option {
	return func(e *Editor) { e.view = v }
}

// WithOutliner sets the hover highlighter
func WithOutliner(o Outliner) Option {
	return func(e *Editor) { e.outliner = o }
}

// WithDragHandler replaces the default handler, which moves the node
func WithDragHandler(h DragHandler) Option {
	return func(e *Editor) { e.drag = h }
}

// WithLogger sets the logger for diagnostics
func WithLogger(l *zap.Logger) Option {
	return func(e *Editor) { e.log = l }
}

// WithHoverResolution sets the minimum interval between hover resolutions
func WithHoverResolution(d time.Duration) Option {
	return func(e *Editor) { e.hoverResolution = d }
}

// WithClock overrides time.Now for hover throttling
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

// New creates an editor over g
func New(g *diagram.Graph, tol hittest.Tolerance, opts ...Option) *Editor {
	e := &Editor{
		graph:           g,
		view:            nopView{},
		log:             zap.NewNop(),
		tolerance:       tol,
		outliner:        nopOutliner{},
		hoverResolution: 20 * time.Millisecond,
		now:             time.Now,
		drag:            &moveHandler{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Graph returns the edited graph
func (e *Editor) Graph() *diagram.Graph {
	return e.graph
}

// Tolerance returns the hit-test tolerances in use
func (e *Editor) Tolerance() hittest.Tolerance {
	return e.tolerance
}

// SetTolerance replaces the hit-test tolerances
func (e *Editor) SetTolerance(tol hittest.Tolerance) {
	e.tolerance = tol
}

// SetHoverResolution replaces the hover throttle interval
func (e *Editor) SetHoverResolution(d time.Duration) {
	e.hoverResolution = d
}

// Resolve returns the element under (x, y)
func (e *Editor) Resolve(x, y float64) hittest.Hit {
	return hittest.Resolve(x, y, e.graph, e.tolerance)
}

// resolveClick is Resolve with the compared ratios logged at debug level
func (e *Editor) resolveClick(x, y float64) hittest.Hit {
	hit := e.Resolve(x, y)
	if ce := e.log.Check(zap.DebugLevel, "click resolved"); ce != nil {
		nodeRatio, edgeRatio := hittest.Ratios(x, y, e.graph, e.tolerance)
		ce.Write(zap.Stringer("hit", hit),
			zap.Float64("node_ratio", nodeRatio),
			zap.Float64("edge_ratio", edgeRatio))
	}
	return hit
}

// PrimaryClick handles a left click at (x, y).
//
// Clicking empty space creates a node when nothing is selected and
// deselects otherwise. Clicking a node while another node is selected
// connects the two.
func (e *Editor) PrimaryClick(x, y float64) {
	hit := e.resolveClick(x, y)
	switch hit.Kind() {
	case hittest.None:
		if e.selection.State == Idle {
			e.CreateNode(x, y)
		} else {
			e.ClearSelection()
		}

	case hittest.Edge:
		e.selectEdge(hit.Edge())

	case hittest.Node:
		node := hit.Node()
		if e.selection.State == NodeSelected && e.selection.Node != node {
			from := e.selection.Node
			e.ClearSelection()
			e.CreateEdge(from, node)
		} else {
			e.selectNode(node)
		}
	}
}

// SecondaryClick handles a right click at (x, y): it deletes the element
// under the cursor and always leaves the editor Idle.
func (e *Editor) SecondaryClick(x, y float64) {
	hit := e.resolveClick(x, y)
	switch hit.Kind() {
	case hittest.Node:
		_ = e.DeleteNode(hit.Node())
	case hittest.Edge:
		_ = e.DeleteEdge(hit.Edge())
	}
	e.ClearSelection()
}

// CreateNode adds a node at (x, y) with the next default label
func (e *Editor) CreateNode(x, y float64) (*diagram.Node, error) {
	n := diagram.NewNode(strconv.Itoa(e.nextLabel), x, y)
	if err := e.graph.AddNode(n); err != nil {
		e.log.Warn("add node failed", zap.Error(err))
		return nil, err
	}
	e.nextLabel++
	e.view.AddNode(n)
	e.lastAdded = hittest.NodeHit(n)

	e.log.Debug("node created", zap.Stringer("id", n.ID), zap.Float64("x", x), zap.Float64("y", y))
	return n, nil
}

// CreateEdge connects u and v
func (e *Editor) CreateEdge(u, v *diagram.Node) (*diagram.Edge, error) {
	edge := diagram.NewEdge(u, v, "")
	if err := e.graph.AddEdge(edge); err != nil {
		e.log.Warn("add edge failed", zap.Error(err))
		return nil, err
	}
	e.view.AddEdge(edge)
	e.lastAdded = hittest.EdgeHit(edge)

	e.log.Debug("edge created", zap.Stringer("id", edge.ID), zap.Stringer("u", u.ID), zap.Stringer("v", v.ID))
	return edge, nil
}

// DeleteNode removes n and its edges. A node that is not in the graph is
// reported and otherwise ignored.
func (e *Editor) DeleteNode(n *diagram.Node) error {
	removed, err := e.graph.RemoveNode(n)
	if err != nil {
		e.log.Warn("delete node ignored", zap.Error(err))
		return err
	}
	for _, edge := range removed {
		e.view.RemoveEdge(edge)
		e.forget(hittest.EdgeHit(edge))
	}
	e.view.RemoveNode(n)
	e.forget(hittest.NodeHit(n))

	e.log.Debug("node deleted", zap.Stringer("id", n.ID), zap.Int("edges", len(removed)))
	return nil
}

// DeleteEdge removes edge. An edge that is not in the graph is reported and
// otherwise ignored.
func (e *Editor) DeleteEdge(edge *diagram.Edge) error {
	if err := e.graph.RemoveEdge(edge); err != nil {
		e.log.Warn("delete edge ignored", zap.Error(err))
		return err
	}
	e.view.RemoveEdge(edge)
	e.forget(hittest.EdgeHit(edge))

	e.log.Debug("edge deleted", zap.Stringer("id", edge.ID))
	return nil
}

// forget drops every reference the editor holds to a removed element
func (e *Editor) forget(h hittest.Hit) {
	if e.selection.Is(h) {
		e.ClearSelection()
	}
	if e.lastAdded == h {
		e.lastAdded = hittest.Miss
	}
	if e.hovered == h {
		e.hovered = hittest.Miss
	}
	if h.Kind() == hittest.Node && e.dragging == h.Node() {
		e.dragging = nil
	}
}

package editor

import "graphpad/hittest"

// Outliner highlights the element under the pointer
type Outliner interface {
	AddOutline(h hittest.Hit)
	RemoveOutline(h hittest.Hit)
}

type nopOutliner struct{}

func (nopOutliner) AddOutline(hittest.Hit)    {}
func (nopOutliner) RemoveOutline(hittest.Hit) {}

// Hover handles pointer motion at (x, y) and returns the hovered element.
// Calls closer together than the hover resolution are dropped.
func (e *Editor) Hover(x, y float64) hittest.Hit {
	now := e.now()
	if !e.lastHoverAt.IsZero() && now.Sub(e.lastHoverAt) < e.hoverResolution {
		return e.hovered
	}
	e.lastHoverAt = now

	target := e.Resolve(x, y)
	if target == e.hovered {
		return target
	}
	if !e.hovered.IsNone() {
		e.outliner.RemoveOutline(e.hovered)
	}
	if !target.IsNone() {
		e.outliner.AddOutline(target)
	}
	e.hovered = target
	return target
}

// Hovered returns the element last outlined
func (e *Editor) Hovered() hittest.Hit {
	return e.hovered
}

package editor

import (
	"unicode"

	"graphpad/hittest"
)

// LabelTarget returns the element typing edits: the selection, or failing
// that the most recently created element still in the graph.
func (e *Editor) LabelTarget() hittest.Hit {
	if e.selection.State != Idle {
		return e.selection.Target()
	}
	return e.lastAdded
}

// TypeRune appends r to the target's label. Non-printable runes are ignored
func (e *Editor) TypeRune(r rune) bool {
	if !unicode.IsPrint(r) {
		return false
	}
	label, ok := e.label()
	if !ok {
		return false
	}
	return e.setLabel(label + string(r))
}

// TypeText types each rune of s
func (e *Editor) TypeText(s string) {
	for _, r := range s {
		e.TypeRune(r)
	}
}

// DeleteRune removes the last rune of the target's label (Backspace)
func (e *Editor) DeleteRune() bool {
	label, ok := e.label()
	if !ok || label == "" {
		return false
	}
	runes := []rune(label)
	return e.setLabel(string(runes[:len(runes)-1]))
}

// DeleteWordBackward removes the last word of the target's label (Ctrl+W)
func (e *Editor) DeleteWordBackward() bool {
	label, ok := e.label()
	if !ok || label == "" {
		return false
	}
	runes := []rune(label)
	end := len(runes)

	// Skip any trailing spaces, then the word itself
	for end > 0 && unicode.IsSpace(runes[end-1]) {
		end--
	}
	for end > 0 && !unicode.IsSpace(runes[end-1]) {
		end--
	}
	return e.setLabel(string(runes[:end]))
}

func (e *Editor) label() (string, bool) {
	target := e.LabelTarget()
	switch target.Kind() {
	case hittest.Node:
		return target.Node().Label, true
	case hittest.Edge:
		return target.Edge().Label, true
	default:
		return "", false
	}
}

func (e *Editor) setLabel(label string) bool {
	target := e.LabelTarget()
	switch target.Kind() {
	case hittest.Node:
		target.Node().Label = label
	case hittest.Edge:
		target.Edge().Label = label
	default:
		return false
	}
	return true
}

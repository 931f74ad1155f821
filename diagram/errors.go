package diagram

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors for graph operations. The typed errors below unwrap to these.
var (
	// ErrNotFound indicates a removal referenced an element that is not a member.
	ErrNotFound = errors.New("diagram: element not found")

	// ErrInvalidEdge indicates an edge whose endpoints are missing, absent from
	// the graph, or identical.
	ErrInvalidEdge = errors.New("diagram: invalid edge")

	// ErrDuplicate indicates the same element was inserted twice.
	ErrDuplicate = errors.New("diagram: element already present")

	// ErrNilElement indicates a nil node or edge was passed in.
	ErrNilElement = errors.New("diagram: nil element")
)

// NotFoundError reports the removal of a node or edge the graph does not hold.
type NotFoundError struct {
	Kind string // "node" or "edge"
	ID   uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("diagram: %s %s not found", e.Kind, e.ID)
}

// Unwrap lets errors.Is match ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// InvalidEdgeError reports why an edge could not be inserted.
type InvalidEdgeError struct {
	ID     uuid.UUID
	Reason string
}

func (e *InvalidEdgeError) Error() string {
	return fmt.Sprintf("diagram: invalid edge %s: %s", e.ID, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidEdge.
func (e *InvalidEdgeError) Unwrap() error {
	return ErrInvalidEdge
}

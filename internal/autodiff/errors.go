package autodiff

import (
	"errors"
	"fmt"
)

// Graph errors.
var (
	ErrEmptyGraph   = errors.New("autodiff: graph has no nodes")
	ErrNotEvaluated = errors.New("autodiff: node has no value (run Forward first)")
	ErrUnknownNode  = errors.New("autodiff: node handle does not exist in graph")
	ErrForeignNode  = errors.New("autodiff: node handle belongs to another graph")
	ErrNilValue     = errors.New("autodiff: leaf value is nil")
	ErrNotLeaf      = errors.New("autodiff: operation requires a leaf node")
	ErrUnknownKind  = errors.New("autodiff: unknown node kind")
)

// NodeError reports a failure while processing one node of a pass.
// The underlying tensor error stays reachable through errors.Is/As.
type NodeError struct {
	Pass  string // "forward" or "backward"
	Index int    // Position of the node in creation order
	Kind  Kind
	Err   error
}

// Error implements the error interface.
func (e *NodeError) Error() string {
	return fmt.Sprintf("%s: node %d (%s): %v", e.Pass, e.Index, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *NodeError) Unwrap() error {
	return e.Err
}

package autodiff

import (
	"fmt"

	"github.com/born-ml/autograd/internal/tensor"
	"github.com/google/uuid"
)

// NodeID is a stable handle to a node owned by a Graph.
// The zero value refers to no node.
type NodeID struct {
	graph uuid.UUID
	index int
}

// Index returns the node's position in creation order.
func (id NodeID) Index() int {
	return id.index
}

// IsZero reports whether id is the zero handle.
func (id NodeID) IsZero() bool {
	return id.graph == uuid.Nil
}

// String returns a short representation for logs.
func (id NodeID) String() string {
	if id.IsZero() {
		return "node(nil)"
	}
	return fmt.Sprintf("node#%d", id.index)
}

// Node is one operator application in a computation graph.
//
// Nodes live in their graph's arena; callers hold NodeID handles and read
// state through these accessors. Value and Grad return the live tensors,
// not copies.
type Node[T tensor.Numeric] struct {
	kind         Kind
	inputs       []NodeID
	value        *tensor.Tensor[T]
	grad         *tensor.Tensor[T]
	requiresGrad bool
	name         string
}

// Kind returns the node's operator.
func (n *Node[T]) Kind() Kind {
	return n.kind
}

// Inputs returns the handles of the node's parents in operand order.
func (n *Node[T]) Inputs() []NodeID {
	return n.inputs
}

// Value returns the node's value, nil before its first forward pass
// (leaves have a value from construction).
func (n *Node[T]) Value() *tensor.Tensor[T] {
	return n.value
}

// Grad returns the accumulated gradient, nil if never materialized.
func (n *Node[T]) Grad() *tensor.Tensor[T] {
	return n.grad
}

// RequiresGrad reports whether the node tracks gradients.
func (n *Node[T]) RequiresGrad() bool {
	return n.requiresGrad
}

// Name returns the optional label given with Graph.SetName.
func (n *Node[T]) Name() string {
	return n.name
}

// IsParameter reports whether the node is a trainable leaf.
func (n *Node[T]) IsParameter() bool {
	return n.requiresGrad && len(n.inputs) == 0
}

// ensureGrad materializes a zero gradient shaped like the value.
func (n *Node[T]) ensureGrad() {
	if n.grad == nil {
		n.grad = tensor.ZerosLike(n.value)
	}
}

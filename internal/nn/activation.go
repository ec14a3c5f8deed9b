package nn

import (
	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/tensor"
)

// ReLU applies max(0, x) elementwise.
type ReLU[T tensor.Numeric] struct {
	graph *autodiff.Graph[T]
}

// NewReLU creates a ReLU activation on g.
func NewReLU[T tensor.Numeric](g *autodiff.Graph[T]) *ReLU[T] {
	return &ReLU[T]{graph: g}
}

// Forward adds a ReLU node.
func (r *ReLU[T]) Forward(input autodiff.NodeID) (autodiff.NodeID, error) {
	return r.graph.ReLU(input)
}

// Parameters returns nil: ReLU has no trainable parameters.
func (r *ReLU[T]) Parameters() []autodiff.NodeID {
	return nil
}

// Sigmoid applies 1 / (1 + exp(-x)) elementwise.
type Sigmoid[T tensor.Numeric] struct {
	graph *autodiff.Graph[T]
}

// NewSigmoid creates a Sigmoid activation on g.
func NewSigmoid[T tensor.Numeric](g *autodiff.Graph[T]) *Sigmoid[T] {
	return &Sigmoid[T]{graph: g}
}

// Forward adds a Sigmoid node.
func (s *Sigmoid[T]) Forward(input autodiff.NodeID) (autodiff.NodeID, error) {
	return s.graph.Sigmoid(input)
}

// Parameters returns nil: Sigmoid has no trainable parameters.
func (s *Sigmoid[T]) Parameters() []autodiff.NodeID {
	return nil
}

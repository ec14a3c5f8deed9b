// Package nn builds neural network layers on top of an autodiff graph.
//
// This package provides building blocks for constructing neural networks:
//   - Module interface: Base interface for all NN components
//   - Linear: Fully connected layer
//   - Activations: ReLU, Sigmoid
//   - Loss functions: SquaredError
//   - Sequential: Container for stacking layers
//
// Modules do not hold tensors of their own. Constructors add parameter
// leaves to a Graph and Forward adds operator nodes, so every computation
// is recorded on the graph and differentiated by Graph.Backward.
package nn

import (
	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed to build complex architectures:
//
//	l1, err := nn.NewLinear(g, 2, 8, batch, rng)
//	if err != nil { ... }
//	l2, err := nn.NewLinear(g, 8, 1, batch, rng)
//	if err != nil { ... }
//	model := nn.NewSequential[float64](l1, nn.NewSigmoid(g), l2)
type Module[T tensor.Numeric] interface {
	// Forward adds the module's computation on input to the graph and
	// returns the handle of its output node.
	Forward(input autodiff.NodeID) (autodiff.NodeID, error)

	// Parameters returns the module's trainable leaves.
	// Returns an empty slice for modules without parameters.
	Parameters() []autodiff.NodeID
}

// Package optim implements parameter update rules for autodiff graphs.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read the gradients accumulated on a Graph's parameter leaves
// and write updated values back with Graph.SetValue.
//
// Example usage:
//
//	g := autodiff.NewGraph[float64]()
//	// ... build the graph ...
//	opt := optim.NewSGD(g, optim.SGDConfig[float64]{LR: 0.1})
//
//	for epoch := range epochs {
//	    opt.ZeroGrad()
//	    if _, err := g.Forward(); err != nil { ... }
//	    if err := g.Backward(); err != nil { ... }
//	    if err := opt.Step(g.Parameters()); err != nil { ... }
//	}
package optim

import (
	"fmt"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/tensor"
)

// Default learning rates. Variables rather than constants so they convert
// to any Numeric type parameter. Both truncate to 0 for integer types, so
// integer optimizers need an explicit LR.
var (
	defaultSGDLR  = 0.01
	defaultAdamLR = 0.001
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer[T tensor.Numeric] interface {
	// Step applies one update to each listed parameter using its
	// accumulated gradient. Parameters without a gradient are skipped.
	Step(params []autodiff.NodeID) error

	// ZeroGrad resets the gradients of the underlying graph.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() T
}

// paramState resolves a parameter handle into its value and gradient.
// A nil gradient means the parameter has nothing to apply.
func paramState[T tensor.Numeric](g *autodiff.Graph[T], id autodiff.NodeID) (value, grad *tensor.Tensor[T], err error) {
	n, err := g.Node(id)
	if err != nil {
		return nil, nil, err
	}
	if n.Kind() != autodiff.KindLeaf {
		return nil, nil, fmt.Errorf("optim: update %v (%s): %w", id, n.Kind(), autodiff.ErrNotLeaf)
	}
	if n.Grad() == nil {
		return n.Value(), nil, nil
	}
	if !n.Grad().Shape().Equal(n.Value().Shape()) {
		return nil, nil, &tensor.ShapeError{Op: "optim", Expected: n.Value().Shape(), Actual: n.Grad().Shape()}
	}
	return n.Value(), n.Grad(), nil
}

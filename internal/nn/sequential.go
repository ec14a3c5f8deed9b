package nn

import (
	"fmt"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/tensor"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input.
type Sequential[T tensor.Numeric] struct {
	modules []Module[T]
}

// NewSequential creates a new Sequential container.
func NewSequential[T tensor.Numeric](modules ...Module[T]) *Sequential[T] {
	return &Sequential[T]{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
func (s *Sequential[T]) Forward(input autodiff.NodeID) (autodiff.NodeID, error) {
	output := input

	for i, module := range s.modules {
		var err error
		output, err = module.Forward(output)
		if err != nil {
			return autodiff.NodeID{}, fmt.Errorf("sequential: module %d: %w", i, err)
		}
	}

	return output, nil
}

// Parameters returns the parameters of all modules in order.
func (s *Sequential[T]) Parameters() []autodiff.NodeID {
	var params []autodiff.NodeID
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Len returns the number of modules.
func (s *Sequential[T]) Len() int {
	return len(s.modules)
}

package optim

import (
	"fmt"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/tensor"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(g, optim.SGDConfig[float64]{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD[T tensor.Numeric] struct {
	graph      *autodiff.Graph[T]
	lr         T
	momentum   T
	velocities map[autodiff.NodeID]*tensor.Tensor[T]
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig[T tensor.Numeric] struct {
	LR       T // Learning rate (default: 0.01, float types only)
	Momentum T // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the parameters of g.
func NewSGD[T tensor.Numeric](g *autodiff.Graph[T], config SGDConfig[T]) *SGD[T] {
	if config.LR == 0 {
		config.LR = T(defaultSGDLR)
	}

	return &SGD[T]{
		graph:      g,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[autodiff.NodeID]*tensor.Tensor[T]),
	}
}

// Step performs a single optimization step.
//
// Applies gradient descent update to every listed parameter:
//   - Without momentum: param -= lr * grad
//   - With momentum: velocity = momentum * velocity + grad, param -= lr * velocity
//
// Parameters with no gradient are skipped.
func (s *SGD[T]) Step(params []autodiff.NodeID) error {
	for _, id := range params {
		value, grad, err := paramState(s.graph, id)
		if err != nil {
			return err
		}
		if grad == nil {
			continue
		}

		step := grad
		if s.momentum != 0 {
			step, err = s.updateVelocity(id, grad)
			if err != nil {
				return err
			}
		}

		updated, err := value.Sub(step.MulScalar(s.lr))
		if err != nil {
			return err
		}
		if err := s.graph.SetValue(id, updated); err != nil {
			return err
		}
	}
	return nil
}

// updateVelocity advances the velocity buffer of id and returns it.
func (s *SGD[T]) updateVelocity(id autodiff.NodeID, grad *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	velocity, exists := s.velocities[id]
	if !exists {
		velocity = tensor.ZerosLike(grad)
	}

	next, err := velocity.MulScalar(s.momentum).Add(grad)
	if err != nil {
		return nil, err
	}
	s.velocities[id] = next
	return next, nil
}

// ZeroGrad clears gradients for all parameters of the graph.
func (s *SGD[T]) ZeroGrad() {
	s.graph.ZeroGrad()
}

// LR returns the current learning rate.
func (s *SGD[T]) LR() T {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD[T]) SetLR(lr T) {
	s.lr = lr
}

// StateDict returns the velocity buffers keyed "velocity.{node index}".
// Without momentum the map is empty.
func (s *SGD[T]) StateDict() map[string]*tensor.Tensor[T] {
	state := make(map[string]*tensor.Tensor[T])
	if s.momentum == 0 {
		return state
	}
	for id, velocity := range s.velocities {
		state[fmt.Sprintf("velocity.%d", id.Index())] = velocity.Clone()
	}
	return state
}

// LoadStateDict restores velocity buffers for the given parameters.
// Missing entries start from zero on the next step. Returns a
// *tensor.ShapeError if a buffer does not match its parameter.
func (s *SGD[T]) LoadStateDict(params []autodiff.NodeID, state map[string]*tensor.Tensor[T]) error {
	if s.momentum == 0 {
		return nil
	}

	velocities := make(map[autodiff.NodeID]*tensor.Tensor[T])
	for _, id := range params {
		velocity, exists := state[fmt.Sprintf("velocity.%d", id.Index())]
		if !exists {
			continue
		}
		value, err := s.graph.Value(id)
		if err != nil {
			return err
		}
		if !velocity.Shape().Equal(value.Shape()) {
			return fmt.Errorf("velocity for %v: %w", id,
				&tensor.ShapeError{Op: "load state", Expected: value.Shape(), Actual: velocity.Shape()})
		}
		velocities[id] = velocity.Clone()
	}
	s.velocities = velocities
	return nil
}

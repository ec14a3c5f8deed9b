package nn

import (
	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/tensor"
)

// SquaredError adds (pred - target)² elementwise to g.
//
// The result is not reduced. Graph.Backward seeds the output with ones,
// which differentiates the sum of all elements.
func SquaredError[T tensor.Numeric](g *autodiff.Graph[T], pred, target autodiff.NodeID) (autodiff.NodeID, error) {
	diff, err := g.Sub(pred, target)
	if err != nil {
		return autodiff.NodeID{}, err
	}
	return g.Mul(diff, diff)
}

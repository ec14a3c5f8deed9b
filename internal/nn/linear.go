package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/tensor"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W + ones @ b
// where:
//   - x is the input with shape [batch, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias row with shape [1, out_features]
//   - ones is a constant [batch, 1] column that repeats b over the batch
//   - y is the output with shape [batch, out_features]
//
// Elementwise graph operators require identical shapes, so the bias is
// expanded with a matrix product instead of broadcasting.
//
// Weights are initialized using Xavier/Glorot initialization.
// Biases are initialized to zeros.
type Linear[T tensor.Numeric] struct {
	graph       *autodiff.Graph[T]
	inFeatures  int
	outFeatures int
	weight      autodiff.NodeID
	bias        autodiff.NodeID
	ones        autodiff.NodeID
}

// NewLinear adds the parameters of a Linear layer to g.
func NewLinear[T tensor.Numeric](g *autodiff.Graph[T], inFeatures, outFeatures, batch int, rng *rand.Rand) (*Linear[T], error) {
	if inFeatures <= 0 || outFeatures <= 0 || batch <= 0 {
		return nil, fmt.Errorf("nn: linear %dx%d with batch %d: sizes must be positive", inFeatures, outFeatures, batch)
	}

	l := &Linear[T]{graph: g, inFeatures: inFeatures, outFeatures: outFeatures}
	var err error
	if l.weight, err = g.Parameter(Xavier[T](inFeatures, outFeatures, tensor.Shape{inFeatures, outFeatures}, rng)); err != nil {
		return nil, err
	}
	if l.bias, err = g.Parameter(tensor.Zeros[T](tensor.Shape{1, outFeatures})); err != nil {
		return nil, err
	}
	if l.ones, err = g.Variable(tensor.Ones[T](tensor.Shape{batch, 1}), false); err != nil {
		return nil, err
	}
	return l, nil
}

// Forward adds y = x @ W + ones @ b to the graph.
func (l *Linear[T]) Forward(input autodiff.NodeID) (autodiff.NodeID, error) {
	xw, err := l.graph.MatMul(input, l.weight)
	if err != nil {
		return autodiff.NodeID{}, fmt.Errorf("linear: %w", err)
	}
	b, err := l.graph.MatMul(l.ones, l.bias)
	if err != nil {
		return autodiff.NodeID{}, fmt.Errorf("linear: %w", err)
	}
	return l.graph.Add(xw, b)
}

// Parameters returns [weight, bias].
func (l *Linear[T]) Parameters() []autodiff.NodeID {
	return []autodiff.NodeID{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear[T]) Weight() autodiff.NodeID {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear[T]) Bias() autodiff.NodeID {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear[T]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear[T]) OutFeatures() int {
	return l.outFeatures
}

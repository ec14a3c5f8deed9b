// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers recorded on an autodiff graph.
//
// Layers add their parameters to a Graph when constructed and add operator
// nodes on Forward. Graph.Backward differentiates them like any other node.
//
// Example:
//
//	g := autodiff.NewGraph[float64]()
//	rng := rand.New(rand.NewSource(1))
//	l1, _ := nn.NewLinear(g, 2, 4, batch, rng)
//	l2, _ := nn.NewLinear(g, 4, 1, batch, rng)
//	model := nn.NewSequential[float64](l1, nn.NewSigmoid(g), l2)
//	out, err := model.Forward(x)
package nn

import (
	"math/rand"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/nn"
	"github.com/born-ml/autograd/internal/tensor"
)

// Module is the interface implemented by all layers.
type Module[T tensor.Numeric] = nn.Module[T]

// Linear is a fully connected layer.
type Linear[T tensor.Numeric] = nn.Linear[T]

// NewLinear adds a Linear layer's parameters to g.
func NewLinear[T tensor.Numeric](g *autodiff.Graph[T], inFeatures, outFeatures, batch int, rng *rand.Rand) (*Linear[T], error) {
	return nn.NewLinear(g, inFeatures, outFeatures, batch, rng)
}

// ReLU is the rectified linear activation.
type ReLU[T tensor.Numeric] = nn.ReLU[T]

// NewReLU creates a ReLU activation on g.
func NewReLU[T tensor.Numeric](g *autodiff.Graph[T]) *ReLU[T] {
	return nn.NewReLU(g)
}

// Sigmoid is the logistic activation.
type Sigmoid[T tensor.Numeric] = nn.Sigmoid[T]

// NewSigmoid creates a Sigmoid activation on g.
func NewSigmoid[T tensor.Numeric](g *autodiff.Graph[T]) *Sigmoid[T] {
	return nn.NewSigmoid(g)
}

// Sequential chains modules.
type Sequential[T tensor.Numeric] = nn.Sequential[T]

// NewSequential creates a Sequential container.
func NewSequential[T tensor.Numeric](modules ...Module[T]) *Sequential[T] {
	return nn.NewSequential(modules...)
}

// SquaredError adds (pred - target)² to g.
func SquaredError[T tensor.Numeric](g *autodiff.Graph[T], pred, target autodiff.NodeID) (autodiff.NodeID, error) {
	return nn.SquaredError(g, pred, target)
}

// Xavier returns a tensor drawn uniformly from ±sqrt(6/(fanIn+fanOut)).
func Xavier[T tensor.Numeric](fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand) *tensor.Tensor[T] {
	return nn.Xavier[T](fanIn, fanOut, shape, rng)
}

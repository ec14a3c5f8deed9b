// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Computations are recorded as nodes of an explicit Graph. Leaves hold
// tensors; every other node applies one operator to earlier nodes. Forward
// evaluates nodes in creation order, Backward propagates gradients in
// reverse and accumulates them into every input.
//
// Example:
//
//	import (
//	    "github.com/born-ml/autograd/autodiff"
//	    "github.com/born-ml/autograd/tensor"
//	)
//
//	func main() {
//	    g := autodiff.NewGraph[float64]()
//
//	    x, _ := g.Variable(tensor.Full[float64](tensor.Shape{2}, 3), false)
//	    w, _ := g.Parameter(tensor.Full[float64](tensor.Shape{2}, 2))
//	    y, _ := g.Mul(x, w)
//
//	    g.ZeroGrad()
//	    _, _ = g.Forward()  // y = [6 6]
//	    _ = g.Backward()    // dy/dw = x = [3 3]
//	    grad, _ := g.Grad(w)
//	}
package autodiff

import (
	"log/slog"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/tensor"
)

// Graph records nodes in creation order and runs forward and backward
// passes over them.
type Graph[T tensor.Numeric] = autodiff.Graph[T]

// Node is one operator application inside a Graph.
type Node[T tensor.Numeric] = autodiff.Node[T]

// NodeID is a handle to a node of a specific Graph.
type NodeID = autodiff.NodeID

// Kind identifies a node's operator.
type Kind = autodiff.Kind

// Node kinds.
const (
	KindLeaf    = autodiff.KindLeaf
	KindAdd     = autodiff.KindAdd
	KindSub     = autodiff.KindSub
	KindMul     = autodiff.KindMul
	KindDiv     = autodiff.KindDiv
	KindMatMul  = autodiff.KindMatMul
	KindReLU    = autodiff.KindReLU
	KindSigmoid = autodiff.KindSigmoid
)

// Option configures a Graph.
type Option = autodiff.Option

// NodeError reports which node of a pass failed.
type NodeError = autodiff.NodeError

// Graph errors.
var (
	ErrEmptyGraph   = autodiff.ErrEmptyGraph
	ErrNotEvaluated = autodiff.ErrNotEvaluated
	ErrUnknownNode  = autodiff.ErrUnknownNode
	ErrForeignNode  = autodiff.ErrForeignNode
	ErrNilValue     = autodiff.ErrNilValue
	ErrNotLeaf      = autodiff.ErrNotLeaf
	ErrUnknownKind  = autodiff.ErrUnknownKind
)

// NewGraph creates an empty graph.
//
// Example:
//
//	g := autodiff.NewGraph[float32](autodiff.WithName("mlp"))
func NewGraph[T tensor.Numeric](opts ...Option) *Graph[T] {
	return autodiff.NewGraph[T](opts...)
}

// WithLogger sets the logger used for pass diagnostics.
func WithLogger(l *slog.Logger) Option {
	return autodiff.WithLogger(l)
}

// WithName labels the graph in log records.
func WithName(name string) Option {
	return autodiff.WithName(name)
}

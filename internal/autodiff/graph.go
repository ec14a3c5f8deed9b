// Package autodiff implements reverse-mode automatic differentiation over
// an explicit computation graph.
//
// A Graph owns its nodes in an append-only arena. Node constructors are
// methods on the graph and only accept handles to nodes that already
// exist, so creation order is always a valid topological order and cycles
// cannot be expressed.
//
// Usage:
//
//	g := autodiff.NewGraph[float64]()
//	x, _ := g.Variable(xs, false)
//	w, _ := g.Parameter(ws)
//	y, _ := g.Mul(x, w)
//
//	g.ZeroGrad()
//	if _, err := g.Forward(); err != nil { ... }
//	if err := g.Backward(); err != nil { ... }
//	grad, _ := g.Grad(w) // dy/dw = x
package autodiff

import (
	"fmt"
	"log/slog"

	"github.com/born-ml/autograd/internal/tensor"
	"github.com/google/uuid"
)

// Graph records nodes in creation order and drives forward evaluation,
// backward propagation and gradient reset.
//
// A Graph is not safe for concurrent use. Independent graphs share no
// state and may be used from different goroutines.
type Graph[T tensor.Numeric] struct {
	id     uuid.UUID
	name   string
	nodes  []*Node[T]
	logger *slog.Logger
}

// Option configures a Graph.
type Option func(*graphOptions)

type graphOptions struct {
	logger *slog.Logger
	name   string
}

// WithLogger sets the logger used for pass diagnostics.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *graphOptions) {
		o.logger = l
	}
}

// WithName labels the graph in log records.
func WithName(name string) Option {
	return func(o *graphOptions) {
		o.name = name
	}
}

// NewGraph creates an empty graph.
func NewGraph[T tensor.Numeric](opts ...Option) *Graph[T] {
	o := graphOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	id := uuid.New()
	return &Graph[T]{
		id:     id,
		name:   o.name,
		nodes:  make([]*Node[T], 0, 16),
		logger: o.logger.With("graph", id.String()),
	}
}

// ID returns the graph's unique identifier.
func (g *Graph[T]) ID() uuid.UUID {
	return g.id
}

// Name returns the label set with WithName.
func (g *Graph[T]) Name() string {
	return g.name
}

// Len returns the number of nodes.
func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// Variable adds a leaf holding value. With requiresGrad the leaf is a
// trainable parameter and starts with a zero gradient.
func (g *Graph[T]) Variable(value *tensor.Tensor[T], requiresGrad bool) (NodeID, error) {
	if value == nil {
		return NodeID{}, ErrNilValue
	}
	n := &Node[T]{
		kind:         KindLeaf,
		value:        value,
		requiresGrad: requiresGrad,
	}
	if requiresGrad {
		n.grad = tensor.ZerosLike(value)
	}
	return g.push(n), nil
}

// Parameter adds a trainable leaf. Equivalent to Variable(value, true).
func (g *Graph[T]) Parameter(value *tensor.Tensor[T]) (NodeID, error) {
	return g.Variable(value, true)
}

// Add adds a node computing a + b.
func (g *Graph[T]) Add(a, b NodeID) (NodeID, error) {
	return g.op(KindAdd, a, b)
}

// Sub adds a node computing a - b.
func (g *Graph[T]) Sub(a, b NodeID) (NodeID, error) {
	return g.op(KindSub, a, b)
}

// Mul adds a node computing the elementwise product a * b.
func (g *Graph[T]) Mul(a, b NodeID) (NodeID, error) {
	return g.op(KindMul, a, b)
}

// Div adds a node computing the elementwise quotient a / b.
func (g *Graph[T]) Div(a, b NodeID) (NodeID, error) {
	return g.op(KindDiv, a, b)
}

// MatMul adds a node computing the matrix product a @ b
// (rank 2, or rank 3 batched).
func (g *Graph[T]) MatMul(a, b NodeID) (NodeID, error) {
	return g.op(KindMatMul, a, b)
}

// ReLU adds a node computing max(0, x).
func (g *Graph[T]) ReLU(x NodeID) (NodeID, error) {
	return g.op(KindReLU, x)
}

// Sigmoid adds a node computing 1 / (1 + exp(-x)).
func (g *Graph[T]) Sigmoid(x NodeID) (NodeID, error) {
	return g.op(KindSigmoid, x)
}

func (g *Graph[T]) op(kind Kind, inputs ...NodeID) (NodeID, error) {
	if len(inputs) != kind.Arity() {
		return NodeID{}, fmt.Errorf("autodiff: %s takes %d inputs, got %d", kind, kind.Arity(), len(inputs))
	}
	for _, in := range inputs {
		if err := g.check(in); err != nil {
			return NodeID{}, fmt.Errorf("%s: %w", kind, err)
		}
	}
	return g.push(&Node[T]{
		kind:         kind,
		inputs:       append([]NodeID(nil), inputs...),
		requiresGrad: true,
	}), nil
}

func (g *Graph[T]) push(n *Node[T]) NodeID {
	id := NodeID{graph: g.id, index: len(g.nodes)}
	g.nodes = append(g.nodes, n)
	return id
}

// check validates that id refers to an existing node of this graph.
func (g *Graph[T]) check(id NodeID) error {
	if id.graph != g.id {
		if id.IsZero() {
			return fmt.Errorf("%v: %w", id, ErrUnknownNode)
		}
		return fmt.Errorf("%v: %w", id, ErrForeignNode)
	}
	if id.index < 0 || id.index >= len(g.nodes) {
		return fmt.Errorf("%v: %w", id, ErrUnknownNode)
	}
	return nil
}

// Node returns the node behind id.
func (g *Graph[T]) Node(id NodeID) (*Node[T], error) {
	if err := g.check(id); err != nil {
		return nil, err
	}
	return g.nodes[id.index], nil
}

// Value returns the current value of id.
func (g *Graph[T]) Value(id NodeID) (*tensor.Tensor[T], error) {
	n, err := g.Node(id)
	if err != nil {
		return nil, err
	}
	return n.value, nil
}

// Grad returns the accumulated gradient of id, nil if none yet.
func (g *Graph[T]) Grad(id NodeID) (*tensor.Tensor[T], error) {
	n, err := g.Node(id)
	if err != nil {
		return nil, err
	}
	return n.grad, nil
}

// SetValue replaces the value of a leaf. Used to feed new inputs between
// passes and by optimizers to write updated parameters. A gradient whose
// shape no longer matches is dropped.
func (g *Graph[T]) SetValue(id NodeID, value *tensor.Tensor[T]) error {
	n, err := g.Node(id)
	if err != nil {
		return err
	}
	if n.kind != KindLeaf {
		return fmt.Errorf("set value of %v (%s): %w", id, n.kind, ErrNotLeaf)
	}
	if value == nil {
		return ErrNilValue
	}
	if n.grad != nil && !n.grad.Shape().Equal(value.Shape()) {
		n.grad = nil
	}
	n.value = value
	return nil
}

// SetName labels a node for diagnostics.
func (g *Graph[T]) SetName(id NodeID, name string) error {
	n, err := g.Node(id)
	if err != nil {
		return err
	}
	n.name = name
	return nil
}

// Forward evaluates every node in creation order and returns the value of
// the last node.
//
// The first failing node aborts the pass with a *NodeError wrapping the
// tensor error. Values computed earlier in the same pass are kept; the
// graph should be treated as inconsistent until the next successful pass.
func (g *Graph[T]) Forward() (*tensor.Tensor[T], error) {
	if len(g.nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	for i, n := range g.nodes {
		if err := g.forwardNode(n); err != nil {
			g.logger.Debug("forward pass failed", "node", i, "kind", n.kind, "error", err)
			return nil, &NodeError{Pass: "forward", Index: i, Kind: n.kind, Err: err}
		}
	}

	g.logger.Debug("forward pass complete", "nodes", len(g.nodes))
	return g.nodes[len(g.nodes)-1].value, nil
}

// Backward seeds the last node's gradient with ones and propagates
// gradients in strict reverse creation order.
//
// Each node hands its own accumulated gradient to its inputs, whose
// gradients are materialized as zeros on first use and then summed into
// (never overwritten). Gradients therefore accumulate across calls until
// ZeroGrad resets them. Nodes that received no gradient are skipped.
// An empty graph is a no-op.
func (g *Graph[T]) Backward() error {
	if len(g.nodes) == 0 {
		return nil
	}

	last := g.nodes[len(g.nodes)-1]
	if last.value == nil {
		return &NodeError{Pass: "backward", Index: len(g.nodes) - 1, Kind: last.kind, Err: ErrNotEvaluated}
	}
	last.grad = tensor.OnesLike(last.value)

	for i := len(g.nodes) - 1; i >= 0; i-- {
		n := g.nodes[i]
		if n.kind == KindLeaf || n.grad == nil {
			continue
		}
		if err := g.backwardNode(n); err != nil {
			g.logger.Debug("backward pass failed", "node", i, "kind", n.kind, "error", err)
			return &NodeError{Pass: "backward", Index: i, Kind: n.kind, Err: err}
		}
	}

	g.logger.Debug("backward pass complete", "nodes", len(g.nodes))
	return nil
}

// ZeroGrad resets the gradient of every node that requires one to zeros
// shaped like its value. Nodes without a value yet get no gradient;
// nodes that do not require gradients are left untouched.
func (g *Graph[T]) ZeroGrad() {
	reset := 0
	for _, n := range g.nodes {
		if !n.requiresGrad {
			continue
		}
		if n.value == nil {
			n.grad = nil
			continue
		}
		n.grad = tensor.ZerosLike(n.value)
		reset++
	}
	g.logger.Debug("gradients reset", "nodes", reset)
}

// Parameters returns, in creation order, every trainable leaf.
func (g *Graph[T]) Parameters() []NodeID {
	var params []NodeID
	for i, n := range g.nodes {
		if n.IsParameter() {
			params = append(params, NodeID{graph: g.id, index: i})
		}
	}
	return params
}

// input returns the i-th parent of n.
func (g *Graph[T]) input(n *Node[T], i int) *Node[T] {
	return g.nodes[n.inputs[i].index]
}

package autodiff

import (
	"fmt"

	"github.com/born-ml/autograd/internal/tensor"
)

// forwardNode computes n.value from its inputs' values.
func (g *Graph[T]) forwardNode(n *Node[T]) error {
	if n.kind == KindLeaf {
		if n.value == nil {
			return ErrNilValue
		}
		return nil
	}

	for i := range n.inputs {
		if g.input(n, i).value == nil {
			return fmt.Errorf("input %d: %w", i, ErrNotEvaluated)
		}
	}

	var (
		out *tensor.Tensor[T]
		err error
	)
	switch n.kind {
	case KindAdd:
		out, err = g.input(n, 0).value.Add(g.input(n, 1).value)
	case KindSub:
		out, err = g.input(n, 0).value.Sub(g.input(n, 1).value)
	case KindMul:
		out, err = g.input(n, 0).value.Mul(g.input(n, 1).value)
	case KindDiv:
		out, err = g.input(n, 0).value.Div(g.input(n, 1).value)
	case KindMatMul:
		out, err = tensor.MatMul(g.input(n, 0).value, g.input(n, 1).value)
	case KindReLU:
		out = g.input(n, 0).value.ReLU()
	case KindSigmoid:
		out = g.input(n, 0).value.Sigmoid()
	case KindLeaf:
		// handled above
	default:
		return fmt.Errorf("%d: %w", n.kind, ErrUnknownKind)
	}
	if err != nil {
		return err
	}

	n.value = out
	return nil
}

// backwardNode accumulates n's contribution into its inputs' gradients,
// using n.grad as the upstream gradient g.
//
//	add:     ga += g              gb += g
//	sub:     ga += g              gb -= g
//	mul:     ga += g*b            gb += g*a
//	div:     ga += g/b            gb -= g*a/(b*b)
//	matmul:  ga += g @ bᵀ         gb += aᵀ @ g
//	relu:    gx += g * 1{x > 0}
//	sigmoid: gx += g * s * (1-s), s = value
func (g *Graph[T]) backwardNode(n *Node[T]) error {
	up := n.grad

	switch n.kind {
	case KindLeaf:
		return nil

	case KindAdd:
		if err := g.accumulate(n, 0, up); err != nil {
			return err
		}
		return g.accumulate(n, 1, up)

	case KindSub:
		if err := g.accumulate(n, 0, up); err != nil {
			return err
		}
		return g.accumulate(n, 1, up.Neg())

	case KindMul:
		a, b := g.input(n, 0).value, g.input(n, 1).value
		gradA, err := up.Mul(b)
		if err != nil {
			return err
		}
		gradB, err := up.Mul(a)
		if err != nil {
			return err
		}
		if err := g.accumulate(n, 0, gradA); err != nil {
			return err
		}
		return g.accumulate(n, 1, gradB)

	case KindDiv:
		a, b := g.input(n, 0).value, g.input(n, 1).value
		gradA, err := up.Div(b)
		if err != nil {
			return err
		}
		num, err := up.Mul(a)
		if err != nil {
			return err
		}
		bSquared, err := b.Mul(b)
		if err != nil {
			return err
		}
		gradB, err := num.Div(bSquared)
		if err != nil {
			return err
		}
		if err := g.accumulate(n, 0, gradA); err != nil {
			return err
		}
		return g.accumulate(n, 1, gradB.Neg())

	case KindMatMul:
		a, b := g.input(n, 0).value, g.input(n, 1).value
		bT, err := b.Transpose()
		if err != nil {
			return err
		}
		gradA, err := tensor.MatMul(up, bT)
		if err != nil {
			return err
		}
		aT, err := a.Transpose()
		if err != nil {
			return err
		}
		gradB, err := tensor.MatMul(aT, up)
		if err != nil {
			return err
		}
		if err := g.accumulate(n, 0, gradA); err != nil {
			return err
		}
		return g.accumulate(n, 1, gradB)

	case KindReLU:
		x := g.input(n, 0).value
		gradX, err := up.Zip(x, func(gv, xv T) T {
			if xv > 0 {
				return gv
			}
			return 0
		})
		if err != nil {
			return err
		}
		return g.accumulate(n, 0, gradX)

	case KindSigmoid:
		gradX, err := up.Zip(n.value, func(gv, s T) T {
			return gv * s * (1 - s)
		})
		if err != nil {
			return err
		}
		return g.accumulate(n, 0, gradX)

	default:
		return fmt.Errorf("%d: %w", n.kind, ErrUnknownKind)
	}
}

// accumulate adds contrib into the gradient of n's i-th input,
// materializing a zero gradient first if needed.
func (g *Graph[T]) accumulate(n *Node[T], i int, contrib *tensor.Tensor[T]) error {
	in := g.input(n, i)
	in.ensureGrad()
	sum, err := in.grad.Add(contrib)
	if err != nil {
		return fmt.Errorf("accumulate into input %d: %w", i, err)
	}
	in.grad = sum
	return nil
}

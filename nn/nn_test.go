// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math/rand"
	"testing"

	"github.com/born-ml/autograd/autodiff"
	"github.com/born-ml/autograd/nn"
	"github.com/born-ml/autograd/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicSequential(t *testing.T) {
	g := autodiff.NewGraph[float64]()
	rng := rand.New(rand.NewSource(7))

	x, err := g.Variable(tensor.Ones[float64](tensor.Shape{3, 2}), false)
	require.NoError(t, err)
	l1, err := nn.NewLinear(g, 2, 5, 3, rng)
	require.NoError(t, err)
	l2, err := nn.NewLinear(g, 5, 1, 3, rng)
	require.NoError(t, err)

	model := nn.NewSequential[float64](l1, nn.NewReLU(g), l2, nn.NewSigmoid(g))
	assert.Equal(t, 4, model.Len())
	assert.Equal(t, g.Parameters(), model.Parameters())

	_, err = model.Forward(x)
	require.NoError(t, err)
	out, err := g.Forward()
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 1}, out.Shape())
	assert.True(t, out.All(func(v float64) bool { return v > 0 && v < 1 }))
}

func TestPublicSquaredError(t *testing.T) {
	g := autodiff.NewGraph[float64]()
	pred, err := g.Parameter(tensor.Full[float64](tensor.Shape{2}, 3))
	require.NoError(t, err)
	target, err := g.Variable(tensor.Full[float64](tensor.Shape{2}, 1), false)
	require.NoError(t, err)
	_, err = nn.SquaredError(g, pred, target)
	require.NoError(t, err)

	loss, err := g.Forward()
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4}, loss.Values())

	require.NoError(t, g.Backward())
	grad, err := g.Grad(pred)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4}, grad.Values())
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/born-ml/autograd/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicCreation(t *testing.T) {
	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, x.Shape())
	assert.Equal(t, []int{3, 1}, x.Strides())

	assert.Equal(t, []float32{0, 0}, tensor.Zeros[float32](tensor.Shape{2}).Values())
	assert.Equal(t, []int64{1, 1, 1}, tensor.Ones[int64](tensor.Shape{3}).Values())
	assert.Equal(t, []float64{2.5, 2.5}, tensor.Full(tensor.Shape{2}, 2.5).Values())
	assert.Equal(t, []int32{0, 1, 2, 3}, tensor.Arange[int32](4).Values())
	assert.Equal(t, 0, tensor.Scalar(7.0).Rank())
	assert.Equal(t, tensor.Shape{2, 3}, tensor.ZerosLike(x).Shape())
	assert.Equal(t, float32(6), tensor.OnesLike(x).Sum())

	r := tensor.Randn[float64](tensor.Shape{4, 4}, 1, rand.New(rand.NewSource(1)))
	assert.Equal(t, 16, r.NumElements())

	_, err = tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 2})
	assert.ErrorIs(t, err, tensor.ErrShape)
}

func TestPublicMatMulWithTransposedView(t *testing.T) {
	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)
	xt, err := x.Transpose()
	require.NoError(t, err)
	assert.False(t, xt.IsContiguous())

	p, err := tensor.MatMul(x, xt)
	require.NoError(t, err)
	assert.Equal(t, []float64{14, 32, 32, 77}, p.Values())

	_, err = tensor.MatMul2D(x, x)
	assert.ErrorIs(t, err, tensor.ErrDimension)

	a := tensor.Ones[float64](tensor.Shape{2, 2, 2})
	b := tensor.Ones[float64](tensor.Shape{3, 2, 2})
	_, err = tensor.BatchMatMul(a, b)
	var bm *tensor.BatchMismatchError
	require.True(t, errors.As(err, &bm))
}

func TestPublicErrors(t *testing.T) {
	x := tensor.Ones[float64](tensor.Shape{2})

	_, err := x.Div(tensor.Zeros[float64](tensor.Shape{2}))
	var dz *tensor.DivisionByZeroError
	require.ErrorAs(t, err, &dz)
	assert.ErrorIs(t, err, tensor.ErrDivisionByZero)

	_, err = x.At(5)
	assert.ErrorIs(t, err, tensor.ErrIndex)

	_, err = x.Neg().Sqrt()
	assert.ErrorIs(t, err, tensor.ErrDomain)

	_, err = tensor.Zeros[float64](tensor.Shape{2, 3}).Squeeze(0)
	assert.ErrorIs(t, err, tensor.ErrDimension)

	s, err := tensor.Zeros[float64](tensor.Shape{1, 1}).Squeeze(tensor.SqueezeAll)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1}, s.Shape())
}

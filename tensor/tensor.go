// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/born-ml/autograd/internal/tensor"
)

// Type aliases for public API

// Numeric is the constraint for tensor element types: any Go integer or
// floating-point type.
type Numeric = tensor.Numeric

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a strided N-dimensional array over a flat buffer.
//
// Transpose and Squeeze return O(1) views sharing the buffer; every other
// operation returns a fresh tensor and leaves its operands untouched.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	xt, _ := x.Transpose()
//	y, _ := tensor.MatMul(x, xt)
type Tensor[T Numeric] = tensor.Tensor[T]

// SqueezeAll makes Squeeze drop every axis of length 1.
const SqueezeAll = tensor.SqueezeAll

// Error kinds. Match with errors.Is; use errors.As on the structured
// types below for details.
var (
	ErrShape          = tensor.ErrShape
	ErrDivisionByZero = tensor.ErrDivisionByZero
	ErrDimension      = tensor.ErrDimension
	ErrBatchMismatch  = tensor.ErrBatchMismatch
	ErrIndex          = tensor.ErrIndex
	ErrDomain         = tensor.ErrDomain
)

// Structured errors.
type (
	ShapeError          = tensor.ShapeError
	DivisionByZeroError = tensor.DivisionByZeroError
	DimensionError      = tensor.DimensionError
	BatchMismatchError  = tensor.BatchMismatchError
	IndexError          = tensor.IndexError
	DomainError         = tensor.DomainError
)

// Creation functions

// FromSlice creates a tensor from a copy of data.
// Returns *ShapeError if the element count does not match shape.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice[T Numeric](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T Numeric](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T Numeric](shape Shape) *Tensor[T] {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x := tensor.Full[float32](tensor.Shape{2, 3}, 3.14)
func Full[T Numeric](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}

// Scalar creates a rank-0 tensor.
func Scalar[T Numeric](v T) *Tensor[T] {
	return tensor.Scalar(v)
}

// Arange creates a 1-D tensor holding 0, 1, ..., n-1.
func Arange[T Numeric](n int) *Tensor[T] {
	return tensor.Arange[T](n)
}

// ZerosLike creates a zero tensor shaped like t.
func ZerosLike[T Numeric](t *Tensor[T]) *Tensor[T] {
	return tensor.ZerosLike(t)
}

// OnesLike creates a tensor of ones shaped like t.
func OnesLike[T Numeric](t *Tensor[T]) *Tensor[T] {
	return tensor.OnesLike(t)
}

// Randn creates a tensor with values drawn from N(0, std²) using rng.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	w := tensor.Randn[float64](tensor.Shape{2, 3}, 0.5, rng)
func Randn[T Numeric](shape Shape, std float64, rng *rand.Rand) *Tensor[T] {
	return tensor.Randn[T](shape, std, rng)
}

// Matrix multiplication

// MatMul multiplies two rank-2 matrices or two rank-3 batches.
func MatMul[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) {
	return tensor.MatMul(a, b)
}

// MatMul2D multiplies a [m, k] matrix by a [k, n] matrix.
func MatMul2D[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) {
	return tensor.MatMul2D(a, b)
}

// BatchMatMul multiplies [b, m, k] by [b, k, n] batch by batch.
func BatchMatMul[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) {
	return tensor.BatchMatMul(a, b)
}

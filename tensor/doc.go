// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided N-dimensional tensors.
//
// # Overview
//
// A Tensor is a flat buffer plus a shape and per-axis strides:
//   - Generic over any integer or float element type (Tensor[T])
//   - O(1) views for Transpose and Squeeze
//   - Elementwise ops that read each operand through its own strides
//   - Structured errors instead of panics
//
// # Basic Usage
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	y := tensor.Ones[float64](tensor.Shape{2, 3})
//
//	z, err := x.Add(y)     // shapes must match exactly
//	xt, _ := x.Transpose() // view, shape [3 2]
//	p, err := tensor.MatMul(x, xt)
//
// # Errors
//
// Every fallible operation returns an error matching one of the sentinels:
//
//	_, err := x.Add(tensor.Ones[float64](tensor.Shape{3, 2}))
//	if errors.Is(err, tensor.ErrShape) {
//	    var se *tensor.ShapeError
//	    errors.As(err, &se) // se.Expected, se.Actual
//	}
//
// No broadcasting is performed: binary operations require identical shapes.
//
// # Views
//
// Transpose swaps shape and strides without copying, so the result shares
// its buffer with the input. Reshape of such a view materializes it first
// to keep the logical element order. Use Values for a row-major copy and
// Data for the raw buffer.
package tensor

package tensor

// SqueezeAll makes Squeeze drop every axis of length 1.
const SqueezeAll = -1

// Reshape returns a tensor with the same elements in row-major order but
// a different shape. The new shape must have the same number of elements.
//
// A contiguous tensor is reshaped as a view sharing its buffer. A strided
// view (e.g. the result of Transpose) is materialized first so the
// logical element order is preserved.
//
// Example:
//
//	t := tensor.Arange[int32](12) // Shape: [12]
//	reshaped, err := t.Reshape(3, 4) // Shape: [3, 4]
func (t *Tensor[T]) Reshape(newShape ...int) (*Tensor[T], error) {
	shape := Shape(newShape).Clone()
	if err := shape.Validate(); err != nil {
		return nil, &ShapeError{Op: "reshape", Expected: t.shape.Clone(), Actual: shape}
	}
	if shape.NumElements() != t.NumElements() {
		return nil, &ShapeError{Op: "reshape", Expected: t.shape.Clone(), Actual: shape}
	}

	src := t.Contiguous()
	return src.view(shape, shape.ComputeStrides()), nil
}

// Transpose swaps the last two axes. See TransposeAxes.
func (t *Tensor[T]) Transpose() (*Tensor[T], error) {
	return t.TransposeAxes(-2, -1)
}

// TransposeAxes swaps axes a and b. Negative axes count from the end.
//
// The result is an O(1) view: shape and strides are swapped while the
// buffer is left in place, so the result is generally not contiguous.
//
// Example:
//
//	t := tensor.Zeros[float32](tensor.Shape{2, 3, 4})
//	tt, err := t.TransposeAxes(0, 2) // Shape: [4, 3, 2]
func (t *Tensor[T]) TransposeAxes(a, b int) (*Tensor[T], error) {
	rank := t.Rank()
	if rank < 2 {
		return nil, &DimensionError{Op: "transpose", Rank: rank, Axis: -1, Detail: "need at least 2 axes"}
	}
	na, ok := normalizeAxis(a, rank)
	if !ok {
		return nil, &DimensionError{Op: "transpose", Rank: rank, Axis: a, Detail: "axis out of range"}
	}
	nb, ok := normalizeAxis(b, rank)
	if !ok {
		return nil, &DimensionError{Op: "transpose", Rank: rank, Axis: b, Detail: "axis out of range"}
	}

	shape := t.shape.Clone()
	strides := append([]int(nil), t.strides...)
	shape[na], shape[nb] = shape[nb], shape[na]
	strides[na], strides[nb] = strides[nb], strides[na]
	return t.view(shape, strides), nil
}

// Squeeze removes axes of length 1.
//
// With SqueezeAll every unit axis is dropped; otherwise only the given
// axis, which must exist and have length 1. If no axis remains the result
// has Shape{1}, never rank 0. Strides of the kept axes are preserved, so
// squeezing a view yields a view.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 1, 3})
//	y, _ := x.Squeeze(1)          // Shape: [2, 3]
//	z, _ := x.Squeeze(SqueezeAll) // Shape: [2, 3]
func (t *Tensor[T]) Squeeze(axis int) (*Tensor[T], error) {
	rank := t.Rank()
	if axis != SqueezeAll {
		if axis < 0 || axis >= rank {
			return nil, &DimensionError{Op: "squeeze", Rank: rank, Axis: axis, Detail: "axis out of range"}
		}
		if t.shape[axis] != 1 {
			return nil, &DimensionError{Op: "squeeze", Rank: rank, Axis: axis, Detail: "axis length is not 1"}
		}
	}

	shape := make(Shape, 0, rank)
	strides := make([]int, 0, rank)
	for i, dim := range t.shape {
		if dim == 1 && (axis == SqueezeAll || i == axis) {
			continue
		}
		shape = append(shape, dim)
		strides = append(strides, t.strides[i])
	}
	if len(shape) == 0 {
		shape = Shape{1}
		strides = []int{1}
	}
	return t.view(shape, strides), nil
}

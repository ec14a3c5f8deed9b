package tensor

import (
	"fmt"
	"strings"
)

// Tensor is a dense N-dimensional array stored as a flat buffer plus
// per-axis strides.
//
// Element idx lives at data[Σ idx[i]*strides[i]]. Tensors produced by
// FromSlice, creation helpers and every arithmetic operation are
// row-major and contiguous. Transpose and Squeeze return views: they
// share the buffer and only reinterpret shape and strides, so code that
// walks Data() directly must honor Strides().
//
// Example:
//
//	t, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	if err != nil {
//	    return err
//	}
//	v, _ := t.At(1, 2) // 6
type Tensor[T Numeric] struct {
	data    []T
	shape   Shape
	strides []int
}

// newTensor wraps data with row-major strides. The caller guarantees
// len(data) == shape.NumElements().
func newTensor[T Numeric](data []T, shape Shape) *Tensor[T] {
	return &Tensor[T]{
		data:    data,
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}
}

// view shares t's buffer under a different shape and strides.
func (t *Tensor[T]) view(shape Shape, strides []int) *Tensor[T] {
	return &Tensor[T]{
		data:    t.data,
		shape:   shape,
		strides: strides,
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Numeric](data []T, shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("from slice: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, &ShapeError{
			Op:       "from slice",
			Expected: shape.Clone(),
			Actual:   Shape{len(data)},
		}
	}

	buf := make([]T, len(data))
	copy(buf, data)
	return newTensor(buf, shape), nil
}

// Shape returns the tensor's shape.
// The returned slice must not be modified.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// Strides returns the buffer step for a unit increment on each axis.
func (t *Tensor[T]) Strides() []int {
	return t.strides
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the backing buffer in physical order.
//
// WARNING: Modifications to the returned slice will modify the tensor and
// every view sharing its buffer. For a view the physical order differs
// from the logical one; use Values for a row-major copy.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// IsContiguous reports whether the strides are the row-major strides of
// the shape, i.e. logical and physical order agree.
func (t *Tensor[T]) IsContiguous() bool {
	expected := t.shape.ComputeStrides()
	for i, s := range t.strides {
		// Strides of unit axes never contribute to an offset.
		if t.shape[i] > 1 && s != expected[i] {
			return false
		}
	}
	return true
}

// Values returns the elements in logical row-major order as a new slice.
func (t *Tensor[T]) Values() []T {
	out := make([]T, t.NumElements())
	if t.IsContiguous() {
		copy(out, t.data[:len(out)])
		return out
	}
	i := 0
	forEachIndex(t.shape, func(idx []int) {
		out[i] = t.data[t.Offset(idx)]
		i++
	})
	return out
}

// Contiguous returns t itself when it is already row-major, otherwise a
// materialized row-major copy.
func (t *Tensor[T]) Contiguous() *Tensor[T] {
	if t.IsContiguous() {
		return t
	}
	return newTensor(t.Values(), t.shape)
}

// Clone creates a deep, contiguous copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return newTensor(t.Values(), t.shape)
}

// Offset converts a logical index into a buffer position.
// No bounds checking is performed.
func (t *Tensor[T]) Offset(idx []int) int {
	ofs := 0
	for i, s := range t.strides {
		ofs += idx[i] * s
	}
	return ofs
}

// checkIndex validates idx against the tensor bounds.
func (t *Tensor[T]) checkIndex(idx []int) error {
	if len(idx) != len(t.shape) {
		return &IndexError{Index: append([]int(nil), idx...), Shape: t.shape.Clone()}
	}
	for i, v := range idx {
		if v < 0 || v >= t.shape[i] {
			return &IndexError{Index: append([]int(nil), idx...), Shape: t.shape.Clone()}
		}
	}
	return nil
}

// Ref returns a pointer to the element at idx after bounds checking.
// The pointer aliases the tensor buffer.
func (t *Tensor[T]) Ref(idx ...int) (*T, error) {
	if err := t.checkIndex(idx); err != nil {
		return nil, err
	}
	return &t.data[t.Offset(idx)], nil
}

// At returns the element at the given indices.
//
// Example:
//
//	t := tensor.Zeros[float32](tensor.Shape{3, 4})
//	value, err := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T]) At(idx ...int) (T, error) {
	p, err := t.Ref(idx...)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set sets the element at the given indices.
func (t *Tensor[T]) Set(value T, idx ...int) error {
	p, err := t.Ref(idx...)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Elem returns a pointer to the element at idx without bounds checking.
// Out-of-range input is undefined: it may panic or address an unrelated
// element. Only for loops whose indices were validated up front.
func (t *Tensor[T]) Elem(idx ...int) *T {
	return &t.data[t.Offset(idx)]
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor%v", []int(t.shape))
	vals := t.Values()
	const limit = 16
	if len(vals) > limit {
		fmt.Fprintf(&sb, "%v...", vals[:limit])
		return sb.String()
	}
	fmt.Fprintf(&sb, "%v", vals)
	return sb.String()
}

// forEachIndex calls fn for every logical index of shape in row-major
// order. The idx slice is reused between calls.
func forEachIndex(shape Shape, fn func(idx []int)) {
	n := shape.NumElements()
	if n == 0 {
		return
	}
	idx := make([]int, len(shape))
	for range n {
		fn(idx)
		for axis := len(shape) - 1; axis >= 0; axis-- {
			idx[axis]++
			if idx[axis] < shape[axis] {
				break
			}
			idx[axis] = 0
		}
	}
}

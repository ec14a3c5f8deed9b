package tensor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers

func mustFromSlice[T Numeric](t *testing.T, data []T, shape Shape) *Tensor[T] {
	t.Helper()
	tensor, err := FromSlice(data, shape)
	require.NoError(t, err)
	return tensor
}

func assertValues[T Numeric](t *testing.T, want []T, got *Tensor[T]) {
	t.Helper()
	if diff := cmp.Diff(want, got.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
		{Shape{2, 0, 4}, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.NumElements(), "shape %v", tt.shape)
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{}, []int{}},
		{Shape{5}, []int{1}},
		{Shape{2, 3}, []int{3, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.ComputeStrides(), "shape %v", tt.shape)
	}
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{2, 0, 3}.Validate())
	assert.Error(t, Shape{2, -1}.Validate())
}

// Construction Tests

func TestFromSlice(t *testing.T) {
	t.Run("copies data and computes row-major strides", func(t *testing.T) {
		src := []int32{1, 2, 3, 4, 5, 6}
		x := mustFromSlice(t, src, Shape{2, 3})

		assert.Equal(t, Shape{2, 3}, x.Shape())
		assert.Equal(t, []int{3, 1}, x.Strides())
		assert.True(t, x.IsContiguous())

		src[0] = 100
		v, err := x.At(0, 0)
		require.NoError(t, err)
		assert.Equal(t, int32(1), v, "tensor must not alias the input slice")
	})

	t.Run("element count mismatch", func(t *testing.T) {
		_, err := FromSlice([]float32{1, 2, 3}, Shape{2, 2})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrShape)

		var shapeErr *ShapeError
		require.True(t, errors.As(err, &shapeErr))
		assert.Equal(t, Shape{2, 2}, shapeErr.Expected)
		assert.Equal(t, Shape{3}, shapeErr.Actual)
	})

	t.Run("rank zero holds one element", func(t *testing.T) {
		x := mustFromSlice(t, []float64{7}, Shape{})
		assert.Equal(t, 0, x.Rank())
		v, err := x.At()
		require.NoError(t, err)
		assert.Equal(t, 7.0, v)

		_, err = FromSlice([]float64{}, Shape{})
		assert.ErrorIs(t, err, ErrShape)
	})
}

// Indexing Tests

func TestAtAndSet(t *testing.T) {
	x := mustFromSlice(t, []float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	v, err := x.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(6), v)

	require.NoError(t, x.Set(42, 0, 1))
	assertValues(t, []float32{1, 42, 3, 4, 5, 6}, x)

	p, err := x.Ref(1, 0)
	require.NoError(t, err)
	*p = -4
	assertValues(t, []float32{1, 42, 3, -4, 5, 6}, x)
}

func TestAtOutOfRange(t *testing.T) {
	x := Zeros[float64](Shape{2, 3})

	tests := []struct {
		name string
		idx  []int
	}{
		{"rank too small", []int{1}},
		{"rank too large", []int{1, 1, 1}},
		{"negative component", []int{-1, 0}},
		{"row past end", []int{2, 0}},
		{"column past end", []int{0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := x.At(tt.idx...)
			require.ErrorIs(t, err, ErrIndex)

			var idxErr *IndexError
			require.ErrorAs(t, err, &idxErr)
			assert.Equal(t, tt.idx, idxErr.Index)
			assert.Equal(t, Shape{2, 3}, idxErr.Shape)

			assert.ErrorIs(t, x.Set(1, tt.idx...), ErrIndex)
		})
	}
}

func TestElemUnchecked(t *testing.T) {
	x := mustFromSlice(t, []int64{1, 2, 3, 4}, Shape{2, 2})
	*x.Elem(1, 1) += 10
	assert.Equal(t, int64(14), *x.Elem(1, 1))
	assert.Equal(t, 3, x.Offset([]int{1, 1}))
}

func TestCreation(t *testing.T) {
	assertValues(t, []float32{0, 0, 0, 0}, Zeros[float32](Shape{2, 2}))
	assertValues(t, []int32{1, 1, 1}, Ones[int32](Shape{3}))
	assertValues(t, []float64{2.5, 2.5}, Full(Shape{2}, 2.5))
	assertValues(t, []int64{0, 1, 2, 3}, Arange[int64](4))
	assertValues(t, []float64{3}, Scalar(3.0))

	x := mustFromSlice(t, []float32{1, 2, 3, 4, 5, 6}, Shape{3, 2})
	assert.Equal(t, Shape{3, 2}, ZerosLike(x).Shape())
	assertValues(t, []float32{1, 1, 1, 1, 1, 1}, OnesLike(x))

	assert.Panics(t, func() { Zeros[float32](Shape{-1}) })
}

func TestCloneIsIndependent(t *testing.T) {
	x := mustFromSlice(t, []float32{1, 2, 3, 4}, Shape{2, 2})
	y := x.Clone()
	require.NoError(t, y.Set(9, 0, 0))

	v, _ := x.At(0, 0)
	assert.Equal(t, float32(1), v)
	assert.True(t, y.IsContiguous())
}

func TestString(t *testing.T) {
	x := mustFromSlice(t, []int32{1, 2, 3, 4}, Shape{2, 2})
	assert.Equal(t, "Tensor[2 2][1 2 3 4]", x.String())
}

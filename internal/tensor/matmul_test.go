package tensor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestMatMul2D(t *testing.T) {
	a := mustFromSlice(t, []int32{1, 2, 3, 4}, Shape{2, 2})
	b := mustFromSlice(t, []int32{5, 6, 7, 8}, Shape{2, 2})

	got, err := MatMul(a, b)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, got.Shape())
	assertValues(t, []int32{19, 22, 43, 50}, got)
}

func TestMatMul2DRectangular(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	b := mustFromSlice(t, []float64{7, 8, 9, 10, 11, 12}, Shape{3, 2})

	got, err := MatMul2D(a, b)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, got.Shape())
	assertValues(t, []float64{58, 64, 139, 154}, got)
}

// TestMatMul2DAgainstGonum cross-checks random products (including
// transposed operands) with gonum's dense matrix multiply.
func TestMatMul2DAgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for range 10 {
		m, k, n := 1+rng.Intn(6), 1+rng.Intn(6), 1+rng.Intn(6)
		a := Randn[float64](Shape{m, k}, 1, rng)
		// b is built as the transpose of a [n, k] tensor to exercise strided reads.
		bBase := Randn[float64](Shape{n, k}, 1, rng)
		b, err := bBase.Transpose()
		require.NoError(t, err)

		got, err := MatMul2D(a, b)
		require.NoError(t, err)

		var want mat.Dense
		want.Mul(mat.NewDense(m, k, a.Values()), mat.NewDense(k, n, b.Values()))

		assert.Equal(t, Shape{m, n}, got.Shape())
		assert.True(t, floats.EqualApprox(want.RawMatrix().Data, got.Values(), 1e-12),
			"matmul [%d,%d]@[%d,%d] disagrees with gonum", m, k, k, n)
	}
}

func TestMatMul2DErrors(t *testing.T) {
	tests := []struct {
		name   string
		aShape Shape
		bShape Shape
	}{
		{"inner mismatch", Shape{2, 3}, Shape{2, 3}},
		{"left rank 1", Shape{3}, Shape{3, 2}},
		{"right rank 3", Shape{2, 3}, Shape{1, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MatMul2D(Zeros[float32](tt.aShape), Zeros[float32](tt.bShape))
			assert.ErrorIs(t, err, ErrDimension)
		})
	}
}

func TestBatchMatMul(t *testing.T) {
	a := mustFromSlice(t, []float32{
		1, 2, 3, 4, // batch 0: [[1,2],[3,4]]
		1, 0, 0, 1, // batch 1: identity
	}, Shape{2, 2, 2})
	b := mustFromSlice(t, []float32{
		5, 6, 7, 8,
		9, 10, 11, 12,
	}, Shape{2, 2, 2})

	got, err := MatMul(a, b)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2, 2}, got.Shape())
	assertValues(t, []float32{19, 22, 43, 50, 9, 10, 11, 12}, got)
}

func TestBatchMatMulMatchesPerSlice(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := Randn[float64](Shape{3, 2, 4}, 1, rng)
	b := Randn[float64](Shape{3, 4, 5}, 1, rng)

	got, err := BatchMatMul(a, b)
	require.NoError(t, err)

	av, bv, gv := a.Values(), b.Values(), got.Values()
	for bi := range 3 {
		as := mustFromSlice(t, av[bi*8:(bi+1)*8], Shape{2, 4})
		bs := mustFromSlice(t, bv[bi*20:(bi+1)*20], Shape{4, 5})
		want, err := MatMul2D(as, bs)
		require.NoError(t, err)
		assert.InDeltaSlice(t, want.Values(), gv[bi*10:(bi+1)*10], 1e-12, "batch %d", bi)
	}
}

func TestBatchMatMulErrors(t *testing.T) {
	t.Run("batch mismatch", func(t *testing.T) {
		_, err := MatMul(Zeros[float32](Shape{2, 2, 3}), Zeros[float32](Shape{3, 3, 2}))
		require.ErrorIs(t, err, ErrBatchMismatch)

		var batchErr *BatchMismatchError
		require.ErrorAs(t, err, &batchErr)
		assert.Equal(t, 2, batchErr.Left)
		assert.Equal(t, 3, batchErr.Right)
	})

	t.Run("inner mismatch", func(t *testing.T) {
		_, err := BatchMatMul(Zeros[float32](Shape{2, 2, 3}), Zeros[float32](Shape{2, 2, 2}))
		assert.ErrorIs(t, err, ErrDimension)
	})

	t.Run("mixed ranks", func(t *testing.T) {
		_, err := MatMul(Zeros[float32](Shape{2, 2}), Zeros[float32](Shape{1, 2, 2}))
		assert.ErrorIs(t, err, ErrDimension)
	})
}

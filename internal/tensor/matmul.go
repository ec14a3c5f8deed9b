package tensor

import "fmt"

// MatMul performs matrix multiplication.
//
// Requirements:
//   - For 2D tensors: (M, K) @ (K, N) → (M, N)
//   - For batched: (B, M, K) @ (B, K, N) → (B, M, N)
//
// Any other rank combination fails with a *DimensionError.
//
// Example:
//
//	a := tensor.Ones[float32](tensor.Shape{3, 4})
//	b := tensor.Ones[float32](tensor.Shape{4, 5})
//	c, err := tensor.MatMul(a, b) // Shape: [3, 5]
func MatMul[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) {
	switch {
	case a.Rank() == 2 && b.Rank() == 2:
		return MatMul2D(a, b)
	case a.Rank() == 3 && b.Rank() == 3:
		return BatchMatMul(a, b)
	default:
		return nil, &DimensionError{
			Op:     "matmul",
			Rank:   a.Rank(),
			Axis:   -1,
			Detail: fmt.Sprintf("unsupported operand ranks %d and %d (need 2/2 or 3/3)", a.Rank(), b.Rank()),
		}
	}
}

// MatMul2D multiplies two rank-2 tensors: C[i,j] = Σ_p A[i,p] * B[p,j].
// Operands are read through their strides, so transposed views are valid
// inputs.
func MatMul2D[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) {
	if a.Rank() != 2 {
		return nil, &DimensionError{Op: "matmul2d", Rank: a.Rank(), Axis: -1, Detail: "left operand must be 2D"}
	}
	if b.Rank() != 2 {
		return nil, &DimensionError{Op: "matmul2d", Rank: b.Rank(), Axis: -1, Detail: "right operand must be 2D"}
	}

	m, k := a.shape[0], a.shape[1]
	kAlt, n := b.shape[0], b.shape[1]
	if k != kAlt {
		return nil, &DimensionError{
			Op:     "matmul2d",
			Rank:   2,
			Axis:   1,
			Detail: fmt.Sprintf("inner dimension mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n),
		}
	}

	out := make([]T, m*n)
	matmulStrided(out, a.data, b.data, 0, 0, a.strides[0], a.strides[1], b.strides[0], b.strides[1], m, k, n)
	return newTensor(out, Shape{m, n}), nil
}

// BatchMatMul multiplies rank-3 tensors slice by slice:
// [B, M, K] @ [B, K, N] → [B, M, N].
//
// Differing batch sizes fail with a *BatchMismatchError; differing inner
// dimensions with a *DimensionError.
func BatchMatMul[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) {
	if a.Rank() != 3 {
		return nil, &DimensionError{Op: "batch matmul", Rank: a.Rank(), Axis: -1, Detail: "left operand must be 3D"}
	}
	if b.Rank() != 3 {
		return nil, &DimensionError{Op: "batch matmul", Rank: b.Rank(), Axis: -1, Detail: "right operand must be 3D"}
	}
	if a.shape[0] != b.shape[0] {
		return nil, &BatchMismatchError{Op: "batch matmul", Left: a.shape[0], Right: b.shape[0]}
	}

	batch, m, k := a.shape[0], a.shape[1], a.shape[2]
	kAlt, n := b.shape[1], b.shape[2]
	if k != kAlt {
		return nil, &DimensionError{
			Op:     "batch matmul",
			Rank:   3,
			Axis:   2,
			Detail: fmt.Sprintf("inner dimension mismatch [%d,%d,%d] @ [%d,%d,%d]", batch, m, k, b.shape[0], kAlt, n),
		}
	}

	out := make([]T, batch*m*n)
	for bi := range batch {
		matmulStrided(out[bi*m*n:(bi+1)*m*n], a.data, b.data,
			bi*a.strides[0], bi*b.strides[0],
			a.strides[1], a.strides[2], b.strides[1], b.strides[2],
			m, k, n)
	}
	return newTensor(out, Shape{batch, m, n}), nil
}

// matmulStrided performs naive matrix multiplication into the row-major
// block c, addressing a and b through base offsets and per-axis strides.
func matmulStrided[T Numeric](c, a, b []T, aBase, bBase, aRow, aCol, bRow, bCol, m, k, n int) {
	for i := range m {
		for j := range n {
			var sum T
			for p := range k {
				sum += a[aBase+i*aRow+p*aCol] * b[bBase+p*bRow+j*bCol]
			}
			c[i*n+j] = sum
		}
	}
}

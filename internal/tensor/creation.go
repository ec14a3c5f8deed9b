package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
// Panics if shape has a negative dimension.
//
// Example:
//
//	t := tensor.Zeros[float32](tensor.Shape{3, 4})
func Zeros[T Numeric](shape Shape) *Tensor[T] {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	// Data is already zero-initialized by make()
	return newTensor(make([]T, shape.NumElements()), shape)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones[float64](tensor.Shape{2, 3})
func Ones[T Numeric](shape Shape) *Tensor[T] {
	return Full(shape, T(1))
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](tensor.Shape{3, 3}, 3.14)
func Full[T Numeric](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Scalar creates a rank-0 tensor holding v.
func Scalar[T Numeric](v T) *Tensor[T] {
	return newTensor([]T{v}, Shape{})
}

// ZerosLike creates a zero tensor with the shape of t.
func ZerosLike[T Numeric](t *Tensor[T]) *Tensor[T] {
	return Zeros[T](t.shape)
}

// OnesLike creates a tensor of ones with the shape of t.
func OnesLike[T Numeric](t *Tensor[T]) *Tensor[T] {
	return Ones[T](t.shape)
}

// Arange creates a 1-D tensor holding 0, 1, ..., n-1.
//
// Example:
//
//	t := tensor.Arange[int32](12) // Shape: [12]
func Arange[T Numeric](n int) *Tensor[T] {
	t := Zeros[T](Shape{n})
	for i := range t.data {
		t.data[i] = T(i)
	}
	return t
}

// Randn creates a tensor with values drawn from a normal distribution
// (mean=0, std=1) scaled by std.
// Uses Box-Muller transform for generating normal distribution.
// Integer element types receive the truncated sample.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	w := tensor.Randn[float64](tensor.Shape{2, 8}, 0.5, rng)
func Randn[T Numeric](shape Shape, std float64, rng *rand.Rand) *Tensor[T] {
	t := Zeros[T](shape)
	data := t.data
	for i := 0; i < len(data); i += 2 {
		u1 := 1 - rng.Float64() // (0, 1] keeps the log finite
		u2 := rng.Float64()
		r := math.Sqrt(-2.0 * math.Log(u1))
		data[i] = T(r * math.Cos(2.0*math.Pi*u2) * std)
		if i+1 < len(data) {
			data[i+1] = T(r * math.Sin(2.0*math.Pi*u2) * std)
		}
	}
	return t
}

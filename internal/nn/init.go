package nn

import (
	"math"
	"math/rand"

	"github.com/born-ml/autograd/internal/tensor"
)

// Xavier (Glorot) initialization for weights.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
func Xavier[T tensor.Numeric](fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand) *tensor.Tensor[T] {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	return tensor.Zeros[T](shape).Map(func(T) T {
		return T((rng.Float64()*2.0 - 1.0) * bound)
	})
}

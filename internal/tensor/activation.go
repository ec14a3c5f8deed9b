package tensor

import "math"

// ReLU applies max(0, x) to every element.
func (t *Tensor[T]) ReLU() *Tensor[T] {
	return t.Map(func(x T) T {
		if x > 0 {
			return x
		}
		return 0
	})
}

// Sigmoid applies 1 / (1 + exp(-x)) to every element.
// Computed in float64; integer element types receive the truncated value.
func (t *Tensor[T]) Sigmoid() *Tensor[T] {
	return t.Map(func(x T) T {
		return T(1.0 / (1.0 + math.Exp(-float64(x))))
	})
}

// Exp applies e^x to every element.
func (t *Tensor[T]) Exp() *Tensor[T] {
	return t.Map(func(x T) T {
		return T(math.Exp(float64(x)))
	})
}

// Sqrt applies the square root to every element.
// A negative element fails with a *DomainError instead of producing NaN.
func (t *Tensor[T]) Sqrt() (*Tensor[T], error) {
	var domainErr error
	forEachIndex(t.shape, func(idx []int) {
		v := t.data[t.Offset(idx)]
		if domainErr == nil && v < 0 {
			domainErr = &DomainError{Op: "sqrt", Index: append([]int(nil), idx...), Value: float64(v)}
		}
	})
	if domainErr != nil {
		return nil, domainErr
	}
	return t.Map(func(x T) T {
		return T(math.Sqrt(float64(x)))
	}), nil
}

package tensor

// Add performs element-wise addition.
// Shapes must match exactly; there is no broadcasting.
//
// Example:
//
//	a := tensor.Ones[float32](tensor.Shape{3, 5})
//	b := tensor.Ones[float32](tensor.Shape{3, 5})
//	c, err := a.Add(b) // Shape: [3, 5]
func (t *Tensor[T]) Add(other *Tensor[T]) (*Tensor[T], error) {
	return t.zip("add", other, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction.
func (t *Tensor[T]) Sub(other *Tensor[T]) (*Tensor[T], error) {
	return t.zip("sub", other, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication.
func (t *Tensor[T]) Mul(other *Tensor[T]) (*Tensor[T], error) {
	return t.zip("mul", other, func(x, y T) T { return x * y })
}

// Div performs element-wise division.
// Fails with a *DivisionByZeroError if any element of other is zero.
func (t *Tensor[T]) Div(other *Tensor[T]) (*Tensor[T], error) {
	if err := checkSameShape("div", t, other); err != nil {
		return nil, err
	}
	var divErr error
	forEachIndex(other.shape, func(idx []int) {
		if divErr == nil && isZero(other.data[other.Offset(idx)]) {
			divErr = &DivisionByZeroError{Op: "div", Index: append([]int(nil), idx...)}
		}
	})
	if divErr != nil {
		return nil, divErr
	}
	return t.zip("div", other, func(x, y T) T { return x / y })
}

// Zip combines t and other element by element through f.
// Shapes must match exactly.
func (t *Tensor[T]) Zip(other *Tensor[T], f func(x, y T) T) (*Tensor[T], error) {
	return t.zip("zip", other, f)
}

func (t *Tensor[T]) zip(op string, other *Tensor[T], f func(x, y T) T) (*Tensor[T], error) {
	if err := checkSameShape(op, t, other); err != nil {
		return nil, err
	}

	out := make([]T, t.NumElements())
	if t.IsContiguous() && other.IsContiguous() {
		for i := range out {
			out[i] = f(t.data[i], other.data[i])
		}
		return newTensor(out, t.shape), nil
	}

	// At least one operand is a view: address each through its own strides.
	i := 0
	forEachIndex(t.shape, func(idx []int) {
		out[i] = f(t.data[t.Offset(idx)], other.data[other.Offset(idx)])
		i++
	})
	return newTensor(out, t.shape), nil
}

// AddScalar adds s to every element.
func (t *Tensor[T]) AddScalar(s T) *Tensor[T] {
	return t.Map(func(x T) T { return x + s })
}

// SubScalar subtracts s from every element.
func (t *Tensor[T]) SubScalar(s T) *Tensor[T] {
	return t.Map(func(x T) T { return x - s })
}

// MulScalar multiplies every element by s.
func (t *Tensor[T]) MulScalar(s T) *Tensor[T] {
	return t.Map(func(x T) T { return x * s })
}

// DivScalar divides every element by s.
// Fails with a *DivisionByZeroError if s is zero.
func (t *Tensor[T]) DivScalar(s T) (*Tensor[T], error) {
	if isZero(s) {
		return nil, &DivisionByZeroError{Op: "div scalar"}
	}
	return t.Map(func(x T) T { return x / s }), nil
}

// Neg negates every element.
func (t *Tensor[T]) Neg() *Tensor[T] {
	return t.Map(func(x T) T { return -x })
}

// Map applies f to every element and returns the materialized result.
func (t *Tensor[T]) Map(f func(T) T) *Tensor[T] {
	vals := t.Values()
	for i, v := range vals {
		vals[i] = f(v)
	}
	return newTensor(vals, t.shape)
}

// Sum returns the sum of all elements.
func (t *Tensor[T]) Sum() T {
	var acc T
	for _, v := range t.Values() {
		acc += v
	}
	return acc
}

// All reports whether pred holds for every element.
func (t *Tensor[T]) All(pred func(T) bool) bool {
	for _, v := range t.Values() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one element.
func (t *Tensor[T]) Any(pred func(T) bool) bool {
	for _, v := range t.Values() {
		if pred(v) {
			return true
		}
	}
	return false
}

// Equal reports whether other has the same shape and logical elements.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	a, b := t.Values(), other.Values()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// AllClose reports whether other has the same shape and every pair of
// logical elements differs by at most tol.
func (t *Tensor[T]) AllClose(other *Tensor[T], tol float64) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	a, b := t.Values(), other.Values()
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		if d < 0 {
			d = -d
		}
		if !(d <= tol) { // NaN never compares close
			return false
		}
	}
	return true
}

func checkSameShape[T Numeric](op string, a, b *Tensor[T]) error {
	if !a.shape.Equal(b.shape) {
		return &ShapeError{Op: op, Expected: a.shape.Clone(), Actual: b.shape.Clone()}
	}
	return nil
}

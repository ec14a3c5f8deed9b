// Package tensor provides the strided N-dimensional tensor used by the autodiff engine.
package tensor

import "golang.org/x/exp/constraints"

// Numeric is a constraint for supported tensor element types.
// Any integer or floating-point type can back a tensor; the additive
// identity is the type's zero value.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// isZero reports whether v is the additive identity.
func isZero[T Numeric](v T) bool {
	var zero T
	return v == zero
}

package tensor

import (
	"errors"
	"fmt"
)

// Error kinds. Every structured error below matches exactly one of these
// through errors.Is.
var (
	ErrShape          = errors.New("tensor: shape mismatch")
	ErrDivisionByZero = errors.New("tensor: division by zero")
	ErrDimension      = errors.New("tensor: invalid dimension")
	ErrBatchMismatch  = errors.New("tensor: batch dimension mismatch")
	ErrIndex          = errors.New("tensor: index out of range")
	ErrDomain         = errors.New("tensor: value outside function domain")
)

// ShapeError reports two shapes that were required to agree.
type ShapeError struct {
	Op       string // Operation that failed (e.g., "add", "reshape")
	Expected Shape
	Actual   Shape
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: shape mismatch: expected %v, got %v", e.Op, e.Expected, e.Actual)
}

// Is reports whether target is ErrShape.
func (e *ShapeError) Is(target error) bool { return target == ErrShape }

// DivisionByZeroError reports a divisor equal to the additive identity.
// Index is the logical position of the divisor, nil for scalar division.
type DivisionByZeroError struct {
	Op    string
	Index []int
}

// Error implements the error interface.
func (e *DivisionByZeroError) Error() string {
	if e.Index == nil {
		return fmt.Sprintf("%s: division by zero scalar", e.Op)
	}
	return fmt.Sprintf("%s: division by zero at index %v", e.Op, e.Index)
}

// Is reports whether target is ErrDivisionByZero.
func (e *DivisionByZeroError) Is(target error) bool { return target == ErrDivisionByZero }

// DimensionError reports a rank or axis violation.
type DimensionError struct {
	Op     string
	Rank   int    // Rank of the offending operand
	Axis   int    // Offending axis, or -1 when not axis-specific
	Detail string // Human-readable constraint that was violated
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	if e.Axis >= 0 {
		return fmt.Sprintf("%s: axis %d of rank-%d tensor: %s", e.Op, e.Axis, e.Rank, e.Detail)
	}
	return fmt.Sprintf("%s: rank-%d tensor: %s", e.Op, e.Rank, e.Detail)
}

// Is reports whether target is ErrDimension.
func (e *DimensionError) Is(target error) bool { return target == ErrDimension }

// BatchMismatchError reports differing leading dimensions in batched matmul.
type BatchMismatchError struct {
	Op    string
	Left  int
	Right int
}

// Error implements the error interface.
func (e *BatchMismatchError) Error() string {
	return fmt.Sprintf("%s: batch size %d does not match %d", e.Op, e.Left, e.Right)
}

// Is reports whether target is ErrBatchMismatch.
func (e *BatchMismatchError) Is(target error) bool { return target == ErrBatchMismatch }

// IndexError reports checked element access outside the tensor bounds.
type IndexError struct {
	Index []int
	Shape Shape
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if len(e.Index) != len(e.Shape) {
		return fmt.Sprintf("index %v has %d components, tensor of shape %v needs %d",
			e.Index, len(e.Index), e.Shape, len(e.Shape))
	}
	return fmt.Sprintf("index %v out of bounds for shape %v", e.Index, e.Shape)
}

// Is reports whether target is ErrIndex.
func (e *IndexError) Is(target error) bool { return target == ErrIndex }

// DomainError reports an element outside the domain of an elementwise function.
type DomainError struct {
	Op    string
	Index []int
	Value float64
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: value %g at index %v is outside the domain", e.Op, e.Value, e.Index)
}

// Is reports whether target is ErrDomain.
func (e *DomainError) Is(target error) bool { return target == ErrDomain }

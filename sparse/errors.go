// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All operations return these sentinels (possibly wrapped with the operation
// name); callers match them via errors.Is. No operation panics on user input.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. VxM where len(u) != A.Nrows(), or a mask of the wrong shape.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("sparse: matrix is not square")

	// ErrDomainMismatch signals a container whose element domain differs from
	// the domain an operation requires.
	ErrDomainMismatch = errors.New("sparse: element domain mismatch")

	// ErrIndexOutOfRange indicates an index outside [0, size).
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrInvalidDimensions indicates a negative or unsupported container size.
	ErrInvalidDimensions = errors.New("sparse: invalid dimensions")

	// ErrNilContainer indicates a nil Vector or Matrix argument.
	ErrNilContainer = errors.New("sparse: nil container")
)

// sparseErrorf tags err with the operation name.
func sparseErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

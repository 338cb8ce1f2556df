// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - The validation gate every public graph algorithm passes through before
//     doing any work: adjacency shape + domain, and vertex index range.
//   - AnyMatrix lets algorithms accept an adjacency matrix of unknown domain
//     and reject the wrong one at runtime with ErrDomainMismatch.
//
// Note:
//   - Validators return wrapped sentinels; each check is O(1).

package sparse

import (
	"fmt"
)

// AnyMatrix is satisfied by *Matrix[T] for every domain T.
type AnyMatrix interface {
	Nrows() int
	Ncols() int
	Nvals() int
	Domain() Domain
	isNil() bool
}

// CheckAdjacency fails unless m is a non-nil square matrix whose element
// domain equals want. Shape is checked before domain.
func CheckAdjacency(m AnyMatrix, want Domain) error {
	if m == nil || m.isNil() {
		return sparseErrorf("CheckAdjacency", ErrNilContainer)
	}
	if m.Nrows() != m.Ncols() {
		return fmt.Errorf("CheckAdjacency: adjacency matrix must be square, provided shape %dx%d: %w",
			m.Nrows(), m.Ncols(), ErrNonSquare)
	}
	if got := m.Domain(); got != want {
		return fmt.Errorf("CheckAdjacency: adjacency matrix must have %s type, provided type %s: %w",
			want, got, ErrDomainMismatch)
	}

	return nil
}

// CheckIndexInRange fails unless 0 <= i < n.
func CheckIndexInRange(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("CheckIndexInRange: start %d is out of range [0, %d): %w", i, n, ErrIndexOutOfRange)
	}

	return nil
}

// CheckIndicesInRange applies CheckIndexInRange to every index, stopping at
// the first failure.
func CheckIndicesInRange(indices []int, n int) error {
	for _, i := range indices {
		if err := CheckIndexInRange(i, n); err != nil {
			return err
		}
	}

	return nil
}

// As returns m as a *Matrix[T], or ErrDomainMismatch when its domain differs.
func As[T Scalar](m AnyMatrix) (*Matrix[T], error) {
	if m == nil || m.isNil() {
		return nil, sparseErrorf("As", ErrNilContainer)
	}
	typed, ok := m.(*Matrix[T])
	if !ok {
		return nil, fmt.Errorf("As: domain %s, want %s: %w", m.Domain(), DomainOf[T](), ErrDomainMismatch)
	}

	return typed, nil
}

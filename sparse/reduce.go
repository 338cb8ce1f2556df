// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Reductions to a scalar (ReduceVector, ReduceMatrix) and per-row
//     reduction to a vector (ReduceRows) under a Monoid.
//   - Exact equality (VectorEqual, MatrixEqual) used as fixpoint test.

package sparse

import (
	"fmt"
)

// ReduceVector folds every present entry of u with m; an empty u yields
// m.Identity.
func ReduceVector[T Scalar](m Monoid[T], u *Vector[T]) T {
	acc := m.Identity
	for _, x := range u.Entries() {
		acc = m.Op(acc, x)
	}

	return acc
}

// ReduceMatrix folds every present entry of A in row-major order.
func ReduceMatrix[T Scalar](m Monoid[T], a *Matrix[T]) T {
	acc := m.Identity
	for i := range a.rows {
		for _, x := range a.rows[i].vals {
			acc = m.Op(acc, x)
		}
	}

	return acc
}

// ReduceRows computes w<mask> = accum(w, ⊕_j A[i,j]) for every row i holding
// at least one entry; empty rows produce no entry.
func ReduceRows[T Scalar](w *Vector[T], mask VectorMask, accum BinaryOp[T, T, T], m Monoid[T], a *Matrix[T], desc Descriptor) error {
	if w == nil || a == nil {
		return sparseErrorf("ReduceRows", ErrNilContainer)
	}
	if w.size != a.nrows {
		return fmt.Errorf("ReduceRows: rows %d -> size %d: %w", a.nrows, w.size, ErrDimensionMismatch)
	}
	sel, err := compileVectorMask(mask, w.size, desc)
	if err != nil {
		return sparseErrorf("ReduceRows", err)
	}
	t, _ := NewVector[T](w.size)
	for i := range a.rows {
		vals := a.rows[i].vals
		if len(vals) == 0 {
			continue
		}
		acc := vals[0]
		for _, x := range vals[1:] {
			acc = m.Op(acc, x)
		}
		t.pattern.Add(uint32(i))
		t.vals[i] = acc
	}
	writeVector(w, t, sel, accum, desc.Replace)

	return nil
}

// VectorEqual reports whether u and v have the same size, the same present
// indices and bit-for-bit equal values at each of them.
func VectorEqual[T Scalar](u, v *Vector[T]) bool {
	if u.size != v.size || !u.pattern.Equals(v.pattern) {
		return false
	}
	for i, x := range u.Entries() {
		if v.vals[i] != x {
			return false
		}
	}

	return true
}

// MatrixEqual reports whether A and B have the same shape, the same
// structure and exactly equal values. No tolerance is applied.
func MatrixEqual[T Scalar](a, b *Matrix[T]) bool {
	if a.nrows != b.nrows || a.ncols != b.ncols {
		return false
	}
	for i := range a.rows {
		ra, rb := &a.rows[i], &b.rows[i]
		if len(ra.cols) != len(rb.cols) {
			return false
		}
		for p := range ra.cols {
			if ra.cols[p] != rb.cols[p] || ra.vals[p] != rb.vals[p] {
				return false
			}
		}
	}

	return true
}

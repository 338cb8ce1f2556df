// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Element-wise union (EWiseAdd*) and masked assignment (Assign*).
//   - Both compute a fresh result and hand it to the shared output rule.

package sparse

import (
	"fmt"
)

const (
	opEWiseAddVector     = "EWiseAddVector"
	opEWiseAddMatrix     = "EWiseAddMatrix"
	opAssignVector       = "AssignVector"
	opAssignVectorScalar = "AssignVectorScalar"
	opAssignMatrix       = "AssignMatrix"
	opAssignMatrixScalar = "AssignMatrixScalar"
)

// EWiseAddVector computes w<mask> = accum(w, u ∪op v): indices present in both
// operands are combined with op, indices present in one carry that value.
func EWiseAddVector[T Scalar](w *Vector[T], mask VectorMask, accum BinaryOp[T, T, T], op BinaryOp[T, T, T], u, v *Vector[T], desc Descriptor) error {
	if w == nil || u == nil || v == nil {
		return sparseErrorf(opEWiseAddVector, ErrNilContainer)
	}
	if u.size != v.size || w.size != u.size {
		return fmt.Errorf("%s: sizes %d, %d -> %d: %w", opEWiseAddVector, u.size, v.size, w.size, ErrDimensionMismatch)
	}
	sel, err := compileVectorMask(mask, w.size, desc)
	if err != nil {
		return sparseErrorf(opEWiseAddVector, err)
	}

	t, _ := NewVector[T](w.size)
	for i, x := range u.Entries() {
		if y, ok := v.Element(i); ok {
			x = op(x, y)
		}
		t.pattern.Add(uint32(i))
		t.vals[i] = x
	}
	for i, y := range v.Entries() {
		if !u.has(i) {
			t.pattern.Add(uint32(i))
			t.vals[i] = y
		}
	}
	writeVector(w, t, sel, accum, desc.Replace)

	return nil
}

// EWiseAddMatrix computes C<mask> = accum(C, A ∪op B) position by position.
func EWiseAddMatrix[T Scalar](c *Matrix[T], mask MatrixMask, accum BinaryOp[T, T, T], op BinaryOp[T, T, T], a, b *Matrix[T], desc Descriptor) error {
	if c == nil || a == nil || b == nil {
		return sparseErrorf(opEWiseAddMatrix, ErrNilContainer)
	}
	if a.nrows != b.nrows || a.ncols != b.ncols || c.nrows != a.nrows || c.ncols != a.ncols {
		return fmt.Errorf("%s: shapes %dx%d, %dx%d -> %dx%d: %w",
			opEWiseAddMatrix, a.nrows, a.ncols, b.nrows, b.ncols, c.nrows, c.ncols, ErrDimensionMismatch)
	}
	sel, err := compileMatrixMask(mask, c.nrows, c.ncols, desc)
	if err != nil {
		return sparseErrorf(opEWiseAddMatrix, err)
	}

	t, _ := NewMatrix[T](c.nrows, c.ncols)
	for i := 0; i < a.nrows; i++ {
		ra, rb := &a.rows[i], &b.rows[i]
		out := &t.rows[i]
		p, q := 0, 0
		for p < len(ra.cols) || q < len(rb.cols) {
			switch {
			case q >= len(rb.cols) || (p < len(ra.cols) && ra.cols[p] < rb.cols[q]):
				out.cols = append(out.cols, ra.cols[p])
				out.vals = append(out.vals, ra.vals[p])
				p++
			case p >= len(ra.cols) || rb.cols[q] < ra.cols[p]:
				out.cols = append(out.cols, rb.cols[q])
				out.vals = append(out.vals, rb.vals[q])
				q++
			default:
				out.cols = append(out.cols, ra.cols[p])
				out.vals = append(out.vals, op(ra.vals[p], rb.vals[q]))
				p++
				q++
			}
		}
	}
	writeMatrix(c, t, sel, accum, desc.Replace)

	return nil
}

// AssignVector computes w<mask> = accum(w, u). Without an accumulator and
// without Replace, entries already present in w are left untouched, so only
// absent selected slots receive u's values.
func AssignVector[T Scalar](w *Vector[T], mask VectorMask, accum BinaryOp[T, T, T], u *Vector[T], desc Descriptor) error {
	if w == nil || u == nil {
		return sparseErrorf(opAssignVector, ErrNilContainer)
	}
	if w.size != u.size {
		return fmt.Errorf("%s: sizes %d -> %d: %w", opAssignVector, u.size, w.size, ErrDimensionMismatch)
	}
	sel, err := compileVectorMask(mask, w.size, desc)
	if err != nil {
		return sparseErrorf(opAssignVector, err)
	}
	writeVector(w, u.Dup(), sel, accum, desc.Replace)

	return nil
}

// AssignVectorScalar broadcasts x to every selected index of w.
func AssignVectorScalar[T Scalar](w *Vector[T], mask VectorMask, accum BinaryOp[T, T, T], x T, desc Descriptor) error {
	if w == nil {
		return sparseErrorf(opAssignVectorScalar, ErrNilContainer)
	}
	sel, err := compileVectorMask(mask, w.size, desc)
	if err != nil {
		return sparseErrorf(opAssignVectorScalar, err)
	}

	t, _ := NewVector[T](w.size)
	if sel.active && !sel.complement {
		// Only mask members can be written; skip the full sweep.
		it := sel.bits.Iterator()
		for it.HasNext() {
			i := it.Next()
			t.pattern.Add(i)
			t.vals[i] = x
		}
	} else if w.size > 0 {
		t.pattern.AddRange(0, uint64(w.size))
		for i := range t.vals {
			t.vals[i] = x
		}
	}
	writeVector(w, t, sel, accum, desc.Replace)

	return nil
}

// AssignMatrix computes C<mask> = accum(C, A) with the same first-write-wins
// default as AssignVector.
func AssignMatrix[T Scalar](c *Matrix[T], mask MatrixMask, accum BinaryOp[T, T, T], a *Matrix[T], desc Descriptor) error {
	if c == nil || a == nil {
		return sparseErrorf(opAssignMatrix, ErrNilContainer)
	}
	if c.nrows != a.nrows || c.ncols != a.ncols {
		return fmt.Errorf("%s: shapes %dx%d -> %dx%d: %w", opAssignMatrix, a.nrows, a.ncols, c.nrows, c.ncols, ErrDimensionMismatch)
	}
	sel, err := compileMatrixMask(mask, c.nrows, c.ncols, desc)
	if err != nil {
		return sparseErrorf(opAssignMatrix, err)
	}
	writeMatrix(c, a.Dup(), sel, accum, desc.Replace)

	return nil
}

// AssignMatrixScalar broadcasts x to every selected position of C.
func AssignMatrixScalar[T Scalar](c *Matrix[T], mask MatrixMask, accum BinaryOp[T, T, T], x T, desc Descriptor) error {
	if c == nil {
		return sparseErrorf(opAssignMatrixScalar, ErrNilContainer)
	}
	sel, err := compileMatrixMask(mask, c.nrows, c.ncols, desc)
	if err != nil {
		return sparseErrorf(opAssignMatrixScalar, err)
	}

	t, _ := NewMatrix[T](c.nrows, c.ncols)
	for i := 0; i < c.nrows; i++ {
		s := sel(i)
		out := &t.rows[i]
		if s.active && !s.complement {
			it := s.bits.Iterator()
			for it.HasNext() {
				out.cols = append(out.cols, int(it.Next()))
				out.vals = append(out.vals, x)
			}
			continue
		}
		out.cols = make([]int, c.ncols)
		out.vals = make([]T, c.ncols)
		for j := range out.cols {
			out.cols[j] = j
			out.vals[j] = x
		}
	}
	writeMatrix(c, t, sel, accum, desc.Replace)

	return nil
}

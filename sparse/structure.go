// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Structural helpers that build fresh containers: row/column extraction,
//     transpose, diagonal, identity, and index/value based selection.
//   - Structure-preserving transforms (Apply*).
//
// Contract:
//   - Absent entries stay absent; no helper invents zeros.

package sparse

import (
	"fmt"
)

// ExtractRow returns row k of A as a vector of size A.Ncols().
func ExtractRow[T Scalar](a *Matrix[T], k int) (*Vector[T], error) {
	if a == nil {
		return nil, sparseErrorf("ExtractRow", ErrNilContainer)
	}
	if k < 0 || k >= a.nrows {
		return nil, fmt.Errorf("ExtractRow(%d) rows %d: %w", k, a.nrows, ErrIndexOutOfRange)
	}
	v, err := NewVector[T](a.ncols)
	if err != nil {
		return nil, err
	}
	for j, x := range a.Row(k) {
		v.pattern.Add(uint32(j))
		v.vals[j] = x
	}

	return v, nil
}

// ExtractCol returns column k of A as a vector of size A.Nrows().
func ExtractCol[T Scalar](a *Matrix[T], k int) (*Vector[T], error) {
	if a == nil {
		return nil, sparseErrorf("ExtractCol", ErrNilContainer)
	}
	if k < 0 || k >= a.ncols {
		return nil, fmt.Errorf("ExtractCol(%d) cols %d: %w", k, a.ncols, ErrIndexOutOfRange)
	}
	v, err := NewVector[T](a.nrows)
	if err != nil {
		return nil, err
	}
	for i := range a.rows {
		if x, ok := a.Element(i, k); ok {
			v.pattern.Add(uint32(i))
			v.vals[i] = x
		}
	}

	return v, nil
}

// Transpose returns Aᵀ.
func Transpose[T Scalar](a *Matrix[T]) *Matrix[T] {
	out := &Matrix[T]{nrows: a.ncols, ncols: a.nrows, rows: make([]row[T], a.ncols)}
	// Walking rows in ascending order appends ascending columns to every
	// output row, so no sort is needed.
	for i := range a.rows {
		r := &a.rows[i]
		for p, j := range r.cols {
			out.rows[j].cols = append(out.rows[j].cols, i)
			out.rows[j].vals = append(out.rows[j].vals, r.vals[p])
		}
	}

	return out
}

// Diag returns the main diagonal of a square matrix A as a vector.
func Diag[T Scalar](a *Matrix[T]) (*Vector[T], error) {
	if a == nil {
		return nil, sparseErrorf("Diag", ErrNilContainer)
	}
	if a.nrows != a.ncols {
		return nil, fmt.Errorf("Diag: shape %dx%d: %w", a.nrows, a.ncols, ErrNonSquare)
	}
	v, err := NewVector[T](a.nrows)
	if err != nil {
		return nil, err
	}
	for i := range a.rows {
		if x, ok := a.Element(i, i); ok {
			v.pattern.Add(uint32(i))
			v.vals[i] = x
		}
	}

	return v, nil
}

// Identity returns an n×n matrix with x on every diagonal position and
// nothing elsewhere.
func Identity[T Scalar](n int, x T) (*Matrix[T], error) {
	m, err := NewMatrix[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := range m.rows {
		m.rows[i] = row[T]{cols: []int{i}, vals: []T{x}}
	}

	return m, nil
}

// Select returns the entries of A for which keep(i, j, value) is true.
func Select[T Scalar](a *Matrix[T], keep func(i, j int, x T) bool) *Matrix[T] {
	out := &Matrix[T]{nrows: a.nrows, ncols: a.ncols, rows: make([]row[T], a.nrows)}
	for i := range a.rows {
		r := &a.rows[i]
		for p, j := range r.cols {
			if keep(i, j, r.vals[p]) {
				out.rows[i].cols = append(out.rows[i].cols, j)
				out.rows[i].vals = append(out.rows[i].vals, r.vals[p])
			}
		}
	}

	return out
}

// Tril returns the entries on or below the k-th diagonal (j <= i+k).
// Tril(A, -1) is the strict lower triangle.
func Tril[T Scalar](a *Matrix[T], k int) *Matrix[T] {
	return Select(a, func(i, j int, _ T) bool { return j <= i+k })
}

// Triu returns the entries on or above the k-th diagonal (j >= i+k).
// Triu(A, 1) is the strict upper triangle.
func Triu[T Scalar](a *Matrix[T], k int) *Matrix[T] {
	return Select(a, func(i, j int, _ T) bool { return j >= i+k })
}

// OffDiagonal returns A without its diagonal entries (self-loops stripped).
func OffDiagonal[T Scalar](a *Matrix[T]) *Matrix[T] {
	return Select(a, func(i, j int, _ T) bool { return i != j })
}

// ApplyVector computes w<mask> = accum(w, fn(u)) entry by entry.
func ApplyVector[Z, X Scalar](w *Vector[Z], mask VectorMask, accum BinaryOp[Z, Z, Z], fn func(X) Z, u *Vector[X], desc Descriptor) error {
	if w == nil || u == nil {
		return sparseErrorf("ApplyVector", ErrNilContainer)
	}
	if w.size != u.size {
		return fmt.Errorf("ApplyVector: sizes %d -> %d: %w", u.size, w.size, ErrDimensionMismatch)
	}
	sel, err := compileVectorMask(mask, w.size, desc)
	if err != nil {
		return sparseErrorf("ApplyVector", err)
	}
	t, _ := NewVector[Z](w.size)
	for i, x := range u.Entries() {
		t.pattern.Add(uint32(i))
		t.vals[i] = fn(x)
	}
	writeVector(w, t, sel, accum, desc.Replace)

	return nil
}

// ApplyIndexMatrix computes C<mask> = accum(C, fn(A)) where fn also receives
// the position of each entry. Rewriting every entry to its own column index
// is fn = func(_ X, _, j int) int64 { return int64(j) }.
func ApplyIndexMatrix[Z, X Scalar](c *Matrix[Z], mask MatrixMask, accum BinaryOp[Z, Z, Z], fn func(x X, i, j int) Z, a *Matrix[X], desc Descriptor) error {
	if c == nil || a == nil {
		return sparseErrorf("ApplyIndexMatrix", ErrNilContainer)
	}
	if c.nrows != a.nrows || c.ncols != a.ncols {
		return fmt.Errorf("ApplyIndexMatrix: shapes %dx%d -> %dx%d: %w", a.nrows, a.ncols, c.nrows, c.ncols, ErrDimensionMismatch)
	}
	sel, err := compileMatrixMask(mask, c.nrows, c.ncols, desc)
	if err != nil {
		return sparseErrorf("ApplyIndexMatrix", err)
	}
	t, _ := NewMatrix[Z](c.nrows, c.ncols)
	for i := range a.rows {
		r := &a.rows[i]
		if len(r.cols) == 0 {
			continue
		}
		out := row[Z]{cols: append([]int(nil), r.cols...), vals: make([]Z, len(r.cols))}
		for p, j := range r.cols {
			out.vals[p] = fn(r.vals[p], i, j)
		}
		t.rows[i] = out
	}
	writeMatrix(c, t, sel, accum, desc.Replace)

	return nil
}

// ApplyMatrix computes C<mask> = accum(C, fn(A)) entry by entry.
func ApplyMatrix[Z, X Scalar](c *Matrix[Z], mask MatrixMask, accum BinaryOp[Z, Z, Z], fn func(X) Z, a *Matrix[X], desc Descriptor) error {
	return ApplyIndexMatrix(c, mask, accum, func(x X, _, _ int) Z { return fn(x) }, a, desc)
}

// ColumnIndex is the index operator that replaces an entry by its column.
func ColumnIndex[X Scalar](_ X, _, j int) int64 { return int64(j) }

// RowIndex is the index operator that replaces an entry by its row.
func RowIndex[X Scalar](_ X, i, _ int) int64 { return int64(i) }

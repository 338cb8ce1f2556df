// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Matrix[T]: row-compressed sparse matrix. Each row keeps its present
//     column indices sorted ascending with a parallel value slice.
//
// Contract:
//   - Absent entries are "no value", never an implicit zero.
//   - Shape is fixed at creation; all row/col indices lie in [0,nrows)×[0,ncols).

package sparse

import (
	"fmt"
	"iter"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// row is one compressed row: cols sorted ascending, vals parallel to cols.
type row[T Scalar] struct {
	cols []int
	vals []T
}

// find returns the position of col j in r and whether it is present.
func (r *row[T]) find(j int) (int, bool) {
	p := sort.SearchInts(r.cols, j)

	return p, p < len(r.cols) && r.cols[p] == j
}

// set inserts or overwrites column j.
func (r *row[T]) set(j int, x T) {
	p, ok := r.find(j)
	if ok {
		r.vals[p] = x
		return
	}
	r.cols = append(r.cols, 0)
	r.vals = append(r.vals, x)
	copy(r.cols[p+1:], r.cols[p:])
	copy(r.vals[p+1:], r.vals[p:])
	r.cols[p] = j
	r.vals[p] = x
}

// remove deletes column j when present.
func (r *row[T]) remove(j int) {
	p, ok := r.find(j)
	if !ok {
		return
	}
	r.cols = append(r.cols[:p], r.cols[p+1:]...)
	r.vals = append(r.vals[:p], r.vals[p+1:]...)
}

// dup deep-copies the row.
func (r *row[T]) dup() row[T] {
	return row[T]{cols: append([]int(nil), r.cols...), vals: append([]T(nil), r.vals...)}
}

// Matrix is a sparse nrows×ncols matrix over element domain T.
// The zero value is not usable; build matrices with NewMatrix.
type Matrix[T Scalar] struct {
	nrows, ncols int
	rows         []row[T] // len == nrows
}

// NewMatrix returns an empty nrows×ncols matrix.
// Returns ErrInvalidDimensions if either dimension is negative or too large.
func NewMatrix[T Scalar](nrows, ncols int) (*Matrix[T], error) {
	if nrows < 0 || ncols < 0 || int64(nrows) > maxSize || int64(ncols) > maxSize {
		return nil, fmt.Errorf("NewMatrix(%d,%d): %w", nrows, ncols, ErrInvalidDimensions)
	}

	return &Matrix[T]{nrows: nrows, ncols: ncols, rows: make([]row[T], nrows)}, nil
}

// MatrixFromTriples builds a matrix from parallel (row, col, value) slices.
// Duplicate positions keep the last value.
func MatrixFromTriples[T Scalar](nrows, ncols int, rowIdx, colIdx []int, values []T) (*Matrix[T], error) {
	if len(rowIdx) != len(colIdx) || len(rowIdx) != len(values) {
		return nil, sparseErrorf("MatrixFromTriples", ErrDimensionMismatch)
	}
	m, err := NewMatrix[T](nrows, ncols)
	if err != nil {
		return nil, err
	}
	for k := range rowIdx {
		if err = m.SetElement(rowIdx[k], colIdx[k], values[k]); err != nil {
			return nil, sparseErrorf("MatrixFromTriples", err)
		}
	}

	return m, nil
}

// Nrows returns the number of rows.
func (m *Matrix[T]) Nrows() int { return m.nrows }

// Ncols returns the number of columns.
func (m *Matrix[T]) Ncols() int { return m.ncols }

// Nvals returns the number of present entries.
func (m *Matrix[T]) Nvals() int {
	n := 0
	for i := range m.rows {
		n += len(m.rows[i].cols)
	}

	return n
}

// Domain returns the element domain tag of m.
func (m *Matrix[T]) Domain() Domain { return DomainOf[T]() }

// isNil lets AnyMatrix reject typed nil pointers.
func (m *Matrix[T]) isNil() bool { return m == nil }

// inRange validates (i, j) against the shape.
func (m *Matrix[T]) inRange(op string, i, j int) error {
	if i < 0 || i >= m.nrows || j < 0 || j >= m.ncols {
		return fmt.Errorf("Matrix.%s(%d,%d) shape %dx%d: %w", op, i, j, m.nrows, m.ncols, ErrIndexOutOfRange)
	}

	return nil
}

// SetElement stores x at (i, j), making it present.
func (m *Matrix[T]) SetElement(i, j int, x T) error {
	if err := m.inRange("SetElement", i, j); err != nil {
		return err
	}
	m.rows[i].set(j, x)

	return nil
}

// Element returns the value at (i, j) and whether it is present.
// Out-of-range positions report absent.
func (m *Matrix[T]) Element(i, j int) (T, bool) {
	var zero T
	if i < 0 || i >= m.nrows || j < 0 || j >= m.ncols {
		return zero, false
	}
	r := &m.rows[i]
	p, ok := r.find(j)
	if !ok {
		return zero, false
	}

	return r.vals[p], true
}

// RemoveElement makes (i, j) absent. Removing an absent entry is a no-op.
func (m *Matrix[T]) RemoveElement(i, j int) error {
	if err := m.inRange("RemoveElement", i, j); err != nil {
		return err
	}
	m.rows[i].remove(j)

	return nil
}

// Clear removes every entry; the shape is unchanged.
func (m *Matrix[T]) Clear() {
	m.rows = make([]row[T], m.nrows)
}

// Dup returns an independent deep copy of m.
func (m *Matrix[T]) Dup() *Matrix[T] {
	out := &Matrix[T]{nrows: m.nrows, ncols: m.ncols, rows: make([]row[T], m.nrows)}
	for i := range m.rows {
		out.rows[i] = m.rows[i].dup()
	}

	return out
}

// Row yields the present (col, value) pairs of row i in ascending column order.
// An out-of-range i yields nothing.
func (m *Matrix[T]) Row(i int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if i < 0 || i >= m.nrows {
			return
		}
		r := &m.rows[i]
		for p, j := range r.cols {
			if !yield(j, r.vals[p]) {
				return
			}
		}
	}
}

// Triples returns every present entry as parallel (row, col, value) slices
// in row-major order.
func (m *Matrix[T]) Triples() (rowIdx, colIdx []int, values []T) {
	n := m.Nvals()
	rowIdx = make([]int, 0, n)
	colIdx = make([]int, 0, n)
	values = make([]T, 0, n)
	for i := range m.rows {
		r := &m.rows[i]
		for p, j := range r.cols {
			rowIdx = append(rowIdx, i)
			colIdx = append(colIdx, j)
			values = append(values, r.vals[p])
		}
	}

	return rowIdx, colIdx, values
}

// String renders the present entries row by row for debugging.
func (m *Matrix[T]) String() string {
	s := fmt.Sprintf("Matrix[%s](%dx%d)\n", m.Domain(), m.nrows, m.ncols)
	for i := range m.rows {
		if len(m.rows[i].cols) == 0 {
			continue
		}
		s += fmt.Sprintf("  %d:", i)
		for j, x := range m.Row(i) {
			s += fmt.Sprintf(" %d=%v", j, x)
		}
		s += "\n"
	}

	return s
}

// matrixMask implements MatrixMask. A nil receiver means "no mask".
func (m *Matrix[T]) matrixMask() (int, int, bool) {
	if m == nil {
		return 0, 0, false
	}

	return m.nrows, m.ncols, true
}

// maskRow returns the columns of row i that select output positions.
func (m *Matrix[T]) maskRow(i int, structural bool) *roaring.Bitmap {
	bits := roaring.New()
	var zero T
	r := &m.rows[i]
	for p, j := range r.cols {
		if structural || r.vals[p] != zero {
			bits.Add(uint32(j))
		}
	}

	return bits
}

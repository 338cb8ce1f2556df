// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Semiring products: VxM (row vector times matrix) and MxM.
//   - Row-wise Gustavson kernel with a dense accumulator per worker.
//
// Determinism & Performance:
//   - Every output row is owned by one goroutine; partial products are folded
//     in ascending k (the shared dimension), then emitted in ascending column
//     order. Parallel and sequential runs are therefore bit-identical, which
//     the fixpoint checks in the shortest-path code rely on.
//   - The mask is applied while accumulating: unselected columns are never
//     computed.

package sparse

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

const (
	opVxM = "VxM"
	opMxM = "MxM"
)

// minRowsPerTask keeps tiny products from paying goroutine overhead.
const minRowsPerTask = 64

// accumulator is the per-worker scratch space of the Gustavson kernel.
type accumulator[Z Scalar] struct {
	vals    []Z
	present []bool
	touched []int
}

func newAccumulator[Z Scalar](n int) *accumulator[Z] {
	return &accumulator[Z]{vals: make([]Z, n), present: make([]bool, n)}
}

// add folds x into column j under the additive operator.
func (a *accumulator[Z]) add(j int, x Z, op BinaryOp[Z, Z, Z]) {
	if a.present[j] {
		a.vals[j] = op(a.vals[j], x)
		return
	}
	a.present[j] = true
	a.vals[j] = x
	a.touched = append(a.touched, j)
}

// flush emits the accumulated columns sorted ascending and resets the scratch.
func (a *accumulator[Z]) flush() row[Z] {
	if len(a.touched) == 0 {
		return row[Z]{}
	}
	sort.Ints(a.touched)
	out := row[Z]{cols: make([]int, len(a.touched)), vals: make([]Z, len(a.touched))}
	for p, j := range a.touched {
		out.cols[p] = j
		out.vals[p] = a.vals[j]
		a.present[j] = false
	}
	a.touched = a.touched[:0]

	return out
}

// productRow computes one output row: ⊕_k left[k] ⊗ B[k,:], restricted to sel.
func productRow[Z, X, Y Scalar](acc *accumulator[Z], s Semiring[Z, X, Y], left *row[X], b *Matrix[Y], sel selector) row[Z] {
	for p, k := range left.cols {
		x := left.vals[p]
		rb := &b.rows[k]
		for q, j := range rb.cols {
			if !sel.selects(j) {
				continue
			}
			acc.add(j, s.Multiply(x, rb.vals[q]), s.Add.Op)
		}
	}

	return acc.flush()
}

// VxM computes w<mask> = accum(w, uᵀ ⊕.⊗ A), i.e. w[j] = ⊕_i (u[i] ⊗ A[i,j])
// over every i where both u[i] and A[i,j] are present. Indices with no
// contributing pair stay absent.
func VxM[Z, X, Y Scalar](w *Vector[Z], mask VectorMask, accum BinaryOp[Z, Z, Z], s Semiring[Z, X, Y], u *Vector[X], a *Matrix[Y], desc Descriptor) error {
	if w == nil || u == nil || a == nil {
		return sparseErrorf(opVxM, ErrNilContainer)
	}
	if u.size != a.nrows || w.size != a.ncols {
		return fmt.Errorf("%s: u(%d) x A(%dx%d) -> w(%d): %w", opVxM, u.size, a.nrows, a.ncols, w.size, ErrDimensionMismatch)
	}
	sel, err := compileVectorMask(mask, w.size, desc)
	if err != nil {
		return sparseErrorf(opVxM, err)
	}

	// A vector is a single row; reuse the matrix kernel on it.
	left := u.AsRow().rows[0]
	r := productRow(newAccumulator[Z](a.ncols), s, &left, a, sel)

	t, _ := NewVector[Z](w.size)
	for p, j := range r.cols {
		t.pattern.Add(uint32(j))
		t.vals[j] = r.vals[p]
	}
	writeVector(w, t, sel, accum, desc.Replace)

	return nil
}

// MxM computes C<mask> = accum(C, A ⊕.⊗ B), i.e. R[i,k] = ⊕_j (A[i,j] ⊗ B[j,k]).
// Output rows are distributed over desc.Workers goroutines.
func MxM[Z, X, Y Scalar](c *Matrix[Z], mask MatrixMask, accum BinaryOp[Z, Z, Z], s Semiring[Z, X, Y], a *Matrix[X], b *Matrix[Y], desc Descriptor) error {
	if c == nil || a == nil || b == nil {
		return sparseErrorf(opMxM, ErrNilContainer)
	}
	if a.ncols != b.nrows || c.nrows != a.nrows || c.ncols != b.ncols {
		return fmt.Errorf("%s: A(%dx%d) x B(%dx%d) -> C(%dx%d): %w",
			opMxM, a.nrows, a.ncols, b.nrows, b.ncols, c.nrows, c.ncols, ErrDimensionMismatch)
	}
	sel, err := compileMatrixMask(mask, c.nrows, c.ncols, desc)
	if err != nil {
		return sparseErrorf(opMxM, err)
	}

	t, _ := NewMatrix[Z](c.nrows, c.ncols)
	compute := func(lo, hi int) {
		acc := newAccumulator[Z](b.ncols)
		for i := lo; i < hi; i++ {
			if len(a.rows[i].cols) == 0 {
				continue
			}
			t.rows[i] = productRow(acc, s, &a.rows[i], b, sel(i))
		}
	}

	workers := desc.Workers
	if workers <= 1 || a.nrows < 2*minRowsPerTask {
		compute(0, a.nrows)
	} else {
		chunk := (a.nrows + workers - 1) / workers
		if chunk < minRowsPerTask {
			chunk = minRowsPerTask
		}
		g, _ := errgroup.WithContext(context.Background())
		g.SetLimit(workers)
		for lo := 0; lo < a.nrows; lo += chunk {
			hi := min(lo+chunk, a.nrows)
			g.Go(func() error {
				compute(lo, hi)
				return nil
			})
		}
		if err = g.Wait(); err != nil {
			return sparseErrorf(opMxM, err)
		}
	}
	writeMatrix(c, t, sel, accum, desc.Replace)

	return nil
}

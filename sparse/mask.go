// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Descriptor: per-call switches for mask interpretation and output mode.
//   - Mask compilation: turn a Vector/Matrix mask into a selector backed by a
//     roaring bitmap, so "visited"/"finalized" sets never need their own type.
//   - The single output-write rule (see doc.go) shared by every operation.

package sparse

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Descriptor modifies how an operation treats its mask and output.
// The zero value means: value mask, no complement, no replace, one worker.
type Descriptor struct {
	// Complement selects positions ABSENT from the mask instead of present ones.
	Complement bool
	// Replace deletes every output entry the mask does not select.
	Replace bool
	// Structure reads the mask by presence only, ignoring stored values.
	Structure bool
	// Workers bounds the goroutines a product may use; <= 1 runs sequentially.
	Workers int
}

// Descriptor presets. They are plain values; callers copy and adjust them.
var (
	// DescS reads the mask structurally.
	DescS = Descriptor{Structure: true}
	// DescSC selects positions absent from the mask structure.
	DescSC = Descriptor{Structure: true, Complement: true}
	// DescR clears unselected output entries.
	DescR = Descriptor{Replace: true}
	// DescRSC is DescSC with Replace: the frontier-advance descriptor.
	DescRSC = Descriptor{Replace: true, Structure: true, Complement: true}
)

// WithWorkers returns a copy of d using n workers.
func (d Descriptor) WithWorkers(n int) Descriptor {
	d.Workers = n
	return d
}

// VectorMask is implemented by *Vector[T] for every domain T.
// A nil *Vector passed as a mask means "no mask".
type VectorMask interface {
	vectorMask(structural bool) (bits *roaring.Bitmap, size int, ok bool)
}

// MatrixMask is implemented by *Matrix[T] for every domain T.
// A nil *Matrix passed as a mask means "no mask".
type MatrixMask interface {
	matrixMask() (nrows, ncols int, ok bool)
	maskRow(i int, structural bool) *roaring.Bitmap
}

// selector answers "may position j be written" for one vector or matrix row.
type selector struct {
	bits       *roaring.Bitmap
	active     bool
	complement bool
}

// selects reports whether j is selected. An inactive selector selects all.
func (s selector) selects(j int) bool {
	if !s.active {
		return true
	}

	return s.bits.Contains(uint32(j)) != s.complement
}

// rowSelector yields the selector for matrix row i.
type rowSelector func(i int) selector

// compileVectorMask validates mask shape against size and builds its selector.
func compileVectorMask(mask VectorMask, size int, desc Descriptor) (selector, error) {
	if mask == nil {
		return selector{}, nil
	}
	bits, n, ok := mask.vectorMask(desc.Structure)
	if !ok {
		return selector{}, nil
	}
	if n != size {
		return selector{}, fmt.Errorf("mask size %d, output size %d: %w", n, size, ErrDimensionMismatch)
	}

	return selector{bits: bits, active: true, complement: desc.Complement}, nil
}

// compileMatrixMask validates mask shape and returns a per-row selector.
func compileMatrixMask(mask MatrixMask, nrows, ncols int, desc Descriptor) (rowSelector, error) {
	all := func(int) selector { return selector{} }
	if mask == nil {
		return all, nil
	}
	r, c, ok := mask.matrixMask()
	if !ok {
		return all, nil
	}
	if r != nrows || c != ncols {
		return nil, fmt.Errorf("mask shape %dx%d, output shape %dx%d: %w", r, c, nrows, ncols, ErrDimensionMismatch)
	}

	return func(i int) selector {
		return selector{bits: mask.maskRow(i, desc.Structure), active: true, complement: desc.Complement}
	}, nil
}

// writeVector merges the computed result t into c under sel, accum and replace.
// t must have c's size and must not be retained by the caller afterwards.
func writeVector[T Scalar](c, t *Vector[T], sel selector, accum BinaryOp[T, T, T], replace bool) {
	pattern := roaring.New()
	vals := make([]T, c.size)

	it := roaring.Or(c.pattern, t.pattern).Iterator()
	for it.HasNext() {
		i := int(it.Next())
		cp, tp := c.has(i), t.has(i)
		if !sel.selects(i) {
			if cp && !replace {
				pattern.Add(uint32(i))
				vals[i] = c.vals[i]
			}
			continue
		}
		pattern.Add(uint32(i))
		switch {
		case cp && tp:
			vals[i] = c.vals[i] // first write wins without an accumulator
			if accum != nil {
				vals[i] = accum(c.vals[i], t.vals[i])
			}
		case tp:
			vals[i] = t.vals[i]
		default:
			vals[i] = c.vals[i]
		}
	}

	c.pattern, c.vals = pattern, vals
}

// writeMatrix merges the computed result t into c row by row.
func writeMatrix[T Scalar](c, t *Matrix[T], sel rowSelector, accum BinaryOp[T, T, T], replace bool) {
	for i := 0; i < c.nrows; i++ {
		if len(c.rows[i].cols) == 0 && len(t.rows[i].cols) == 0 {
			continue
		}
		c.rows[i] = mergeRow(&c.rows[i], &t.rows[i], sel(i), accum, replace)
	}
}

// mergeRow applies the output rule to one row with a two-pointer walk.
func mergeRow[T Scalar](c, t *row[T], sel selector, accum BinaryOp[T, T, T], replace bool) row[T] {
	var (
		out  row[T]
		p, q int
	)
	emit := func(j int, x T) {
		out.cols = append(out.cols, j)
		out.vals = append(out.vals, x)
	}
	for p < len(c.cols) || q < len(t.cols) {
		switch {
		case q >= len(t.cols) || (p < len(c.cols) && c.cols[p] < t.cols[q]):
			// Only C holds this column.
			j := c.cols[p]
			if sel.selects(j) || !replace {
				emit(j, c.vals[p])
			}
			p++
		case p >= len(c.cols) || t.cols[q] < c.cols[p]:
			// Only T holds this column.
			if j := t.cols[q]; sel.selects(j) {
				emit(j, t.vals[q])
			}
			q++
		default:
			j := c.cols[p]
			switch {
			case !sel.selects(j):
				if !replace {
					emit(j, c.vals[p])
				}
			case accum != nil:
				emit(j, accum(c.vals[p], t.vals[q]))
			default:
				emit(j, c.vals[p])
			}
			p++
			q++
		}
	}

	return out
}
